package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/octi/board"
	"github.com/domino14/octi/config"
	"github.com/domino14/octi/equity"
	"github.com/domino14/octi/game"
	"github.com/domino14/octi/minimax"
	"github.com/domino14/octi/priority"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
)

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

// extractFields splits a line into a command, positional arguments and
// -name value options.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := &shellcmd{cmd: fields[0], options: map[string]string{}}
	for i := 1; i < len(fields); i++ {
		f := fields[i]
		if len(f) > 1 && strings.HasPrefix(f, "-") {
			if i+1 >= len(fields) {
				return nil, errWrongOptionSyntax
			}
			cmd.options[f[1:]] = fields[i+1]
			i++
			continue
		}
		cmd.args = append(cmd.args, f)
	}
	return cmd, nil
}

type Response struct {
	message string
}

func (r *Response) String() string {
	return r.message
}

func msg(message string) *Response {
	return &Response{message: message}
}

type ShellController struct {
	l        *readline.Instance
	out      io.Writer
	config   *config.Config
	execPath string

	game     *game.Game
	solver   *minimax.Solver
	evalData *equity.EvalData
	weights  *priority.Weights

	autoplayCancel context.CancelFunc
	autoplayDone   chan struct{}
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// newController loads the weight documents and starts a game; it does
// not touch the terminal.
func newController(cfg *config.Config, execPath string, out io.Writer) (*ShellController, error) {
	evalData, err := equity.LoadEvalData(cfg)
	if err != nil {
		return nil, err
	}
	weights, err := priority.LoadWeights(cfg)
	if err != nil {
		return nil, err
	}
	solver, err := minimax.NewSolverFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	sc := &ShellController{
		out:      out,
		config:   cfg,
		execPath: execPath,
		solver:   solver,
		evalData: evalData,
		weights:  weights,
	}
	sc.resetGame()
	return sc, nil
}

func NewShellController(cfg *config.Config, execPath string) (*ShellController, error) {
	sc, err := newController(cfg, execPath, os.Stderr)
	if err != nil {
		return nil, err
	}
	sc.l, err = readline.NewEx(&readline.Config{
		Prompt:          "\033[31mocti>\033[0m ",
		HistoryFile:     "/tmp/octi-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    NewShellCompleter(sc),

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc.out = sc.l.Stderr()
	return sc, nil
}

func (sc *ShellController) resetGame() {
	sc.game = game.NewGame(board.NewStandard(), sc.solver, sc.config.GetInt(config.ConfigDefaultDepth))
}

// Execute runs one command line.
func (sc *ShellController) Execute(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "help":
		return sc.help(cmd)
	case "new":
		return sc.newGame(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "move", "m":
		return sc.move(cmd)
	case "gen":
		return sc.gen(cmd)
	case "eval":
		return sc.eval(cmd)
	case "ai":
		return sc.ai(cmd)
	case "start", "end", "forward", "f", "backward", "b", "overwrite":
		return sc.navigate(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "mirror":
		return sc.mirror(cmd)
	}
	return nil, errors.New("command " + cmd.cmd + " not found")
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			sig <- syscall.SIGINT
			break
		}
		resp, err := sc.Execute(line)
		if err != nil {
			sc.showError(err)
		} else if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msg("exiting-readline-loop")
}

// Wait blocks until a running autoplay has finished.
func (sc *ShellController) Wait() {
	if sc.autoplayDone != nil {
		<-sc.autoplayDone
	}
}

// Cleanup stops a running autoplay.
func (sc *ShellController) Cleanup() {
	if sc.autoplayCancel != nil {
		sc.autoplayCancel()
		<-sc.autoplayDone
	}
}
