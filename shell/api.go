package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/octi/automatic"
	"github.com/domino14/octi/board"
	"github.com/domino14/octi/config"
	"github.com/domino14/octi/equity"
	"github.com/domino14/octi/game"
	"github.com/domino14/octi/movegen"
	"github.com/domino14/octi/priority"
)

func (sc *ShellController) threshold() int {
	return sc.config.GetInt(config.ConfigRepetitionThreshold)
}

func (sc *ShellController) gameDisplay() string {
	var sb strings.Builder
	sb.WriteString(sc.game.State().ToDisplayText())
	fmt.Fprintf(&sb, "Move %d of %d\n", sc.game.Cursor(), len(sc.game.History()))
	if w, ok := sc.game.Winner(); ok {
		fmt.Fprintf(&sb, "Game over, %v wins\n", w)
	}
	return sb.String()
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	sc.resetGame()
	return msg(sc.gameDisplay()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.gameDisplay()), nil
}

func (sc *ShellController) move(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("move <arr|mov> (x,y) <arrows...>")
	}
	m, err := board.ParseMove(strings.Join(cmd.args, " "))
	if err != nil {
		return nil, err
	}
	if err := sc.game.PlayMove(m); err != nil {
		return nil, err
	}
	return msg(sc.gameDisplay()), nil
}

func (sc *ShellController) gen(cmd *shellcmd) (*Response, error) {
	top := 0
	if t, ok := cmd.options["top"]; ok {
		n, err := strconv.Atoi(t)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("bad -top value %q", t)
		}
		top = n
	}
	state := sc.game.State()
	ranked := priority.Prioritize(state, movegen.GenAll(state, sc.threshold()), sc.weights)
	if top > 0 && top < len(ranked) {
		ranked = ranked[:top]
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d moves for %v\n", len(ranked), state.Turn())
	for i, c := range ranked {
		fmt.Fprintf(&sb, "%3d. %-24s %s\n", i+1, c.Move.String(), priorityString(c.Priority))
	}
	return msg(sb.String()), nil
}

func priorityString(p int) string {
	switch p {
	case priority.WinPriority:
		return "wins"
	case priority.LossPriority:
		return "loses"
	}
	return strconv.Itoa(p)
}

func (sc *ShellController) eval(cmd *shellcmd) (*Response, error) {
	v := equity.Evaluate(sc.game.State(), sc.evalData, sc.threshold())
	return msg(fmt.Sprintf("Evaluation: %v (positive favors Red)", v)), nil
}

func (sc *ShellController) ai(cmd *shellcmd) (*Response, error) {
	depth := 0
	if len(cmd.args) > 1 {
		return nil, errors.New("ai [depth]")
	}
	if len(cmd.args) == 1 {
		a, err := game.ParseAction("ai " + cmd.args[0])
		if err != nil {
			return nil, err
		}
		depth = a.N
	}
	m, score, err := sc.game.AIMove(depth)
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("AI plays %v (%v)\n%v\n%v%s", m, score, sc.solver.Stats(),
		sc.solver.PrincipalVariation(), sc.gameDisplay())), nil
}

// navigate handles the history commands. A missing step count is 1.
func (sc *ShellController) navigate(cmd *shellcmd) (*Response, error) {
	name := cmd.cmd
	switch name {
	case "f":
		name = "forward"
	case "b":
		name = "backward"
	}
	args := cmd.args
	if (name == "forward" || name == "backward") && len(args) == 0 {
		args = []string{"1"}
	}
	a, err := game.ParseAction(strings.Join(append([]string{name}, args...), " "))
	if err != nil {
		return nil, err
	}
	if err := sc.game.Process(a); err != nil {
		return nil, err
	}
	return msg(sc.gameDisplay()), nil
}

func (sc *ShellController) mirror(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 1 {
		switch cmd.args[0] {
		case "on":
			sc.solver.SetMirrorMemo(true)
		case "off":
			sc.solver.SetMirrorMemo(false)
		default:
			return nil, errors.New("mirror [on|off]")
		}
	}
	state := "off"
	if sc.solver.MirrorMemo() {
		state = "on"
	}
	note := ""
	if !sc.evalData.MirrorSymmetric() {
		note = " (evaluation weights are not mirror symmetric, so mirrored lookups are skipped)"
	}
	return msg("Mirror memo lookups: " + state + note), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 {
		switch cmd.args[0] {
		case "stop":
			if sc.autoplayCancel == nil {
				return nil, errors.New("autoplay is not running")
			}
			sc.Cleanup()
			return msg("Autoplay stopped"), nil
		case "log":
			path := sc.config.GetString(config.ConfigAutoplayLog)
			if len(cmd.args) > 1 {
				path = cmd.args[1]
			}
			summary, err := automatic.AnalyzeLogFile(path)
			if err != nil {
				return nil, err
			}
			return msg(summary.String()), nil
		}
	}
	if sc.autoplayCancel != nil {
		select {
		case <-sc.autoplayDone:
		default:
			return nil, automatic.ErrAlreadyPlaying
		}
	}

	games := sc.config.GetInt(config.ConfigAutoplayGames)
	if len(cmd.args) > 0 {
		n, err := strconv.Atoi(cmd.args[0])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("bad number of games %q", cmd.args[0])
		}
		games = n
	}
	threads := sc.config.GetInt(config.ConfigAutoplayThreads)
	if t, ok := cmd.options["threads"]; ok {
		n, err := strconv.Atoi(t)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("bad -threads value %q", t)
		}
		threads = n
	}
	if d, ok := cmd.options["depth"]; ok {
		n, err := strconv.Atoi(d)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("bad -depth value %q", d)
		}
		sc.config.Set(config.ConfigAutoplayDepth, n)
	}
	logfile := sc.config.GetString(config.ConfigAutoplayLog)
	if f, ok := cmd.options["file"]; ok {
		logfile = f
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	sc.autoplayCancel, sc.autoplayDone = cancel, done
	go func() {
		defer close(done)
		defer cancel()
		summary, err := automatic.StartCompVComp(ctx, sc.config, games, threads, logfile)
		if err != nil {
			sc.showError(err)
			return
		}
		sc.showMessage(summary.String())
	}()
	return msg(fmt.Sprintf("Started %d games on %d threads, logging to %s", games, threads, logfile)), nil
}
