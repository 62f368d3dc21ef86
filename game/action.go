package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/octi/board"
	"github.com/domino14/octi/minimax"
)

type ActionType int

const (
	ActionStart ActionType = iota
	ActionEnd
	ActionForward
	ActionBackward
	ActionMove
	ActionAI
	ActionOverwrite
)

var ErrBadAction = errors.New("unrecognized action")

// Action is one navigation or play command. N is the step count for
// forward and backward and the depth for ai (0 meaning the default).
type Action struct {
	Type ActionType
	N    int
	Move *board.Move
}

// ParseAction reads the command syntax:
//
//	start | end | forward n | backward n | move <move> | ai [depth] | overwrite
func ParseAction(s string) (Action, error) {
	args := strings.Fields(s)
	if len(args) == 0 {
		return Action{}, fmt.Errorf("%w: empty string", ErrBadAction)
	}
	switch args[0] {
	case "start":
		return Action{Type: ActionStart}, nil
	case "end":
		return Action{Type: ActionEnd}, nil
	case "overwrite":
		return Action{Type: ActionOverwrite}, nil
	case "forward", "backward":
		if len(args) != 2 {
			return Action{}, fmt.Errorf("%w: %s takes one argument, got %d", ErrBadAction, args[0], len(args)-1)
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			return Action{}, fmt.Errorf("%w: invalid %s argument %q", ErrBadAction, args[0], args[1])
		}
		t := ActionForward
		if args[0] == "backward" {
			t = ActionBackward
		}
		return Action{Type: t, N: n}, nil
	case "move":
		m, err := board.ParseMove(strings.Join(args[1:], " "))
		if err != nil {
			return Action{}, err
		}
		return Action{Type: ActionMove, Move: m}, nil
	case "ai":
		if len(args) > 2 {
			return Action{}, fmt.Errorf("%w: ai takes at most one argument", ErrBadAction)
		}
		a := Action{Type: ActionAI}
		if len(args) == 2 {
			d, err := strconv.Atoi(args[1])
			if err != nil || d < 0 {
				return Action{}, fmt.Errorf("%w: invalid depth %q", ErrBadAction, args[1])
			}
			if d == 0 {
				return Action{}, minimax.ErrZeroDepth
			}
			a.N = d
		}
		return a, nil
	}
	return Action{}, fmt.Errorf("%w: %s", ErrBadAction, args[0])
}
