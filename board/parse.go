package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadSyntax = errors.New("bad move syntax")

// ParsePosition parses "(x,y)".
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	if len(s) < 5 || s[0] != '(' || s[len(s)-1] != ')' {
		return Position{}, fmt.Errorf("%w: position must look like (x,y): %q", ErrBadSyntax, s)
	}
	coords := strings.Split(s[1:len(s)-1], ",")
	if len(coords) != 2 {
		return Position{}, fmt.Errorf("%w: position needs two coordinates: %q", ErrBadSyntax, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(coords[0]))
	if err != nil {
		return Position{}, fmt.Errorf("%w: invalid x: %q", ErrBadSyntax, coords[0])
	}
	y, err := strconv.Atoi(strings.TrimSpace(coords[1]))
	if err != nil {
		return Position{}, fmt.Errorf("%w: invalid y: %q", ErrBadSyntax, coords[1])
	}
	return Pos(x, y), nil
}

// ParseArrow parses a direction digit 0-7. A trailing capture marker "x"
// is accepted and ignored.
func ParseArrow(s string) (Arrow, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "x")
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid arrow: %q", ErrBadSyntax, s)
	}
	return NewArrow(v)
}

// ParseMove parses "arr (x,y) d" or "mov (x,y) d1 d2 ...".
func ParseMove(s string) (*Move, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty move", ErrBadSyntax)
	}
	switch fields[0] {
	case "arr":
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: arr takes a position and one arrow, got %d arguments",
				ErrBadSyntax, len(fields)-1)
		}
		pos, err := ParsePosition(fields[1])
		if err != nil {
			return nil, err
		}
		a, err := ParseArrow(fields[2])
		if err != nil {
			return nil, err
		}
		return NewArrowMove(pos, a), nil
	case "mov":
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: mov takes a position and at least one arrow, got %d arguments",
				ErrBadSyntax, len(fields)-1)
		}
		pos, err := ParsePosition(fields[1])
		if err != nil {
			return nil, err
		}
		chain := make([]Arrow, 0, len(fields)-2)
		for _, f := range fields[2:] {
			a, err := ParseArrow(f)
			if err != nil {
				return nil, err
			}
			chain = append(chain, a)
		}
		return NewMovement(pos, chain...), nil
	}
	return nil, fmt.Errorf("%w: unrecognized move type %q", ErrBadSyntax, fields[0])
}
