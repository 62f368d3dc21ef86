package minimax

import (
	"fmt"
	"strings"

	"github.com/domino14/octi/board"
)

// PVLine is the line of best play found below a node. Lines are cut short
// where the search answered from the memo.
type PVLine struct {
	Moves []*board.Move
	score Score
}

func (pv *PVLine) Clear() {
	pv.Moves = nil
}

// Update replaces the line with m followed by the child's line.
func (pv *PVLine) Update(m *board.Move, child PVLine, score Score) {
	pv.Clear()
	pv.Moves = append(pv.Moves, m)
	pv.Moves = append(pv.Moves, child.Moves...)
	pv.score = score
}

func (pv PVLine) Score() Score {
	return pv.score
}

func (pv PVLine) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PV; val %v\n", pv.score)
	for i, m := range pv.Moves {
		fmt.Fprintf(&sb, "%d: %v\n", i+1, m)
	}
	return sb.String()
}

// NLBString is String without line breaks.
func (pv PVLine) NLBString() string {
	parts := make([]string, 0, len(pv.Moves)+1)
	parts = append(parts, fmt.Sprintf("PV; val %v", pv.score))
	for i, m := range pv.Moves {
		parts = append(parts, fmt.Sprintf("%d: %v", i+1, m))
	}
	return strings.Join(parts, "; ")
}
