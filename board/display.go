package board

import (
	"fmt"
	"strings"
)

// ToDisplayText renders the board for a terminal. Each occupied cell shows
// the team letter and the number of active arrows; home cells of an empty
// row are marked with '-'.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	bd := b.bounds
	sb.WriteString("    ")
	for x := bd.Min.X; x <= bd.Max.X; x++ {
		fmt.Fprintf(&sb, "%-4d", x)
	}
	sb.WriteString("\n")
	for y := bd.Min.Y; y <= bd.Max.Y; y++ {
		fmt.Fprintf(&sb, "%2d  ", y)
		for x := bd.Min.X; x <= bd.Max.X; x++ {
			p := Pos(x, y)
			if o, ok := b.OctiAt(p); ok {
				fmt.Fprintf(&sb, "%s%-3d", o.Team.Letter(), o.ArrowCount())
			} else if IsHome(p, Red, bd) || IsHome(p, Green, bd) {
				sb.WriteString("-   ")
			} else {
				sb.WriteString(".   ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	for _, o := range b.Octis() {
		names := make([]string, 0, o.ArrowCount())
		for _, a := range o.Arrows.Arrows() {
			names = append(names, a.Name())
		}
		fmt.Fprintf(&sb, "%s#%d %v [%s]\n", o.Team.Letter(), o.ID, o.Pos, strings.Join(names, " "))
	}
	fmt.Fprintf(&sb, "Arrows left: Red %d, Green %d\n", b.arrowCounts[Red], b.arrowCounts[Green])
	fmt.Fprintf(&sb, "To move: %v\n", b.turn)
	return sb.String()
}
