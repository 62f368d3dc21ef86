package board

import (
	"encoding/binary"
	"slices"
)

// StateKey is a canonical encoding of the full state of b. Two boards get
// the same key exactly when they hold the same pieces (ids included),
// arrow budgets and turn, whatever their representation.
func StateKey(b Boardable) string {
	octis := b.Octis()
	slices.SortFunc(octis, func(a, c Octi) int {
		if a.Pos == c.Pos {
			return 0
		}
		if a.Pos.Less(c.Pos) {
			return -1
		}
		return 1
	})
	buf := make([]byte, 0, 8+len(octis)*8)
	buf = append(buf, byte(b.Turn()))
	buf = binary.AppendVarint(buf, int64(b.ArrowCount(Red)))
	buf = binary.AppendVarint(buf, int64(b.ArrowCount(Green)))
	for _, o := range octis {
		buf = binary.AppendUvarint(buf, uint64(o.ID))
		buf = append(buf, byte(o.Team), byte(o.Arrows))
		buf = binary.AppendVarint(buf, int64(o.Pos.X))
		buf = binary.AppendVarint(buf, int64(o.Pos.Y))
	}
	return string(buf)
}
