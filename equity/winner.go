package equity

import "github.com/domino14/octi/board"

// Winner reports the team that has won on b, if any. A team wins with a
// piece on one of the opponent's home cells, or when the opponent has no
// pieces left.
func Winner(b board.Boardable) (board.Team, bool) {
	var seen [board.NumTeams]bool
	bounds := b.Bounds()
	for _, o := range b.Octis() {
		if board.IsHome(o.Pos, o.Team.Opponent(), bounds) {
			return o.Team, true
		}
		seen[o.Team] = true
	}
	switch {
	case seen[board.Red] && !seen[board.Green]:
		return board.Red, true
	case seen[board.Green] && !seen[board.Red]:
		return board.Green, true
	}
	return 0, false
}
