package minimax

import (
	"github.com/domino14/octi/equity"
	"github.com/domino14/octi/fastboard"
)

const (
	boundExact uint8 = iota + 1
	boundLower
	boundUpper
)

// memoEntry holds a board key (ids cleared). Plies are relative to the
// node the entry was stored for.
type memoEntry struct {
	board fastboard.Board
	value equity.Value
	plies int
	depth int
	flag  uint8
}

// memo is keyed by the hash of the board key; entries in a bucket are
// told apart by full key equality, so hash collisions cost time but never correctness.
type memo struct {
	buckets map[uint64][]memoEntry

	lookups uint64
	hits    uint64
	created uint64
}

func newMemo() *memo {
	return &memo{buckets: make(map[uint64][]memoEntry)}
}

func (m *memo) lookup(b *fastboard.Board) *memoEntry {
	m.lookups++
	k := b.Key()
	bucket := m.buckets[k.Hash()]
	for i := range bucket {
		if bucket[i].board == k {
			m.hits++
			return &bucket[i]
		}
	}
	return nil
}

// store keeps the deeper of two entries for the same board.
func (m *memo) store(e memoEntry) {
	e.board = e.board.Key()
	h := e.board.Hash()
	bucket := m.buckets[h]
	for i := range bucket {
		if bucket[i].board == e.board {
			if e.depth >= bucket[i].depth {
				bucket[i] = e
			}
			return
		}
	}
	m.buckets[h] = append(bucket, e)
	m.created++
}
