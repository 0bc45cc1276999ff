package perft

import (
	"sync"

	"damas/internal/log2"
)

const maxTableEntries = 1 << 20

type tableKey struct {
	hash  uint64
	depth int
}

// table memoizes subtree statistics by position hash and remaining depth.
// It is shared by every worker of a Count call.
type table struct {
	mu      sync.Mutex
	entries map[tableKey]Stats
}

func newTable() *table {
	return &table{entries: make(map[tableKey]Stats, 1<<12)}
}

func (t *table) load(hash uint64, depth int) (Stats, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.entries[tableKey{hash, depth}]
	return s, ok
}

func (t *table) store(hash uint64, depth int, s Stats) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.entries) >= maxTableEntries {
		log2.Debugf("perft table full at %d entries, clearing", len(t.entries))
		t.entries = make(map[tableKey]Stats, 1<<12)
	}
	t.entries[tableKey{hash, depth}] = s
}
