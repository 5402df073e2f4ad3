package diag

import (
	"sort"
	"sync"
)

// Bag collects diagnostics from many scans, up to a limit.
// Safe for concurrent Add from batch workers.
type Bag struct {
	mu    sync.Mutex
	items []*Diagnostic
	max   int
}

// NewBag creates a bag holding at most limit diagnostics (limit <= 0 means unbounded).
func NewBag(limit int) *Bag {
	return &Bag{
		items: make([]*Diagnostic, 0, max(limit, 0)),
		max:   limit,
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d *Diagnostic) bool {
	if d == nil {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// HasErrors reports whether any scan failed. Every diagnostic is an error.
func (b *Bag) HasErrors() bool {
	return b.Len() > 0
}

// Items возвращает копию списка диагностик.
func (b *Bag) Items() []*Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}

// Sort orders diagnostics by path, offset, then code for deterministic output.
func (b *Bag) Sort() {
	b.mu.Lock()
	defer b.mu.Unlock()
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.path != dj.path {
			return di.path < dj.path
		}
		if di.pos.Offset != dj.pos.Offset {
			return di.pos.Offset < dj.pos.Offset
		}
		return di.kind < dj.kind
	})
}
