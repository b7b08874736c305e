package core

import (
	"sync"
	"sync/atomic"
)

// SelectionStats are simple counters for selection behavior.
// These are intended for diagnostics and monitoring.
type SelectionStats struct {
	Selects   int64 `json:"selects"`
	Deselects int64 `json:"deselects"`
	Clears    int64 `json:"clears"`
	Size      int   `json:"size"`
}

// SelectionStore is the working set of assets chosen for a bulk action,
// keyed by asset id. Pure set-with-value semantics: no ordering, no
// duplicates, membership iff the id is a key.
//
// The stored Asset is the value passed at the last Select call for that
// id. The store never refreshes stale copies; callers re-select after an
// edit when they want the refreshed value reflected here. Selection is
// never persisted - it starts empty every run.
type SelectionStore struct {
	mu       sync.RWMutex
	selected map[string]Asset

	// counters
	selects   int64
	deselects int64
	clears    int64

	subMu  sync.Mutex
	subs   map[int]func()
	nextID int
}

func NewSelectionStore() *SelectionStore {
	return &SelectionStore{
		selected: make(map[string]Asset),
		subs:     make(map[int]func()),
	}
}

// Select inserts or overwrites the entry for asset.ID. Idempotent upsert;
// always succeeds.
func (s *SelectionStore) Select(asset Asset) {
	s.mu.Lock()
	s.selected[asset.ID] = asset
	s.mu.Unlock()

	atomic.AddInt64(&s.selects, 1)
	s.notify()
}

// Deselect removes the entry for id. A missing id is a no-op, not an error.
func (s *SelectionStore) Deselect(id string) {
	s.mu.Lock()
	_, existed := s.selected[id]
	delete(s.selected, id)
	s.mu.Unlock()

	if existed {
		atomic.AddInt64(&s.deselects, 1)
		s.notify()
	}
}

// Clear empties the set unconditionally.
func (s *SelectionStore) Clear() {
	s.mu.Lock()
	s.selected = make(map[string]Asset)
	s.mu.Unlock()

	atomic.AddInt64(&s.clears, 1)
	s.notify()
}

// Get returns the last-selected value for id and whether it is a member.
func (s *SelectionStore) Get(id string) (Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.selected[id]
	return a, ok
}

// IsSelected reports membership for id.
func (s *SelectionStore) IsSelected(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.selected[id]
	return ok
}

// Selected returns the member assets in no particular order.
func (s *SelectionStore) Selected() []Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Asset, 0, len(s.selected))
	for _, a := range s.selected {
		out = append(out, a)
	}
	return out
}

// IDs returns the member ids in no particular order, the shape bulk
// request payloads are built from.
func (s *SelectionStore) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.selected))
	for id := range s.selected {
		out = append(out, id)
	}
	return out
}

// Len returns the number of selected assets.
func (s *SelectionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selected)
}

// Subscribe registers fn to run after every membership change. The
// returned function removes the subscription.
func (s *SelectionStore) Subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *SelectionStore) Stats() SelectionStats {
	return SelectionStats{
		Selects:   atomic.LoadInt64(&s.selects),
		Deselects: atomic.LoadInt64(&s.deselects),
		Clears:    atomic.LoadInt64(&s.clears),
		Size:      s.Len(),
	}
}

func (s *SelectionStore) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
