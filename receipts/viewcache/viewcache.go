// Package viewcache keeps recently observed receipt view data in process
// memory so read endpoints can answer without a database round-trip while a
// receipt is moving through the processing pipeline.
//
// Entries come from two observation paths: list rows prime abbreviated
// "partial" entries, detail fetches store "full" entries. A full entry is
// never displaced by a later partial one. Freshness is status-aware: a
// receipt in a terminal status is trusted indefinitely, anything still in
// flight is trusted only for a short TTL and must be refetched afterwards.
package viewcache

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"encore.app/receipts/model"
)

// FreshFor is how long a non-terminal entry is trusted after capture.
const FreshFor = 10 * time.Minute

// terminalStatuses are the pipeline states a receipt never leaves. Entries
// in one of these states stay fresh regardless of age.
var terminalStatuses = map[string]struct{}{
	"processed": {},
	"failed":    {},
	"completed": {},
	"canceled":  {},
	"rejected":  {},
}

// Entry is one cached receipt observation.
type Entry struct {
	Receipt    model.Receipt
	Partial    bool
	CapturedAt time.Time
}

// PreviewEntry is a cached thumbnail source for a receipt. Its lifecycle is
// independent from the receipt entry under the same key.
type PreviewEntry struct {
	Src        string
	CapturedAt time.Time
}

// Store is an in-process receipt view cache. Construct one per service
// instance and inject it; there is no package-level singleton. All methods
// are safe for concurrent use and never return errors.
type Store struct {
	mu       sync.RWMutex
	entries  map[string]*Entry
	previews map[string]*PreviewEntry

	now func() time.Time
}

// NewStore creates an empty view cache.
func NewStore() *Store {
	return &Store{
		entries:  make(map[string]*Entry),
		previews: make(map[string]*PreviewEntry),
		now:      time.Now,
	}
}

// CanonicalKey normalizes a receipt identifier to its cache key. Identifiers
// arrive both as numbers (database rows) and as strings (route parameters);
// both representations of the same identifier must address the same entry,
// so any string that parses as a finite number collapses to its canonical
// numeric rendering ("042" and "42.0" both key as "42"). Anything else keys
// as the literal string.
func CanonicalKey(id string) string {
	id = strings.TrimSpace(id)
	f, err := strconv.ParseFloat(id, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return id
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// KeyFromID is the numeric-path equivalent of CanonicalKey.
func KeyFromID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// PrimePartial stores an abbreviated entry observed in a list row. It is a
// best-effort optimization: a row without an identifier is silently ignored,
// and an existing full entry is never replaced by a partial one.
func (s *Store) PrimePartial(row *model.Receipt) {
	if row == nil || row.ID == 0 {
		return
	}
	key := KeyFromID(row.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.entries[key]; ok && !existing.Partial {
		return
	}
	s.entries[key] = &Entry{
		Receipt:    *row,
		Partial:    true,
		CapturedAt: s.now(),
	}
}

// SetFull stores a complete receipt record, unconditionally replacing any
// existing entry for the same identifier.
func (s *Store) SetFull(id string, receipt model.Receipt) {
	key := CanonicalKey(id)
	if key == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = &Entry{
		Receipt:    receipt,
		Partial:    false,
		CapturedAt: s.now(),
	}
}

// SetPreview stores a resolved thumbnail source, unconditionally replacing
// any existing preview for the same identifier.
func (s *Store) SetPreview(id string, src string) {
	key := CanonicalKey(id)
	if key == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.previews[key] = &PreviewEntry{
		Src:        src,
		CapturedAt: s.now(),
	}
}

// Get returns the entry for the identifier, probing with either the numeric
// or the string representation.
func (s *Store) Get(id string) (*Entry, bool) {
	key := CanonicalKey(id)

	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	return e, ok
}

// GetPreview returns the cached thumbnail source for the identifier.
func (s *Store) GetPreview(id string) (*PreviewEntry, bool) {
	key := CanonicalKey(id)

	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.previews[key]
	return p, ok
}

// Fresh reports whether an entry may be served without refetching. A nil
// entry is never fresh. An entry in a terminal status is always fresh; once
// the pipeline finishes, its output does not change. Anything else is fresh
// only within FreshFor of capture, after which the caller must refetch (the
// status event stream keeps active entries current between refetches).
func (s *Store) Fresh(e *Entry) bool {
	if e == nil {
		return false
	}
	status := strings.ToLower(string(e.Receipt.Status))
	if _, terminal := terminalStatuses[status]; terminal {
		return true
	}
	return s.now().Sub(e.CapturedAt) < FreshFor
}

// Invalidate drops the entry and preview for the identifier. Driven by the
// status event stream when a backend correction lands, so even a
// terminal-status entry can be forced to refetch.
func (s *Store) Invalidate(id string) {
	key := CanonicalKey(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	delete(s.previews, key)
}

// Len returns the number of receipt entries currently cached.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
