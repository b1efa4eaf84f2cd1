package monthcache

import (
	"context"
	"sync"
	"time"

	"github.com/alyoshka-app/alyoshka/internal/domain/almanac"
)

type cachedView struct {
	view      almanac.CalendarView
	expiresAt time.Time
}

// MemoryStore keeps resolved months in process memory. Entries are
// write-once: a later Put for a live key is a no-op.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]cachedView
	ttl     time.Duration
}

// NewMemoryStore constructs a cache backed by process memory. A zero TTL
// keeps entries for the process lifetime.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]cachedView),
		ttl:     ttl,
	}
}

// Get implements almanac.MonthCache.
func (s *MemoryStore) Get(_ context.Context, month string) (almanac.CalendarView, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[month]
	s.mu.RUnlock()
	if !ok {
		return almanac.CalendarView{}, false, nil
	}
	if hasExpired(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, month)
		s.mu.Unlock()
		return almanac.CalendarView{}, false, nil
	}
	return entry.view, true, nil
}

// Put implements almanac.MonthCache.
func (s *MemoryStore) Put(_ context.Context, month string, view almanac.CalendarView) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.entries[month]; ok && !hasExpired(existing.expiresAt) {
		return nil
	}
	exp := time.Time{}
	if s.ttl > 0 {
		exp = time.Now().Add(s.ttl)
	}
	s.entries[month] = cachedView{view: view, expiresAt: exp}
	return nil
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ almanac.MonthCache = (*MemoryStore)(nil)
