package monthcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/alyoshka-app/alyoshka/internal/domain/almanac"
)

// ValkeyStore shares resolved months between instances through a
// Valkey-compatible database. Writes use SET NX so the first resolution of a
// month wins.
type ValkeyStore struct {
	client valkey.Client
	prefix string
	ttl    time.Duration
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string, ttl time.Duration) *ValkeyStore {
	if prefix == "" {
		prefix = "almanac"
	}
	return &ValkeyStore{client: client, prefix: prefix, ttl: ttl}
}

// Get implements almanac.MonthCache.
func (s *ValkeyStore) Get(ctx context.Context, month string) (almanac.CalendarView, bool, error) {
	cmd := s.client.B().Get().Key(s.monthKey(month)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return almanac.CalendarView{}, false, nil
		}
		return almanac.CalendarView{}, false, err
	}
	var view almanac.CalendarView
	if err := json.Unmarshal([]byte(payload), &view); err != nil {
		return almanac.CalendarView{}, false, err
	}
	return view, true, nil
}

// Put implements almanac.MonthCache.
func (s *ValkeyStore) Put(ctx context.Context, month string, view almanac.CalendarView) error {
	payload, err := json.Marshal(view)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.monthKey(month)).Value(string(payload)).Nx()
	var cmd valkey.Completed
	if s.ttl > 0 {
		ttl := s.ttl
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	if err := s.client.Do(ctx, cmd).Error(); err != nil && !valkey.IsValkeyNil(err) {
		return err
	}
	return nil
}

func (s *ValkeyStore) monthKey(month string) string {
	return s.prefix + ":month:" + month
}

var _ almanac.MonthCache = (*ValkeyStore)(nil)
