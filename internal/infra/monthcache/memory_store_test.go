package monthcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alyoshka-app/alyoshka/internal/domain/almanac"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(0)
	view := almanac.CalendarView{MonthDocument: almanac.MonthDocument{Month: "2025-12"}}

	require.NoError(t, store.Put(context.Background(), "2025-12", view))

	got, ok, err := store.Get(context.Background(), "2025-12")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, view, got)
}

func TestMemoryStoreMiss(t *testing.T) {
	store := NewMemoryStore(0)

	_, ok, err := store.Get(context.Background(), "2025-12")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStorePutIsWriteOnce(t *testing.T) {
	store := NewMemoryStore(0)
	first := almanac.CalendarView{MonthDocument: almanac.MonthDocument{Month: "2025-12", Meta: almanac.MonthMeta{Notes: "первая"}}}
	second := almanac.CalendarView{MonthDocument: almanac.MonthDocument{Month: "2025-12", Meta: almanac.MonthMeta{Notes: "вторая"}}}

	require.NoError(t, store.Put(context.Background(), "2025-12", first))
	require.NoError(t, store.Put(context.Background(), "2025-12", second))

	got, ok, err := store.Get(context.Background(), "2025-12")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, first, got)
}

func TestMemoryStoreExpiredEntryCanBeReplaced(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	first := almanac.CalendarView{MonthDocument: almanac.MonthDocument{Month: "2025-12", Meta: almanac.MonthMeta{Notes: "первая"}}}
	second := almanac.CalendarView{MonthDocument: almanac.MonthDocument{Month: "2025-12", Meta: almanac.MonthMeta{Notes: "вторая"}}}

	require.NoError(t, store.Put(context.Background(), "2025-12", first))
	time.Sleep(20 * time.Millisecond)

	_, ok, err := store.Get(context.Background(), "2025-12")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Put(context.Background(), "2025-12", second))
	got, ok, err := store.Get(context.Background(), "2025-12")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, second, got)
}
