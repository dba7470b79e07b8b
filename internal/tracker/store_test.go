package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/hours-tracker/internal/model"
	"github.com/Tiliavir/hours-tracker/internal/storage"
)

// fixedClock always returns the same instant so timestamp bumping is exercised.
func fixedClock() func() time.Time {
	t := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func newTestStore(t *testing.T) (*Store, *storage.MemoryKV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	s := NewStore(storage.NewJSONStore(kv), WithClock(fixedClock()))
	require.NoError(t, s.Load(context.Background()))
	return s, kv
}

func TestStore_LoadEmpty(t *testing.T) {
	s, kv := newTestStore(t)
	assert.Empty(t, s.All())
	assert.Equal(t, 0, kv.Puts)
}

func TestStore_LoadExisting(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	p := storage.NewJSONStore(kv)
	existing := []model.TimeEntry{{Time: "1h", Comment: "a", Timestamp: 1, Date: "2024-01-01"}}
	require.NoError(t, p.Save(ctx, existing))

	s := NewStore(p)
	require.NoError(t, s.Load(ctx))
	assert.Equal(t, existing, s.All())
}

func TestStore_LoadCorruptStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Put(ctx, storage.EntriesKey, []byte("{")))

	s := NewStore(storage.NewJSONStore(kv), WithClock(fixedClock()))
	err := s.Load(ctx)
	assert.ErrorIs(t, err, storage.ErrCorrupt)
	assert.Empty(t, s.All())

	// The store stays usable.
	_, err = s.Create(ctx, "1h", "after", "", "2024-01-02")
	require.NoError(t, err)
	assert.Len(t, s.All(), 1)
}

func TestStore_CreateRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	created, err := s.Create(ctx, "1h 45m", "Code review", "PROJ-42", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 1, kv.Puts)

	// Reload from persistence to make sure the write went through.
	reloaded := NewStore(storage.NewJSONStore(kv))
	require.NoError(t, reloaded.Load(ctx))
	got, ok := reloaded.Get(created.Timestamp)
	require.True(t, ok)
	assert.Equal(t, "1h 45m", got.Time)
	assert.Equal(t, "Code review", got.Comment)
	assert.Equal(t, "PROJ-42", got.TicketRef)
	assert.Equal(t, "2024-01-01", got.Date)
	assert.Equal(t, fixedClock()().UnixMilli(), got.Timestamp)
}

func TestStore_CreateUniqueTimestamps(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	seen := map[int64]bool{}
	for i := 0; i < 5; i++ {
		e, err := s.Create(ctx, "1h", "work", "", "2024-01-02")
		require.NoError(t, err)
		assert.False(t, seen[e.Timestamp], "duplicate timestamp %d", e.Timestamp)
		seen[e.Timestamp] = true
	}
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	e, err := s.Create(ctx, "1h", "draft", "", "2024-01-01")
	require.NoError(t, err)

	ok, err := s.Update(ctx, e.Timestamp, "2h", "final", "T-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, kv.Puts)

	got, _ := s.Get(e.Timestamp)
	assert.Equal(t, model.TimeEntry{Time: "2h", Comment: "final", TicketRef: "T-1", Timestamp: e.Timestamp, Date: "2024-01-01"}, got)
}

func TestStore_UpdateIdempotent(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	e, err := s.Create(ctx, "1h", "draft", "", "2024-01-01")
	require.NoError(t, err)

	_, err = s.Update(ctx, e.Timestamp, "2h", "final", "T-1")
	require.NoError(t, err)
	once := s.All()

	_, err = s.Update(ctx, e.Timestamp, "2h", "final", "T-1")
	require.NoError(t, err)
	assert.Equal(t, once, s.All())
}

func TestStore_UpdateMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	_, err := s.Create(ctx, "1h", "a", "", "2024-01-01")
	require.NoError(t, err)
	before := s.All()

	ok, err := s.Update(ctx, 12345, "2h", "b", "")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, s.All())
	assert.Equal(t, 2, kv.Puts, "update writes through even when nothing matched")
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	a, err := s.Create(ctx, "1h", "a", "", "2024-01-01")
	require.NoError(t, err)
	b, err := s.Create(ctx, "2h", "b", "", "2024-01-01")
	require.NoError(t, err)

	ok, err := s.Delete(ctx, a.Timestamp)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []model.TimeEntry{b}, s.All())
	assert.Equal(t, 3, kv.Puts)
}

func TestStore_DeleteAllMatching(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	p := storage.NewJSONStore(kv)
	require.NoError(t, p.Save(ctx, []model.TimeEntry{
		{Time: "1h", Comment: "a", Timestamp: 7, Date: "2024-01-01"},
		{Time: "1h", Comment: "b", Timestamp: 8, Date: "2024-01-01"},
		{Time: "1h", Comment: "dup", Timestamp: 7, Date: "2024-01-02"},
	}))
	s := NewStore(p)
	require.NoError(t, s.Load(ctx))

	ok, err := s.Delete(ctx, 7)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, s.All(), 1)
	assert.Equal(t, "b", s.All()[0].Comment)
}

func TestStore_DeleteMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	_, err := s.Create(ctx, "1h", "a", "", "2024-01-01")
	require.NoError(t, err)
	before := s.All()

	ok, err := s.Delete(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, s.All())
	assert.Equal(t, 2, kv.Puts, "delete writes through even when nothing matched")
}

func TestStore_WriteFailureKeepsMemory(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)
	kv.FailPut = errors.New("read-only filesystem")

	e, err := s.Create(ctx, "1h", "offline", "", "2024-01-01")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersist)

	got, ok := s.Get(e.Timestamp)
	require.True(t, ok)
	assert.Equal(t, "offline", got.Comment)
}

func TestStore_ByDateKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	for _, c := range []struct{ comment, date string }{
		{"first", "2024-01-01"},
		{"other", "2024-01-02"},
		{"second", "2024-01-01"},
	} {
		_, err := s.Create(ctx, "1h", c.comment, "", c.date)
		require.NoError(t, err)
	}

	got := s.ByDate("2024-01-01")
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Comment)
	assert.Equal(t, "second", got[1].Comment)
	assert.Empty(t, s.ByDate("2023-12-31"))
}

func TestStore_AllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	_, err := s.Create(ctx, "1h", "a", "", "2024-01-01")
	require.NoError(t, err)

	all := s.All()
	all[0].Comment = "mutated"
	assert.Equal(t, "a", s.All()[0].Comment)
}
