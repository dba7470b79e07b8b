package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/hours-tracker/internal/model"
	"github.com/Tiliavir/hours-tracker/internal/storage"
)

func sampleEntries() []model.TimeEntry {
	return []model.TimeEntry{
		{Time: "1h 45m", Comment: "Review", TicketRef: "PROJ-1", Timestamp: 1700000000000, Date: "2024-01-01"},
		{Time: "30m", Comment: "Standup", Timestamp: 1700000000001, Date: "2024-01-02"},
	}
}

func TestJSONStore_LoadMissingKey(t *testing.T) {
	store := storage.NewJSONStore(storage.NewMemoryKV())

	entries, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestJSONStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	store := storage.NewJSONStore(kv)

	require.NoError(t, store.Save(ctx, sampleEntries()))
	assert.Equal(t, 1, kv.Puts)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleEntries(), loaded)
}

func TestJSONStore_WireFormat(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	raw := `[{"time":"2h","comment":"Legacy","ticketRef":"","timestamp":1699999999999,"date":"2023-11-14"}]`
	require.NoError(t, kv.Put(ctx, storage.EntriesKey, []byte(raw)))

	loaded, err := storage.NewJSONStore(kv).Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, model.TimeEntry{Time: "2h", Comment: "Legacy", Timestamp: 1699999999999, Date: "2023-11-14"}, loaded[0])
}

func TestJSONStore_SaveFailure(t *testing.T) {
	kv := storage.NewMemoryKV()
	kv.FailPut = errors.New("disk full")

	err := storage.NewJSONStore(kv).Save(context.Background(), sampleEntries())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestFileKV_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := storage.NewJSONStore(storage.NewFileKV(dir))

	require.NoError(t, store.Save(ctx, sampleEntries()))
	_, err := os.Stat(filepath.Join(dir, storage.EntriesKey+".json"))
	require.NoError(t, err)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleEntries(), loaded)

	// No temp file is left behind.
	_, err = os.Stat(filepath.Join(dir, storage.EntriesKey+".json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileKV_LoadMissingDir(t *testing.T) {
	store := storage.NewJSONStore(storage.NewFileKV(filepath.Join(t.TempDir(), "nope")))

	entries, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileKV_CorruptBackedUp(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, storage.EntriesKey+".json")
	require.NoError(t, os.WriteFile(path, []byte("{bad json"), 0o600))

	entries, err := storage.NewJSONStore(storage.NewFileKV(dir)).Load(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrCorrupt)
	assert.Empty(t, entries)

	_, statErr := os.Stat(path + ".corrupt")
	assert.NoError(t, statErr, "expected backup file to exist after corrupt JSON")
}

func TestSQLiteKV_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := storage.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := storage.NewJSONStore(storage.NewSQLiteKV(db))

	entries, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, store.Save(ctx, sampleEntries()))
	require.NoError(t, store.Save(ctx, sampleEntries()[:1]))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleEntries()[:1], loaded)
}

func TestSQLiteKV_CorruptBackedUp(t *testing.T) {
	ctx := context.Background()
	db, err := storage.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	kv := storage.NewSQLiteKV(db)
	require.NoError(t, kv.Put(ctx, storage.EntriesKey, []byte("not json")))

	_, err = storage.NewJSONStore(kv).Load(ctx)
	assert.ErrorIs(t, err, storage.ErrCorrupt)

	_, found, err := kv.Get(ctx, storage.EntriesKey)
	require.NoError(t, err)
	assert.False(t, found)

	backup, found, err := kv.Get(ctx, storage.EntriesKey+".corrupt")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "not json", string(backup))
}

func TestOpenSQLite_FileReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sub", "hours.db")

	db, err := storage.OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, storage.NewJSONStore(storage.NewSQLiteKV(db)).Save(ctx, sampleEntries()))
	require.NoError(t, db.Close())

	// Migrations are idempotent on reopen.
	db, err = storage.OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	loaded, err := storage.NewJSONStore(storage.NewSQLiteKV(db)).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleEntries(), loaded)
}
