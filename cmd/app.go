package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/Tiliavir/hours-tracker/internal/config"
	"github.com/Tiliavir/hours-tracker/internal/storage"
	"github.com/Tiliavir/hours-tracker/internal/tracker"
)

// openStore opens the configured backend and loads the entry collection.
// The returned close function releases the backend.
func openStore(ctx context.Context) (*tracker.Store, func(), error) {
	dir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, nil, storageError(err)
	}

	var kv storage.KV
	closeFn := func() {}
	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := storage.OpenSQLite(ctx, filepath.Join(dir, "hours.db"))
		if err != nil {
			return nil, nil, storageError(err)
		}
		kv = storage.NewSQLiteKV(db)
		closeFn = func() { db.Close() }
	default:
		kv = storage.NewFileKV(dir)
	}

	store := tracker.NewStore(storage.NewJSONStore(kv), tracker.WithClock(now), tracker.WithLogger(slog.Default()))
	if err := store.Load(ctx); err != nil {
		closeFn()
		return nil, nil, storageError(err)
	}
	return store, closeFn, nil
}

// interactive reports whether stdin is a terminal, so prompts can be shown.
var interactive = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
