package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Tiliavir/hours-tracker/internal/model"
	"github.com/Tiliavir/hours-tracker/internal/storage"
)

// ErrPersist wraps a failed write-through. The in-memory change that
// triggered the write is kept.
var ErrPersist = errors.New("persisting entries")

// Store is the ordered in-memory entry collection. Every mutation writes
// the full collection through to its Persistence before returning.
//
// Store is not safe for concurrent use; one session owns it.
type Store struct {
	p       storage.Persistence
	entries []model.TimeEntry
	now     func() time.Time
	logger  *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock sets the clock used to assign timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger for persistence diagnostics.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) { s.logger = l }
}

// NewStore creates an empty Store backed by p. Call Load to read existing data.
func NewStore(p storage.Persistence, opts ...StoreOption) *Store {
	s := &Store{
		p:       p,
		entries: []model.TimeEntry{},
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory collection with the persisted one. Missing
// data is an empty collection. On a read error the store is left empty and
// usable, and the error is returned for reporting.
func (s *Store) Load(ctx context.Context) error {
	entries, err := s.p.Load(ctx)
	if err != nil {
		s.entries = []model.TimeEntry{}
		s.logger.Warn("loading entries failed, starting empty", slog.Any("error", err))
		return fmt.Errorf("loading entries: %w", err)
	}
	s.entries = entries
	s.logger.Debug("entries loaded", slog.Int("count", len(entries)))
	return nil
}

// Create appends a new entry logged against date and writes through.
// Callers validate time and comment first (see ValidateForm).
func (s *Store) Create(ctx context.Context, timeExpr, comment, ticketRef, date string) (model.TimeEntry, error) {
	e := model.TimeEntry{
		Time:      timeExpr,
		Comment:   comment,
		TicketRef: ticketRef,
		Timestamp: s.nextTimestamp(),
		Date:      date,
	}
	s.entries = append(s.entries, e)
	return e, s.save(ctx, "create", e.Timestamp)
}

// nextTimestamp returns the clock in Unix milliseconds, bumped past the
// largest timestamp already present so identities never collide.
func (s *Store) nextTimestamp() int64 {
	ts := s.now().UnixMilli()
	for _, e := range s.entries {
		if e.Timestamp >= ts {
			ts = e.Timestamp + 1
		}
	}
	return ts
}

// Update replaces the mutable fields of the entry with the given timestamp.
// Timestamp and Date are preserved. It reports false if no entry matches;
// the collection is written through either way.
func (s *Store) Update(ctx context.Context, timestamp int64, timeExpr, comment, ticketRef string) (bool, error) {
	found := false
	for i := range s.entries {
		if s.entries[i].Timestamp != timestamp {
			continue
		}
		s.entries[i].Time = timeExpr
		s.entries[i].Comment = comment
		s.entries[i].TicketRef = ticketRef
		found = true
	}
	if !found {
		s.logger.Debug("update: no entry", slog.Int64("timestamp", timestamp))
	}
	return found, s.save(ctx, "update", timestamp)
}

// Delete removes every entry with the given timestamp. It reports false,
// leaving the collection unchanged, if none matched; the collection is
// written through either way. Confirmation is the caller's responsibility.
func (s *Store) Delete(ctx context.Context, timestamp int64) (bool, error) {
	kept := make([]model.TimeEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.Timestamp != timestamp {
			kept = append(kept, e)
		}
	}
	removed := len(kept) < len(s.entries)
	if removed {
		s.entries = kept
	} else {
		s.logger.Debug("delete: no entry", slog.Int64("timestamp", timestamp))
	}
	return removed, s.save(ctx, "delete", timestamp)
}

// Get returns the first entry with the given timestamp.
func (s *Store) Get(timestamp int64) (model.TimeEntry, bool) {
	for _, e := range s.entries {
		if e.Timestamp == timestamp {
			return e, true
		}
	}
	return model.TimeEntry{}, false
}

// All returns a copy of every entry in insertion order.
func (s *Store) All() []model.TimeEntry {
	out := make([]model.TimeEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// ByDate returns the entries logged against date in insertion order.
func (s *Store) ByDate(date string) []model.TimeEntry {
	return filterByDate(s.entries, date)
}

// TotalHours sums the parsed durations of the entries on date.
func (s *Store) TotalHours(date string) float64 {
	return TotalHours(s.entries, date)
}

// DistinctDates returns every date with at least one entry, newest first.
func (s *Store) DistinctDates() []string {
	return DistinctDates(s.entries)
}

func (s *Store) save(ctx context.Context, op string, timestamp int64) error {
	if err := s.p.Save(ctx, s.entries); err != nil {
		s.logger.Warn("write-through failed; change kept in memory only",
			slog.String("op", op),
			slog.Int64("timestamp", timestamp),
			slog.Any("error", err),
		)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	s.logger.Debug("entries saved", slog.String("op", op), slog.Int("count", len(s.entries)))
	return nil
}
