package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sandeepkv93/dayboard/internal/logging"
	"github.com/sandeepkv93/dayboard/internal/model"
)

var (
	ErrNotFound        = errors.New("store: not found")
	ErrAmbiguous       = errors.New("store: ambiguous id")
	ErrIO              = errors.New("store: io")
	ErrInvalidRecord   = errors.New("store: invalid record")
	ErrInvalidField    = model.ErrInvalidField
	ErrInvalidProgress = model.ErrInvalidProgress
)

type Options struct {
	Path   string
	Format Format
	Logger *zap.Logger
	// Now and NewID default to time.Now and uuid.NewString.
	Now   func() time.Time
	NewID func() string
}

// Store holds the records of one backing location in insertion order. It is
// not safe for concurrent use.
type Store struct {
	path    string
	format  Format
	backend Backend
	log     *zap.Logger
	now     func() time.Time
	newID   func() string

	records []model.Record
	loadErr error
}

func Open(opts Options) (*Store, error) {
	backend, err := NewBackend(opts.Format, opts.Path)
	if err != nil {
		return nil, err
	}
	return New(backend, opts), nil
}

// New wraps an existing backend. Path and Format in opts are informational.
func New(backend Backend, opts Options) *Store {
	s := &Store{
		path:    opts.Path,
		format:  opts.Format,
		backend: backend,
		log:     logging.OrNop(opts.Logger),
		now:     opts.Now,
		newID:   opts.NewID,
	}
	if s.format == "" {
		s.format = FormatJSON
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

func (s *Store) Path() string   { return s.path }
func (s *Store) Format() Format { return s.format }

func (s *Store) Close() error {
	return s.backend.Close()
}

// Load replaces the in-memory set with the backing table. A missing,
// unreadable or malformed table yields an empty set; the cause is logged and
// kept in LoadErr.
func (s *Store) Load(ctx context.Context) RecordSet {
	records, err := s.backend.Read(ctx)
	if err == nil {
		err = uniqueIDs(records)
	}
	s.loadErr = err
	if err != nil {
		s.log.Warn("store load degraded to empty set",
			zap.String("path", s.path),
			zap.String("format", string(s.format)),
			zap.Error(err),
		)
		records = nil
	}
	s.records = records
	s.log.Debug("store loaded", zap.String("path", s.path), zap.Int("records", len(records)))
	return s.Snapshot()
}

func (s *Store) LoadErr() error { return s.loadErr }

// Snapshot returns the current in-memory set without touching the backend.
func (s *Store) Snapshot() RecordSet {
	return newRecordSet(s.records)
}

func (s *Store) Add(entry model.Entry) (model.Record, error) {
	if entry == nil {
		return model.Record{}, fmt.Errorf("%w: nil entry", ErrInvalidRecord)
	}
	entry = initialState(entry)
	if err := entry.Validate(); err != nil {
		return model.Record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	id := s.newID()
	for s.indexOf(id) >= 0 {
		id = s.newID()
	}
	rec := model.Record{
		ID:      id,
		Created: s.now().UTC().Round(0),
		Entry:   entry,
	}
	s.records = append(s.records, rec)
	s.log.Debug("record added", zap.String("id", rec.ID), zap.String("category", string(rec.Category())))
	return rec, nil
}

func (s *Store) Get(id string) (model.Record, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.records[idx], nil
}

// Resolve finds the single record whose id starts with prefix.
func (s *Store) Resolve(prefix string) (model.Record, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return model.Record{}, fmt.Errorf("%w: empty id", ErrNotFound)
	}
	var match *model.Record
	for i := range s.records {
		if s.records[i].ID == prefix {
			return s.records[i], nil
		}
		if strings.HasPrefix(s.records[i].ID, prefix) {
			if match != nil {
				return model.Record{}, fmt.Errorf("%w: %s", ErrAmbiguous, prefix)
			}
			match = &s.records[i]
		}
	}
	if match == nil {
		return model.Record{}, fmt.Errorf("%w: %s", ErrNotFound, prefix)
	}
	return *match, nil
}

// Update changes one field of one record. On error the record is unchanged.
func (s *Store) Update(id string, field model.Field, value any) (model.Record, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	next, err := s.records[idx].Set(field, value)
	if err != nil {
		if errors.Is(err, model.ErrInvalidValue) {
			return s.records[idx], fmt.Errorf("%w: %w", ErrInvalidField, err)
		}
		return s.records[idx], err
	}
	s.records[idx] = next
	s.log.Debug("record updated", zap.String("id", id), zap.String("field", string(field)))
	return next, nil
}

func (s *Store) Toggle(id string) (model.Record, error) {
	rec, err := s.Get(id)
	if err != nil {
		return model.Record{}, err
	}
	return s.Update(id, model.FieldDone, !rec.Done())
}

func (s *Store) Delete(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.records = append(s.records[:idx:idx], s.records[idx+1:]...)
	s.log.Debug("record deleted", zap.String("id", id))
	return nil
}

// DeleteCategory removes every record of c and reports how many went.
func (s *Store) DeleteCategory(c model.Category) int {
	kept := make([]model.Record, 0, len(s.records))
	for _, rec := range s.records {
		if rec.Category() != c {
			kept = append(kept, rec)
		}
	}
	removed := len(s.records) - len(kept)
	s.records = kept
	return removed
}

// Persist rewrites the whole backing table. The in-memory set is kept
// whether or not the write succeeds.
func (s *Store) Persist(ctx context.Context) error {
	if err := s.backend.Write(ctx, s.records); err != nil {
		s.log.Error("store persist failed", zap.String("path", s.path), zap.Error(err))
		return fmt.Errorf("%w: persist %s: %w", ErrIO, s.path, err)
	}
	s.log.Debug("store persisted", zap.String("path", s.path), zap.Int("records", len(s.records)))
	return nil
}

// List reads the records matching filter straight from the backing table,
// in insertion order. It does not change the in-memory set.
func (s *Store) List(ctx context.Context, filter RecordListFilter) ([]model.Record, error) {
	if l, ok := s.backend.(lister); ok {
		return l.List(ctx, filter)
	}
	records, err := s.backend.Read(ctx)
	if err == nil {
		err = uniqueIDs(records)
	}
	if err != nil {
		return nil, err
	}
	return filter.Apply(records), nil
}

func (s *Store) FilterByCategory(c model.Category) []model.Record {
	return s.Snapshot().Category(c)
}

func (s *Store) Aggregate(c model.Category, field model.Field) Summary {
	return Aggregate(s.FilterByCategory(c), c, field)
}

// uniqueIDs rejects a table that repeats an id, which only a hand-edited
// file can contain.
func uniqueIDs(records []model.Record) error {
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, dup := seen[rec.ID]; dup {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidRecord, rec.ID)
		}
		seen[rec.ID] = struct{}{}
	}
	return nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

// initialState resets completion on fresh items, clamps goal progress and
// cuts goal deadlines down to the date the layouts store.
func initialState(entry model.Entry) model.Entry {
	switch e := entry.(type) {
	case model.ChecklistItem:
		e.Done = false
		return e
	case model.ShoppingItem:
		e.Done = false
		return e
	case model.TaskItem:
		e.Done = false
		return e
	case model.Goal:
		if e.Target > 0 {
			e.Current = math.Min(math.Max(e.Current, 0), e.Target)
		}
		if e.Deadline != nil {
			d := model.DateOnly(*e.Deadline)
			e.Deadline = &d
		}
		return e
	default:
		return entry
	}
}
