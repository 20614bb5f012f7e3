// Package store owns the user's document: it loads and migrates it from a
// persistence handle, applies changes, merges imports and writes it back.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"shiftbook/internal/core"
	"shiftbook/internal/importer"
	"shiftbook/internal/log"
	"shiftbook/internal/notify"
	"shiftbook/internal/storage"
)

// DefaultKey is the storage key the document lives under.
const DefaultKey = "waiterData"

type Store struct {
	mu         sync.Mutex
	kv         storage.KV
	key        string
	backend    string
	notifier   notify.Notifier
	logger     *log.Logger
	structured *log.StructuredLogger
	norm       Normalizer
	doc        core.Document
	dirty      bool
	closed     bool
}

type Option func(*Store)

func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

func WithNotifier(n notify.Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithCalendar sets the clock, zone and day-label layout used for new data.
func WithCalendar(cal core.Calendar) Option {
	return func(s *Store) { s.norm = NewNormalizer(cal) }
}

// WithBackendName labels log lines with the kind of persistence handle.
func WithBackendName(name string) Option {
	return func(s *Store) { s.backend = name }
}

// Open builds a store on kv and loads the persisted document.
func Open(ctx context.Context, kv storage.KV, opts ...Option) (*Store, error) {
	if kv == nil {
		return nil, errors.New("storage handle is nil")
	}
	s := &Store{
		kv:       kv,
		key:      DefaultKey,
		backend:  fmt.Sprintf("%T", kv),
		notifier: notify.Discard,
		logger:   log.Discard(),
		norm:     NewNormalizer(core.Calendar{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if strings.TrimSpace(s.key) == "" {
		return nil, errors.New("storage key is empty")
	}
	s.logger = s.logger.WithComponent(log.ComponentStore)
	s.structured = log.NewStructuredLogger(s.logger)

	s.Load(ctx)
	return s, nil
}

// Load reads the persisted document, migrating it when its version is not
// current, and makes it the owned document. It never fails: missing or
// unreadable data yields an empty document.
func (s *Store) Load(ctx context.Context) core.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty = false
	s.doc = s.loadLocked(ctx)
	return s.doc.Clone()
}

func (s *Store) loadLocked(ctx context.Context) core.Document {
	data, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.DebugContext(ctx, "No stored document, starting empty", log.FieldKey, s.key)
		return NewDefault()
	}
	if err == nil {
		var v any
		v, err = core.DecodeLoose(data)
		if err == nil && v == nil {
			err = errors.New("document is null")
		}
		if err == nil {
			return s.fromStored(ctx, v)
		}
	}

	err = fmt.Errorf("%w: %w", ErrLoadCorrupt, err)
	s.structured.LogError(ctx, "Failed to load document", err, log.ComponentStore, log.OpLoad,
		log.NewFields().WithErrorType(log.ErrorTypeCorrupt).WithStorage(s.backend, s.key, len(data)))
	s.notify(ctx, notify.KindLoadCorrupt, notify.Error, "failed to load data")
	return NewDefault()
}

func (s *Store) fromStored(ctx context.Context, v any) core.Document {
	shape := Classify(v)
	if shape == ShapeCurrent {
		doc := core.DocumentFromLoose(v.(map[string]any))
		doc.Recalculate()
		s.logger.DebugContext(ctx, "Document loaded",
			log.FieldRecords, len(doc.Records),
			log.FieldGoals, len(doc.Goals),
			log.FieldPayouts, len(doc.Payouts))
		return doc
	}

	from := ""
	if obj, ok := v.(map[string]any); ok {
		from = core.Text(obj["version"])
	}
	doc := Migrator{Normalizer: s.norm}.Migrate(v)
	s.logger.InfoContext(ctx, "Document migrated",
		log.FieldOperation, log.OpMigrate,
		log.FieldFromVersion, from,
		log.FieldVersion, doc.Version,
		log.FieldShape, shape.String(),
		log.FieldRecords, len(doc.Records))

	s.doc = doc
	s.dirty = true
	s.saveLocked(ctx)
	s.notify(ctx, notify.KindMigrated, notify.Success, "data upgraded to the new version")
	return doc
}

// Snapshot returns a copy of the owned document.
func (s *Store) Snapshot() core.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Save writes the owned document. A failure is reported to the notifier and
// leaves the previously stored bytes in place.
func (s *Store) Save(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	return s.saveLocked(ctx)
}

// Flush writes the document if it changed since it was last loaded or
// saved. A document that was only read is left alone, so a corrupt value
// in storage survives a read-only session.
func (s *Store) Flush(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	return s.flushLocked(ctx)
}

func (s *Store) flushLocked(ctx context.Context) bool {
	if !s.dirty {
		return true
	}
	return s.saveLocked(ctx)
}

func (s *Store) saveLocked(ctx context.Context) bool {
	data, err := json.Marshal(s.doc)
	if err == nil {
		err = s.kv.Set(ctx, s.key, data)
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrSaveFailed, err)
		s.structured.LogError(ctx, "Failed to save document", err, log.ComponentStore, log.OpSave,
			log.NewFields().WithErrorType(log.ErrorTypeStorage).WithStorage(s.backend, s.key, len(data)))
		s.notify(ctx, notify.KindSaveFailed, notify.Error, "failed to save data")
		return false
	}
	s.dirty = false
	s.structured.LogSaved(ctx, s.backend, s.key, len(data))
	return true
}

// Close flushes pending changes and releases the persistence handle.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	saved := s.flushLocked(ctx)
	s.closed = true

	if err := storage.Close(s.kv); err != nil {
		return fmt.Errorf("close storage: %w", err)
	}
	if !saved {
		return ErrSaveFailed
	}
	return nil
}

// commit swaps in next and persists it. When the write fails the previous
// document is restored.
func (s *Store) commit(ctx context.Context, next core.Document) error {
	if s.closed {
		return ErrClosed
	}
	prev, prevDirty := s.doc, s.dirty
	next.Recalculate()
	s.doc, s.dirty = next, true
	if !s.saveLocked(ctx) {
		s.doc, s.dirty = prev, prevDirty
		return ErrSaveFailed
	}
	return nil
}

// Clear replaces everything with an empty document.
func (s *Store) Clear(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commit(ctx, NewDefault()); err != nil {
		return false
	}
	s.logger.InfoContext(ctx, "All data cleared", log.FieldOperation, log.OpClear)
	s.notify(ctx, notify.KindCleared, notify.Success, "all data cleared")
	return true
}

// Import parses a file, validates it and merges it into the document. On
// any error the document is left as it was.
func (s *Store) Import(ctx context.Context, r io.Reader, filename string) error {
	c, err := importer.Parse(r, filename)
	if err != nil {
		s.importFailed(ctx, filename, err)
		return err
	}
	format, _ := importer.FormatOf(filename)
	return s.apply(ctx, c, filename, string(format))
}

// ImportRows merges rows fetched from a spreadsheet. The first row is a
// header.
func (s *Store) ImportRows(ctx context.Context, source string, rows [][]string) error {
	return s.apply(ctx, importer.FromRows(rows), source, "sheet")
}

func (s *Store) apply(ctx context.Context, c importer.Candidate, source, format string) error {
	if !IsValid(c) {
		s.logger.WarnContext(ctx, "Import rejected",
			log.FieldOperation, log.OpValidate,
			log.FieldFile, source,
			log.FieldFormat, format)
		s.notify(ctx, notify.KindInvalidImport, notify.Error, "invalid data format")
		return ErrInvalidImportShape
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	incoming := s.norm.fromCandidate(c)
	merged := Merge(s.doc, incoming)
	added := len(merged.Records) - len(s.doc.Records)
	if err := s.commit(ctx, merged); err != nil {
		s.importFailed(ctx, source, err)
		return err
	}

	s.structured.LogImported(ctx, source, format, added)
	s.notify(ctx, notify.KindImportSucceeded, notify.Success, "data imported successfully")
	return nil
}

func (s *Store) importFailed(ctx context.Context, source string, err error) {
	errorType := log.ErrorTypeFormat
	message := "failed to import data"
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		message = "unsupported file format"
	case errors.Is(err, ErrReadFailed):
		errorType = log.ErrorTypeIO
		message = "failed to read file"
	case errors.Is(err, ErrSaveFailed):
		errorType = log.ErrorTypeStorage
	}
	s.structured.LogError(ctx, "Import failed", err, log.ComponentStore, log.OpImport,
		log.NewFields().WithErrorType(errorType).WithImport(source, "", 0))
	s.notify(ctx, notify.KindImportFailed, notify.Error, message)
}

// AddShift records a shift worked now.
func (s *Store) AddShift(ctx context.Context, in core.ShiftInput) (core.Record, error) {
	if err := in.Validate(); err != nil {
		return core.Record{}, fmt.Errorf("add shift: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := in.Record(s.norm.nextID(), s.norm.Calendar)
	next := s.doc.Clone()
	next.Records = append(next.Records, rec)
	if err := s.commit(ctx, next); err != nil {
		return core.Record{}, err
	}
	return rec, nil
}

// AddGoal creates a savings goal. The name is trimmed and must not be empty;
// the amount must be positive.
func (s *Store) AddGoal(ctx context.Context, name string, amount float64) (core.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := core.Goal{
		Name:      strings.TrimSpace(name),
		Amount:    amount,
		CreatedAt: core.ISOTimestamp(s.norm.Calendar.Now()).String(),
	}
	if err := g.Validate(); err != nil {
		return core.Goal{}, fmt.Errorf("%w: %w", ErrInvalidGoal, err)
	}
	g.ID = s.norm.nextID()

	next := s.doc.Clone()
	next.Goals = append(next.Goals, g)
	if err := s.commit(ctx, next); err != nil {
		return core.Goal{}, err
	}
	return g, nil
}

// AddPayout records money received today.
func (s *Store) AddPayout(ctx context.Context, amount float64) (core.Payout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := core.Payout{Date: s.norm.Calendar.Today(), Amount: amount}
	if err := p.Validate(); err != nil {
		return core.Payout{}, fmt.Errorf("%w: %w", ErrInvalidPayout, err)
	}
	p.ID = s.norm.nextID()

	next := s.doc.Clone()
	next.Payouts = append(next.Payouts, p)
	if err := s.commit(ctx, next); err != nil {
		return core.Payout{}, err
	}
	return p, nil
}

func (s *Store) UpdateProfile(ctx context.Context, p core.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Clone()
	next.Profile = p
	return s.commit(ctx, next)
}

// Calendar returns the calendar used for new data.
func (s *Store) Calendar() core.Calendar {
	return s.norm.Calendar
}

func (s *Store) notify(ctx context.Context, kind notify.Kind, sev notify.Severity, msg string) {
	s.notifier.Notify(ctx, notify.Notification{Kind: kind, Severity: sev, Message: msg})
}
