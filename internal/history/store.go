// Package history keeps the bounded, persisted log of past plan calculations.
package history

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/theirongolddev/dreamcalc/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// StorageKey names the persisted record holding the whole log.
	StorageKey = "dreamcalc_history"
	// MaxItems caps the log; older entries are dropped from the tail.
	MaxItems = 10
	// DefaultDreamName is recorded when a calculation has no goal name.
	DefaultDreamName = "My goal"
)

// Storage is the persistence sink and source for the log.
type Storage interface {
	GetItem(key string) ([]byte, bool, error)
	SetItem(key string, value []byte) error
	RemoveItem(key string) error
}

// Store is the in-memory history log mirrored to Storage on every mutation.
// Storage failures are logged and never returned; the log keeps working in memory.
type Store struct {
	storage Storage
	log     zerolog.Logger
	now     func() time.Time
	newID   func() string

	mu      sync.Mutex
	records []model.CalculationRecord
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock sets the timestamp source for new records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc sets the record id generator.
func WithIDFunc(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

// New returns a Store loaded from storage.
func New(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		log:     zerolog.Nop(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.records = s.load()
	s.log.Debug().Int("records", len(s.records)).Msg("history loaded")
	return s
}

func (s *Store) load() []model.CalculationRecord {
	data, ok, err := s.storage.GetItem(StorageKey)
	if err != nil {
		s.log.Error().Err(err).Msg("loading history")
		return nil
	}
	if !ok {
		return nil
	}

	var records []model.CalculationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Error().Err(err).Msg("decoding stored history")
		return nil
	}
	if len(records) > MaxItems {
		records = records[:MaxItems]
	}
	return records
}

// persist writes the full log. Callers hold s.mu.
func (s *Store) persist() {
	records := s.records
	if records == nil {
		records = []model.CalculationRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		s.log.Error().Err(err).Msg("encoding history")
		return
	}
	if err := s.storage.SetItem(StorageKey, data); err != nil {
		s.log.Error().Err(err).Msg("saving history")
	}
}

// Record adds a calculation at the head of the log and persists it.
func (s *Store) Record(dreamName string, in model.PlanInput, result model.PlanResult) model.CalculationRecord {
	name := strings.TrimSpace(dreamName)
	if name == "" {
		name = DefaultDreamName
	}

	rec := model.CalculationRecord{
		ID:        s.newID(),
		Timestamp: s.now().UTC(),
		DreamName: name,
		Input:     in,
		Result:    model.Summarize(result),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]model.CalculationRecord{rec}, s.records...)
	if len(s.records) > MaxItems {
		s.records = s.records[:MaxItems]
	}
	s.persist()

	s.log.Debug().Str("id", rec.ID).Str("goal", rec.DreamName).Msg("calculation saved")
	return rec
}

// List returns the log newest first. The slice is a copy.
func (s *Store) List() []model.CalculationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.CalculationRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (model.CalculationRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return model.CalculationRecord{}, false
}

// Delete removes the record with the given id, if any, and persists the log.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]model.CalculationRecord, 0, len(s.records))
	for _, r := range s.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.records = kept
	s.persist()

	s.log.Debug().Str("id", id).Msg("calculation removed")
}

// Clear empties the log and removes the persisted copy.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	if err := s.storage.RemoveItem(StorageKey); err != nil {
		s.log.Error().Err(err).Msg("removing stored history")
	}

	s.log.Debug().Msg("history cleared")
}
