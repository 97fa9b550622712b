// Package mock provides an in-memory record store for handler and service
// tests, with per-method error injection.
package mock

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yourhome24/expose/internal/store"
)

// Store is an in-memory store.Store implementation.
type Store struct {
	mu      sync.RWMutex
	records []store.Record
	clock   time.Time

	// Error injection
	InsertError error
	ListError   error
	DeleteError error
	PingError   error

	// Call counters
	InsertCalls int
	ListCalls   int
	DeleteCalls int
}

// New creates an empty mock store.
func New() *Store {
	return &Store{clock: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

// Add seeds a record directly, bypassing error injection and counters.
func (s *Store) Add(rec store.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = s.tick()
	}
	s.records = append(s.records, rec)
}

// tick advances the internal clock so seeded records get distinct,
// strictly increasing timestamps. Caller must hold the lock.
func (s *Store) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

func (s *Store) Insert(ctx context.Context, payload json.RawMessage, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.InsertCalls++
	if s.InsertError != nil {
		return "", s.InsertError
	}
	rec := store.Record{
		ID:        uuid.New().String(),
		CreatedAt: s.tick(),
		Payload:   payload,
		Text:      text,
	}
	s.records = append(s.records, rec)
	return rec.ID, nil
}

func (s *Store) ListRecent(ctx context.Context, limit int) ([]store.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ListCalls++
	if s.ListError != nil {
		return nil, s.ListError
	}
	sorted := make([]store.Record, len(s.records))
	copy(sorted, s.records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.DeleteCalls++
	if s.DeleteError != nil {
		return s.DeleteError
	}
	for i, rec := range s.records {
		if rec.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) Ping(ctx context.Context) error {
	return s.PingError
}

func (s *Store) Close() error {
	return nil
}
