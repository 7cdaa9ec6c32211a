package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tollscope/tollscope/internal/toll"
)

// Dataset is one uploaded statement's normalized snapshot. Records are
// never mutated after upload; every report is recomputed from this
// immutable set, so concurrent report requests need no coordination beyond
// the map lock.
type Dataset struct {
	ID         uuid.UUID     `json:"id"`
	FileName   string        `json:"file_name"`
	Format     toll.Format   `json:"format"`
	UploadedAt time.Time     `json:"uploaded_at"`
	Records    []toll.Record `json:"-"`
}

// Store is the in-memory dataset registry. Nothing is persisted; a restart
// starts empty by design.
type Store struct {
	mu       sync.RWMutex
	datasets map[uuid.UUID]*Dataset
}

func NewStore() *Store {
	return &Store{datasets: make(map[uuid.UUID]*Dataset)}
}

// Add registers a normalized upload and returns its snapshot.
func (s *Store) Add(fileName string, format toll.Format, records []toll.Record) *Dataset {
	ds := &Dataset{
		ID:         uuid.New(),
		FileName:   fileName,
		Format:     format,
		UploadedAt: time.Now(),
		Records:    records,
	}
	s.mu.Lock()
	s.datasets[ds.ID] = ds
	s.mu.Unlock()
	return ds
}

// Get looks up a dataset by id.
func (s *Store) Get(id uuid.UUID) (*Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ds, ok := s.datasets[id]
	return ds, ok
}

// Remove drops a dataset; removing an unknown id is a no-op.
func (s *Store) Remove(id uuid.UUID) {
	s.mu.Lock()
	delete(s.datasets, id)
	s.mu.Unlock()
}
