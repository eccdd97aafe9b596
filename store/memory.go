package store

import (
	"context"
	"sync"

	"github.com/ariebrainware/patient-referral/model"
)

// MemoryStore keeps records in process memory. State is lost on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*model.PatientRecord
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*model.PatientRecord)}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*model.PatientRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec.Clone(), nil
}

func (m *MemoryStore) Upsert(_ context.Context, rec *model.PatientRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var current int64
	if existing, ok := m.records[rec.ID]; ok {
		current = existing.Version
	}
	if current != rec.Version {
		return ErrVersionConflict
	}

	rec.Version++
	m.records[rec.ID] = rec.Clone()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return ErrNotFound
	}
	delete(m.records, id)
	return nil
}

// Len reports how many records are stored.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
