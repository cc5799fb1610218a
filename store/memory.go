package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/carewell/patient-records/model"
)

// MemoryStore keeps the collection in process memory. It backs tests and
// the STORE=memory development mode. List returns records in insertion
// order so that stability assertions stay deterministic.
type MemoryStore struct {
	mu    sync.Mutex
	docs  map[string]patientDocument
	order []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]patientDocument)}
}

func (s *MemoryStore) Insert(p model.Patient) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := toDocument(p)
	doc.ID = uuid.NewString()
	s.docs[doc.ID] = doc
	s.order = append(s.order, doc.ID)
	return doc.ID, nil
}

func (s *MemoryStore) List() ([]model.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	patients := make([]model.Patient, 0, len(s.order))
	for _, id := range s.order {
		patients = append(patients, fromDocument(s.docs[id]))
	}
	return patients, nil
}

func (s *MemoryStore) Update(id string, p model.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return fmt.Errorf("update patient %s: %w", id, ErrNotFound)
	}
	doc := toDocument(p)
	doc.ID = id
	s.docs[id] = doc
	return nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return fmt.Errorf("delete patient %s: %w", id, ErrNotFound)
	}
	delete(s.docs, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
