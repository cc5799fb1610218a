package store

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/carewell/patient-records/model"
)

// MySQLStore persists patient documents in a MySQL table through GORM.
// Writes are whole-document: a create or update either lands every field
// or fails and leaves prior state unchanged.
type MySQLStore struct {
	db *gorm.DB
}

// NewMySQLStore migrates the patient_documents table and returns the store.
func NewMySQLStore(db *gorm.DB) (*MySQLStore, error) {
	if err := db.AutoMigrate(&patientDocument{}); err != nil {
		return nil, fmt.Errorf("migrate patient_documents: %w", err)
	}
	return &MySQLStore{db: db}, nil
}

func (s *MySQLStore) Insert(p model.Patient) (string, error) {
	doc := toDocument(p)
	doc.ID = uuid.NewString()
	if err := s.db.Create(&doc).Error; err != nil {
		return "", fmt.Errorf("insert patient: %w", err)
	}
	return doc.ID, nil
}

func (s *MySQLStore) List() ([]model.Patient, error) {
	var docs []patientDocument
	if err := s.db.Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	patients := make([]model.Patient, 0, len(docs))
	for _, d := range docs {
		patients = append(patients, fromDocument(d))
	}
	return patients, nil
}

func (s *MySQLStore) Update(id string, p model.Patient) error {
	doc := toDocument(p)
	doc.ID = id
	// Save writes the full document; it does not pre-check existence.
	if err := s.db.Save(&doc).Error; err != nil {
		return fmt.Errorf("update patient %s: %w", id, err)
	}
	return nil
}

func (s *MySQLStore) Delete(id string) error {
	if err := s.db.Delete(&patientDocument{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete patient %s: %w", id, err)
	}
	return nil
}
