package store

import (
	"errors"

	"github.com/carewell/patient-records/model"
)

// ErrNotFound is returned when an identifier has no matching record.
var ErrNotFound = errors.New("patient not found")

// PatientStore is the durable document-storage collaborator. Every method
// may fail; none of them performs querying beyond listing the whole
// collection — filtering, sorting, and pagination happen in memory above
// this boundary.
type PatientStore interface {
	// Insert persists a new record and returns the assigned identifier.
	Insert(p model.Patient) (string, error)
	// List returns the entire collection in no guaranteed order.
	List() ([]model.Patient, error)
	// Update replaces the record stored under id with p in full. Whether a
	// missing id is an error is implementation-defined; callers must not
	// rely on it for existence checks.
	Update(id string, p model.Patient) error
	// Delete removes the record stored under id.
	Delete(id string) error
}
