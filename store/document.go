package store

import "github.com/carewell/patient-records/model"

// patientDocument is the persisted shape of a record. The client's
// "street" field is stored under "address"; the rename is confined to
// toDocument/fromDocument so the rest of the system only ever sees Street.
type patientDocument struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	FirstName   string `gorm:"column:first_name" json:"firstName"`
	MiddleName  string `gorm:"column:middle_name" json:"middleName"`
	LastName    string `gorm:"column:last_name" json:"lastName"`
	DateOfBirth string `gorm:"column:date_of_birth" json:"dateOfBirth"`
	Status      string `gorm:"column:status" json:"status"`
	Address     string `gorm:"column:address" json:"address"`
	City        string `gorm:"column:city" json:"city"`
	State       string `gorm:"column:state" json:"state"`
	ZipCode     string `gorm:"column:zip_code" json:"zipCode"`
}

func (patientDocument) TableName() string {
	return "patient_documents"
}

func toDocument(p model.Patient) patientDocument {
	return patientDocument{
		ID:          p.ID,
		FirstName:   p.FirstName,
		MiddleName:  p.MiddleName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
		Status:      p.Status,
		Address:     p.Street,
		City:        p.City,
		State:       p.State,
		ZipCode:     p.ZipCode,
	}
}

func fromDocument(d patientDocument) model.Patient {
	return model.Patient{
		ID:          d.ID,
		FirstName:   d.FirstName,
		MiddleName:  d.MiddleName,
		LastName:    d.LastName,
		DateOfBirth: d.DateOfBirth,
		Status:      d.Status,
		Street:      d.Address,
		City:        d.City,
		State:       d.State,
		ZipCode:     d.ZipCode,
	}
}
