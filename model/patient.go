package model

import "fmt"

// Patient statuses accepted by the API. Nothing else is ever persisted.
const (
	StatusInquiry    = "Inquiry"
	StatusOnboarding = "Onboarding"
	StatusActive     = "Active"
	StatusChurned    = "Churned"
)

// ValidStatuses lists every accepted patient status.
var ValidStatuses = []string{StatusInquiry, StatusOnboarding, StatusActive, StatusChurned}

// Patient represents a patient record
// @Description Patient information
type Patient struct {
	ID          string `json:"id,omitempty" example:"7b0f5c43-1fb9-4a3e-9a57-0f2f0fd1c0de"`
	FirstName   string `json:"firstName" example:"John"`
	MiddleName  string `json:"middleName,omitempty" example:"Quincy"`
	LastName    string `json:"lastName" example:"Doe"`
	DateOfBirth string `json:"dateOfBirth" example:"1980-01-01"`
	Status      string `json:"status" example:"Active"`
	Street      string `json:"street" example:"123 Main St"`
	City        string `json:"city" example:"Springfield"`
	State       string `json:"state" example:"IL"`
	ZipCode     string `json:"zipCode" example:"62704"`
}

// Validate checks the fields required before a create or update may reach
// the store. ID is assigned by the store and intentionally not checked.
func (p Patient) Validate() error {
	requiredFields := map[string]string{
		"firstName":   p.FirstName,
		"lastName":    p.LastName,
		"dateOfBirth": p.DateOfBirth,
		"status":      p.Status,
	}

	for fieldName, fieldValue := range requiredFields {
		if fieldValue == "" {
			return fmt.Errorf("%s is empty or missing required fields", fieldName)
		}
	}

	if !ValidStatus(p.Status) {
		return fmt.Errorf("status must be one of: Inquiry, Onboarding, Active, Churned")
	}
	return nil
}

// ValidStatus reports whether s is one of the accepted patient statuses.
func ValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}
