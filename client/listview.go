package client

import (
	"errors"
	"strings"

	"github.com/carewell/patient-records/model"
	"github.com/carewell/patient-records/query"
)

// Notifier receives the dismissible notifications the view surfaces. No
// failure is ever retried automatically; every notification is terminal
// for that attempt.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// ListView drives the patient listing: it owns the current ListState,
// refetches after every transition, and reconciles the cached page after
// mutations. Each user action issues its own request; responses whose
// parameters no longer match the current state are discarded, so a
// superseding request deterministically wins the race.
type ListView struct {
	api      *Client
	notifier Notifier

	state      ListState
	patients   []model.Patient
	pagination query.Pagination
	stale      bool
}

// NewListView returns a view over api with the initial state. Nothing is
// fetched until the first Refresh.
func NewListView(api *Client, notifier Notifier) *ListView {
	return &ListView{
		api:      api,
		notifier: notifier,
		state:    NewListState(),
		stale:    true,
	}
}

func (v *ListView) State() ListState             { return v.state }
func (v *ListView) Patients() []model.Patient    { return v.patients }
func (v *ListView) Pagination() query.Pagination { return v.pagination }
func (v *ListView) Stale() bool                  { return v.stale }

// Refresh fetches the page described by the current state. On failure the
// displayed listing is left untouched and the failure is surfaced.
func (v *ListView) Refresh() error {
	params := v.state.Params()
	resp, err := v.api.ListPatients(params)
	if err != nil {
		v.notifyFailure("Failed to load patients", err)
		return err
	}
	v.apply(params, resp)
	return nil
}

// apply reconciles a list response with the view. A response is dropped
// when its request parameters no longer match the current state: the user
// has moved on and a fresher request is (or will be) in flight.
func (v *ListView) apply(params query.Params, resp *ListResponse) {
	if params != v.state.Params() {
		return
	}
	v.patients = resp.Patients
	v.pagination = resp.Pagination
	v.stale = false
}

// SortBy handles a column-header click and refetches.
func (v *ListView) SortBy(field string) error {
	v.state = v.state.ClickSort(field)
	return v.Refresh()
}

// SetPageSize changes the page size and refetches from page 1.
func (v *ListView) SetPageSize(limit int) error {
	v.state = v.state.ChangePageSize(limit)
	return v.Refresh()
}

// GoToPage navigates to target if it is a reachable page; clicks on
// disabled controls change nothing and trigger no request.
func (v *ListView) GoToPage(target int) error {
	next := v.state.GoToPage(target, v.pagination)
	if next == v.state {
		return nil
	}
	v.state = next
	return v.Refresh()
}

// NextPage advances one page when possible.
func (v *ListView) NextPage() error {
	next := v.state.NextPage(v.pagination)
	if next == v.state {
		return nil
	}
	v.state = next
	return v.Refresh()
}

// PrevPage goes back one page when possible.
func (v *ListView) PrevPage() error {
	next := v.state.PrevPage(v.pagination)
	if next == v.state {
		return nil
	}
	v.state = next
	return v.Refresh()
}

// RequestDelete arms the delete confirmation for id.
func (v *ListView) RequestDelete(id string) {
	v.state.PendingDeleteID = id
}

// CancelDelete clears a pending delete without touching the store.
func (v *ListView) CancelDelete() {
	v.state.PendingDeleteID = ""
}

// ConfirmDelete deletes the armed record. On success the cached listing is
// marked stale and refetched with the current state; on failure the listing
// stays as-is and the failure is surfaced.
func (v *ListView) ConfirmDelete() error {
	id := v.state.PendingDeleteID
	if id == "" {
		return nil
	}

	if err := v.api.DeletePatient(id); err != nil {
		v.notifyFailure("Failed to delete patient", err)
		return err
	}

	v.state.PendingDeleteID = ""
	v.stale = true
	v.notifier.Success("Patient deleted")
	return v.Refresh()
}

// BeginCreate opens an empty form.
func (v *ListView) BeginCreate() {
	v.state.Editing = &model.Patient{}
}

// BeginEdit opens the form pre-filled with p.
func (v *ListView) BeginEdit(p model.Patient) {
	edited := p
	v.state.Editing = &edited
}

// CancelEdit closes the form without submitting.
func (v *ListView) CancelEdit() {
	v.state.Editing = nil
}

// Submit sends the form's record: create when it has no identifier yet,
// full update otherwise. Text fields are trimmed before submission. On
// success the form closes, the listing is marked stale and refetched; on
// failure the form stays open and the server's message is surfaced.
func (v *ListView) Submit(p model.Patient) error {
	p = sanitize(p)

	var err error
	if p.ID == "" {
		_, err = v.api.CreatePatient(p)
	} else {
		err = v.api.UpdatePatient(p.ID, p)
	}
	if err != nil {
		v.notifyFailure("Failed to save patient", err)
		return err
	}

	v.state.Editing = nil
	v.stale = true
	v.notifier.Success("Patient saved")
	return v.Refresh()
}

// sanitize trims leading and trailing whitespace from every text field.
func sanitize(p model.Patient) model.Patient {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.MiddleName = strings.TrimSpace(p.MiddleName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.DateOfBirth = strings.TrimSpace(p.DateOfBirth)
	p.Status = strings.TrimSpace(p.Status)
	p.Street = strings.TrimSpace(p.Street)
	p.City = strings.TrimSpace(p.City)
	p.State = strings.TrimSpace(p.State)
	p.ZipCode = strings.TrimSpace(p.ZipCode)
	return p
}

// notifyFailure surfaces an error: the server-provided message verbatim
// when there is one, otherwise a fallback distinguishing a request the
// server rejected from one it never answered.
func (v *ListView) notifyFailure(fallback string, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			v.notifier.Error(apiErr.Message)
			return
		}
		v.notifier.Error(fallback + ": the server rejected the request")
		return
	}
	v.notifier.Error(fallback + ": no response received from the server")
}
