package client

import (
	"github.com/carewell/patient-records/model"
	"github.com/carewell/patient-records/query"
)

// ListState is the list-view state: one immutable value per moment. Every
// transition returns a new value, leaving the receiver untouched, so
// sequences of user interactions can be replayed deterministically.
type ListState struct {
	Page            int
	Limit           int
	SortField       string
	SortOrder       string
	PendingDeleteID string
	Editing         *model.Patient
}

// NewListState returns the initial view state.
func NewListState() ListState {
	return ListState{
		Page:      query.DefaultPage,
		Limit:     query.DefaultLimit,
		SortField: query.SortNone,
		SortOrder: query.OrderAsc,
	}
}

// ClickSort handles a column-header click: clicking the active field flips
// the direction, clicking a new field sorts ascending by it. Either way the
// view returns to page 1.
func (s ListState) ClickSort(field string) ListState {
	if s.SortField == field {
		if s.SortOrder == query.OrderAsc {
			s.SortOrder = query.OrderDesc
		} else {
			s.SortOrder = query.OrderAsc
		}
	} else {
		s.SortField = field
		s.SortOrder = query.OrderAsc
	}
	s.Page = 1
	return s
}

// ChangePageSize sets a new page size and returns to page 1.
func (s ListState) ChangePageSize(limit int) ListState {
	s.Limit = limit
	s.Page = 1
	return s
}

// GoToPage moves to target when it is within [1, totalPages]; anything else
// is a disabled control and a no-op.
func (s ListState) GoToPage(target int, pg query.Pagination) ListState {
	if target < 1 || target > pg.TotalPages {
		return s
	}
	s.Page = target
	return s
}

// NextPage advances one page when the has-next flag allows it.
func (s ListState) NextPage(pg query.Pagination) ListState {
	if !pg.HasNextPage {
		return s
	}
	s.Page++
	return s
}

// PrevPage goes back one page when the has-previous flag allows it.
func (s ListState) PrevPage(pg query.Pagination) ListState {
	if !pg.HasPreviousPage {
		return s
	}
	s.Page--
	return s
}

// Params translates the state into the query parameters of its list request.
func (s ListState) Params() query.Params {
	return query.Params{
		SortBy:    s.SortField,
		SortOrder: s.SortOrder,
		Page:      s.Page,
		Limit:     s.Limit,
	}
}
