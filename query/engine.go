package query

import (
	"sort"
	"strings"
	"time"

	"github.com/carewell/patient-records/model"
)

// Sort fields understood by Run. Anything else falls back to a raw
// attribute lookup by name, which yields an empty key (and therefore a
// no-op sort) for unknown names.
const (
	SortNone     = "none"
	SortName     = "name"
	SortDOB      = "dob"
	SortStatus   = "status"
	SortLocation = "location"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Parameter bounds enforced by the caller. Run assumes Page and Limit are
// already within range.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params describes one list request.
type Params struct {
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// Pagination is the metadata returned alongside every page.
type Pagination struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalPatients   int  `json:"totalPatients"`
	Limit           int  `json:"limit"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// Run filters, sorts, and paginates records according to params. It is a
// pure function: the input slice is never reordered or mutated, and no
// input makes it fail. A page past the end of the result set yields an
// empty page with accurate metadata; rejecting that case is the caller's
// concern, not the engine's.
func Run(records []model.Patient, params Params) ([]model.Patient, Pagination) {
	filtered := filter(records, params.Search)
	sortRecords(filtered, params.SortBy, params.SortOrder)

	total := len(filtered)
	totalPages := 0
	if total > 0 {
		totalPages = (total + params.Limit - 1) / params.Limit
	}

	// The multiplication can overflow and go negative on an absurd page
	// number; any index outside [0, total] collapses to an empty page.
	start := (params.Page - 1) * params.Limit
	end := start + params.Limit
	if start < 0 || start > total {
		start = total
	}
	if end < start || end > total {
		end = total
	}

	page := filtered[start:end]
	meta := Pagination{
		CurrentPage:     params.Page,
		TotalPages:      totalPages,
		TotalPatients:   total,
		Limit:           params.Limit,
		HasNextPage:     params.Page < totalPages,
		HasPreviousPage: params.Page > 1,
	}
	return page, meta
}

// filter returns the records matching the search term, case-insensitively,
// as a fresh slice. An empty term matches everything.
func filter(records []model.Patient, search string) []model.Patient {
	term := strings.ToLower(search)
	matched := make([]model.Patient, 0, len(records))
	for _, p := range records {
		if term == "" || matches(p, term) {
			matched = append(matched, p)
		}
	}
	return matched
}

func matches(p model.Patient, term string) bool {
	fields := []string{p.FirstName, p.MiddleName, p.LastName, p.City, p.State, p.Status}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// sortRecords sorts in place, stably: records with equal derived keys keep
// their relative input order in both directions. desc flips only the
// less/greater outcomes.
func sortRecords(records []model.Patient, sortBy, sortOrder string) {
	desc := strings.ToLower(sortOrder) == OrderDesc
	sort.SliceStable(records, func(i, j int) bool {
		c := compare(records[i], records[j], sortBy)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// compare is the three-way comparison on the derived sort key.
func compare(a, b model.Patient, sortBy string) int {
	if sortBy == SortDOB {
		ta, tb := dobValue(a), dobValue(b)
		switch {
		case ta < tb:
			return -1
		case ta > tb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(sortKey(a, sortBy), sortKey(b, sortBy))
}

func sortKey(p model.Patient, sortBy string) string {
	var key string
	switch sortBy {
	case SortName:
		key = fullName(p)
	case SortStatus:
		key = p.Status
	case SortLocation:
		key = p.City + " " + p.State + " " + p.ZipCode
	default:
		key = attribute(p, sortBy)
	}
	return strings.ToLower(key)
}

func fullName(p model.Patient) string {
	if p.MiddleName == "" {
		return p.FirstName + " " + p.LastName
	}
	return p.FirstName + " " + p.MiddleName + " " + p.LastName
}

// dobValue maps the ISO date to its linear time value; an unparseable date
// gets the zero key.
func dobValue(p model.Patient) int64 {
	t, err := time.Parse("2006-01-02", p.DateOfBirth)
	if err != nil {
		return 0
	}
	return t.Unix()
}

// attribute looks a field up by its wire name, defaulting to empty for
// anything unrecognized (including "none").
func attribute(p model.Patient, name string) string {
	switch name {
	case "id":
		return p.ID
	case "firstName":
		return p.FirstName
	case "middleName":
		return p.MiddleName
	case "lastName":
		return p.LastName
	case "dateOfBirth":
		return p.DateOfBirth
	case "status":
		return p.Status
	case "street":
		return p.Street
	case "city":
		return p.City
	case "state":
		return p.State
	case "zipCode":
		return p.ZipCode
	default:
		return ""
	}
}
