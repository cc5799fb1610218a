package endpoint

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/carewell/patient-records/middleware"
	"github.com/carewell/patient-records/model"
	"github.com/carewell/patient-records/query"
	"github.com/carewell/patient-records/store"
	"github.com/carewell/patient-records/util"
)

// parseListParams parses the raw query string into engine parameters.
// Absent or unparseable page/limit fall back to the defaults; values that
// parse but land out of range are rejected.
func parseListParams(c *gin.Context) (query.Params, error) {
	page := query.DefaultPage
	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			page = v
		}
	}
	limit := query.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	if page < 1 {
		return query.Params{}, fmt.Errorf("page must be a positive integer")
	}
	if limit < 1 || limit > query.MaxLimit {
		return query.Params{}, fmt.Errorf("limit must be between 1 and %d", query.MaxLimit)
	}

	return query.Params{
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: strings.ToLower(c.Query("sortOrder")),
		Page:      page,
		Limit:     limit,
	}, nil
}

type patientRequest struct {
	FirstName   string `json:"firstName" example:"John"`
	MiddleName  string `json:"middleName" example:"Quincy"`
	LastName    string `json:"lastName" example:"Doe"`
	DateOfBirth string `json:"dateOfBirth" example:"1980-01-01"`
	Status      string `json:"status" example:"Active"`
	Street      string `json:"street" example:"123 Main St"`
	City        string `json:"city" example:"Springfield"`
	State       string `json:"state" example:"IL"`
	ZipCode     string `json:"zipCode" example:"62704"`
}

func (r patientRequest) toModel() model.Patient {
	return model.Patient{
		FirstName:   r.FirstName,
		MiddleName:  r.MiddleName,
		LastName:    r.LastName,
		DateOfBirth: r.DateOfBirth,
		Status:      r.Status,
		Street:      r.Street,
		City:        r.City,
		State:       r.State,
		ZipCode:     r.ZipCode,
	}
}

func getStore(c *gin.Context) store.PatientStore {
	s := middleware.GetStore(c)
	if s == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Store connection not available",
			Err: fmt.Errorf("store is nil"),
		})
	}
	return s
}

// ListPatients godoc
// @Summary      List patients
// @Description  Get a paginated list of patients with optional search and sorting
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size, 1-100 (default 10)"
// @Param        search query string false "Case-insensitive search across name, city, state, and status"
// @Param        sortBy query string false "Sort field: name|dob|status|location"
// @Param        sortOrder query string false "Sort direction: asc|desc"
// @Success      200 {object} map[string]interface{} "Patients retrieved"
// @Failure      400 {object} map[string]interface{} "Invalid pagination parameters"
// @Failure      500 {object} map[string]interface{} "Server error"
// @Router       /patients [get]
func ListPatients(c *gin.Context) {
	params, err := parseListParams(c)
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: err.Error(),
			Err: err,
		})
		return
	}

	s := getStore(c)
	if s == nil {
		return
	}

	patients, err := s.List()
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve patients",
			Err: err,
		})
		return
	}

	page, pagination := query.Run(patients, params)

	// The engine tolerates a page past the end; the API treats it as a
	// client-correctable input error instead of returning an empty page.
	if pagination.TotalPages > 0 && params.Page > pagination.TotalPages {
		util.CallUserError(c, util.APIErrorParams{
			Msg: fmt.Sprintf("page %d exceeds total pages %d", params.Page, pagination.TotalPages),
			Err: fmt.Errorf("page out of range"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"patients":   page,
		"pagination": pagination,
		"message":    "Patients retrieved",
	})
}

// CreatePatient godoc
// @Summary      Create a new patient
// @Description  Register a new patient record; the store assigns the identifier
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        request body patientRequest true "Patient information"
// @Success      201 {object} map[string]interface{} "Patient created"
// @Failure      400 {object} map[string]interface{} "Invalid request"
// @Failure      500 {object} map[string]interface{} "Server error"
// @Router       /patients [post]
func CreatePatient(c *gin.Context) {
	req := patientRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}

	patient := req.toModel()
	if err := patient.Validate(); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: err.Error(),
			Err: err,
		})
		return
	}

	s := getStore(c)
	if s == nil {
		return
	}

	id, err := s.Insert(patient)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to create patient",
			Err: err,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      id,
		"message": "Patient created",
	})
}

// GetPatientInfo godoc
// @Summary      Get patient information
// @Description  Get a single patient record by identifier
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        id path string true "Patient ID"
// @Success      200 {object} map[string]interface{} "Patient retrieved"
// @Failure      404 {object} map[string]interface{} "Patient not found"
// @Failure      500 {object} map[string]interface{} "Server error"
// @Router       /patients/{id} [get]
func GetPatientInfo(c *gin.Context) {
	id := c.Param("id")

	s := getStore(c)
	if s == nil {
		return
	}

	patients, err := s.List()
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve patient",
			Err: err,
		})
		return
	}

	for _, p := range patients {
		if p.ID == id {
			c.JSON(http.StatusOK, gin.H{
				"patient": p,
				"message": "Patient retrieved",
			})
			return
		}
	}

	util.CallErrorNotFound(c, util.APIErrorParams{
		Msg: "Patient not found",
		Err: store.ErrNotFound,
	})
}

// UpdatePatient godoc
// @Summary      Update patient information
// @Description  Replace an existing patient record in full
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        id path string true "Patient ID"
// @Param        request body patientRequest true "Updated patient information"
// @Success      200 {object} map[string]interface{} "Patient updated"
// @Failure      400 {object} map[string]interface{} "Invalid request"
// @Failure      500 {object} map[string]interface{} "Server error"
// @Router       /patients/{id} [put]
func UpdatePatient(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Missing patient ID",
			Err: fmt.Errorf("patient ID is required"),
		})
		return
	}

	req := patientRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}

	patient := req.toModel()
	if err := patient.Validate(); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: err.Error(),
			Err: err,
		})
		return
	}

	s := getStore(c)
	if s == nil {
		return
	}

	// The store does not pre-check existence on update, so a missing id
	// surfaces as a generic store failure rather than a 404.
	if err := s.Update(id, patient); err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to update patient",
			Err: err,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Patient updated",
		"id":      id,
	})
}

// DeletePatient godoc
// @Summary      Delete a patient
// @Description  Delete a patient record by identifier
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        id path string true "Patient ID"
// @Success      200 {object} map[string]interface{} "Patient deleted"
// @Failure      500 {object} map[string]interface{} "Server error"
// @Router       /patients/{id} [delete]
func DeletePatient(c *gin.Context) {
	id := c.Param("id")

	s := getStore(c)
	if s == nil {
		return
	}

	if err := s.Delete(id); err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to delete patient",
			Err: err,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Patient deleted",
		"id":      id,
	})
}
