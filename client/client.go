package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/carewell/patient-records/model"
	"github.com/carewell/patient-records/query"
)

// APIError is a request the server received and rejected, carrying the
// server-provided message. A transport failure (no response at all) is
// surfaced as an ordinary wrapped error instead, so callers can tell the
// two apart with errors.As.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.StatusCode, e.Message)
}

// Client talks to the patient-records REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the API served at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ListResponse mirrors the GET /patients response body.
type ListResponse struct {
	Patients   []model.Patient  `json:"patients"`
	Pagination query.Pagination `json:"pagination"`
	Message    string           `json:"message"`
}

// ListPatients fetches one page of the listing.
func (c *Client) ListPatients(params query.Params) (*ListResponse, error) {
	values := url.Values{}
	values.Set("page", strconv.Itoa(params.Page))
	values.Set("limit", strconv.Itoa(params.Limit))
	if params.Search != "" {
		values.Set("search", params.Search)
	}
	if params.SortBy != "" {
		values.Set("sortBy", params.SortBy)
	}
	if params.SortOrder != "" {
		values.Set("sortOrder", params.SortOrder)
	}

	resp, err := c.httpClient.Get(c.baseURL + "/patients?" + values.Encode())
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	out := &ListResponse{}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	return out, nil
}

// GetPatient fetches a single record by identifier.
func (c *Client) GetPatient(id string) (model.Patient, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/patients/" + url.PathEscape(id))
	if err != nil {
		return model.Patient{}, fmt.Errorf("get patient: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Patient{}, decodeAPIError(resp)
	}

	var out struct {
		Patient model.Patient `json:"patient"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return model.Patient{}, fmt.Errorf("decode patient response: %w", err)
	}
	return out.Patient, nil
}

// CreatePatient submits a new record and returns the store-assigned id.
func (c *Client) CreatePatient(p model.Patient) (string, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode patient: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+"/patients", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create patient: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", decodeAPIError(resp)
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode create response: %w", err)
	}
	return out.ID, nil
}

// UpdatePatient replaces the record stored under id in full.
func (c *Client) UpdatePatient(id string, p model.Patient) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode patient: %w", err)
	}

	req, err := http.NewRequest(http.MethodPut, c.baseURL+"/patients/"+url.PathEscape(id), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	return nil
}

// DeletePatient removes the record stored under id.
func (c *Client) DeletePatient(id string) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+"/patients/"+url.PathEscape(id), nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	return nil
}

// decodeAPIError turns a non-success response into an *APIError, keeping
// the server's message verbatim when the body carries one.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(resp.Body)
	if err == nil {
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Message = payload.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
