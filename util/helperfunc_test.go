package util

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func runHandler(t *testing.T, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.ServeHTTP(w, req)
	return w
}

func errorField(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return body.Error
}

func TestCallUserError(t *testing.T) {
	w := runHandler(t, func(c *gin.Context) {
		CallUserError(c, APIErrorParams{Msg: "bad input", Err: fmt.Errorf("details")})
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if errorField(t, w) != "bad input" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCallErrorNotFound(t *testing.T) {
	w := runHandler(t, func(c *gin.Context) {
		CallErrorNotFound(c, APIErrorParams{Msg: "missing", Err: fmt.Errorf("gone")})
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if errorField(t, w) != "missing" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCallServerErrorHidesCause(t *testing.T) {
	w := runHandler(t, func(c *gin.Context) {
		CallServerError(c, APIErrorParams{Msg: "something went wrong", Err: fmt.Errorf("dsn user:pass@tcp")})
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if errorField(t, w) != "something went wrong" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	// The underlying cause is logged, never serialized.
	if strings.Contains(w.Body.String(), "tcp") {
		t.Fatalf("underlying cause leaked into response: %s", w.Body.String())
	}
}
