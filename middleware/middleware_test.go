package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diegopacheco/jello/models"
	"github.com/diegopacheco/jello/testutil"
)

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusCreated, map[string]string{"key": "value"})

	testutil.AssertStatus(t, w, 201)
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %q", ct)
	}
	var body map[string]string
	testutil.AssertJSON(t, w, &body)
	if body["key"] != "value" {
		t.Errorf("Unexpected body %v", body)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusNotFound, "Column not found")

	testutil.AssertStatus(t, w, 404)
	var body models.ErrorResponse
	testutil.AssertJSON(t, w, &body)
	if body.Error != "Not Found" || body.Message != "Column not found" {
		t.Errorf("Unexpected error body %+v", body)
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"title":"To Do"}`))
	var body struct {
		Title string `json:"title"`
	}
	if err := ParseJSONBody(req, &body); err != nil {
		t.Fatalf("ParseJSONBody failed: %v", err)
	}
	if body.Title != "To Do" {
		t.Errorf("Expected To Do, got %q", body.Title)
	}
}

func TestParseJSONBodyInvalid(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{not json`))
	var body struct{}
	if err := ParseJSONBody(req, &body); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestWithLoggingPreservesStatus(t *testing.T) {
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/board", nil))
	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status passed through, got %d", w.Code)
	}
}

func TestCORSHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS(inner)

	req := httptest.NewRequest("GET", "/board", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Expected origin echoed back, got %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	called := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest("OPTIONS", "/cards/card-1", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for preflight, got %d", w.Code)
	}
	if called {
		t.Error("Preflight must not reach the inner handler")
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("Preflight response missing allowed methods")
	}
}
