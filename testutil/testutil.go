package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diegopacheco/jello/board"
)

// SeedModel builds a board with one column per title and returns the
// model plus the column ids in order.
func SeedModel(t *testing.T, titles ...string) (*board.Model, []string) {
	t.Helper()

	m := board.New()
	ids := make([]string, 0, len(titles))
	for _, title := range titles {
		ids = append(ids, m.CreateColumn(title))
	}
	return m, ids
}

// SeedCards appends fully formed cards to the column and returns their ids.
func SeedCards(t *testing.T, m *board.Model, columnID string, texts ...string) []string {
	t.Helper()

	ids := make([]string, 0, len(texts))
	for _, text := range texts {
		id, err := m.AddCard(columnID, text)
		if err != nil {
			t.Fatalf("Failed to seed card %q: %v", text, err)
		}
		ids = append(ids, id)
	}
	return ids
}

// MakeRequest creates an HTTP test request with an optional JSON body.
func MakeRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertStatus checks that the response has the expected status code.
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct.
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
