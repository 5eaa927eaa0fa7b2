package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/diegopacheco/jello/models"
	"github.com/diegopacheco/jello/testutil"
)

func TestImport(t *testing.T) {
	state, cols, _ := newTestState(t, "To Do")
	h := NewImportHandler(state)

	req := testutil.MakeRequest("POST", "/import", models.ImportRequest{
		Text: "first card\nsecond card\n\n   \nthird card",
	})
	w := httptest.NewRecorder()
	h.Import(w, req)

	testutil.AssertStatus(t, w, 201)
	var resp models.ImportResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.CardsAdded != 3 {
		t.Errorf("Expected 3 cards added, got %d", resp.CardsAdded)
	}
	if resp.ColumnID != cols[0] {
		t.Errorf("Expected first column %q, got %q", cols[0], resp.ColumnID)
	}

	cards, _ := state.model.CardsIn(cols[0])
	want := []string{"first card", "second card", "third card"}
	for i := range want {
		if cards[i].Text != want[i] {
			t.Fatalf("Expected texts %v, got card %d = %q", want, i, cards[i].Text)
		}
	}
}

func TestImportIntoNamedColumn(t *testing.T) {
	state, cols, _ := newTestState(t, "To Do", "Done")
	h := NewImportHandler(state)

	req := testutil.MakeRequest("POST", "/import", models.ImportRequest{
		Text:     "shipped it",
		ColumnID: cols[1],
	})
	w := httptest.NewRecorder()
	h.Import(w, req)

	testutil.AssertStatus(t, w, 201)
	if n, _ := state.model.CardCount(cols[1]); n != 1 {
		t.Errorf("Expected card in named column, count=%d", n)
	}
	if n, _ := state.model.CardCount(cols[0]); n != 0 {
		t.Errorf("First column should be untouched, count=%d", n)
	}
}

func TestImportValidation(t *testing.T) {
	tests := []struct {
		name       string
		titles     []string
		body       models.ImportRequest
		wantStatus int
	}{
		{"blank text", []string{"To Do"}, models.ImportRequest{Text: "  \n \n"}, 400},
		{"no columns", nil, models.ImportRequest{Text: "a card"}, 409},
		{"unknown column", []string{"To Do"}, models.ImportRequest{Text: "a card", ColumnID: "column-99"}, 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, _, _ := newTestState(t, tt.titles...)
			h := NewImportHandler(state)

			req := testutil.MakeRequest("POST", "/import", tt.body)
			w := httptest.NewRecorder()
			h.Import(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}
}

func TestSplitImportLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"simple lines", "a\nb\nc", 3},
		{"blanks dropped", "a\n\n  \nb", 2},
		{"windows line endings", "a\r\nb", 2},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitImportLines(tt.text)
			if len(got) != tt.want {
				t.Errorf("splitImportLines(%q) = %v, want %d lines", tt.text, got, tt.want)
			}
		})
	}
}
