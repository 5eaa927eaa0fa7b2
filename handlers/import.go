package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/diegopacheco/jello/middleware"
	"github.com/diegopacheco/jello/models"
)

// ImportHandler implements the bulk-import dialog of the original board:
// paste free text, get one card per non-blank line.
type ImportHandler struct {
	state *State
}

func NewImportHandler(state *State) *ImportHandler {
	return &ImportHandler{state: state}
}

// Import handles POST /import. Cards land in the requested column, or
// the first column when none is given. Each line is added independently;
// the batch is not transactional, but every card-add is individually
// consistent so a partial import still leaves a valid board. The column
// is resorted once at the end, like the original dialog.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req models.ImportRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lines := splitImportLines(req.Text)
	if len(lines) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "enter at least one card description")
		return
	}

	s := h.state
	s.mu.Lock()
	defer s.mu.Unlock()

	columnID := req.ColumnID
	if columnID == "" {
		cols := s.model.Columns()
		if len(cols) == 0 {
			middleware.ErrorResponse(w, http.StatusConflict, "create at least one column first")
			return
		}
		columnID = cols[0].ID
	} else if _, ok := s.model.Column(columnID); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Column not found")
		return
	}

	added := 0
	for _, line := range lines {
		if _, err := s.model.AddCard(columnID, line); err != nil {
			slog.Warn("skipping import line", "error", err)
			continue
		}
		added++
	}
	s.model.ResortColumn(columnID)

	if err := s.persist(r.Context()); err != nil {
		slog.Error("failed to persist board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save board")
		return
	}

	slog.Info("cards imported", "column_id", columnID, "count", added)
	middleware.JSONResponse(w, http.StatusCreated, models.ImportResponse{
		ColumnID:   columnID,
		CardsAdded: added,
	})
}

// splitImportLines splits pasted text on line breaks and drops blanks.
func splitImportLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
