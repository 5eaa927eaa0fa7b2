package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/diegopacheco/jello/board"
	"github.com/diegopacheco/jello/middleware"
	"github.com/diegopacheco/jello/models"
)

type ColumnHandler struct {
	state *State
}

func NewColumnHandler(state *State) *ColumnHandler {
	return &ColumnHandler{state: state}
}

// Create handles POST /columns. The title is optional; a blank one gets
// the "Column <N>" default. An empty request body is fine.
func (h *ColumnHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateColumnRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	s := h.state
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.model.CreateColumn(req.Title)
	col, _ := s.model.Column(id)

	if err := s.persist(r.Context()); err != nil {
		slog.Error("failed to persist board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save board")
		return
	}

	slog.Info("column created", "column_id", id, "title", col.Title)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateColumnResponse{
		ColumnID: id,
		Title:    col.Title,
	})
}

// Rename handles PUT /columns/{id}/title. A title that trims to nothing
// keeps the prior one; the response always carries the effective title.
func (h *ColumnHandler) Rename(w http.ResponseWriter, r *http.Request) {
	columnID := r.PathValue("id")
	if columnID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "column id is required")
		return
	}

	var req models.RenameColumnRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	s := h.state
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.model.RenameColumn(columnID, req.Title); err != nil {
		if errors.Is(err, board.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Column not found")
			return
		}
		slog.Error("failed to rename column", "error", err, "column_id", columnID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to rename column")
		return
	}

	if err := s.persist(r.Context()); err != nil {
		slog.Error("failed to persist board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save board")
		return
	}

	col, _ := s.model.Column(columnID)
	middleware.JSONResponse(w, http.StatusOK, models.RenameColumnResponse{
		ColumnID: columnID,
		Title:    col.Title,
	})
}

// Delete handles DELETE /columns/{id}. The cascade destroys every card
// in the column; callers are expected to have confirmed with the user.
func (h *ColumnHandler) Delete(w http.ResponseWriter, r *http.Request) {
	columnID := r.PathValue("id")
	if columnID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "column id is required")
		return
	}

	s := h.state
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.model.DeleteColumn(columnID); err != nil {
		if errors.Is(err, board.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Column not found")
			return
		}
		slog.Error("failed to delete column", "error", err, "column_id", columnID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete column")
		return
	}

	if err := s.persist(r.Context()); err != nil {
		slog.Error("failed to persist board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save board")
		return
	}

	slog.Info("column deleted", "column_id", columnID)
	w.WriteHeader(http.StatusNoContent)
}
