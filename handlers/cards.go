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

type CardHandler struct {
	state *State
}

func NewCardHandler(state *State) *CardHandler {
	return &CardHandler{state: state}
}

// Create handles POST /columns/{id}/cards. Without a text field the card
// starts in the editing state: it exists but is not part of the column,
// its counts or the persisted board until the first non-empty commit.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	columnID := r.PathValue("id")
	if columnID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "column id is required")
		return
	}

	var req models.CreateCardRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	s := h.state
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Text == nil {
		cardID, err := s.model.CreateCard(columnID)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusNotFound, "Column not found")
			return
		}
		// Nothing to persist: pending cards only exist in memory.
		slog.Info("card editing started", "card_id", cardID, "column_id", columnID)
		middleware.JSONResponse(w, http.StatusCreated, models.CreateCardResponse{
			CardID:  cardID,
			Pending: true,
		})
		return
	}

	cardID, err := s.model.AddCard(columnID, *req.Text)
	if err != nil {
		switch {
		case errors.Is(err, board.ErrNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, "Column not found")
		case errors.Is(err, board.ErrEmptyText):
			middleware.ErrorResponse(w, http.StatusBadRequest, "text must not be blank")
		default:
			slog.Error("failed to add card", "error", err, "column_id", columnID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add card")
		}
		return
	}

	if err := s.persist(r.Context()); err != nil {
		slog.Error("failed to persist board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save board")
		return
	}

	slog.Info("card added", "card_id", cardID, "column_id", columnID)
	middleware.JSONResponse(w, http.StatusCreated, models.CreateCardResponse{CardID: cardID})
}

// Commit handles PUT /cards/{id}: the single rule for first entries and
// later edits alike. Non-empty text commits; empty text deletes the card.
func (h *CardHandler) Commit(w http.ResponseWriter, r *http.Request) {
	cardID := r.PathValue("id")
	if cardID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "card id is required")
		return
	}

	var req models.CommitCardRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	s := h.state
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.model.CommitCardText(cardID, req.Text)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Card not found")
		return
	}

	if err := s.persist(r.Context()); err != nil {
		slog.Error("failed to persist board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save board")
		return
	}

	slog.Info("card text committed", "card_id", cardID, "result", result.String())
	middleware.JSONResponse(w, http.StatusOK, models.CommitCardResponse{
		CardID: cardID,
		Result: result.String(),
	})
}

// Delete handles DELETE /cards/{id}. Deleting an already-gone card is
// fine; stale delete clicks from an outdated UI snapshot are expected.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cardID := r.PathValue("id")
	if cardID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "card id is required")
		return
	}

	s := h.state
	s.mu.Lock()
	defer s.mu.Unlock()

	s.model.DeleteCard(cardID)

	if err := s.persist(r.Context()); err != nil {
		slog.Error("failed to persist board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save board")
		return
	}

	slog.Info("card deleted", "card_id", cardID)
	w.WriteHeader(http.StatusNoContent)
}

// Upvote handles POST /cards/{id}/upvote. Upvotes drive ordering, so the
// owning column is resorted before the response goes out.
func (h *CardHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, true)
}

// Downvote handles POST /cards/{id}/downvote. Downvotes are recorded but
// never reorder the column.
func (h *CardHandler) Downvote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, false)
}

func (h *CardHandler) vote(w http.ResponseWriter, r *http.Request, up bool) {
	cardID := r.PathValue("id")
	if cardID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "card id is required")
		return
	}

	s := h.state
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	var err error
	if up {
		count, err = s.model.Upvote(cardID)
	} else {
		count, err = s.model.Downvote(cardID)
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Card not found")
		return
	}

	if err := s.persist(r.Context()); err != nil {
		slog.Error("failed to persist board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save board")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		CardID: cardID,
		Count:  count,
	})
}

// Move handles POST /cards/{id}/move. The drop position comes from an
// explicit index, or from the drag gesture's pointer position and the
// target column's measured layout, or defaults to the end. The target is
// resorted by votes afterward, so the response returns the final order.
func (h *CardHandler) Move(w http.ResponseWriter, r *http.Request) {
	cardID := r.PathValue("id")
	if cardID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "card id is required")
		return
	}

	var req models.MoveCardRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ColumnID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "column_id is required")
		return
	}

	s := h.state
	s.mu.Lock()
	defer s.mu.Unlock()

	var index int
	switch {
	case req.Index != nil:
		index = *req.Index
	case req.PointerY != nil:
		layout := make([]board.CardLayout, 0, len(req.Layout))
		for _, e := range req.Layout {
			layout = append(layout, board.CardLayout{CardID: e.CardID, Center: e.Center})
		}
		index = board.ComputeInsertionIndex(layout, *req.PointerY)
	default:
		n, err := s.model.CardCount(req.ColumnID)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusNotFound, "Column not found")
			return
		}
		index = n
	}

	if err := s.model.MoveCard(cardID, req.ColumnID, index); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Card or column not found")
		return
	}

	if err := s.persist(r.Context()); err != nil {
		slog.Error("failed to persist board", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save board")
		return
	}

	col, _ := s.model.Column(req.ColumnID)
	slog.Info("card moved", "card_id", cardID, "column_id", req.ColumnID, "index", index)
	middleware.JSONResponse(w, http.StatusOK, models.MoveCardResponse{
		ColumnID:  req.ColumnID,
		CardOrder: col.CardOrder,
	})
}
