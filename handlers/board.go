package handlers

import (
	"net/http"

	"github.com/diegopacheco/jello/middleware"
	"github.com/diegopacheco/jello/models"
)

type BoardHandler struct {
	state *State
}

func NewBoardHandler(state *State) *BoardHandler {
	return &BoardHandler{state: state}
}

// Get handles GET /board: the full projection the rendering layer
// re-draws from after every mutation. Pending editing cards are not part
// of the projection.
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	s := h.state
	s.mu.Lock()
	defer s.mu.Unlock()

	cols := s.model.Columns()
	view := models.BoardView{
		Columns:      make([]models.ColumnView, 0, len(cols)),
		NextColumnID: s.model.NextColumnID(),
	}
	for _, col := range cols {
		cv := models.ColumnView{
			ID:        col.ID,
			Title:     col.Title,
			CardCount: len(col.CardOrder),
			Cards:     make([]models.CardView, 0, len(col.CardOrder)),
		}
		for _, cardID := range col.CardOrder {
			card, ok := s.model.Card(cardID)
			if !ok {
				continue
			}
			cv.Cards = append(cv.Cards, models.CardView{
				ID:        card.ID,
				Text:      card.Text,
				Upvotes:   card.Upvotes,
				Downvotes: card.Downvotes,
			})
		}
		view.Columns = append(view.Columns, cv)
	}

	middleware.JSONResponse(w, http.StatusOK, view)
}
