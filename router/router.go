package router

import (
	"net/http"

	"github.com/diegopacheco/jello/handlers"
	"github.com/diegopacheco/jello/middleware"
)

func NewRouter(state *handlers.State) *http.ServeMux {
	mux := http.NewServeMux()

	boardHandler := handlers.NewBoardHandler(state)
	columnHandler := handlers.NewColumnHandler(state)
	cardHandler := handlers.NewCardHandler(state)
	importHandler := handlers.NewImportHandler(state)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Board projection
	mux.HandleFunc("GET /board", middleware.WithLogging(boardHandler.Get))

	// Columns
	mux.HandleFunc("POST /columns", middleware.WithLogging(columnHandler.Create))
	mux.HandleFunc("PUT /columns/{id}/title", middleware.WithLogging(columnHandler.Rename))
	mux.HandleFunc("DELETE /columns/{id}", middleware.WithLogging(columnHandler.Delete))
	mux.HandleFunc("POST /columns/{id}/cards", middleware.WithLogging(cardHandler.Create))

	// Cards
	mux.HandleFunc("PUT /cards/{id}", middleware.WithLogging(cardHandler.Commit))
	mux.HandleFunc("DELETE /cards/{id}", middleware.WithLogging(cardHandler.Delete))
	mux.HandleFunc("POST /cards/{id}/upvote", middleware.WithLogging(cardHandler.Upvote))
	mux.HandleFunc("POST /cards/{id}/downvote", middleware.WithLogging(cardHandler.Downvote))
	mux.HandleFunc("POST /cards/{id}/move", middleware.WithLogging(cardHandler.Move))

	// Bulk import
	mux.HandleFunc("POST /import", middleware.WithLogging(importHandler.Import))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jello board API v1"))
	})

	return mux
}
