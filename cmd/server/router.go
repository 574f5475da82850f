package main

import (
	"net/http"

	"github.com/SvenFlower/ai-flash-cards/internal/api"
	apiMiddleware "github.com/SvenFlower/ai-flash-cards/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	generationHandler := api.NewGenerationHandler(app.generationService, app.logger)
	sessionHandler := api.NewSessionHandler(app.sessionService, app.logger)
	cardHandler := api.NewCardHandler(app.cardService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenVerifier)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health response", "error", err)
		}
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/flashcards/generate", generationHandler.GenerateFlashcards)

		r.Post("/sessions", sessionHandler.CommitSession)
		r.Get("/sessions", sessionHandler.ListSessions)
		r.Get("/sessions/{id}", sessionHandler.GetSession)
		r.Put("/sessions/{id}", sessionHandler.RenameSession)
		r.Delete("/sessions/{id}", sessionHandler.DeleteSession)

		r.Post("/flashcards", cardHandler.CreateCard)
		r.Get("/flashcards", cardHandler.ListCards)
		r.Get("/flashcards/{id}", cardHandler.GetCard)
		r.Delete("/flashcards/{id}", cardHandler.DeleteCard)
	})

	return r
}
