// Package main provides the concierge API server entrypoint.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/voyago-ai/concierge-engine/cmd/concierge-api/handlers"
	"github.com/voyago-ai/concierge-engine/cmd/concierge-api/middleware"
	"github.com/voyago-ai/concierge-engine/internal/config"
	"github.com/voyago-ai/concierge-engine/internal/observability"
	"github.com/voyago-ai/concierge-engine/internal/pipeline"
	"github.com/voyago-ai/concierge-engine/internal/storage"
)

// NewRouter creates the API router with all routes configured.
func NewRouter(
	logger *observability.Logger,
	cfg *config.Config,
	service *pipeline.Service,
	tours *storage.TourRepository,
	facts *storage.FactRepository,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(chimiddleware.Timeout(cfg.Server.WriteTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"concierge-engine"}`))
	})

	chatHandler := handlers.NewChatHandler(logger, service)
	catalogHandler := handlers.NewCatalogHandler(logger, tours, facts)

	r.Post("/api/ask", chatHandler.Ask)
	r.Get("/tours", catalogHandler.ListTours)
	r.Get("/facts", catalogHandler.ListFacts)

	return r
}
