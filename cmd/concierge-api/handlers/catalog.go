package handlers

import (
	"net/http"
	"strconv"

	"github.com/voyago-ai/concierge-engine/internal/observability"
	"github.com/voyago-ai/concierge-engine/internal/storage"
)

// CatalogHandler serves the tour and fact listing endpoints.
type CatalogHandler struct {
	logger *observability.Logger
	tours  *storage.TourRepository
	facts  *storage.FactRepository
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(logger *observability.Logger, tours *storage.TourRepository, facts *storage.FactRepository) *CatalogHandler {
	return &CatalogHandler{logger: logger, tours: tours, facts: facts}
}

type listResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ListTours handles GET /tours with optional kategori and price bounds.
func (h *CatalogHandler) ListTours(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := storage.TourFilter{Category: q.Get("kategori")}
	if v := q.Get("min_fiyat"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, listResponse{Error: "invalid min_fiyat"})
			return
		}
		filter.MinPrice = &min
	}
	if v := q.Get("max_fiyat"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, listResponse{Error: "invalid max_fiyat"})
			return
		}
		filter.MaxPrice = &max
	}

	tours, err := h.tours.List(r.Context(), filter)
	if err != nil {
		h.logger.Error().Err(err).Msg("Tour listing failed")
		writeJSON(w, http.StatusInternalServerError, listResponse{Error: "tour listing failed"})
		return
	}
	if tours == nil {
		tours = []storage.Tour{}
	}

	writeJSON(w, http.StatusOK, listResponse{Success: true, Data: tours})
}

// ListFacts handles GET /facts with optional category and search filters.
func (h *CatalogHandler) ListFacts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	facts, err := h.facts.List(r.Context(), storage.FactFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("Fact listing failed")
		writeJSON(w, http.StatusInternalServerError, listResponse{Error: "fact listing failed"})
		return
	}
	if facts == nil {
		facts = []storage.Fact{}
	}

	writeJSON(w, http.StatusOK, listResponse{Success: true, Data: facts})
}
