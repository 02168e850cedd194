package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
)

// Pagination echoes the page window a list response was computed with.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// ListItinerariesResponse is the envelope for GET /itineraries.
type ListItinerariesResponse struct {
	Data       []domain.SavedItinerary `json:"data"`
	Pagination Pagination              `json:"pagination"`
}

// ListItineraries handles GET /itineraries.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20,
// max=100), newest first.
func (s *Server) ListItineraries(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	items, total, err := s.history.List(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ListItinerariesResponse{
		Data:       items,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// GetItinerary handles GET /itineraries/{id}.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	saved, err := s.history.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "itinerary not found")
			return
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

// DeleteItinerary handles DELETE /itineraries/{id}.
func (s *Server) DeleteItinerary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.history.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "itinerary not found")
			return
		}
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} URL parameter, writing the 422 envelope itself when
// the value is not a UUID.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "id must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// queryInt reads an optional integer query parameter, returning nil when the
// parameter is absent or malformed (malformed values fall back to defaults
// rather than erroring, matching the forgiving list-endpoint contract).
func queryInt(r *http.Request, key string) *int {
	q := r.URL.Query().Get(key)
	if q == "" {
		return nil
	}
	n, err := strconv.Atoi(q)
	if err != nil {
		return nil
	}
	return &n
}
