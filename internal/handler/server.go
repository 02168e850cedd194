// Package handler implements the HTTP handlers for the Travel Solver API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (solve.go, history.go, export.go, health.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
)

// PreferenceBuilder validates raw user-entered trip parameters.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the service layer.
type PreferenceBuilder interface {
	Build(raw domain.TripPreferences) (domain.TripPreferences, error)
}

// SolveServicer defines the solve operations the handlers depend on.
type SolveServicer interface {
	Solve(ctx context.Context, prefs domain.TripPreferences) (domain.ItinerarySolution, error)
	State() domain.SolveState
	CurrentSolution() (domain.ItinerarySolution, bool)
}

// HistoryServicer defines the saved-itinerary operations the handlers depend on.
type HistoryServicer interface {
	List(ctx context.Context, params domain.PaginationParams) ([]domain.SavedItinerary, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.SavedItinerary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	prefs   PreferenceBuilder
	solver  SolveServicer
	history HistoryServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(prefs PreferenceBuilder, solver SolveServicer, history HistoryServicer) *Server {
	return &Server{prefs: prefs, solver: solver, history: history}
}

// Routes returns the chi router with every endpoint registered. Middleware is
// the caller's concern (main.go wires logging, CORS, and body limits around
// this router).
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Post("/solve", s.PostSolve)
	r.Get("/solve/state", s.GetSolveState)
	r.Get("/solve/candidates", s.GetCandidates)
	r.Get("/solve/candidates/export", s.GetCandidatesExport)

	r.Get("/itineraries", s.ListItineraries)
	r.Get("/itineraries/{id}", s.GetItinerary)
	r.Delete("/itineraries/{id}", s.DeleteItinerary)

	return r
}
