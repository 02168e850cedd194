package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
	"github.com/rmoreira/travel-solver/backend/internal/transform"
)

// PostSolve handles POST /solve. The body is the raw trip preferences; the
// response is the full validated solution. Success is all-or-nothing: no
// partial itinerary is ever serialized.
func (s *Server) PostSolve(w http.ResponseWriter, r *http.Request) {
	var raw domain.TripPreferences
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body is not valid JSON")
		return
	}

	prefs, err := s.prefs.Build(raw)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	solution, err := s.solver.Solve(r.Context(), prefs)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, solution)
}

// GetSolveState handles GET /solve/state: the current value of the solve
// state machine (idle/solving/success/error plus sequence number).
func (s *Server) GetSolveState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.solver.State())
}

// GetCandidates handles GET /solve/candidates?page=N.
// Serves one fixed-size page of the current solution's considered candidates;
// out-of-range pages clamp to the nearest valid page. 404 when the slot holds
// no successful solution.
func (s *Server) GetCandidates(w http.ResponseWriter, r *http.Request) {
	solution, ok := s.solver.CurrentSolution()
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "no solved itinerary available")
		return
	}

	page := 1
	if q := r.URL.Query().Get("page"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", "page must be an integer")
			return
		}
		page = n
	}

	writeJSON(w, http.StatusOK, transform.PageCandidates(solution.ConsideredFlights, page))
}
