package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
	"github.com/rmoreira/travel-solver/backend/internal/handler"
)

type mockPrefs struct {
	buildFunc func(raw domain.TripPreferences) (domain.TripPreferences, error)
}

var _ handler.PreferenceBuilder = (*mockPrefs)(nil)

func (m *mockPrefs) Build(raw domain.TripPreferences) (domain.TripPreferences, error) {
	return m.buildFunc(raw)
}

type mockSolver struct {
	solveFunc   func(ctx context.Context, prefs domain.TripPreferences) (domain.ItinerarySolution, error)
	stateFunc   func() domain.SolveState
	currentFunc func() (domain.ItinerarySolution, bool)
}

var _ handler.SolveServicer = (*mockSolver)(nil)

func (m *mockSolver) Solve(ctx context.Context, prefs domain.TripPreferences) (domain.ItinerarySolution, error) {
	return m.solveFunc(ctx, prefs)
}

func (m *mockSolver) State() domain.SolveState {
	return m.stateFunc()
}

func (m *mockSolver) CurrentSolution() (domain.ItinerarySolution, bool) {
	return m.currentFunc()
}

type mockHistory struct {
	listFunc   func(ctx context.Context, params domain.PaginationParams) ([]domain.SavedItinerary, int64, error)
	getFunc    func(ctx context.Context, id uuid.UUID) (domain.SavedItinerary, error)
	deleteFunc func(ctx context.Context, id uuid.UUID) error
}

var _ handler.HistoryServicer = (*mockHistory)(nil)

func (m *mockHistory) List(ctx context.Context, params domain.PaginationParams) ([]domain.SavedItinerary, int64, error) {
	return m.listFunc(ctx, params)
}

func (m *mockHistory) GetByID(ctx context.Context, id uuid.UUID) (domain.SavedItinerary, error) {
	return m.getFunc(ctx, id)
}

func (m *mockHistory) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFunc(ctx, id)
}

// passthroughPrefs builds without complaint, echoing the raw preferences.
func passthroughPrefs() *mockPrefs {
	return &mockPrefs{
		buildFunc: func(raw domain.TripPreferences) (domain.TripPreferences, error) {
			return raw, nil
		},
	}
}

func sampleSolution(candidates int) domain.ItinerarySolution {
	sol := domain.ItinerarySolution{
		TripType:   domain.TripRoundTrip,
		OriginUsed: "São Paulo (GRU)",
		Segments: []domain.RouteSegment{{
			From: "São Paulo", To: "Lisboa", Date: "19/07/26",
			Mode: domain.ModeFlight, TotalCost: 7400,
		}},
		TotalCostEstimate: 12000,
	}
	for i := 0; i < candidates; i++ {
		sol.ConsideredFlights = append(sol.ConsideredFlights, domain.ConsideredFlight{
			ID:         fmt.Sprintf("%d", i+1),
			Airline:    "LATAM",
			FlightCode: fmt.Sprintf("LA%03d", i),
			From:       "GRU", To: "LIS",
			Date:       "19/07/26",
			Price:      2850.90,
			IsSelected: i == 0,
		})
	}
	return sol
}

func doRequest(t *testing.T, srv *handler.Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestPostSolve(t *testing.T) {
	solver := &mockSolver{
		solveFunc: func(_ context.Context, prefs domain.TripPreferences) (domain.ItinerarySolution, error) {
			assert.Equal(t, "São Paulo", prefs.OriginCity)
			return sampleSolution(2), nil
		},
	}
	srv := handler.NewServer(passthroughPrefs(), solver, nil)

	body := `{"tripType":"ROUND_TRIP","originCity":"São Paulo","mainDestination":{"city":"Lisboa","durationDays":5},"passengers":2}`
	rec := doRequest(t, srv, http.MethodPost, "/solve", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var sol domain.ItinerarySolution
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sol))
	assert.Equal(t, domain.TripRoundTrip, sol.TripType)
	assert.Len(t, sol.ConsideredFlights, 2)
	assert.InDelta(t, 12000, sol.TotalCostEstimate, 0.001)
}

func TestPostSolve_badJSON(t *testing.T) {
	srv := handler.NewServer(passthroughPrefs(), &mockSolver{}, nil)

	rec := doRequest(t, srv, http.MethodPost, "/solve", "{not json")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decodeError(t, rec).Error.Code)
}

func TestPostSolve_validationError(t *testing.T) {
	prefs := &mockPrefs{
		buildFunc: func(domain.TripPreferences) (domain.TripPreferences, error) {
			return domain.TripPreferences{}, fmt.Errorf("service.PreferenceService.Build: %w: main destination is required", domain.ErrValidation)
		},
	}
	srv := handler.NewServer(prefs, &mockSolver{}, nil)

	rec := doRequest(t, srv, http.MethodPost, "/solve", "{}")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decodeError(t, rec)
	assert.Equal(t, "validation_error", resp.Error.Code)
	assert.Equal(t, "main destination is required", resp.Error.Message)
}

func TestPostSolve_oracleFailures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"timeout", domain.ErrOracleTimeout, "oracle_timeout"},
		{"unavailable", domain.ErrOracleUnavailable, "oracle_unavailable"},
		{"empty", domain.ErrOracleEmptyResponse, "oracle_empty_response"},
		{"malformed", domain.ErrOracleMalformedResponse, "oracle_malformed_response"},
		{"incoherent", domain.ErrIncoherentRoute, "incoherent_route"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			solver := &mockSolver{
				solveFunc: func(context.Context, domain.TripPreferences) (domain.ItinerarySolution, error) {
					return domain.ItinerarySolution{}, fmt.Errorf("service.SolveService.Solve: %w", tt.err)
				},
			}
			srv := handler.NewServer(passthroughPrefs(), solver, nil)

			rec := doRequest(t, srv, http.MethodPost, "/solve", "{}")
			require.Equal(t, http.StatusBadGateway, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Error.Code)
		})
	}
}

func TestPostSolve_configurationError(t *testing.T) {
	solver := &mockSolver{
		solveFunc: func(context.Context, domain.TripPreferences) (domain.ItinerarySolution, error) {
			return domain.ItinerarySolution{}, fmt.Errorf("oracle: GEMINI_API_KEY is not set: %w", domain.ErrConfiguration)
		},
	}
	srv := handler.NewServer(passthroughPrefs(), solver, nil)

	rec := doRequest(t, srv, http.MethodPost, "/solve", "{}")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "configuration_error", decodeError(t, rec).Error.Code)
}

func TestGetSolveState(t *testing.T) {
	solver := &mockSolver{
		stateFunc: func() domain.SolveState {
			return domain.SolveState{Status: domain.SolveError, Sequence: 3, ErrorKind: "oracle_timeout"}
		},
	}
	srv := handler.NewServer(passthroughPrefs(), solver, nil)

	rec := doRequest(t, srv, http.MethodGet, "/solve/state", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var state domain.SolveState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, domain.SolveError, state.Status)
	assert.Equal(t, uint64(3), state.Sequence)
	assert.Equal(t, "oracle_timeout", state.ErrorKind)
}

func TestGetCandidates(t *testing.T) {
	sol := sampleSolution(13)
	solver := &mockSolver{
		currentFunc: func() (domain.ItinerarySolution, bool) { return sol, true },
	}
	srv := handler.NewServer(passthroughPrefs(), solver, nil)

	rec := doRequest(t, srv, http.MethodGet, "/solve/candidates?page=3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Page       int                       `json:"page"`
		TotalPages int                       `json:"totalPages"`
		TotalItems int                       `json:"totalItems"`
		Items      []domain.ConsideredFlight `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 13, page.TotalItems)
	assert.Len(t, page.Items, 3)
}

func TestGetCandidates_noSolution(t *testing.T) {
	solver := &mockSolver{
		currentFunc: func() (domain.ItinerarySolution, bool) { return domain.ItinerarySolution{}, false },
	}
	srv := handler.NewServer(passthroughPrefs(), solver, nil)

	rec := doRequest(t, srv, http.MethodGet, "/solve/candidates", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Error.Code)
}

func TestGetCandidates_badPage(t *testing.T) {
	solver := &mockSolver{
		currentFunc: func() (domain.ItinerarySolution, bool) { return sampleSolution(13), true },
	}
	srv := handler.NewServer(passthroughPrefs(), solver, nil)

	rec := doRequest(t, srv, http.MethodGet, "/solve/candidates?page=abc", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decodeError(t, rec).Error.Code)
}
