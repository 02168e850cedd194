package handler_test

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
	"github.com/rmoreira/travel-solver/backend/internal/handler"
)

func TestGetCandidatesExport(t *testing.T) {
	sol := sampleSolution(2)
	solver := &mockSolver{
		currentFunc: func() (domain.ItinerarySolution, bool) { return sol, true },
	}
	srv := handler.NewServer(passthroughPrefs(), solver, nil)

	rec := doRequest(t, srv, http.MethodGet, "/solve/candidates/export", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	disposition := rec.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, "considered-flights-")
	assert.Contains(t, disposition, ".csv")

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + two candidates

	assert.Equal(t, []string{
		"airline", "flight_code", "origin", "destination",
		"date", "time", "price", "duration", "status",
	}, records[0])

	assert.Equal(t, "LA000", records[1][1])
	assert.Equal(t, "GRU", records[1][2])
	assert.Equal(t, "LIS", records[1][3])
	assert.Equal(t, "2850.90", records[1][6])
	assert.Equal(t, "Selected", records[1][8])
	assert.Equal(t, "Rejected", records[2][8])
}

func TestGetCandidatesExport_noSolution(t *testing.T) {
	solver := &mockSolver{
		currentFunc: func() (domain.ItinerarySolution, bool) { return domain.ItinerarySolution{}, false },
	}
	srv := handler.NewServer(passthroughPrefs(), solver, nil)

	rec := doRequest(t, srv, http.MethodGet, "/solve/candidates/export", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeError(t, rec).Error.Code)
}

// An empty candidate list still exports a well-formed header-only CSV.
func TestGetCandidatesExport_emptyCandidates(t *testing.T) {
	solver := &mockSolver{
		currentFunc: func() (domain.ItinerarySolution, bool) { return sampleSolution(0), true },
	}
	srv := handler.NewServer(passthroughPrefs(), solver, nil)

	rec := doRequest(t, srv, http.MethodGet, "/solve/candidates/export", "")
	require.Equal(t, http.StatusOK, rec.Code)

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "airline", records[0][0])
}
