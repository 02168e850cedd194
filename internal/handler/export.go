// Package handler — export.go implements GET /solve/candidates/export.
// Returns the current solution's considered candidates as a CSV download.
package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
	"github.com/rmoreira/travel-solver/backend/internal/service"
)

// csvHeaders defines the column names written as the first row of any CSV
// export. Fixed nine-column order; consumers rely on it.
var csvHeaders = []string{
	"airline", "flight_code", "origin", "destination",
	"date", "time", "price", "duration", "status",
}

// GetCandidatesExport implements GET /solve/candidates/export.
// Streams all considered candidates of the current solution as CSV with a
// timestamp-based attachment filename. 404 when no solution is available.
func (s *Server) GetCandidatesExport(w http.ResponseWriter, _ *http.Request) {
	solution, ok := s.solver.CurrentSolution()
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", "no solved itinerary available")
		return
	}

	rows := service.BuildExportRows(solution.ConsideredFlights)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", service.ExportFilename(time.Now())))

	cw := csv.NewWriter(w)
	//nolint:errcheck — the writer flags failures; checked once after Flush.
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(exportRowToRecord(row))
	}
	cw.Flush()
	_ = cw.Error()
}

// exportRowToRecord encodes one export row as a flat string slice in header
// order. Prices are fixed to two decimals (BRL minor unit).
func exportRowToRecord(r domain.ExportRow) []string {
	return []string{
		r.Airline,
		r.FlightCode,
		r.Origin,
		r.Destination,
		r.Date,
		r.Time,
		strconv.FormatFloat(r.Price, 'f', 2, 64),
		r.Duration,
		r.Status,
	}
}
