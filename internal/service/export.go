package service

import (
	"time"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
)

// BuildExportRows flattens the considered-candidate list into export rows in
// oracle order. The status column comes from the selection flag only.
func BuildExportRows(candidates []domain.ConsideredFlight) []domain.ExportRow {
	rows := make([]domain.ExportRow, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, domain.ExportRow{
			Airline:     c.Airline,
			FlightCode:  c.FlightCode,
			Origin:      c.From,
			Destination: c.To,
			Date:        c.Date,
			Time:        c.DepartureTime,
			Price:       c.Price,
			Duration:    c.Duration,
			Status:      c.StatusLabel(),
		})
	}
	return rows
}

// ExportFilename builds the timestamp-based download filename for a candidate
// export generated at the given instant.
func ExportFilename(now time.Time) string {
	return "considered-flights-" + now.UTC().Format("20060102-150405") + ".csv"
}
