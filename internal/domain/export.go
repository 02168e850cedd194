package domain

// ExportRow is a single row in the candidate-table CSV export.
// It is a flat view of one ConsideredFlight: one row per candidate, in the
// order the oracle returned them.
//
// Status is the closed two-valued label ("Selected"/"Rejected") derived from
// the candidate's selection flag via ConsideredFlight.StatusLabel — never
// from free text.
type ExportRow struct {
	Airline     string
	FlightCode  string
	Origin      string
	Destination string
	Date        string // BR "02/01/06" formatted, as shown to the user
	Time        string // departure time "15:04", may be empty
	Price       float64
	Duration    string
	Status      string
}
