// Package domain contains the core data types for the Travel Solver backend.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (oracle, repo, service, handler).
package domain

// TripType distinguishes routes that loop back to the origin from linear ones.
type TripType string

const (
	// TripRoundTrip routes return to the origin city after the last stop.
	TripRoundTrip TripType = "ROUND_TRIP"
	// TripOneWay routes terminate at the final requested stop.
	TripOneWay TripType = "ONE_WAY"
)

// Valid reports whether t is one of the two known trip types.
func (t TripType) Valid() bool {
	return t == TripRoundTrip || t == TripOneWay
}

// Stopover is one city the traveller wants to visit, with its stay length.
// SpecificDate pins the arrival to a calendar day (ISO "2006-01-02");
// IsFixedDate must agree with SpecificDate presence — PreferenceService
// normalizes the pair so they can never diverge.
type Stopover struct {
	City         string `json:"city"`
	DurationDays int    `json:"durationDays"`
	IsFixedDate  bool   `json:"isFixedDate"`
	SpecificDate string `json:"specificDate,omitempty"`
}

// SolverWeights expresses the traveller's relative priorities. Each weight is
// in [0,100]. Weights are relative, not a simplex: they need not sum to 100.
type SolverWeights struct {
	Cost        int `json:"cost"`
	Time        int `json:"time"`
	Convenience int `json:"convenience"`
}

// TripPreferences is the validated, normalized solve request.
// Built exclusively by PreferenceService; callers own the value until it is
// handed to the solve layer.
type TripPreferences struct {
	TripType TripType `json:"tripType"`

	// OriginCity is free text, optionally containing an IATA hint (e.g.
	// "São Paulo (GRU)"). OriginRadiusKm widens the departure airport search.
	OriginCity     string `json:"originCity"`
	OriginRadiusKm int    `json:"originRadiusKm"`

	// MainDestination is mandatory and distinct from Stops.
	MainDestination Stopover `json:"mainDestination"`

	Passengers int `json:"passengers"`

	// Stops are intermediate stopovers in visit order.
	Stops []Stopover `json:"stops,omitempty"`

	SolverWeights SolverWeights `json:"solverWeights"`
}
