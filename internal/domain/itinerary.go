package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransportMode is the means of travel for a single route segment.
type TransportMode string

const (
	ModeFlight    TransportMode = "FLIGHT"
	ModeCarRental TransportMode = "CAR_RENTAL"
)

// RouteSegment is one directed leg of the itinerary between two cities on a
// specific date. Costs follow the oracle's convention: UnitCost is per
// passenger, LodgingCost and FoodCost are city totals for the whole party.
type RouteSegment struct {
	From     string `json:"from"`
	FromCode string `json:"fromCode"`
	To       string `json:"to"`
	ToCode   string `json:"toCode"`

	// Date is in Brazilian "02/01/06" format, as produced by the oracle.
	Date          string        `json:"date"`
	DepartureTime string        `json:"departureTime,omitempty"`
	FlightCode    string        `json:"flightCode,omitempty"`
	Mode          TransportMode `json:"mode"`
	Duration      string        `json:"duration"`

	UnitCost    float64 `json:"costEstimate"`
	LodgingCost float64 `json:"stayCostEstimate"`
	FoodCost    float64 `json:"foodCostEstimate"`

	// TotalCost is UnitCost*passengers + LodgingCost + FoodCost. The
	// validator recomputes it when the oracle's figure does not add up.
	TotalCost float64 `json:"totalCost"`

	Details    string  `json:"details"`
	DistanceKm float64 `json:"distanceKm"`

	// BookingLink is derived locally after validation (flight search or car
	// rental URL). Never supplied by the oracle.
	BookingLink string `json:"bookingLink,omitempty"`
}

// ConsideredFlight is one offer the oracle reports having evaluated. It is
// presentational evidence only: nothing ties its price to any segment price.
type ConsideredFlight struct {
	ID            string  `json:"id"`
	Airline       string  `json:"airline"`
	FlightCode    string  `json:"flightCode"`
	DepartureTime string  `json:"departureTime"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	Date          string  `json:"date"`
	Price         float64 `json:"price"`
	Duration      string  `json:"duration"`
	Stops         int     `json:"stops"`
	IsSelected    bool    `json:"isSelected"`
	Reason        string  `json:"reasonForChoice,omitempty"`
}

// StatusLabel maps the selection flag to the closed "Selected"/"Rejected"
// vocabulary used in exports. Never derived from free text.
func (c ConsideredFlight) StatusLabel() string {
	if c.IsSelected {
		return "Selected"
	}
	return "Rejected"
}

// ObjectiveMetric is one axis of solution quality as scored by the oracle.
// Score is 0–100 after ingestion; the validator clamps out-of-range values.
type ObjectiveMetric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Score float64 `json:"score"`
}

// ObjectiveVector holds the three competing objectives of a solution.
type ObjectiveVector struct {
	Cost        ObjectiveMetric `json:"cost"`
	Time        ObjectiveMetric `json:"time"`
	Convenience ObjectiveMetric `json:"convenience"`
}

// ItinerarySolution is the full solved itinerary. Constructed once per solve,
// immutable thereafter; the four cost totals and total distance are
// authoritative local recomputations, not oracle-reported figures.
type ItinerarySolution struct {
	TripType   TripType `json:"tripType"`
	OriginUsed string   `json:"originUsed"`

	Segments          []RouteSegment     `json:"segments"`
	ConsideredFlights []ConsideredFlight `json:"consideredFlights"`

	TotalTransportCost     float64 `json:"totalTransportCost"`
	TotalAccommodationCost float64 `json:"totalAccommodationCost"`
	TotalFoodCost          float64 `json:"totalFoodCost"`
	TotalCostEstimate      float64 `json:"totalCostEstimate"`
	TotalDistanceKm        float64 `json:"totalDistanceKm"`

	Reasoning              string          `json:"reasoning"`
	Objectives             ObjectiveVector `json:"objectives"`
	ParetoFrontExplanation string          `json:"paretoFrontExplanation"`
}

// SavedItinerary is a solved itinerary persisted to the history store,
// wrapped with the preferences that produced it and DB-generated metadata.
type SavedItinerary struct {
	ID          uuid.UUID         `json:"id"`
	Preferences TripPreferences   `json:"preferences"`
	Solution    ItinerarySolution `json:"solution"`
	CreatedAt   time.Time         `json:"created_at"`
}
