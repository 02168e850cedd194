package service

import (
	"math"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
)

// AggregateCosts recomputes the authoritative cost roll-up from segment-level
// data. Oracle-reported totals are never trusted for display; this is the
// only source of the four figures shown to the user.
//
//	transport     = Σ unitCost * passengers
//	accommodation = Σ lodgingCost
//	food          = Σ foodCost
//	total         = transport + accommodation + food
//
// Inputs are already rounded currency values in practice; any fractional
// cents that do appear are rounded half-up to the minor unit per component,
// so total is always the exact sum of the three components.
func AggregateCosts(segments []domain.RouteSegment, passengers int) domain.CostBreakdown {
	var transport, accommodation, food float64
	for _, seg := range segments {
		transport += seg.UnitCost * float64(passengers)
		accommodation += seg.LodgingCost
		food += seg.FoodCost
	}

	transport = roundCents(transport)
	accommodation = roundCents(accommodation)
	food = roundCents(food)

	return domain.CostBreakdown{
		Transport:     transport,
		Accommodation: accommodation,
		Food:          food,
		Total:         transport + accommodation + food,
	}
}

// roundCents rounds half-up to two decimal places (BRL minor unit).
func roundCents(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
