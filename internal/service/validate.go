package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
	"github.com/rmoreira/travel-solver/backend/internal/transform"
)

// ValidateSolution enforces the structural and semantic invariants on a raw
// oracle solution before anything downstream is allowed to trust it.
//
// It checks per-segment cost and distance sanity, segment chain continuity,
// and the terminal-city rule for the trip type. A violation yields
// domain.ErrIncoherentRoute — surfaced, never silently patched, because
// link generation and timeline rendering downstream assume a continuous
// chain.
//
// Two repairs are applied rather than rejected, as the contract allows:
// segment totalCost is recomputed when the oracle's arithmetic is off, and
// objective scores are clamped into [0,100]. The four solution totals and the
// total distance are always replaced with locally computed figures, and each
// segment gets its booking link attached.
func ValidateSolution(raw domain.ItinerarySolution, prefs domain.TripPreferences) (domain.ItinerarySolution, error) {
	sol := raw

	if !sol.TripType.Valid() {
		sol.TripType = prefs.TripType
	}

	if len(sol.Segments) == 0 {
		return domain.ItinerarySolution{}, incoherent("solution has no segments")
	}

	segments := make([]domain.RouteSegment, len(sol.Segments))
	copy(segments, sol.Segments)

	var totalDistance float64
	for i, seg := range segments {
		if seg.UnitCost < 0 || seg.LodgingCost < 0 || seg.FoodCost < 0 || seg.TotalCost < 0 {
			return domain.ItinerarySolution{}, incoherent("segment %d (%s → %s) has a negative cost", i+1, seg.From, seg.To)
		}
		if seg.DistanceKm < 0 {
			return domain.ItinerarySolution{}, incoherent("segment %d (%s → %s) has a negative distance", i+1, seg.From, seg.To)
		}

		if i+1 < len(segments) {
			next := segments[i+1]
			if !sameCity(seg.To, seg.ToCode, next.From, next.FromCode) {
				return domain.ItinerarySolution{}, incoherent(
					"segment %d ends at %q but segment %d starts at %q", i+1, seg.To, i+2, next.From)
			}
		}

		// Recompute the declared total when the oracle's arithmetic does
		// not add up (tolerance: one cent).
		expected := seg.UnitCost*float64(prefs.Passengers) + seg.LodgingCost + seg.FoodCost
		if math.Abs(expected-seg.TotalCost) > 0.01 {
			seg.TotalCost = roundCents(expected)
		}

		seg.BookingLink = transform.SegmentLink(seg)
		segments[i] = seg
		totalDistance += seg.DistanceKm
	}

	first, last := segments[0], segments[len(segments)-1]
	switch sol.TripType {
	case domain.TripRoundTrip:
		if !sameCity(last.To, last.ToCode, first.From, first.FromCode) {
			return domain.ItinerarySolution{}, incoherent(
				"round trip ends at %q instead of returning to %q", last.To, first.From)
		}
	case domain.TripOneWay:
		if !terminatesAtRequestedStop(last, prefs) {
			return domain.ItinerarySolution{}, incoherent(
				"one-way trip ends at %q, which is not a requested stop", last.To)
		}
	}

	sol.Segments = segments
	sol.TotalDistanceKm = totalDistance

	costs := AggregateCosts(segments, prefs.Passengers)
	sol.TotalTransportCost = costs.Transport
	sol.TotalAccommodationCost = costs.Accommodation
	sol.TotalFoodCost = costs.Food
	sol.TotalCostEstimate = costs.Total

	sol.Objectives.Cost.Score = clampScore(sol.Objectives.Cost.Score)
	sol.Objectives.Time.Score = clampScore(sol.Objectives.Time.Score)
	sol.Objectives.Convenience.Score = clampScore(sol.Objectives.Convenience.Score)

	return sol, nil
}

// sameCity compares two route endpoints. IATA codes are authoritative when
// both sides carry one; otherwise city names are compared case-insensitively.
func sameCity(cityA, codeA, cityB, codeB string) bool {
	codeA, codeB = strings.TrimSpace(codeA), strings.TrimSpace(codeB)
	if codeA != "" && codeB != "" {
		return strings.EqualFold(codeA, codeB)
	}
	return strings.EqualFold(strings.TrimSpace(cityA), strings.TrimSpace(cityB))
}

// terminatesAtRequestedStop reports whether the final segment lands on the
// main destination or one of the requested stopovers. The oracle chooses the
// visit order, so any requested city is an acceptable one-way terminal; the
// origin is not.
func terminatesAtRequestedStop(last domain.RouteSegment, prefs domain.TripPreferences) bool {
	terminal := strings.TrimSpace(last.To)
	if cityMatches(terminal, prefs.MainDestination.City) {
		return true
	}
	for _, stop := range prefs.Stops {
		if cityMatches(terminal, stop.City) {
			return true
		}
	}
	return false
}

// cityMatches tolerates the oracle decorating city names with airport codes
// ("Atlanta (ATL)" vs requested "Atlanta") by accepting containment either way.
func cityMatches(got, want string) bool {
	g, w := strings.ToLower(got), strings.ToLower(strings.TrimSpace(want))
	if g == "" || w == "" {
		return false
	}
	return strings.Contains(g, w) || strings.Contains(w, g)
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func incoherent(format string, args ...any) error {
	return fmt.Errorf("service.ValidateSolution: %w: %s", domain.ErrIncoherentRoute, fmt.Sprintf(format, args...))
}
