// Package service contains the business logic for the Travel Solver backend.
// Services validate inputs, enforce the trust boundary around the oracle, and
// orchestrate repo calls. No SQL and no HTTP live here.
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
)

// PreferenceService implements the preference model: it turns raw user-entered
// trip parameters into a validated, normalized TripPreferences value.
// Pure: no side effects, no I/O.
type PreferenceService struct{}

// NewPreferenceService constructs a PreferenceService.
func NewPreferenceService() *PreferenceService {
	return &PreferenceService{}
}

// Build validates and normalizes raw preferences.
//
// Rules enforced:
//   - trip type must be ROUND_TRIP or ONE_WAY (empty defaults to ROUND_TRIP)
//   - main destination city is mandatory and distinct from every stopover
//   - every stay duration and the passenger count must be at least 1
//   - solver weights must each lie in [0,100]
//   - fixed dates must be valid ISO dates, and IsFixedDate is forced to agree
//     with date presence — the toggle can never diverge from the date field
//
// All failures wrap domain.ErrValidation.
func (s *PreferenceService) Build(raw domain.TripPreferences) (domain.TripPreferences, error) {
	prefs := raw

	if prefs.TripType == "" {
		prefs.TripType = domain.TripRoundTrip
	}
	if !prefs.TripType.Valid() {
		return domain.TripPreferences{}, buildErr("unknown trip type %q", raw.TripType)
	}

	prefs.OriginCity = strings.TrimSpace(prefs.OriginCity)
	if prefs.OriginCity == "" {
		return domain.TripPreferences{}, buildErr("origin city is required")
	}
	if prefs.OriginRadiusKm < 0 {
		return domain.TripPreferences{}, buildErr("origin search radius must not be negative")
	}

	prefs.MainDestination.City = strings.TrimSpace(prefs.MainDestination.City)
	if prefs.MainDestination.City == "" {
		return domain.TripPreferences{}, buildErr("main destination is required")
	}

	if prefs.Passengers < 1 {
		return domain.TripPreferences{}, buildErr("passenger count must be at least 1")
	}

	if err := checkWeight("cost", prefs.SolverWeights.Cost); err != nil {
		return domain.TripPreferences{}, err
	}
	if err := checkWeight("time", prefs.SolverWeights.Time); err != nil {
		return domain.TripPreferences{}, err
	}
	if err := checkWeight("convenience", prefs.SolverWeights.Convenience); err != nil {
		return domain.TripPreferences{}, err
	}

	main, err := normalizeStopover(prefs.MainDestination)
	if err != nil {
		return domain.TripPreferences{}, err
	}
	prefs.MainDestination = main

	for i, stop := range prefs.Stops {
		stop.City = strings.TrimSpace(stop.City)
		if stop.City == "" {
			return domain.TripPreferences{}, buildErr("stopover %d: city is required", i+1)
		}
		if strings.EqualFold(stop.City, prefs.MainDestination.City) {
			return domain.TripPreferences{}, buildErr("stopover %q duplicates the main destination", stop.City)
		}
		normalized, err := normalizeStopover(stop)
		if err != nil {
			return domain.TripPreferences{}, err
		}
		prefs.Stops[i] = normalized
	}

	return prefs, nil
}

// normalizeStopover checks the stay duration, validates any fixed date, and
// forces the IsFixedDate flag to match date presence.
func normalizeStopover(stop domain.Stopover) (domain.Stopover, error) {
	if stop.DurationDays < 1 {
		return domain.Stopover{}, buildErr("%s: stay duration must be at least 1 day", stop.City)
	}

	if stop.SpecificDate != "" {
		if _, err := time.Parse("2006-01-02", stop.SpecificDate); err != nil {
			return domain.Stopover{}, buildErr("%s: fixed date %q is not a valid ISO date", stop.City, stop.SpecificDate)
		}
		stop.IsFixedDate = true
	} else {
		stop.IsFixedDate = false
	}
	return stop, nil
}

func checkWeight(name string, w int) error {
	if w < 0 || w > 100 {
		return buildErr("solver weight %q must be between 0 and 100, got %d", name, w)
	}
	return nil
}

func buildErr(format string, args ...any) error {
	return fmt.Errorf("service.PreferenceService.Build: %w: %s", domain.ErrValidation, fmt.Sprintf(format, args...))
}
