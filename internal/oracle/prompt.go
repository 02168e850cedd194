package oracle

import (
	"fmt"
	"strings"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
	"github.com/rmoreira/travel-solver/backend/internal/transform"
)

// BuildPrompt renders the natural-language instruction submitted alongside
// the response schema. The data-volume and ±1-day window directives are
// advisory text only — nothing on this side enforces them; the validator
// copes with whatever comes back.
//
// Dates are embedded in BR "DD/MM/YY" form because that is the format the
// schema demands of the oracle's own output; mixing formats in one exchange
// measurably degrades its date handling.
func BuildPrompt(prefs domain.TripPreferences) (string, error) {
	anchor, err := brDateOrEmpty(prefs.MainDestination.SpecificDate)
	if err != nil {
		return "", err
	}

	var stops strings.Builder
	for _, s := range prefs.Stops {
		fixed := ""
		if s.IsFixedDate {
			d, err := brDateOrEmpty(s.SpecificDate)
			if err != nil {
				return "", err
			}
			fixed = fmt.Sprintf(" MANDATORY DATE: %s.", d)
		}
		fmt.Fprintf(&stops, "- Stopover: %s. %d days.%s\n", s.City, s.DurationDays, fixed)
	}
	stopsDesc := stops.String()
	if stopsDesc == "" {
		stopsDesc = "None."
	}

	anchorLine := ""
	if anchor != "" {
		anchorLine = fmt.Sprintf(" ANCHOR DATE: %s.", anchor)
	}
	windowDate := anchor
	if windowDate == "" {
		windowDate = "within the next year"
	}

	tripShape := "The route must return to the origin city (round trip)."
	if prefs.TripType == domain.TripOneWay {
		tripShape = "The route is one-way and ends at the final stop."
	}

	return fmt.Sprintf(`Act as a Travel Intelligence and Route Optimization specialist (NSGA-II solver).

MASSIVE CRAWLER AND FLEXIBLE WINDOW DIRECTIVES:
1. DATA EXHAUSTION: for the "consideredFlights" field, generate as MANY records as possible (aim for 60 to 80 candidates within the token limit).
2. DATE WINDOW (+/- 1 DAY): for every critical leg (especially the main outbound and return), sweep flights for the requested date (%s), one day BEFORE, and one day AFTER, so the solver can surface cheaper or faster options the user may have missed.
3. OPERATOR DIVERSITY: include all alliances (Star Alliance, SkyTeam, Oneworld) and low-cost carriers.
4. REALISTIC PRICES: simulate fare fluctuation across the flexible-window days.

INPUT:
- Origin: %s (search radius %d km for alternative airports)
- Main destination: %s (%d days).%s
- Intermediate stopovers: %s
- Passengers: %d
- Solver weights (relative): cost=%d, time=%d, convenience=%d
- %s

Return the complete JSON document. The "consideredFlights" list is the big-data core of your answer: show the full 3-day-window analysis for every critical leg.`,
		windowDate,
		prefs.OriginCity, prefs.OriginRadiusKm,
		prefs.MainDestination.City, prefs.MainDestination.DurationDays, anchorLine,
		stopsDesc,
		prefs.Passengers,
		prefs.SolverWeights.Cost, prefs.SolverWeights.Time, prefs.SolverWeights.Convenience,
		tripShape,
	), nil
}

// brDateOrEmpty converts an optional ISO date to BR form, passing the empty
// string through untouched.
func brDateOrEmpty(iso string) (string, error) {
	if iso == "" {
		return "", nil
	}
	return transform.ISOToBR(iso)
}
