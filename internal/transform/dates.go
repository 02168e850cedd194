package transform

import (
	"fmt"
	"time"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
)

const (
	isoDateLayout = "2006-01-02"
	brDateLayout  = "02/01/06"
)

// ISOToBR converts an ISO date ("2026-07-19") to the Brazilian short form
// the oracle works in ("19/07/26"). Malformed input returns
// domain.ErrInvalidDateFormat rather than a silently wrong string.
func ISOToBR(iso string) (string, error) {
	t, err := time.Parse(isoDateLayout, iso)
	if err != nil {
		return "", fmt.Errorf("transform.ISOToBR: %q: %w", iso, domain.ErrInvalidDateFormat)
	}
	return t.Format(brDateLayout), nil
}

// BRToISO converts a Brazilian short date ("19/07/26") back to ISO form.
// Two-digit years follow time.Parse's pivot (00–68 → 20YY); itineraries are
// always planned in the present era, so the 19YY branch never applies.
func BRToISO(br string) (string, error) {
	t, err := time.Parse(brDateLayout, br)
	if err != nil {
		return "", fmt.Errorf("transform.BRToISO: %q: %w", br, domain.ErrInvalidDateFormat)
	}
	return t.Format(isoDateLayout), nil
}
