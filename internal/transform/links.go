package transform

import (
	"fmt"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
)

// FlightSearchLink builds a Google Flights search URL for a leg between two
// free-text locations on a given date. Display-only redirect: this system
// never calls the URL. Location strings go through ExtractIATA first, so the
// result is always well-formed regardless of input.
func FlightSearchLink(from, to, date string) string {
	return fmt.Sprintf(
		"https://www.google.com/travel/flights?q=Flights%%20from%%20%s%%20to%%20%s%%20on%%20%s",
		ExtractIATA(from), ExtractIATA(to), date,
	)
}

// CarRentalLink builds a Kayak car-rental URL for a pickup location and date.
func CarRentalLink(location, date string) string {
	return fmt.Sprintf("https://www.kayak.com.br/cars/%s/%s", ExtractIATA(location), date)
}

// SegmentLink picks the booking link matching the segment's transport mode:
// a flight search for flights, a car rental search at the origin otherwise.
func SegmentLink(seg domain.RouteSegment) string {
	if seg.Mode == domain.ModeFlight {
		return FlightSearchLink(seg.From, seg.To, seg.Date)
	}
	return CarRentalLink(seg.From, seg.Date)
}
