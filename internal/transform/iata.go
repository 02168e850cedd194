// Package transform contains the deterministic, side-effect-free presentation
// utilities: IATA-code extraction, booking-link construction, date format
// conversion, and candidate-table paging. Everything here is a pure function
// over its inputs; nothing touches the network or the clock.
package transform

import (
	"regexp"
	"strings"
)

var iataPattern = regexp.MustCompile(`[A-Z]{3}`)

// ExtractIATA pulls a 3-letter uppercase airport code out of a free-text
// location ("São Paulo (GRU)" → "GRU"). When no code is present it falls back
// to the first 3 characters of the string, upper-cased. Total function: it
// always returns exactly 3 characters, padding short fallbacks with 'X'.
func ExtractIATA(location string) string {
	if code := iataPattern.FindString(location); code != "" {
		return code
	}

	runes := []rune(strings.ToUpper(strings.TrimSpace(location)))
	if len(runes) > 3 {
		runes = runes[:3]
	}
	for len(runes) < 3 {
		runes = append(runes, 'X')
	}
	return string(runes)
}
