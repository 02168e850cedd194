package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmoreira/travel-solver/backend/internal/transform"
)

func TestExtractIATA(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"embedded code", "São Paulo (GRU)", "GRU"},
		{"bare code", "ATL", "ATL"},
		{"code inside word run", "Goiânia GYN Brasil", "GYN"},
		{"no code falls back to first three", "tokyo", "TOK"},
		{"fallback uppercases", "rio de janeiro", "RIO"},
		{"two-letter input padded", "ny", "NYX"},
		{"empty input padded", "", "XXX"},
		{"whitespace only padded", "   ", "XXX"},
		{"accented fallback", "Óbidos", "ÓBI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transform.ExtractIATA(tt.in))
		})
	}
}

// TestExtractIATA_totalAndStable verifies the contract that extraction is a
// total, idempotent function: any input yields exactly 3 characters, and
// repeating the call never changes the answer.
func TestExtractIATA_totalAndStable(t *testing.T) {
	inputs := []string{"", "a", "ab", "abc", "Paris CDG", "x (Y) z", "aeroporto internacional"}

	for _, in := range inputs {
		first := transform.ExtractIATA(in)
		assert.Len(t, []rune(first), 3, "input %q", in)
		assert.Equal(t, first, transform.ExtractIATA(in), "input %q", in)
	}
}
