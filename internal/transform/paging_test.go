package transform_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
	"github.com/rmoreira/travel-solver/backend/internal/transform"
)

func makeCandidates(n int) []domain.ConsideredFlight {
	out := make([]domain.ConsideredFlight, n)
	for i := range out {
		out[i] = domain.ConsideredFlight{
			Airline:    "LATAM",
			FlightCode: fmt.Sprintf("LA%03d", i),
			From:       "GRU",
			To:         "GIG",
		}
	}
	return out
}

func TestPageCandidates(t *testing.T) {
	candidates := makeCandidates(13)

	page1 := transform.PageCandidates(candidates, 1)
	assert.Equal(t, 1, page1.Page)
	assert.Equal(t, 3, page1.TotalPages)
	assert.Equal(t, 13, page1.TotalItems)
	require.Len(t, page1.Items, 5)
	assert.Equal(t, "LA000", page1.Items[0].FlightCode)
	assert.Equal(t, "LA004", page1.Items[4].FlightCode)

	page2 := transform.PageCandidates(candidates, 2)
	require.Len(t, page2.Items, 5)
	assert.Equal(t, "LA005", page2.Items[0].FlightCode)

	page3 := transform.PageCandidates(candidates, 3)
	assert.Equal(t, 3, page3.Page)
	require.Len(t, page3.Items, 3)
	assert.Equal(t, "LA012", page3.Items[2].FlightCode)
}

func TestPageCandidates_clamping(t *testing.T) {
	candidates := makeCandidates(13)

	below := transform.PageCandidates(candidates, 0)
	assert.Equal(t, 1, below.Page)
	require.Len(t, below.Items, 5)
	assert.Equal(t, "LA000", below.Items[0].FlightCode)

	above := transform.PageCandidates(candidates, 99)
	assert.Equal(t, 3, above.Page)
	require.Len(t, above.Items, 3)
	assert.Equal(t, "LA012", above.Items[2].FlightCode)
}

func TestPageCandidates_empty(t *testing.T) {
	page := transform.PageCandidates(nil, 4)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.TotalItems)
	assert.Empty(t, page.Items)
}

// Every item appears exactly once across the full sweep of pages.
func TestPageCandidates_partition(t *testing.T) {
	candidates := makeCandidates(23)
	first := transform.PageCandidates(candidates, 1)

	seen := make(map[string]bool, len(candidates))
	for p := 1; p <= first.TotalPages; p++ {
		page := transform.PageCandidates(candidates, p)
		for _, item := range page.Items {
			assert.False(t, seen[item.FlightCode], "duplicate %s", item.FlightCode)
			seen[item.FlightCode] = true
		}
	}
	assert.Len(t, seen, len(candidates))
}
