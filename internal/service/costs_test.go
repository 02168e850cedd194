package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
	"github.com/rmoreira/travel-solver/backend/internal/service"
)

func TestAggregateCosts(t *testing.T) {
	segments := []domain.RouteSegment{
		{UnitCost: 500, LodgingCost: 300, FoodCost: 100},
	}

	costs := service.AggregateCosts(segments, 2)
	assert.InDelta(t, 1000, costs.Transport, 0.001)
	assert.InDelta(t, 300, costs.Accommodation, 0.001)
	assert.InDelta(t, 100, costs.Food, 0.001)
	assert.InDelta(t, 1400, costs.Total, 0.001)
}

func TestAggregateCosts_multiSegment(t *testing.T) {
	segments := []domain.RouteSegment{
		{UnitCost: 850.50, LodgingCost: 1200, FoodCost: 450},
		{UnitCost: 320.25, LodgingCost: 0, FoodCost: 0},
		{UnitCost: 910, LodgingCost: 800.75, FoodCost: 390.50},
	}

	costs := service.AggregateCosts(segments, 3)
	assert.InDelta(t, 6242.25, costs.Transport, 0.001)
	assert.InDelta(t, 2000.75, costs.Accommodation, 0.001)
	assert.InDelta(t, 840.50, costs.Food, 0.001)
	assert.InDelta(t, costs.Transport+costs.Accommodation+costs.Food, costs.Total, 0.001)
}

func TestAggregateCosts_empty(t *testing.T) {
	costs := service.AggregateCosts(nil, 4)
	assert.Zero(t, costs.Transport)
	assert.Zero(t, costs.Accommodation)
	assert.Zero(t, costs.Food)
	assert.Zero(t, costs.Total)
}

// Total is always the exact sum of the rounded components, even when raw
// inputs carry sub-cent noise.
func TestAggregateCosts_roundsToCents(t *testing.T) {
	segments := []domain.RouteSegment{
		{UnitCost: 33.333, LodgingCost: 10.005, FoodCost: 5.001},
		{UnitCost: 66.667, LodgingCost: 20.004, FoodCost: 4.999},
	}

	costs := service.AggregateCosts(segments, 1)
	assert.InDelta(t, 100.00, costs.Transport, 0.0001)
	assert.InDelta(t, 30.01, costs.Accommodation, 0.0001)
	assert.InDelta(t, 10.00, costs.Food, 0.0001)
	assert.InDelta(t, costs.Transport+costs.Accommodation+costs.Food, costs.Total, 0.0001)
}
