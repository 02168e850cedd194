package oracle

// JSON schema sent to the oracle as responseSchema. The required arrays are
// the authoritative list of fields that must be present; departureTime,
// flightCode, and reasonForChoice stay optional. Field names must match the
// json tags on the domain types exactly, since the oracle's output decodes
// straight into them.

func metricSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"name":  map[string]any{"type": "STRING"},
			"value": map[string]any{"type": "NUMBER"},
			"score": map[string]any{"type": "NUMBER", "description": "Score from 0 to 100 for this criterion"},
		},
		"required": []string{"name", "value", "score"},
	}
}

func consideredFlightSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"id":            map[string]any{"type": "STRING"},
			"airline":       map[string]any{"type": "STRING"},
			"flightCode":    map[string]any{"type": "STRING", "description": "Unique flight code (e.g. LA3456, G31212). Do NOT include dates or times here."},
			"departureTime": map[string]any{"type": "STRING", "description": "Time only, HH:MM format (e.g. 15:30)"},
			"from":          map[string]any{"type": "STRING"},
			"to":            map[string]any{"type": "STRING"},
			"date":          map[string]any{"type": "STRING", "description": "Date in Brazilian DD/MM/YY format."},
			"price":         map[string]any{"type": "NUMBER", "description": "Price converted to BRL."},
			"duration":      map[string]any{"type": "STRING", "description": "Human-readable duration (e.g. 8h 20m)"},
			"stops":         map[string]any{"type": "NUMBER"},
			"isSelected":    map[string]any{"type": "BOOLEAN"},
			"reasonForChoice": map[string]any{"type": "STRING"},
		},
		"required": []string{
			"id", "airline", "flightCode", "departureTime", "from", "to",
			"date", "price", "duration", "stops", "isSelected",
		},
	}
}

func routeSegmentSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"from":             map[string]any{"type": "STRING"},
			"fromCode":         map[string]any{"type": "STRING"},
			"to":               map[string]any{"type": "STRING"},
			"toCode":           map[string]any{"type": "STRING"},
			"date":             map[string]any{"type": "STRING", "description": "Date in Brazilian DD/MM/YY format. Respect any mandatory dates given."},
			"departureTime":    map[string]any{"type": "STRING"},
			"flightCode":       map[string]any{"type": "STRING"},
			"mode":             map[string]any{"type": "STRING", "enum": []string{"FLIGHT", "CAR_RENTAL"}},
			"duration":         map[string]any{"type": "STRING"},
			"costEstimate":     map[string]any{"type": "NUMBER"},
			"stayCostEstimate": map[string]any{"type": "NUMBER"},
			"foodCostEstimate": map[string]any{"type": "NUMBER"},
			"totalCost":        map[string]any{"type": "NUMBER"},
			"details":          map[string]any{"type": "STRING"},
			"distanceKm":       map[string]any{"type": "NUMBER"},
		},
		"required": []string{
			"from", "fromCode", "to", "toCode", "date", "mode", "duration",
			"costEstimate", "stayCostEstimate", "foodCostEstimate",
			"totalCost", "details", "distanceKm",
		},
	}
}

// ItinerarySchema is the strict output schema for a full itinerary solution.
func ItinerarySchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"tripType":   map[string]any{"type": "STRING", "enum": []string{"ROUND_TRIP", "ONE_WAY"}},
			"originUsed": map[string]any{"type": "STRING"},
			"segments": map[string]any{
				"type":  "ARRAY",
				"items": routeSegmentSchema(),
			},
			"consideredFlights": map[string]any{
				"type":        "ARRAY",
				"items":       consideredFlightSchema(),
				"description": "Massive, exhaustive list of flights analyzed by the crawler",
			},
			"totalTransportCost":     map[string]any{"type": "NUMBER"},
			"totalAccommodationCost": map[string]any{"type": "NUMBER"},
			"totalFoodCost":          map[string]any{"type": "NUMBER"},
			"totalCostEstimate":      map[string]any{"type": "NUMBER"},
			"totalDistanceKm":        map[string]any{"type": "NUMBER"},
			"reasoning":              map[string]any{"type": "STRING"},
			"objectives": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"cost":        metricSchema(),
					"time":        metricSchema(),
					"convenience": metricSchema(),
				},
				"required": []string{"cost", "time", "convenience"},
			},
			"paretoFrontExplanation": map[string]any{"type": "STRING"},
		},
		"required": []string{
			"tripType", "originUsed", "segments", "consideredFlights",
			"totalTransportCost", "totalAccommodationCost", "totalFoodCost",
			"totalCostEstimate", "totalDistanceKm", "reasoning",
			"objectives", "paretoFrontExplanation",
		},
	}
}
