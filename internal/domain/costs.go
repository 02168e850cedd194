package domain

// CostBreakdown is the authoritative cost roll-up computed locally from
// segment-level data. Total is always the exact sum of the three components.
type CostBreakdown struct {
	Transport     float64 `json:"transport"`
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Total         float64 `json:"total"`
}
