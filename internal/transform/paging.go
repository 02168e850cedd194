package transform

import "github.com/rmoreira/travel-solver/backend/internal/domain"

// CandidatePageSize is the fixed number of considered candidates shown per
// page of the crawler table.
const CandidatePageSize = 5

// CandidatePage is one clamped slice of the considered-candidate list.
type CandidatePage struct {
	// Page is the 1-indexed page actually served, after clamping.
	Page       int                       `json:"page"`
	TotalPages int                       `json:"totalPages"`
	TotalItems int                       `json:"totalItems"`
	Items      []domain.ConsideredFlight `json:"items"`
}

// PageCandidates slices the candidate list into page-sized chunks.
// The requested page clamps into [1, totalPages]: asking for page 0 or a page
// past the end serves the nearest valid page instead of failing, matching the
// no-op behaviour of the pager controls. An empty list yields a single empty
// page 1.
func PageCandidates(candidates []domain.ConsideredFlight, page int) CandidatePage {
	totalItems := len(candidates)
	totalPages := (totalItems + CandidatePageSize - 1) / CandidatePageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * CandidatePageSize
	end := start + CandidatePageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return CandidatePage{
		Page:       page,
		TotalPages: totalPages,
		TotalItems: totalItems,
		Items:      candidates[start:end],
	}
}
