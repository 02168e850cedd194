package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
	"github.com/rmoreira/travel-solver/backend/internal/repo"
)

// HistoryService implements the saved-itineraries feature: every successful
// solve is recorded and can be listed, fetched, and deleted later.
type HistoryService struct {
	repo repo.ItineraryRepo
}

// NewHistoryService constructs a HistoryService backed by the provided repo.
func NewHistoryService(r repo.ItineraryRepo) *HistoryService {
	return &HistoryService{repo: r}
}

// Save persists a solved itinerary together with the preferences that
// produced it.
func (s *HistoryService) Save(ctx context.Context, prefs domain.TripPreferences, sol domain.ItinerarySolution) (domain.SavedItinerary, error) {
	saved, err := s.repo.Create(ctx, prefs, sol)
	if err != nil {
		return domain.SavedItinerary{}, fmt.Errorf("service.HistoryService.Save: %w", err)
	}
	return saved, nil
}

// List returns one page of saved itineraries, newest first, plus the total
// count across all pages.
func (s *HistoryService) List(ctx context.Context, params domain.PaginationParams) ([]domain.SavedItinerary, int64, error) {
	items, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("service.HistoryService.List: %w", err)
	}
	return items, total, nil
}

// GetByID returns a single saved itinerary.
// Returns domain.ErrNotFound when it does not exist.
func (s *HistoryService) GetByID(ctx context.Context, id uuid.UUID) (domain.SavedItinerary, error) {
	saved, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.SavedItinerary{}, fmt.Errorf("service.HistoryService.GetByID: %w", err)
	}
	return saved, nil
}

// Delete removes a saved itinerary.
// Returns domain.ErrNotFound when it does not exist.
func (s *HistoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.HistoryService.Delete: %w", err)
	}
	return nil
}
