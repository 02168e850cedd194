// Package repo contains all database access logic for the Travel Solver
// backend. No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ItineraryRepo defines the persistence operations for solved itineraries.
// The service layer depends on this interface, not the Postgres
// implementation, which allows the service to be unit-tested with a mock.
type ItineraryRepo interface {
	// Create inserts a solved itinerary with the preferences that produced
	// it and returns the persisted record (with DB-generated id and
	// created_at populated).
	Create(ctx context.Context, prefs domain.TripPreferences, sol domain.ItinerarySolution) (domain.SavedItinerary, error)

	// List returns one page of saved itineraries ordered by created_at
	// descending, plus the total row count.
	List(ctx context.Context, params domain.PaginationParams) ([]domain.SavedItinerary, int64, error)

	// GetByID retrieves a single saved itinerary by its UUID primary key.
	// Returns domain.ErrNotFound if no row with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.SavedItinerary, error)

	// Delete removes a saved itinerary by ID. Returns domain.ErrNotFound if
	// it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgItineraryRepo is the Postgres implementation of ItineraryRepo.
// Preferences and solution are stored as JSONB documents; the queryable
// metadata columns (origin, destination, trip type, total cost) are
// denormalized at insert time.
type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx for
// rollback isolation.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

// Create inserts a new itinerary row and returns the full persisted record.
func (r *pgItineraryRepo) Create(ctx context.Context, prefs domain.TripPreferences, sol domain.ItinerarySolution) (domain.SavedItinerary, error) {
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return domain.SavedItinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: marshal preferences: %w", err)
	}
	solJSON, err := json.Marshal(sol)
	if err != nil {
		return domain.SavedItinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: marshal solution: %w", err)
	}

	const q = `
		INSERT INTO itineraries (origin, destination, trip_type, total_cost, preferences, solution)
		VALUES (@origin, @destination, @trip_type, @total_cost, @preferences, @solution)
		RETURNING id, created_at`

	args := pgx.NamedArgs{
		"origin":      sol.OriginUsed,
		"destination": prefs.MainDestination.City,
		"trip_type":   string(sol.TripType),
		"total_cost":  sol.TotalCostEstimate,
		"preferences": prefsJSON,
		"solution":    solJSON,
	}

	saved := domain.SavedItinerary{Preferences: prefs, Solution: sol}
	if err := r.db.QueryRow(ctx, q, args).Scan(&saved.ID, &saved.CreatedAt); err != nil {
		return domain.SavedItinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: %w", err)
	}
	return saved, nil
}

// List returns a page of saved itineraries newest-first and the total count.
func (r *pgItineraryRepo) List(ctx context.Context, params domain.PaginationParams) ([]domain.SavedItinerary, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM itineraries`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.List: count: %w", err)
	}

	const q = `
		SELECT id, preferences, solution, created_at
		FROM itineraries
		ORDER BY created_at DESC, id DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": params.Limit, "offset": params.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.List: %w", err)
	}
	defer rows.Close()

	items := make([]domain.SavedItinerary, 0, params.Limit)
	for rows.Next() {
		saved, err := scanSaved(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.ItineraryRepo.List: %w", err)
		}
		items = append(items, saved)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.List: %w", err)
	}
	return items, total, nil
}

// GetByID retrieves one saved itinerary.
func (r *pgItineraryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.SavedItinerary, error) {
	const q = `
		SELECT id, preferences, solution, created_at
		FROM itineraries WHERE id = @id`

	saved, err := scanSaved(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.SavedItinerary{}, domain.ErrNotFound
		}
		return domain.SavedItinerary{}, fmt.Errorf("repo.ItineraryRepo.GetByID: %w", err)
	}
	return saved, nil
}

// Delete removes a saved itinerary row.
func (r *pgItineraryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM itineraries WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanSaved maps one row (id, preferences, solution, created_at) into the
// domain type, decoding the two JSONB documents.
func scanSaved(row pgx.Row) (domain.SavedItinerary, error) {
	var (
		saved     domain.SavedItinerary
		prefsJSON []byte
		solJSON   []byte
	)
	if err := row.Scan(&saved.ID, &prefsJSON, &solJSON, &saved.CreatedAt); err != nil {
		return domain.SavedItinerary{}, err
	}
	if err := json.Unmarshal(prefsJSON, &saved.Preferences); err != nil {
		return domain.SavedItinerary{}, fmt.Errorf("decode preferences: %w", err)
	}
	if err := json.Unmarshal(solJSON, &saved.Solution); err != nil {
		return domain.SavedItinerary{}, fmt.Errorf("decode solution: %w", err)
	}
	return saved, nil
}
