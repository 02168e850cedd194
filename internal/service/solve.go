package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rmoreira/travel-solver/backend/internal/domain"
)

// OracleClient is the boundary to the external route-generation oracle.
// Defined here, in the consumer package, so tests can inject a double without
// touching the network.
type OracleClient interface {
	Solve(ctx context.Context, prefs domain.TripPreferences) (domain.ItinerarySolution, error)
}

// HistoryRecorder persists successfully solved itineraries. Save failures
// never fail the solve itself.
type HistoryRecorder interface {
	Save(ctx context.Context, prefs domain.TripPreferences, sol domain.ItinerarySolution) (domain.SavedItinerary, error)
}

// SolveCache is an optional read-through cache of validated solutions keyed
// by the preferences that produced them. Get misses and Set failures are
// indistinguishable from "no cache" to this service.
type SolveCache interface {
	Get(ctx context.Context, prefs domain.TripPreferences) (domain.ItinerarySolution, bool)
	Set(ctx context.Context, prefs domain.TripPreferences, sol domain.ItinerarySolution)
}

// SolveService owns the single mutable solution slot and the full solve
// pipeline: oracle call → validation → cost aggregation → state commit, with
// optional caching and history recording on success.
//
// Every solve gets a monotonically increasing sequence number. A result is
// committed to the slot only while its sequence is still the newest issued;
// a response from a superseded solve is discarded, so a slow oracle can never
// clobber the state of a newer request.
type SolveService struct {
	oracle  OracleClient
	history HistoryRecorder // nil disables history
	cache   SolveCache      // nil disables caching
	log     *slog.Logger

	mu    sync.Mutex
	seq   uint64
	state domain.SolveState
}

// NewSolveService constructs a SolveService. history and cache may be nil.
func NewSolveService(oracle OracleClient, history HistoryRecorder, cache SolveCache, log *slog.Logger) *SolveService {
	if log == nil {
		log = slog.Default()
	}
	return &SolveService{
		oracle:  oracle,
		history: history,
		cache:   cache,
		log:     log,
		state:   domain.SolveState{Status: domain.SolveIdle},
	}
}

// Solve runs the pipeline for already-validated preferences and returns the
// validated solution. The returned solution is handed to the caller even when
// a newer solve superseded this one mid-flight; only the shared slot ignores
// stale results.
func (s *SolveService) Solve(ctx context.Context, prefs domain.TripPreferences) (domain.ItinerarySolution, error) {
	seq := s.begin()

	if s.cache != nil {
		if sol, ok := s.cache.Get(ctx, prefs); ok {
			s.log.InfoContext(ctx, "solve cache hit", "seq", seq)
			s.commitSuccess(ctx, seq, sol)
			return sol, nil
		}
	}

	raw, err := s.oracle.Solve(ctx, prefs)
	if err != nil {
		s.fail(ctx, seq, err)
		return domain.ItinerarySolution{}, fmt.Errorf("service.SolveService.Solve: %w", err)
	}

	sol, err := ValidateSolution(raw, prefs)
	if err != nil {
		s.fail(ctx, seq, err)
		return domain.ItinerarySolution{}, fmt.Errorf("service.SolveService.Solve: %w", err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, prefs, sol)
	}
	s.commitSuccess(ctx, seq, sol)

	if s.history != nil {
		if _, err := s.history.Save(ctx, prefs, sol); err != nil {
			// History is best-effort: the user still gets their itinerary.
			s.log.ErrorContext(ctx, "failed to save itinerary to history", "error", err)
		}
	}

	return sol, nil
}

// State returns a snapshot of the solution slot.
func (s *SolveService) State() domain.SolveState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentSolution returns the committed solution, if the slot holds one.
func (s *SolveService) CurrentSolution() (domain.ItinerarySolution, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Status != domain.SolveSuccess || s.state.Solution == nil {
		return domain.ItinerarySolution{}, false
	}
	return *s.state.Solution, true
}

// begin issues the next sequence number and moves the slot to solving,
// dropping any prior solution: once a new solve starts, earlier results are
// no longer trustworthy.
func (s *SolveService) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.state = domain.SolveState{Status: domain.SolveSolving, Sequence: s.seq}
	return s.seq
}

func (s *SolveService) commitSuccess(ctx context.Context, seq uint64, sol domain.ItinerarySolution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		s.log.DebugContext(ctx, "discarding superseded solve result", "seq", seq, "latest", s.seq)
		return
	}
	s.state = domain.SolveState{Status: domain.SolveSuccess, Sequence: seq, Solution: &sol}
}

func (s *SolveService) fail(ctx context.Context, seq uint64, err error) {
	// Incoherent routes are logged on their own channel for diagnosis; all
	// other oracle-boundary failures share one line with original detail.
	if errors.Is(err, domain.ErrIncoherentRoute) {
		s.log.ErrorContext(ctx, "oracle returned incoherent route", "seq", seq, "error", err)
	} else {
		s.log.ErrorContext(ctx, "solve failed", "seq", seq, "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		s.log.DebugContext(ctx, "discarding superseded solve failure", "seq", seq, "latest", s.seq)
		return
	}
	s.state = domain.SolveState{Status: domain.SolveError, Sequence: seq, ErrorKind: domain.ErrorCode(err)}
}
