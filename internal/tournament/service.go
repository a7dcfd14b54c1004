package tournament

import (
	"context"
	"fmt"
	"math/bits"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/ForecastLedger_Go/internal/bank"
	"github.com/osse101/ForecastLedger_Go/internal/clock"
	"github.com/osse101/ForecastLedger_Go/internal/domain"
	"github.com/osse101/ForecastLedger_Go/internal/ledger"
	"github.com/osse101/ForecastLedger_Go/internal/logger"
	"github.com/osse101/ForecastLedger_Go/internal/metrics"
)

// Service defines the interface for tournament operations
type Service interface {
	CreateTournament(ctx context.Context, caller domain.Caller, params CreateParams) (uint64, error)
	MakePrediction(ctx context.Context, caller domain.Caller, tournamentID, predictedOutcome uint64) (uint64, error)
	ResolveTournament(ctx context.Context, caller domain.Caller, tournamentID, winningOutcome uint64) error
	ClaimWinnings(ctx context.Context, caller domain.Caller, tournamentID uint64) (uint64, error)

	GetTournament(ctx context.Context, id uint64) (*domain.Tournament, error)
	ListTournaments(ctx context.Context, status domain.TournamentStatus) ([]domain.Tournament, error)
	GetPrediction(ctx context.Context, id uint64) (*domain.Prediction, error)
	GetUserPrediction(ctx context.Context, tournamentID uint64, predictor domain.Caller) (*domain.Prediction, error)
	GetOutcomeTotal(ctx context.Context, tournamentID, outcome uint64) (uint64, error)
	GetUserParticipationCount(ctx context.Context, predictor domain.Caller) (uint64, error)
	GetTournamentCount(ctx context.Context) (uint64, error)
	GetPredictionCount(ctx context.Context) (uint64, error)
	CalculatePotentialWinnings(ctx context.Context, tournamentID uint64, predictor domain.Caller) (uint64, error)
}

// CreateParams carries the caller-supplied tournament parameters.
type CreateParams struct {
	Title                string
	Description          string
	Category             string
	EntryFee             uint64
	DurationTicks        uint64
	ResolutionDelayTicks uint64
	OutcomeCount         uint64
}

type service struct {
	store ledger.Store
	bank  bank.Bank
	clock clock.Clock

	// mu serializes every mutating operation. The engine's read-check-write
	// sequences (index lookup, fee transfer, table updates) assume no
	// interleaving, matching the serializing-host execution model.
	mu sync.Mutex

	// resolvedCache holds tournaments already resolved; a resolved
	// tournament record never changes again, so entries never go stale.
	resolvedCache *lru.Cache[uint64, domain.Tournament]
}

// NewService creates a new tournament service
func NewService(store ledger.Store, b bank.Bank, c clock.Clock) (Service, error) {
	cache, err := lru.New[uint64, domain.Tournament](ResolvedCacheSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBuildCache, err)
	}
	return &service{
		store:         store,
		bank:          b,
		clock:         c,
		resolvedCache: cache,
	}, nil
}

// CreateTournament validates the parameters, allocates a tournament id and
// stores the new tournament with an empty pool.
func (s *service) CreateTournament(ctx context.Context, caller domain.Caller, params CreateParams) (uint64, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateTournamentCalled, "caller", caller, "title", params.Title, "outcomes", params.OutcomeCount)

	if err := validateCreateParams(params); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.store.NextTournamentID(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToAllocateID, err)
	}

	now := s.clock.Now()
	t := &domain.Tournament{
		ID:             id,
		Creator:        caller,
		Title:          params.Title,
		Description:    params.Description,
		Category:       params.Category,
		EntryFee:       params.EntryFee,
		StartTick:      now,
		EndTick:        now + domain.Tick(params.DurationTicks),
		ResolutionTick: now + domain.Tick(params.DurationTicks) + domain.Tick(params.ResolutionDelayTicks),
		OutcomeCount:   params.OutcomeCount,
	}

	if err := s.store.PutTournament(ctx, t); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToStoreTournament, err)
	}

	metrics.TournamentsCreated.Inc()
	log.Info(LogMsgTournamentCreated, "tournament_id", id, "end_tick", t.EndTick, "resolution_tick", t.ResolutionTick)
	return id, nil
}

// MakePrediction places the caller's single prediction against one outcome,
// collecting the entry fee into custody before any ledger state changes.
func (s *service) MakePrediction(ctx context.Context, caller domain.Caller, tournamentID, predictedOutcome uint64) (uint64, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgMakePredictionCalled, "caller", caller, "tournament_id", tournamentID, "outcome", predictedOutcome)

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.getExistingTournament(ctx, tournamentID)
	if err != nil {
		return 0, err
	}

	if _, exists, err := s.store.GetUserPredictionID(ctx, tournamentID, caller); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToCheckIndex, err)
	} else if exists {
		return 0, domain.ErrAlreadyPredicted
	}

	now := s.clock.Now()
	if !t.PredictionOpen(now) {
		return 0, fmt.Errorf("%w (tick %d, end %d)", domain.ErrTournamentClosed, now, t.EndTick)
	}

	if predictedOutcome >= t.OutcomeCount {
		return 0, fmt.Errorf("%w: %d of %d", domain.ErrInvalidOutcome, predictedOutcome, t.OutcomeCount)
	}

	// Fee collection precedes every ledger mutation; a failed transfer
	// leaves no observable state change.
	if t.EntryFee > 0 {
		if err := s.bank.Transfer(ctx, bank.AccountFor(caller), bank.Custody, t.EntryFee); err != nil {
			return 0, err
		}
	}

	id, err := s.store.NextPredictionID(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToAllocateID, err)
	}

	p := &domain.Prediction{
		ID:               id,
		TournamentID:     tournamentID,
		Predictor:        caller,
		PredictedOutcome: predictedOutcome,
		Amount:           t.EntryFee,
		CreatedAt:        now,
	}

	if err := s.store.PutPrediction(ctx, p); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToStorePrediction, err)
	}
	if err := s.store.PutUserPredictionID(ctx, tournamentID, caller, id); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToWriteIndex, err)
	}
	if err := s.store.AddOutcomeTotal(ctx, tournamentID, predictedOutcome, t.EntryFee); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToAddOutcomeTotal, err)
	}

	t.TotalPool += t.EntryFee
	t.TotalPredictions++
	if err := s.store.PutTournament(ctx, t); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToStoreTournament, err)
	}

	if err := s.store.IncrementParticipation(ctx, caller); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToBumpParticipation, err)
	}

	metrics.PredictionsPlaced.WithLabelValues(t.Category).Inc()
	metrics.FeesCollected.Add(float64(t.EntryFee))
	log.Info(LogMsgPredictionPlaced, "prediction_id", id, "tournament_id", tournamentID, "amount", t.EntryFee)
	return id, nil
}

// ResolveTournament declares the winning outcome. Creator-only, one-shot,
// and only once the resolution tick has been reached.
func (s *service) ResolveTournament(ctx context.Context, caller domain.Caller, tournamentID, winningOutcome uint64) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgResolveTournamentCalled, "caller", caller, "tournament_id", tournamentID, "winning_outcome", winningOutcome)

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.getExistingTournament(ctx, tournamentID)
	if err != nil {
		return err
	}

	if t.Creator != caller {
		return domain.ErrOwnerOnly
	}

	now := s.clock.Now()
	if !t.Resolvable(now) {
		return fmt.Errorf("%w (tick %d, resolution %d)", domain.ErrTournamentActive, now, t.ResolutionTick)
	}

	if t.IsResolved {
		return domain.ErrAlreadyResolved
	}

	if winningOutcome >= t.OutcomeCount {
		return fmt.Errorf("%w: %d of %d", domain.ErrInvalidOutcome, winningOutcome, t.OutcomeCount)
	}

	t.WinningOutcome = winningOutcome
	t.IsResolved = true
	if err := s.store.PutTournament(ctx, t); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToStoreTournament, err)
	}

	metrics.TournamentsResolved.Inc()
	log.Info(LogMsgTournamentResolved, "tournament_id", tournamentID, "winning_outcome", winningOutcome, "pool", t.TotalPool)
	return nil
}

// ClaimWinnings pays out the caller's proportional share of the pool for a
// winning prediction. Exactly-once: the claimed flag flips before the
// custody transfer and a second call fails with AlreadyClaimed.
func (s *service) ClaimWinnings(ctx context.Context, caller domain.Caller, tournamentID uint64) (uint64, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgClaimWinningsCalled, "caller", caller, "tournament_id", tournamentID)

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.getExistingTournament(ctx, tournamentID)
	if err != nil {
		return 0, err
	}

	p, err := s.getExistingPrediction(ctx, tournamentID, caller)
	if err != nil {
		return 0, err
	}

	if !t.IsResolved {
		return 0, domain.ErrNotResolved
	}

	if p.Claimed {
		return 0, domain.ErrAlreadyClaimed
	}

	if p.PredictedOutcome != t.WinningOutcome {
		return 0, domain.ErrNotAWinner
	}

	winningTotal, err := s.store.GetOutcomeTotal(ctx, tournamentID, t.WinningOutcome)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToGetOutcomeTotal, err)
	}
	if winningTotal == 0 {
		return 0, domain.ErrNoWinners
	}

	winnings := proportionalShare(t.TotalPool, p.Amount, winningTotal)

	p.Claimed = true
	if err := s.store.PutPrediction(ctx, p); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToStorePrediction, err)
	}

	if winnings > 0 {
		if err := s.bank.Transfer(ctx, bank.Custody, bank.AccountFor(caller), winnings); err != nil {
			return 0, fmt.Errorf("%s: %w", ErrContextFailedToPayWinnings, err)
		}
	}

	metrics.WinningsClaimed.Inc()
	metrics.WinningsPaid.Add(float64(winnings))
	log.Info(LogMsgWinningsClaimed, "caller", caller, "tournament_id", tournamentID, "amount", winnings)
	return winnings, nil
}

// GetTournament retrieves a tournament by id, nil if absent.
func (s *service) GetTournament(ctx context.Context, id uint64) (*domain.Tournament, error) {
	if cached, ok := s.resolvedCache.Get(id); ok {
		t := cached
		return &t, nil
	}

	t, err := s.store.GetTournament(ctx, id)
	if err != nil || t == nil {
		return nil, err
	}
	if t.IsResolved {
		s.resolvedCache.Add(id, *t)
	}
	return t, nil
}

// ListTournaments returns all tournaments, optionally filtered by derived
// status. Sequential ids make this a walk of point lookups.
func (s *service) ListTournaments(ctx context.Context, status domain.TournamentStatus) ([]domain.Tournament, error) {
	count, err := s.store.TournamentCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadCounter, err)
	}

	now := s.clock.Now()
	out := make([]domain.Tournament, 0, count)
	for id := uint64(0); id < count; id++ {
		t, err := s.GetTournament(ctx, id)
		if err != nil {
			return nil, err
		}
		if t == nil {
			continue
		}
		if status != "" && t.Status(now) != status {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

// GetPrediction retrieves a prediction by id, nil if absent.
func (s *service) GetPrediction(ctx context.Context, id uint64) (*domain.Prediction, error) {
	return s.store.GetPrediction(ctx, id)
}

// GetUserPrediction retrieves a predictor's prediction for a tournament via
// the predictor index, nil if absent.
func (s *service) GetUserPrediction(ctx context.Context, tournamentID uint64, predictor domain.Caller) (*domain.Prediction, error) {
	id, exists, err := s.store.GetUserPredictionID(ctx, tournamentID, predictor)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCheckIndex, err)
	}
	if !exists {
		return nil, nil
	}
	return s.store.GetPrediction(ctx, id)
}

// GetOutcomeTotal returns the accumulated stake on an outcome, 0 if none.
func (s *service) GetOutcomeTotal(ctx context.Context, tournamentID, outcome uint64) (uint64, error) {
	return s.store.GetOutcomeTotal(ctx, tournamentID, outcome)
}

// GetUserParticipationCount returns how many tournaments the predictor has
// entered, 0 if unknown.
func (s *service) GetUserParticipationCount(ctx context.Context, predictor domain.Caller) (uint64, error) {
	return s.store.ParticipationCount(ctx, predictor)
}

// GetTournamentCount returns the number of tournaments created.
func (s *service) GetTournamentCount(ctx context.Context) (uint64, error) {
	return s.store.TournamentCount(ctx)
}

// GetPredictionCount returns the number of predictions placed.
func (s *service) GetPredictionCount(ctx context.Context) (uint64, error) {
	return s.store.PredictionCount(ctx)
}

// CalculatePotentialWinnings applies the payout formula non-destructively.
// Returns 0 when the tournament or prediction is absent, the tournament is
// unresolved, or the prediction lost.
func (s *service) CalculatePotentialWinnings(ctx context.Context, tournamentID uint64, predictor domain.Caller) (uint64, error) {
	t, err := s.GetTournament(ctx, tournamentID)
	if err != nil {
		return 0, err
	}
	if t == nil || !t.IsResolved {
		return 0, nil
	}

	p, err := s.GetUserPrediction(ctx, tournamentID, predictor)
	if err != nil {
		return 0, err
	}
	if p == nil || p.PredictedOutcome != t.WinningOutcome {
		return 0, nil
	}

	winningTotal, err := s.store.GetOutcomeTotal(ctx, tournamentID, t.WinningOutcome)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToGetOutcomeTotal, err)
	}
	if winningTotal == 0 {
		return 0, nil
	}

	return proportionalShare(t.TotalPool, p.Amount, winningTotal), nil
}

func (s *service) getExistingTournament(ctx context.Context, id uint64) (*domain.Tournament, error) {
	t, err := s.store.GetTournament(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetTournament, err)
	}
	if t == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrTournamentNotFound, id)
	}
	return t, nil
}

func (s *service) getExistingPrediction(ctx context.Context, tournamentID uint64, predictor domain.Caller) (*domain.Prediction, error) {
	id, exists, err := s.store.GetUserPredictionID(ctx, tournamentID, predictor)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCheckIndex, err)
	}
	if !exists {
		return nil, domain.ErrPredictionNotFound
	}
	p, err := s.store.GetPrediction(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetPrediction, err)
	}
	if p == nil {
		return nil, domain.ErrPredictionNotFound
	}
	return p, nil
}

func validateCreateParams(params CreateParams) error {
	if params.OutcomeCount < MinOutcomeCount {
		return fmt.Errorf("%w: outcome count must be at least %d", domain.ErrInvalidParameters, MinOutcomeCount)
	}
	if params.DurationTicks == 0 {
		return fmt.Errorf("%w: duration must be positive", domain.ErrInvalidParameters)
	}
	if len(params.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", domain.ErrInvalidParameters, domain.MaxTitleLength)
	}
	if len(params.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", domain.ErrInvalidParameters, domain.MaxDescriptionLength)
	}
	if len(params.Category) > domain.MaxCategoryLength {
		return fmt.Errorf("%w: category exceeds %d characters", domain.ErrInvalidParameters, domain.MaxCategoryLength)
	}
	return nil
}

// proportionalShare computes floor(pool * stake / winningTotal) through a
// 128-bit intermediate so the product cannot overflow. stake is part of
// winningTotal, so the quotient is at most pool and fits in 64 bits.
func proportionalShare(pool, stake, winningTotal uint64) uint64 {
	if winningTotal == 0 || stake > winningTotal {
		return 0
	}
	hi, lo := bits.Mul64(pool, stake)
	quo, _ := bits.Div64(hi, lo, winningTotal)
	return quo
}
