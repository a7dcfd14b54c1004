package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ForecastLedger_Go/internal/domain"
	"github.com/osse101/ForecastLedger_Go/internal/ledger"
)

// LedgerStore implements ledger.Store for PostgreSQL. Rows mirror the four
// logical tables plus the counters table; all lookups are single-row.
type LedgerStore struct {
	db *pgxpool.Pool
}

// NewLedgerStore creates a new LedgerStore
func NewLedgerStore(db *pgxpool.Pool) *LedgerStore {
	return &LedgerStore{db: db}
}

var _ ledger.Store = (*LedgerStore)(nil)

// GetTournament retrieves a tournament row, nil if absent.
func (s *LedgerStore) GetTournament(ctx context.Context, id uint64) (*domain.Tournament, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, creator, title, description, category, entry_fee, total_pool,
		       start_tick, end_tick, resolution_tick, outcome_count,
		       winning_outcome, is_resolved, total_predictions
		FROM tournaments WHERE id = $1`, int64(id))

	var t domain.Tournament
	var tid, entryFee, totalPool, startTick, endTick, resolutionTick, outcomeCount, winningOutcome, totalPredictions int64
	err := row.Scan(&tid, &t.Creator, &t.Title, &t.Description, &t.Category, &entryFee, &totalPool,
		&startTick, &endTick, &resolutionTick, &outcomeCount, &winningOutcome, &t.IsResolved, &totalPredictions)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}

	t.ID = uint64(tid)
	t.EntryFee = uint64(entryFee)
	t.TotalPool = uint64(totalPool)
	t.StartTick = domain.Tick(startTick)
	t.EndTick = domain.Tick(endTick)
	t.ResolutionTick = domain.Tick(resolutionTick)
	t.OutcomeCount = uint64(outcomeCount)
	t.WinningOutcome = uint64(winningOutcome)
	t.TotalPredictions = uint64(totalPredictions)
	return &t, nil
}

// PutTournament upserts a tournament row.
func (s *LedgerStore) PutTournament(ctx context.Context, t *domain.Tournament) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO tournaments (id, creator, title, description, category, entry_fee, total_pool,
		                         start_tick, end_tick, resolution_tick, outcome_count,
		                         winning_outcome, is_resolved, total_predictions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			total_pool        = EXCLUDED.total_pool,
			winning_outcome   = EXCLUDED.winning_outcome,
			is_resolved       = EXCLUDED.is_resolved,
			total_predictions = EXCLUDED.total_predictions`,
		int64(t.ID), string(t.Creator), t.Title, t.Description, t.Category,
		int64(t.EntryFee), int64(t.TotalPool), int64(t.StartTick), int64(t.EndTick),
		int64(t.ResolutionTick), int64(t.OutcomeCount), int64(t.WinningOutcome),
		t.IsResolved, int64(t.TotalPredictions))
	if err != nil {
		return fmt.Errorf("failed to put tournament: %w", err)
	}
	return nil
}

// GetPrediction retrieves a prediction row, nil if absent.
func (s *LedgerStore) GetPrediction(ctx context.Context, id uint64) (*domain.Prediction, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, tournament_id, predictor, predicted_outcome, amount, created_at_tick, claimed
		FROM predictions WHERE id = $1`, int64(id))

	var p domain.Prediction
	var pid, tournamentID, predictedOutcome, amount, createdAt int64
	err := row.Scan(&pid, &tournamentID, &p.Predictor, &predictedOutcome, &amount, &createdAt, &p.Claimed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prediction: %w", err)
	}

	p.ID = uint64(pid)
	p.TournamentID = uint64(tournamentID)
	p.PredictedOutcome = uint64(predictedOutcome)
	p.Amount = uint64(amount)
	p.CreatedAt = domain.Tick(createdAt)
	return &p, nil
}

// PutPrediction upserts a prediction row.
func (s *LedgerStore) PutPrediction(ctx context.Context, p *domain.Prediction) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO predictions (id, tournament_id, predictor, predicted_outcome, amount, created_at_tick, claimed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET claimed = EXCLUDED.claimed`,
		int64(p.ID), int64(p.TournamentID), string(p.Predictor),
		int64(p.PredictedOutcome), int64(p.Amount), int64(p.CreatedAt), p.Claimed)
	if err != nil {
		return fmt.Errorf("failed to put prediction: %w", err)
	}
	return nil
}

// GetUserPredictionID looks up the predictor index entry.
func (s *LedgerStore) GetUserPredictionID(ctx context.Context, tournamentID uint64, predictor domain.Caller) (uint64, bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT prediction_id FROM predictor_index
		WHERE tournament_id = $1 AND predictor = $2`, int64(tournamentID), string(predictor))

	var predictionID int64
	err := row.Scan(&predictionID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get predictor index entry: %w", err)
	}
	return uint64(predictionID), true, nil
}

// PutUserPredictionID records the predictor index entry.
func (s *LedgerStore) PutUserPredictionID(ctx context.Context, tournamentID uint64, predictor domain.Caller, predictionID uint64) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO predictor_index (tournament_id, predictor, prediction_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (tournament_id, predictor) DO UPDATE SET prediction_id = EXCLUDED.prediction_id`,
		int64(tournamentID), string(predictor), int64(predictionID))
	if err != nil {
		return fmt.Errorf("failed to put predictor index entry: %w", err)
	}
	return nil
}

// GetOutcomeTotal returns the accumulated stake on an outcome, 0 if none.
func (s *LedgerStore) GetOutcomeTotal(ctx context.Context, tournamentID, outcome uint64) (uint64, error) {
	row := s.db.QueryRow(ctx, `
		SELECT total FROM outcome_totals
		WHERE tournament_id = $1 AND outcome = $2`, int64(tournamentID), int64(outcome))

	var total int64
	err := row.Scan(&total)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get outcome total: %w", err)
	}
	return uint64(total), nil
}

// AddOutcomeTotal accumulates stake onto an outcome.
func (s *LedgerStore) AddOutcomeTotal(ctx context.Context, tournamentID, outcome, amount uint64) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO outcome_totals (tournament_id, outcome, total)
		VALUES ($1, $2, $3)
		ON CONFLICT (tournament_id, outcome) DO UPDATE SET total = outcome_totals.total + EXCLUDED.total`,
		int64(tournamentID), int64(outcome), int64(amount))
	if err != nil {
		return fmt.Errorf("failed to add outcome total: %w", err)
	}
	return nil
}

// NextTournamentID atomically advances the tournament counter.
func (s *LedgerStore) NextTournamentID(ctx context.Context) (uint64, error) {
	return s.nextID(ctx, counterTournament)
}

// NextPredictionID atomically advances the prediction counter.
func (s *LedgerStore) NextPredictionID(ctx context.Context) (uint64, error) {
	return s.nextID(ctx, counterPrediction)
}

// TournamentCount returns the number of tournaments created.
func (s *LedgerStore) TournamentCount(ctx context.Context) (uint64, error) {
	return s.counterValue(ctx, counterTournament)
}

// PredictionCount returns the number of predictions placed.
func (s *LedgerStore) PredictionCount(ctx context.Context) (uint64, error) {
	return s.counterValue(ctx, counterPrediction)
}

// IncrementParticipation bumps a predictor's tournament-participation count.
func (s *LedgerStore) IncrementParticipation(ctx context.Context, predictor domain.Caller) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO participation (predictor, count) VALUES ($1, 1)
		ON CONFLICT (predictor) DO UPDATE SET count = participation.count + 1`,
		string(predictor))
	if err != nil {
		return fmt.Errorf("failed to increment participation: %w", err)
	}
	return nil
}

// ParticipationCount returns a predictor's tournament-participation count.
func (s *LedgerStore) ParticipationCount(ctx context.Context, predictor domain.Caller) (uint64, error) {
	row := s.db.QueryRow(ctx, `SELECT count FROM participation WHERE predictor = $1`, string(predictor))

	var count int64
	err := row.Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get participation count: %w", err)
	}
	return uint64(count), nil
}

// Close releases the underlying connection pool.
func (s *LedgerStore) Close() error {
	s.db.Close()
	return nil
}

const (
	counterTournament = "tournament"
	counterPrediction = "prediction"
)

// nextID returns the counter's prior value and stores the incremented one
// in a single statement.
func (s *LedgerStore) nextID(ctx context.Context, name string) (uint64, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO counters (name, value) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		RETURNING value`, name)

	var value int64
	if err := row.Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to advance counter %s: %w", name, err)
	}
	return uint64(value) - 1, nil
}

func (s *LedgerStore) counterValue(ctx context.Context, name string) (uint64, error) {
	row := s.db.QueryRow(ctx, `SELECT value FROM counters WHERE name = $1`, name)

	var value int64
	err := row.Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read counter %s: %w", name, err)
	}
	return uint64(value), nil
}
