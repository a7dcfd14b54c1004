package ledger

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/osse101/ForecastLedger_Go/internal/domain"
)

// Store defines the interface for ledger persistence: four tables
// (tournaments, predictions, predictor index, outcome totals) and three
// counters. Missing rows are reported as nil / (0, false) results, never
// as errors. The store performs no validation; the tournament engine is
// the only writer and guarantees well-formed records.
type Store interface {
	GetTournament(ctx context.Context, id uint64) (*domain.Tournament, error)
	PutTournament(ctx context.Context, t *domain.Tournament) error

	GetPrediction(ctx context.Context, id uint64) (*domain.Prediction, error)
	PutPrediction(ctx context.Context, p *domain.Prediction) error

	GetUserPredictionID(ctx context.Context, tournamentID uint64, predictor domain.Caller) (uint64, bool, error)
	PutUserPredictionID(ctx context.Context, tournamentID uint64, predictor domain.Caller, predictionID uint64) error

	GetOutcomeTotal(ctx context.Context, tournamentID, outcome uint64) (uint64, error)
	AddOutcomeTotal(ctx context.Context, tournamentID, outcome, amount uint64) error

	// NextTournamentID and NextPredictionID atomically return the counter's
	// prior value and increment it. Counters start at 0 and are never reused.
	NextTournamentID(ctx context.Context) (uint64, error)
	NextPredictionID(ctx context.Context) (uint64, error)
	TournamentCount(ctx context.Context) (uint64, error)
	PredictionCount(ctx context.Context) (uint64, error)

	IncrementParticipation(ctx context.Context, predictor domain.Caller) error
	ParticipationCount(ctx context.Context, predictor domain.Caller) (uint64, error)

	Close() error
}

// kvStore implements Store over a raw KV with JSON-encoded records and
// big-endian uint64 counters.
type kvStore struct {
	kv KV
}

// NewStore creates a Store backed by the given KV.
func NewStore(kv KV) Store {
	return &kvStore{kv: kv}
}

func (s *kvStore) GetTournament(_ context.Context, id uint64) (*domain.Tournament, error) {
	raw, found, err := s.kv.Get(tournamentKey(id))
	if err != nil {
		return nil, fmt.Errorf("%s %d: %w", ErrContextGetTournament, id, err)
	}
	if !found {
		return nil, nil
	}
	var t domain.Tournament
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("%s %d: %w", ErrContextDecodeTournament, id, err)
	}
	return &t, nil
}

func (s *kvStore) PutTournament(_ context.Context, t *domain.Tournament) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("%s %d: %w", ErrContextEncodeTournament, t.ID, err)
	}
	return s.kv.Put(tournamentKey(t.ID), raw)
}

func (s *kvStore) GetPrediction(_ context.Context, id uint64) (*domain.Prediction, error) {
	raw, found, err := s.kv.Get(predictionKey(id))
	if err != nil {
		return nil, fmt.Errorf("%s %d: %w", ErrContextGetPrediction, id, err)
	}
	if !found {
		return nil, nil
	}
	var p domain.Prediction
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%s %d: %w", ErrContextDecodePrediction, id, err)
	}
	return &p, nil
}

func (s *kvStore) PutPrediction(_ context.Context, p *domain.Prediction) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("%s %d: %w", ErrContextEncodePrediction, p.ID, err)
	}
	return s.kv.Put(predictionKey(p.ID), raw)
}

func (s *kvStore) GetUserPredictionID(_ context.Context, tournamentID uint64, predictor domain.Caller) (uint64, bool, error) {
	raw, found, err := s.kv.Get(predictorIndexKey(tournamentID, predictor))
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", ErrContextGetPredictorIndex, err)
	}
	if !found {
		return 0, false, nil
	}
	return decodeUint64(raw), true, nil
}

func (s *kvStore) PutUserPredictionID(_ context.Context, tournamentID uint64, predictor domain.Caller, predictionID uint64) error {
	return s.kv.Put(predictorIndexKey(tournamentID, predictor), encodeUint64(predictionID))
}

func (s *kvStore) GetOutcomeTotal(_ context.Context, tournamentID, outcome uint64) (uint64, error) {
	raw, found, err := s.kv.Get(outcomeTotalKey(tournamentID, outcome))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextGetOutcomeTotal, err)
	}
	if !found {
		return 0, nil
	}
	return decodeUint64(raw), nil
}

func (s *kvStore) AddOutcomeTotal(ctx context.Context, tournamentID, outcome, amount uint64) error {
	current, err := s.GetOutcomeTotal(ctx, tournamentID, outcome)
	if err != nil {
		return err
	}
	return s.kv.Put(outcomeTotalKey(tournamentID, outcome), encodeUint64(current+amount))
}

func (s *kvStore) NextTournamentID(_ context.Context) (uint64, error) {
	return s.nextID(keyCounterTournament)
}

func (s *kvStore) NextPredictionID(_ context.Context) (uint64, error) {
	return s.nextID(keyCounterPrediction)
}

func (s *kvStore) TournamentCount(_ context.Context) (uint64, error) {
	return s.counterValue(keyCounterTournament)
}

func (s *kvStore) PredictionCount(_ context.Context) (uint64, error) {
	return s.counterValue(keyCounterPrediction)
}

func (s *kvStore) IncrementParticipation(ctx context.Context, predictor domain.Caller) error {
	current, err := s.ParticipationCount(ctx, predictor)
	if err != nil {
		return err
	}
	return s.kv.Put(participationKey(predictor), encodeUint64(current+1))
}

func (s *kvStore) ParticipationCount(_ context.Context, predictor domain.Caller) (uint64, error) {
	raw, found, err := s.kv.Get(participationKey(predictor))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextGetParticipation, err)
	}
	if !found {
		return 0, nil
	}
	return decodeUint64(raw), nil
}

func (s *kvStore) Close() error {
	return s.kv.Close()
}

// nextID returns the counter's prior value and stores the incremented one.
func (s *kvStore) nextID(key string) (uint64, error) {
	current, err := s.counterValue(key)
	if err != nil {
		return 0, err
	}
	if err := s.kv.Put([]byte(key), encodeUint64(current+1)); err != nil {
		return 0, fmt.Errorf("%s %s: %w", ErrContextAdvanceCounter, key, err)
	}
	return current, nil
}

func (s *kvStore) counterValue(key string) (uint64, error) {
	raw, found, err := s.kv.Get([]byte(key))
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", ErrContextReadCounter, key, err)
	}
	if !found {
		return 0, nil
	}
	return decodeUint64(raw), nil
}

func encodeUint64(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}

func decodeUint64(raw []byte) uint64 {
	if len(raw) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(raw)
}
