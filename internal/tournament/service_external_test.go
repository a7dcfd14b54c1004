package tournament_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ForecastLedger_Go/internal/bank"
	"github.com/osse101/ForecastLedger_Go/internal/clock"
	"github.com/osse101/ForecastLedger_Go/internal/domain"
	"github.com/osse101/ForecastLedger_Go/internal/ledger"
	"github.com/osse101/ForecastLedger_Go/internal/tournament"
	"github.com/osse101/ForecastLedger_Go/mocks"
)

func TestMakePredictionTransferFailure(t *testing.T) {
	alice := domain.Caller("alice")
	bob := domain.Caller("bob")

	mb := mocks.NewMockBank(t)
	mb.On("Transfer", mock.Anything, bank.AccountFor(bob), bank.Custody, uint64(100)).
		Return(errors.New("bank unavailable"))

	svc, err := tournament.NewService(ledger.NewStore(ledger.NewMemoryKV()), mb, clock.NewManual(0))
	require.NoError(t, err)

	ctx := context.Background()
	id, err := svc.CreateTournament(ctx, alice, tournament.CreateParams{
		Title:                "Will it rain tomorrow",
		Category:             "weather",
		EntryFee:             100,
		DurationTicks:        10,
		ResolutionDelayTicks: 5,
		OutcomeCount:         2,
	})
	require.NoError(t, err)

	_, err = svc.MakePrediction(ctx, bob, id, 0)
	require.Error(t, err)

	got, err := svc.GetTournament(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, got.TotalPool)
	assert.Zero(t, got.TotalPredictions)

	count, err := svc.GetPredictionCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	prediction, err := svc.GetUserPrediction(ctx, id, bob)
	require.NoError(t, err)
	assert.Nil(t, prediction)
}
