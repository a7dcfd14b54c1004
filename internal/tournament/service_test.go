package tournament

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ForecastLedger_Go/internal/bank"
	"github.com/osse101/ForecastLedger_Go/internal/clock"
	"github.com/osse101/ForecastLedger_Go/internal/domain"
	"github.com/osse101/ForecastLedger_Go/internal/ledger"
)

const (
	callerAlice = domain.Caller("alice")
	callerBob   = domain.Caller("bob")
	callerCarol = domain.Caller("carol")
)

func defaultParams() CreateParams {
	return CreateParams{
		Title:                "Will it rain tomorrow",
		Category:             "weather",
		EntryFee:             100,
		DurationTicks:        10,
		ResolutionDelayTicks: 5,
		OutcomeCount:         2,
	}
}

// newTestService wires a service against in-memory backends with a manual
// clock and funded accounts.
func newTestService(t *testing.T) (Service, *bank.Memory, *clock.Manual) {
	t.Helper()

	b := bank.NewMemory()
	for _, c := range []domain.Caller{callerAlice, callerBob, callerCarol} {
		b.Deposit(bank.AccountFor(c), 10_000_000)
	}

	mc := clock.NewManual(0)
	svc, err := NewService(ledger.NewStore(ledger.NewMemoryKV()), b, mc)
	require.NoError(t, err)
	return svc, b, mc
}

func TestCreateTournament(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns sequential ids from zero", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		id, err := svc.CreateTournament(ctx, callerAlice, defaultParams())
		require.NoError(t, err)
		assert.Equal(t, uint64(0), id)

		id, err = svc.CreateTournament(ctx, callerBob, defaultParams())
		require.NoError(t, err)
		assert.Equal(t, uint64(1), id)

		count, err := svc.GetTournamentCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), count)
	})

	t.Run("derives deadlines from the current tick", func(t *testing.T) {
		svc, _, mc := newTestService(t)
		mc.Set(7)

		id, err := svc.CreateTournament(ctx, callerAlice, defaultParams())
		require.NoError(t, err)

		tournament, err := svc.GetTournament(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, tournament)
		assert.Equal(t, domain.Tick(7), tournament.StartTick)
		assert.Equal(t, domain.Tick(17), tournament.EndTick)
		assert.Equal(t, domain.Tick(22), tournament.ResolutionTick)
		assert.Equal(t, callerAlice, tournament.Creator)
		assert.False(t, tournament.IsResolved)
		assert.Zero(t, tournament.TotalPool)
	})

	t.Run("rejects invalid parameters", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		tests := []struct {
			name   string
			mutate func(*CreateParams)
		}{
			{"single outcome", func(p *CreateParams) { p.OutcomeCount = 1 }},
			{"zero outcomes", func(p *CreateParams) { p.OutcomeCount = 0 }},
			{"zero duration", func(p *CreateParams) { p.DurationTicks = 0 }},
			{"title too long", func(p *CreateParams) { p.Title = string(make([]byte, domain.MaxTitleLength+1)) }},
			{"description too long", func(p *CreateParams) { p.Description = string(make([]byte, domain.MaxDescriptionLength+1)) }},
			{"category too long", func(p *CreateParams) { p.Category = string(make([]byte, domain.MaxCategoryLength+1)) }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				params := defaultParams()
				tt.mutate(&params)

				_, err := svc.CreateTournament(ctx, callerAlice, params)
				assert.ErrorIs(t, err, domain.ErrInvalidParameters)
			})
		}

		// Failed creates must not consume ids.
		count, err := svc.GetTournamentCount(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestMakePrediction(t *testing.T) {
	ctx := context.Background()

	t.Run("collects the fee into the pool", func(t *testing.T) {
		svc, b, _ := newTestService(t)
		id, err := svc.CreateTournament(ctx, callerAlice, defaultParams())
		require.NoError(t, err)

		predID, err := svc.MakePrediction(ctx, callerBob, id, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), predID)

		balance, err := b.Balance(ctx, bank.AccountFor(callerBob))
		require.NoError(t, err)
		assert.Equal(t, uint64(9_999_900), balance)

		tournament, err := svc.GetTournament(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, uint64(100), tournament.TotalPool)
		assert.Equal(t, uint64(1), tournament.TotalPredictions)

		total, err := svc.GetOutcomeTotal(ctx, id, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(100), total)

		participation, err := svc.GetUserParticipationCount(ctx, callerBob)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), participation)
	})

	t.Run("rejects a second prediction by the same caller", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		id, err := svc.CreateTournament(ctx, callerAlice, defaultParams())
		require.NoError(t, err)

		_, err = svc.MakePrediction(ctx, callerBob, id, 0)
		require.NoError(t, err)

		_, err = svc.MakePrediction(ctx, callerBob, id, 1)
		assert.ErrorIs(t, err, domain.ErrAlreadyPredicted)
	})

	t.Run("reports duplicate before closed for prior predictors", func(t *testing.T) {
		svc, _, mc := newTestService(t)
		id, err := svc.CreateTournament(ctx, callerAlice, defaultParams())
		require.NoError(t, err)

		_, err = svc.MakePrediction(ctx, callerBob, id, 0)
		require.NoError(t, err)

		mc.Set(50)
		_, err = svc.MakePrediction(ctx, callerBob, id, 0)
		assert.ErrorIs(t, err, domain.ErrAlreadyPredicted)
	})

	t.Run("window closes exactly at the end tick", func(t *testing.T) {
		svc, _, mc := newTestService(t)
		id, err := svc.CreateTournament(ctx, callerAlice, defaultParams())
		require.NoError(t, err)

		mc.Set(9) // one before the end tick
		_, err = svc.MakePrediction(ctx, callerBob, id, 0)
		require.NoError(t, err)

		mc.Set(10)
		_, err = svc.MakePrediction(ctx, callerCarol, id, 0)
		assert.ErrorIs(t, err, domain.ErrTournamentClosed)
	})

	t.Run("rejects an out of range outcome", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		id, err := svc.CreateTournament(ctx, callerAlice, defaultParams())
		require.NoError(t, err)

		_, err = svc.MakePrediction(ctx, callerBob, id, 2)
		assert.ErrorIs(t, err, domain.ErrInvalidOutcome)
	})

	t.Run("rejects an unknown tournament", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.MakePrediction(ctx, callerBob, 42, 0)
		assert.ErrorIs(t, err, domain.ErrTournamentNotFound)
	})

	t.Run("insufficient funds leaves no state change", func(t *testing.T) {
		svc, b, _ := newTestService(t)
		params := defaultParams()
		params.EntryFee = 50_000_000 // more than any account holds
		id, err := svc.CreateTournament(ctx, callerAlice, params)
		require.NoError(t, err)

		_, err = svc.MakePrediction(ctx, callerBob, id, 0)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

		balance, err := b.Balance(ctx, bank.AccountFor(callerBob))
		require.NoError(t, err)
		assert.Equal(t, uint64(10_000_000), balance)

		tournament, err := svc.GetTournament(ctx, id)
		require.NoError(t, err)
		assert.Zero(t, tournament.TotalPool)
		assert.Zero(t, tournament.TotalPredictions)

		count, err := svc.GetPredictionCount(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)

		prediction, err := svc.GetUserPrediction(ctx, id, callerBob)
		require.NoError(t, err)
		assert.Nil(t, prediction)
	})

}

func TestResolveTournament(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (Service, *clock.Manual, uint64) {
		svc, _, mc := newTestService(t)
		id, err := svc.CreateTournament(ctx, callerAlice, defaultParams())
		require.NoError(t, err)
		return svc, mc, id
	}

	t.Run("only the creator can resolve", func(t *testing.T) {
		svc, mc, id := setup(t)
		mc.Set(15)

		err := svc.ResolveTournament(ctx, callerBob, id, 0)
		assert.ErrorIs(t, err, domain.ErrOwnerOnly)
	})

	t.Run("resolution opens exactly at the resolution tick", func(t *testing.T) {
		svc, mc, id := setup(t)

		mc.Set(14) // one before the resolution tick
		err := svc.ResolveTournament(ctx, callerAlice, id, 0)
		assert.ErrorIs(t, err, domain.ErrTournamentActive)

		mc.Set(15)
		err = svc.ResolveTournament(ctx, callerAlice, id, 0)
		require.NoError(t, err)

		tournament, err := svc.GetTournament(ctx, id)
		require.NoError(t, err)
		assert.True(t, tournament.IsResolved)
		assert.Equal(t, uint64(0), tournament.WinningOutcome)
	})

	t.Run("cannot resolve twice", func(t *testing.T) {
		svc, mc, id := setup(t)
		mc.Set(15)

		require.NoError(t, svc.ResolveTournament(ctx, callerAlice, id, 0))
		err := svc.ResolveTournament(ctx, callerAlice, id, 1)
		assert.ErrorIs(t, err, domain.ErrAlreadyResolved)
	})

	t.Run("rejects an out of range winning outcome", func(t *testing.T) {
		svc, mc, id := setup(t)
		mc.Set(15)

		err := svc.ResolveTournament(ctx, callerAlice, id, 5)
		assert.ErrorIs(t, err, domain.ErrInvalidOutcome)

		tournament, err := svc.GetTournament(ctx, id)
		require.NoError(t, err)
		assert.False(t, tournament.IsResolved)
	})

	t.Run("rejects an unknown tournament", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		err := svc.ResolveTournament(ctx, callerAlice, 42, 0)
		assert.ErrorIs(t, err, domain.ErrTournamentNotFound)
	})
}

func TestClaimWinnings(t *testing.T) {
	ctx := context.Background()

	// Full lifecycle: three predictors, two outcomes, proportional payout.
	t.Run("pays winners their proportional share exactly once", func(t *testing.T) {
		b := bank.NewMemory()
		for _, c := range []domain.Caller{callerAlice, callerBob, callerCarol} {
			b.Deposit(bank.AccountFor(c), 5_000_000)
		}

		mc := clock.NewManual(0)
		svc, err := NewService(ledger.NewStore(ledger.NewMemoryKV()), b, mc)
		require.NoError(t, err)

		creator := domain.Caller("host")
		id, err := svc.CreateTournament(ctx, creator, CreateParams{
			Title:                "Championship final",
			EntryFee:             5_000_000,
			DurationTicks:        288,
			ResolutionDelayTicks: 72,
			OutcomeCount:         2,
		})
		require.NoError(t, err)

		_, err = svc.MakePrediction(ctx, callerAlice, id, 0)
		require.NoError(t, err)
		_, err = svc.MakePrediction(ctx, callerBob, id, 0)
		require.NoError(t, err)
		_, err = svc.MakePrediction(ctx, callerCarol, id, 1)
		require.NoError(t, err)

		tournament, err := svc.GetTournament(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, uint64(15_000_000), tournament.TotalPool)

		// The pool is exactly the sum of the per-outcome totals.
		total0, err := svc.GetOutcomeTotal(ctx, id, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(10_000_000), total0)

		total1, err := svc.GetOutcomeTotal(ctx, id, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(5_000_000), total1)

		assert.Equal(t, tournament.TotalPool, total0+total1)

		mc.Set(360)
		require.NoError(t, svc.ResolveTournament(ctx, creator, id, 0))

		// Pool of 15,000,000 split across 10,000,000 staked on the winning
		// outcome: each winner gets 1.5x their stake.
		amount, err := svc.ClaimWinnings(ctx, callerAlice, id)
		require.NoError(t, err)
		assert.Equal(t, uint64(7_500_000), amount)

		amount, err = svc.ClaimWinnings(ctx, callerBob, id)
		require.NoError(t, err)
		assert.Equal(t, uint64(7_500_000), amount)

		_, err = svc.ClaimWinnings(ctx, callerCarol, id)
		assert.ErrorIs(t, err, domain.ErrNotAWinner)

		_, err = svc.ClaimWinnings(ctx, callerAlice, id)
		assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)

		balance, err := b.Balance(ctx, bank.AccountFor(callerAlice))
		require.NoError(t, err)
		assert.Equal(t, uint64(7_500_000), balance)

		balance, err = b.Balance(ctx, bank.AccountFor(callerCarol))
		require.NoError(t, err)
		assert.Zero(t, balance)

		// All payouts drawn from custody; nothing minted.
		custody, err := b.Balance(ctx, bank.Custody)
		require.NoError(t, err)
		assert.Zero(t, custody)
	})

	t.Run("rejects a claim before resolution", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		id, err := svc.CreateTournament(ctx, callerAlice, defaultParams())
		require.NoError(t, err)

		_, err = svc.MakePrediction(ctx, callerBob, id, 0)
		require.NoError(t, err)

		_, err = svc.ClaimWinnings(ctx, callerBob, id)
		assert.ErrorIs(t, err, domain.ErrNotResolved)
	})

	t.Run("rejects a claim without a prediction", func(t *testing.T) {
		svc, _, mc := newTestService(t)
		id, err := svc.CreateTournament(ctx, callerAlice, defaultParams())
		require.NoError(t, err)

		mc.Set(15)
		require.NoError(t, svc.ResolveTournament(ctx, callerAlice, id, 0))

		_, err = svc.ClaimWinnings(ctx, callerBob, id)
		assert.ErrorIs(t, err, domain.ErrPredictionNotFound)
	})

	t.Run("zero stake on the winning outcome yields no winners", func(t *testing.T) {
		svc, _, mc := newTestService(t)
		params := defaultParams()
		params.EntryFee = 0
		id, err := svc.CreateTournament(ctx, callerAlice, params)
		require.NoError(t, err)

		_, err = svc.MakePrediction(ctx, callerBob, id, 0)
		require.NoError(t, err)

		mc.Set(15)
		require.NoError(t, svc.ResolveTournament(ctx, callerAlice, id, 0))

		_, err = svc.ClaimWinnings(ctx, callerBob, id)
		assert.ErrorIs(t, err, domain.ErrNoWinners)
	})

	t.Run("rejects an unknown tournament", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.ClaimWinnings(ctx, callerBob, 42)
		assert.ErrorIs(t, err, domain.ErrTournamentNotFound)
	})
}

func TestCalculatePotentialWinnings(t *testing.T) {
	ctx := context.Background()

	svc, _, mc := newTestService(t)
	id, err := svc.CreateTournament(ctx, callerAlice, defaultParams())
	require.NoError(t, err)

	_, err = svc.MakePrediction(ctx, callerBob, id, 0)
	require.NoError(t, err)
	_, err = svc.MakePrediction(ctx, callerCarol, id, 1)
	require.NoError(t, err)

	// Before resolution every projection is zero.
	amount, err := svc.CalculatePotentialWinnings(ctx, id, callerBob)
	require.NoError(t, err)
	assert.Zero(t, amount)

	mc.Set(15)
	require.NoError(t, svc.ResolveTournament(ctx, callerAlice, id, 0))

	amount, err = svc.CalculatePotentialWinnings(ctx, id, callerBob)
	require.NoError(t, err)
	assert.Equal(t, uint64(200), amount)

	// Losers and non-participants project zero, without error.
	amount, err = svc.CalculatePotentialWinnings(ctx, id, callerCarol)
	require.NoError(t, err)
	assert.Zero(t, amount)

	amount, err = svc.CalculatePotentialWinnings(ctx, id, domain.Caller("stranger"))
	require.NoError(t, err)
	assert.Zero(t, amount)

	// The projection is non-destructive: claiming still works afterwards.
	claimed, err := svc.ClaimWinnings(ctx, callerBob, id)
	require.NoError(t, err)
	assert.Equal(t, uint64(200), claimed)

	// Unknown tournaments project zero as well.
	amount, err = svc.CalculatePotentialWinnings(ctx, 42, callerBob)
	require.NoError(t, err)
	assert.Zero(t, amount)
}

func TestListTournaments(t *testing.T) {
	ctx := context.Background()

	svc, _, mc := newTestService(t)

	open, err := svc.CreateTournament(ctx, callerAlice, defaultParams())
	require.NoError(t, err)

	params := defaultParams()
	params.DurationTicks = 2
	params.ResolutionDelayTicks = 0
	closed, err := svc.CreateTournament(ctx, callerAlice, params)
	require.NoError(t, err)

	resolved, err := svc.CreateTournament(ctx, callerAlice, params)
	require.NoError(t, err)

	mc.Set(5)
	require.NoError(t, svc.ResolveTournament(ctx, callerAlice, resolved, 0))

	all, err := svc.ListTournaments(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byStatus := map[domain.TournamentStatus]uint64{
		domain.TournamentStatusOpen:     open,
		domain.TournamentStatusClosed:   closed,
		domain.TournamentStatusResolved: resolved,
	}
	for status, wantID := range byStatus {
		got, err := svc.ListTournaments(ctx, status)
		require.NoError(t, err)
		require.Len(t, got, 1, "status %s", status)
		assert.Equal(t, wantID, got[0].ID)
	}
}

func TestProportionalShare(t *testing.T) {
	tests := []struct {
		name         string
		pool         uint64
		stake        uint64
		winningTotal uint64
		want         uint64
	}{
		{"even split", 15_000_000, 5_000_000, 10_000_000, 7_500_000},
		{"sole winner takes the pool", 300, 100, 100, 300},
		{"floors the quotient", 100, 1, 3, 33},
		{"zero winning total", 100, 0, 0, 0},
		{"product exceeds 64 bits", 1 << 63, 1 << 63, 1 << 63, 1 << 63},
		{"large uneven values", ^uint64(0), 3, 7, ^uint64(0) / 7 * 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, proportionalShare(tt.pool, tt.stake, tt.winningTotal))
		})
	}
}
