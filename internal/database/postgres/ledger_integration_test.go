package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/ForecastLedger_Go/internal/config"
	"github.com/osse101/ForecastLedger_Go/internal/database"
	"github.com/osse101/ForecastLedger_Go/internal/domain"
)

func TestLedgerStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	// Start Postgres container
	var pgContainer *postgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()

	if pgContainer == nil {
		if err != nil {
			t.Fatalf("failed to start postgres container: %v", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %v", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPool(connStr, config.DefaultMaxConnections, config.DefaultMaxConnIdleTime, config.DefaultMaxConnLifetime)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(pool, "../../../migrations"); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	store := NewLedgerStore(pool)

	t.Run("Counters", func(t *testing.T) {
		for want := uint64(0); want < 3; want++ {
			got, err := store.NextTournamentID(ctx)
			if err != nil {
				t.Fatalf("NextTournamentID failed: %v", err)
			}
			if got != want {
				t.Errorf("expected id %d, got %d", want, got)
			}
		}

		count, err := store.TournamentCount(ctx)
		if err != nil {
			t.Fatalf("TournamentCount failed: %v", err)
		}
		if count != 3 {
			t.Errorf("expected count 3, got %d", count)
		}

		got, err := store.NextPredictionID(ctx)
		if err != nil {
			t.Fatalf("NextPredictionID failed: %v", err)
		}
		if got != 0 {
			t.Errorf("expected prediction counter to start at 0, got %d", got)
		}
	})

	t.Run("Tournament Round Trip", func(t *testing.T) {
		in := &domain.Tournament{
			ID:             0,
			Creator:        "alice",
			Title:          "Will it rain",
			Description:    "Tomorrow, at the office",
			Category:       "weather",
			EntryFee:       250,
			StartTick:      5,
			EndTick:        15,
			ResolutionTick: 20,
			OutcomeCount:   2,
		}
		if err := store.PutTournament(ctx, in); err != nil {
			t.Fatalf("PutTournament failed: %v", err)
		}

		out, err := store.GetTournament(ctx, 0)
		if err != nil {
			t.Fatalf("GetTournament failed: %v", err)
		}
		if out == nil {
			t.Fatal("expected tournament, got nil")
		}
		if *out != *in {
			t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
		}

		// Upsert updates the mutable columns.
		in.TotalPool = 500
		in.IsResolved = true
		in.WinningOutcome = 1
		in.TotalPredictions = 2
		if err := store.PutTournament(ctx, in); err != nil {
			t.Fatalf("PutTournament update failed: %v", err)
		}

		out, err = store.GetTournament(ctx, 0)
		if err != nil {
			t.Fatalf("GetTournament after update failed: %v", err)
		}
		if !out.IsResolved || out.TotalPool != 500 || out.WinningOutcome != 1 {
			t.Errorf("update not applied: %+v", out)
		}

		missing, err := store.GetTournament(ctx, 99)
		if err != nil {
			t.Fatalf("GetTournament for missing id failed: %v", err)
		}
		if missing != nil {
			t.Errorf("expected nil for missing tournament, got %+v", missing)
		}
	})

	t.Run("Prediction And Index", func(t *testing.T) {
		p := &domain.Prediction{
			ID:               0,
			TournamentID:     0,
			Predictor:        "bob",
			PredictedOutcome: 1,
			Amount:           250,
			CreatedAt:        7,
		}
		if err := store.PutPrediction(ctx, p); err != nil {
			t.Fatalf("PutPrediction failed: %v", err)
		}
		if err := store.PutUserPredictionID(ctx, 0, "bob", 0); err != nil {
			t.Fatalf("PutUserPredictionID failed: %v", err)
		}

		id, found, err := store.GetUserPredictionID(ctx, 0, "bob")
		if err != nil {
			t.Fatalf("GetUserPredictionID failed: %v", err)
		}
		if !found || id != 0 {
			t.Errorf("expected (0, true), got (%d, %v)", id, found)
		}

		_, found, err = store.GetUserPredictionID(ctx, 0, "carol")
		if err != nil {
			t.Fatalf("GetUserPredictionID for absent predictor failed: %v", err)
		}
		if found {
			t.Error("expected no index entry for carol")
		}

		// Claim flag persists through the upsert path.
		p.Claimed = true
		if err := store.PutPrediction(ctx, p); err != nil {
			t.Fatalf("PutPrediction update failed: %v", err)
		}
		out, err := store.GetPrediction(ctx, 0)
		if err != nil {
			t.Fatalf("GetPrediction failed: %v", err)
		}
		if out == nil || !out.Claimed {
			t.Errorf("expected claimed prediction, got %+v", out)
		}
	})

	t.Run("Outcome Totals", func(t *testing.T) {
		if err := store.AddOutcomeTotal(ctx, 0, 1, 250); err != nil {
			t.Fatalf("AddOutcomeTotal failed: %v", err)
		}
		if err := store.AddOutcomeTotal(ctx, 0, 1, 250); err != nil {
			t.Fatalf("AddOutcomeTotal failed: %v", err)
		}

		total, err := store.GetOutcomeTotal(ctx, 0, 1)
		if err != nil {
			t.Fatalf("GetOutcomeTotal failed: %v", err)
		}
		if total != 500 {
			t.Errorf("expected total 500, got %d", total)
		}

		total, err = store.GetOutcomeTotal(ctx, 0, 0)
		if err != nil {
			t.Fatalf("GetOutcomeTotal for empty outcome failed: %v", err)
		}
		if total != 0 {
			t.Errorf("expected total 0, got %d", total)
		}
	})

	t.Run("Participation", func(t *testing.T) {
		if err := store.IncrementParticipation(ctx, "bob"); err != nil {
			t.Fatalf("IncrementParticipation failed: %v", err)
		}
		if err := store.IncrementParticipation(ctx, "bob"); err != nil {
			t.Fatalf("IncrementParticipation failed: %v", err)
		}

		count, err := store.ParticipationCount(ctx, "bob")
		if err != nil {
			t.Fatalf("ParticipationCount failed: %v", err)
		}
		if count != 2 {
			t.Errorf("expected count 2, got %d", count)
		}

		count, err = store.ParticipationCount(ctx, "nobody")
		if err != nil {
			t.Fatalf("ParticipationCount for absent predictor failed: %v", err)
		}
		if count != 0 {
			t.Errorf("expected count 0, got %d", count)
		}
	})
}
