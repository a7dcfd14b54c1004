package ledger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ForecastLedger_Go/internal/domain"
)

// storeBackends returns one Store per KV backend so the suite below runs
// against both.
func storeBackends(t *testing.T) map[string]Store {
	t.Helper()

	levelKV, err := OpenLevelKV(filepath.Join(t.TempDir(), "ledger"))
	require.NoError(t, err)

	return map[string]Store{
		"memory":  NewStore(NewMemoryKV()),
		"leveldb": NewStore(levelKV),
	}
}

func TestStoreTournamentRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, store := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			missing, err := store.GetTournament(ctx, 0)
			require.NoError(t, err)
			assert.Nil(t, missing)

			in := &domain.Tournament{
				ID:             3,
				Creator:        "alice",
				Title:          "Will it rain",
				EntryFee:       250,
				TotalPool:      1000,
				StartTick:      5,
				EndTick:        15,
				ResolutionTick: 20,
				OutcomeCount:   4,
			}
			require.NoError(t, store.PutTournament(ctx, in))

			out, err := store.GetTournament(ctx, 3)
			require.NoError(t, err)
			require.NotNil(t, out)
			assert.Equal(t, in, out)

			// Writes replace the whole record.
			in.IsResolved = true
			in.WinningOutcome = 2
			require.NoError(t, store.PutTournament(ctx, in))

			out, err = store.GetTournament(ctx, 3)
			require.NoError(t, err)
			assert.True(t, out.IsResolved)
			assert.Equal(t, uint64(2), out.WinningOutcome)
		})
	}
}

func TestStorePredictorIndex(t *testing.T) {
	ctx := context.Background()

	for name, store := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			_, found, err := store.GetUserPredictionID(ctx, 1, "bob")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, store.PutUserPredictionID(ctx, 1, "bob", 9))

			id, found, err := store.GetUserPredictionID(ctx, 1, "bob")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, uint64(9), id)

			// The index is keyed per tournament.
			_, found, err = store.GetUserPredictionID(ctx, 2, "bob")
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestStoreOutcomeTotals(t *testing.T) {
	ctx := context.Background()

	for name, store := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			total, err := store.GetOutcomeTotal(ctx, 1, 0)
			require.NoError(t, err)
			assert.Zero(t, total)

			require.NoError(t, store.AddOutcomeTotal(ctx, 1, 0, 100))
			require.NoError(t, store.AddOutcomeTotal(ctx, 1, 0, 250))
			require.NoError(t, store.AddOutcomeTotal(ctx, 1, 1, 40))

			total, err = store.GetOutcomeTotal(ctx, 1, 0)
			require.NoError(t, err)
			assert.Equal(t, uint64(350), total)

			total, err = store.GetOutcomeTotal(ctx, 1, 1)
			require.NoError(t, err)
			assert.Equal(t, uint64(40), total)
		})
	}
}

func TestStoreCounters(t *testing.T) {
	ctx := context.Background()

	for name, store := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			// Counters return the prior value, starting at zero.
			for want := uint64(0); want < 3; want++ {
				got, err := store.NextTournamentID(ctx)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}

			count, err := store.TournamentCount(ctx)
			require.NoError(t, err)
			assert.Equal(t, uint64(3), count)

			// Prediction ids advance independently.
			got, err := store.NextPredictionID(ctx)
			require.NoError(t, err)
			assert.Zero(t, got)

			count, err = store.PredictionCount(ctx)
			require.NoError(t, err)
			assert.Equal(t, uint64(1), count)
		})
	}
}

func TestStoreParticipation(t *testing.T) {
	ctx := context.Background()

	for name, store := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			count, err := store.ParticipationCount(ctx, "alice")
			require.NoError(t, err)
			assert.Zero(t, count)

			require.NoError(t, store.IncrementParticipation(ctx, "alice"))
			require.NoError(t, store.IncrementParticipation(ctx, "alice"))
			require.NoError(t, store.IncrementParticipation(ctx, "bob"))

			count, err = store.ParticipationCount(ctx, "alice")
			require.NoError(t, err)
			assert.Equal(t, uint64(2), count)

			count, err = store.ParticipationCount(ctx, "bob")
			require.NoError(t, err)
			assert.Equal(t, uint64(1), count)
		})
	}
}

func TestLevelKVPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger")

	kv, err := OpenLevelKV(path)
	require.NoError(t, err)

	store := NewStore(kv)
	require.NoError(t, store.PutTournament(ctx, &domain.Tournament{ID: 0, Title: "persisted"}))
	_, err = store.NextTournamentID(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	kv, err = OpenLevelKV(path)
	require.NoError(t, err)
	store = NewStore(kv)
	defer store.Close()

	out, err := store.GetTournament(ctx, 0)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "persisted", out.Title)

	count, err := store.TournamentCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestMemoryKVCopiesValues(t *testing.T) {
	kv := NewMemoryKV()
	value := []byte("original")
	require.NoError(t, kv.Put([]byte("k"), value))

	value[0] = 'X'

	got, found, err := kv.Get([]byte("k"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("original"), got)

	// Mutating the returned slice must not corrupt the stored value.
	got[0] = 'Y'
	again, _, err := kv.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}
