package ledger

import (
	"fmt"

	"github.com/osse101/ForecastLedger_Go/internal/domain"
)

// Key namespaces. Every record lives under one of these prefixes; the
// store only ever performs point lookups against them.
const (
	keyPrefixTournament     = "tournament:"
	keyPrefixPrediction     = "prediction:"
	keyPrefixPredictorIndex = "index:"
	keyPrefixOutcomeTotal   = "total:"
	keyPrefixParticipation  = "participation:"

	keyCounterTournament = "counter:tournament"
	keyCounterPrediction = "counter:prediction"
)

// Error context constants
const (
	ErrContextGetTournament     = "failed to get tournament"
	ErrContextEncodeTournament  = "failed to encode tournament"
	ErrContextDecodeTournament  = "failed to decode tournament"
	ErrContextGetPrediction     = "failed to get prediction"
	ErrContextEncodePrediction  = "failed to encode prediction"
	ErrContextDecodePrediction  = "failed to decode prediction"
	ErrContextGetPredictorIndex = "failed to get predictor index entry"
	ErrContextGetOutcomeTotal   = "failed to get outcome total"
	ErrContextGetParticipation  = "failed to get participation count"
	ErrContextReadCounter       = "failed to read counter"
	ErrContextAdvanceCounter    = "failed to advance counter"
)

func tournamentKey(id uint64) []byte {
	return []byte(fmt.Sprintf("%s%d", keyPrefixTournament, id))
}

func predictionKey(id uint64) []byte {
	return []byte(fmt.Sprintf("%s%d", keyPrefixPrediction, id))
}

func predictorIndexKey(tournamentID uint64, predictor domain.Caller) []byte {
	return []byte(fmt.Sprintf("%s%d:%s", keyPrefixPredictorIndex, tournamentID, predictor))
}

func outcomeTotalKey(tournamentID, outcome uint64) []byte {
	return []byte(fmt.Sprintf("%s%d:%d", keyPrefixOutcomeTotal, tournamentID, outcome))
}

func participationKey(predictor domain.Caller) []byte {
	return []byte(fmt.Sprintf("%s%s", keyPrefixParticipation, predictor))
}
