package domain

// Caller is an opaque, unforgeable principal identity supplied by the
// environment with every engine operation. The engine never inspects it
// beyond equality checks.
type Caller string

// Tick is a strictly increasing environment-supplied counter used for all
// tournament deadlines. It is not wall time.
type Tick uint64

// Tournament represents a forecasting tournament: a fixed set of outcomes,
// a prediction window, and a prize pool funded by entry fees.
type Tournament struct {
	ID               uint64 `json:"id"`
	Creator          Caller `json:"creator"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	EntryFee         uint64 `json:"entry_fee"`
	TotalPool        uint64 `json:"total_pool"`
	StartTick        Tick   `json:"start_tick"`
	EndTick          Tick   `json:"end_tick"`
	ResolutionTick   Tick   `json:"resolution_tick"`
	OutcomeCount     uint64 `json:"outcome_count"`
	WinningOutcome   uint64 `json:"winning_outcome,omitempty"`
	IsResolved       bool   `json:"is_resolved"`
	TotalPredictions uint64 `json:"total_predictions"`
}

// PredictionOpen reports whether predictions are still accepted at now.
func (t *Tournament) PredictionOpen(now Tick) bool {
	return now < t.EndTick
}

// Resolvable reports whether the resolution window has been reached at now.
func (t *Tournament) Resolvable(now Tick) bool {
	return now >= t.ResolutionTick
}

// TournamentStatus is a derived, read-only classification of a tournament.
type TournamentStatus string

const (
	TournamentStatusOpen     TournamentStatus = "Open"
	TournamentStatusClosed   TournamentStatus = "Closed"
	TournamentStatusResolved TournamentStatus = "Resolved"
)

// Status derives the tournament status at the supplied tick.
func (t *Tournament) Status(now Tick) TournamentStatus {
	switch {
	case t.IsResolved:
		return TournamentStatusResolved
	case now < t.EndTick:
		return TournamentStatusOpen
	default:
		return TournamentStatusClosed
	}
}

// Prediction represents a single stake-bearing prediction against one
// outcome of a tournament. At most one exists per (tournament, predictor).
type Prediction struct {
	ID               uint64 `json:"id"`
	TournamentID     uint64 `json:"tournament_id"`
	Predictor        Caller `json:"predictor"`
	PredictedOutcome uint64 `json:"predicted_outcome"`
	Amount           uint64 `json:"amount"`
	CreatedAt        Tick   `json:"created_at"`
	Claimed          bool   `json:"claimed"`
}

// Text length bounds for tournament metadata fields.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MaxCategoryLength    = 50
)
