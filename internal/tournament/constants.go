package tournament

// MinOutcomeCount is the smallest number of outcomes a tournament can have.
// A one-outcome tournament has nothing to predict.
const MinOutcomeCount = 2

// ResolvedCacheSize bounds the LRU cache of resolved tournaments.
const ResolvedCacheSize = 1024

// ============================================================================
// Log Messages
// ============================================================================

// Log operation identifiers
const (
	LogMsgCreateTournamentCalled  = "CreateTournament called"
	LogMsgMakePredictionCalled    = "MakePrediction called"
	LogMsgResolveTournamentCalled = "ResolveTournament called"
	LogMsgClaimWinningsCalled     = "ClaimWinnings called"
)

// Outcome log messages
const (
	LogMsgTournamentCreated  = "Tournament created"
	LogMsgPredictionPlaced   = "Prediction placed"
	LogMsgTournamentResolved = "Tournament resolved"
	LogMsgWinningsClaimed    = "Winnings claimed"
)

// ============================================================================
// Error Messages (local to tournament service)
// ============================================================================

// Error context messages for wrapped errors
const (
	ErrContextFailedToBuildCache        = "failed to build resolved-tournament cache"
	ErrContextFailedToAllocateID        = "failed to allocate id"
	ErrContextFailedToGetTournament     = "failed to get tournament"
	ErrContextFailedToStoreTournament   = "failed to store tournament"
	ErrContextFailedToGetPrediction     = "failed to get prediction"
	ErrContextFailedToStorePrediction   = "failed to store prediction"
	ErrContextFailedToCheckIndex        = "failed to check predictor index"
	ErrContextFailedToWriteIndex        = "failed to write predictor index"
	ErrContextFailedToGetOutcomeTotal   = "failed to get outcome total"
	ErrContextFailedToAddOutcomeTotal   = "failed to accumulate outcome total"
	ErrContextFailedToBumpParticipation = "failed to increment participation count"
	ErrContextFailedToPayWinnings       = "failed to pay winnings from custody"
	ErrContextFailedToReadCounter       = "failed to read counter"
)
