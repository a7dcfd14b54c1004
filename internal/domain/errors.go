package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Tournament errors
	ErrMsgTournamentNotFound = "tournament not found"
	ErrMsgTournamentClosed   = "tournament is closed for predictions"
	ErrMsgTournamentActive   = "tournament resolution window not reached"
	ErrMsgAlreadyResolved    = "tournament already resolved"
	ErrMsgNotResolved        = "tournament not resolved"
	ErrMsgOwnerOnly          = "caller is not the tournament creator"
	ErrMsgNoWinners          = "no stake on the winning outcome"

	// Prediction errors
	ErrMsgPredictionNotFound = "prediction not found"
	ErrMsgAlreadyPredicted   = "caller already has a prediction for this tournament"
	ErrMsgAlreadyClaimed     = "winnings already claimed"
	ErrMsgNotAWinner         = "prediction did not match the winning outcome"

	// Validation errors
	ErrMsgInvalidOutcome    = "outcome index out of range"
	ErrMsgInvalidParameters = "invalid tournament parameters"

	// Funds errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Reserved (unused by current operations)
	ErrMsgAlreadyExists = "entity already exists"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Tournament errors
	ErrTournamentNotFound = errors.New(ErrMsgTournamentNotFound)
	ErrTournamentClosed   = errors.New(ErrMsgTournamentClosed)
	ErrTournamentActive   = errors.New(ErrMsgTournamentActive)
	ErrAlreadyResolved    = errors.New(ErrMsgAlreadyResolved)
	ErrNotResolved        = errors.New(ErrMsgNotResolved)
	ErrOwnerOnly          = errors.New(ErrMsgOwnerOnly)
	ErrNoWinners          = errors.New(ErrMsgNoWinners)

	// Prediction errors
	ErrPredictionNotFound = errors.New(ErrMsgPredictionNotFound)
	ErrAlreadyPredicted   = errors.New(ErrMsgAlreadyPredicted)
	ErrAlreadyClaimed     = errors.New(ErrMsgAlreadyClaimed)
	ErrNotAWinner         = errors.New(ErrMsgNotAWinner)

	// Validation errors
	ErrInvalidOutcome    = errors.New(ErrMsgInvalidOutcome)
	ErrInvalidParameters = errors.New(ErrMsgInvalidParameters)

	// Funds errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Reserved (unused by current operations)
	ErrAlreadyExists = errors.New(ErrMsgAlreadyExists)
)
