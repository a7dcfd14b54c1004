package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/ForecastLedger_Go/internal/domain"
	"github.com/osse101/ForecastLedger_Go/internal/logger"
)

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	// Tournament messages
	ErrMsgTournamentNotFoundError = "Tournament not found"
	ErrMsgTournamentClosedError   = "Too late to predict on this tournament"
	ErrMsgTournamentActiveError   = "Tournament cannot be resolved yet"
	ErrMsgAlreadyResolvedError    = "Tournament has already been resolved"
	ErrMsgNotResolvedError        = "Tournament has not been resolved yet"
	ErrMsgOwnerOnlyError          = "Only the tournament creator can resolve it"
	ErrMsgNoWinnersError          = "No stake was placed on the winning outcome"

	// Prediction messages
	ErrMsgPredictionNotFoundError = "No prediction found for this tournament"
	ErrMsgAlreadyPredictedError   = "You already predicted on this tournament"
	ErrMsgAlreadyClaimedError     = "Winnings were already claimed"
	ErrMsgNotAWinnerError         = "Your prediction did not win; check potential winnings for details"

	// Validation messages
	ErrMsgInvalidOutcomeError    = "Outcome index is out of range"
	ErrMsgInvalidParametersError = "Tournament parameters are invalid"
	ErrMsgInvalidStatusFilter    = "Status filter must be open, closed or resolved"

	// Funds messages
	ErrMsgInsufficientFundsError = "Not enough funds for the entry fee"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	// Check for specific domain errors
	switch {
	case errors.Is(err, domain.ErrTournamentNotFound):
		return http.StatusNotFound, ErrMsgTournamentNotFoundError
	case errors.Is(err, domain.ErrPredictionNotFound):
		return http.StatusNotFound, ErrMsgPredictionNotFoundError
	case errors.Is(err, domain.ErrTournamentClosed):
		return http.StatusConflict, ErrMsgTournamentClosedError
	case errors.Is(err, domain.ErrTournamentActive):
		return http.StatusConflict, ErrMsgTournamentActiveError
	case errors.Is(err, domain.ErrAlreadyResolved):
		return http.StatusConflict, ErrMsgAlreadyResolvedError
	case errors.Is(err, domain.ErrNotResolved):
		return http.StatusConflict, ErrMsgNotResolvedError
	case errors.Is(err, domain.ErrAlreadyPredicted):
		return http.StatusConflict, ErrMsgAlreadyPredictedError
	case errors.Is(err, domain.ErrAlreadyClaimed):
		return http.StatusConflict, ErrMsgAlreadyClaimedError
	case errors.Is(err, domain.ErrNotAWinner):
		return http.StatusConflict, ErrMsgNotAWinnerError
	case errors.Is(err, domain.ErrNoWinners):
		return http.StatusConflict, ErrMsgNoWinnersError
	case errors.Is(err, domain.ErrOwnerOnly):
		return http.StatusForbidden, ErrMsgOwnerOnlyError
	case errors.Is(err, domain.ErrInvalidOutcome):
		return http.StatusBadRequest, ErrMsgInvalidOutcomeError
	case errors.Is(err, domain.ErrInvalidParameters):
		return http.StatusBadRequest, ErrMsgInvalidParametersError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgInsufficientFundsError
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}

// respondServiceError logs a failed service call and writes the mapped response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error("Failed to "+opName, "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}
