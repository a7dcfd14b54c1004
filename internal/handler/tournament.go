package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/ForecastLedger_Go/internal/domain"
	"github.com/osse101/ForecastLedger_Go/internal/tournament"
)

// TournamentHandler exposes the tournament engine over HTTP.
type TournamentHandler struct {
	service tournament.Service
}

// NewTournamentHandler creates a new TournamentHandler
func NewTournamentHandler(service tournament.Service) *TournamentHandler {
	return &TournamentHandler{service: service}
}

type CreateTournamentRequest struct {
	Title                string `json:"title" validate:"required,max=100"`
	Description          string `json:"description" validate:"max=500"`
	Category             string `json:"category" validate:"max=50"`
	EntryFee             uint64 `json:"entry_fee"`
	DurationTicks        uint64 `json:"duration_ticks" validate:"min=1"`
	ResolutionDelayTicks uint64 `json:"resolution_delay_ticks"`
	OutcomeCount         uint64 `json:"outcome_count" validate:"min=2"`
}

type CreateTournamentResponse struct {
	TournamentID uint64 `json:"tournament_id"`
}

// HandleCreateTournament creates a new tournament
// @Summary Create tournament
// @Description Open a new tournament with a fixed outcome set and entry fee
// @Tags tournament
// @Accept json
// @Produce json
// @Param request body CreateTournamentRequest true "Tournament parameters"
// @Success 201 {object} CreateTournamentResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/tournament [post]
func (h *TournamentHandler) HandleCreateTournament(w http.ResponseWriter, r *http.Request) {
	caller, ok := RequireCaller(w, r)
	if !ok {
		return
	}

	var req CreateTournamentRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create tournament"); err != nil {
		return
	}

	id, err := h.service.CreateTournament(r.Context(), caller, tournament.CreateParams{
		Title:                req.Title,
		Description:          req.Description,
		Category:             req.Category,
		EntryFee:             req.EntryFee,
		DurationTicks:        req.DurationTicks,
		ResolutionDelayTicks: req.ResolutionDelayTicks,
		OutcomeCount:         req.OutcomeCount,
	})
	if err != nil {
		respondServiceError(w, r, "create tournament", err)
		return
	}

	respondJSON(w, http.StatusCreated, CreateTournamentResponse{TournamentID: id})
}

type MakePredictionRequest struct {
	TournamentID     uint64 `json:"tournament_id"`
	PredictedOutcome uint64 `json:"predicted_outcome"`
}

type MakePredictionResponse struct {
	PredictionID uint64 `json:"prediction_id"`
}

// HandleMakePrediction places the caller's prediction on a tournament
// @Summary Make prediction
// @Description Stake the entry fee on one outcome of an open tournament
// @Tags prediction
// @Accept json
// @Produce json
// @Param request body MakePredictionRequest true "Prediction data"
// @Success 201 {object} MakePredictionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/prediction [post]
func (h *TournamentHandler) HandleMakePrediction(w http.ResponseWriter, r *http.Request) {
	caller, ok := RequireCaller(w, r)
	if !ok {
		return
	}

	var req MakePredictionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Make prediction"); err != nil {
		return
	}

	id, err := h.service.MakePrediction(r.Context(), caller, req.TournamentID, req.PredictedOutcome)
	if err != nil {
		respondServiceError(w, r, "make prediction", err)
		return
	}

	respondJSON(w, http.StatusCreated, MakePredictionResponse{PredictionID: id})
}

type ResolveTournamentRequest struct {
	TournamentID   uint64 `json:"tournament_id"`
	WinningOutcome uint64 `json:"winning_outcome"`
}

func (h *TournamentHandler) HandleResolveTournament(w http.ResponseWriter, r *http.Request) {
	caller, ok := RequireCaller(w, r)
	if !ok {
		return
	}

	var req ResolveTournamentRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Resolve tournament"); err != nil {
		return
	}

	if err := h.service.ResolveTournament(r.Context(), caller, req.TournamentID, req.WinningOutcome); err != nil {
		respondServiceError(w, r, "resolve tournament", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTournamentResolved})
}

type ClaimWinningsRequest struct {
	TournamentID uint64 `json:"tournament_id"`
}

type ClaimWinningsResponse struct {
	Amount uint64 `json:"amount"`
}

// HandleClaimWinnings pays out a winning prediction
// @Summary Claim winnings
// @Description Claim the proportional share of the pool for a winning prediction
// @Tags winnings
// @Accept json
// @Produce json
// @Param request body ClaimWinningsRequest true "Claim data"
// @Success 200 {object} ClaimWinningsResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/winnings/claim [post]
func (h *TournamentHandler) HandleClaimWinnings(w http.ResponseWriter, r *http.Request) {
	caller, ok := RequireCaller(w, r)
	if !ok {
		return
	}

	var req ClaimWinningsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim winnings"); err != nil {
		return
	}

	amount, err := h.service.ClaimWinnings(r.Context(), caller, req.TournamentID)
	if err != nil {
		respondServiceError(w, r, "claim winnings", err)
		return
	}

	respondJSON(w, http.StatusOK, ClaimWinningsResponse{Amount: amount})
}

func (h *TournamentHandler) HandleGetTournament(w http.ResponseWriter, r *http.Request) {
	id, ok := GetUintQueryParam(r, w, "id")
	if !ok {
		return
	}

	t, err := h.service.GetTournament(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "get tournament", err)
		return
	}
	if t == nil {
		respondError(w, http.StatusNotFound, ErrMsgTournamentNotFoundError)
		return
	}

	respondJSON(w, http.StatusOK, t)
}

func (h *TournamentHandler) HandleListTournaments(w http.ResponseWriter, r *http.Request) {
	var status domain.TournamentStatus
	switch strings.ToLower(GetOptionalQueryParam(r, "status", "")) {
	case "":
	case "open":
		status = domain.TournamentStatusOpen
	case "closed":
		status = domain.TournamentStatusClosed
	case "resolved":
		status = domain.TournamentStatusResolved
	default:
		respondError(w, http.StatusBadRequest, ErrMsgInvalidStatusFilter)
		return
	}

	tournaments, err := h.service.ListTournaments(r.Context(), status)
	if err != nil {
		respondServiceError(w, r, "list tournaments", err)
		return
	}

	respondJSON(w, http.StatusOK, tournaments)
}

func (h *TournamentHandler) HandleGetPrediction(w http.ResponseWriter, r *http.Request) {
	id, ok := GetUintQueryParam(r, w, "id")
	if !ok {
		return
	}

	p, err := h.service.GetPrediction(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "get prediction", err)
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, ErrMsgPredictionNotFoundError)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

func (h *TournamentHandler) HandleGetUserPrediction(w http.ResponseWriter, r *http.Request) {
	tournamentID, ok := GetUintQueryParam(r, w, "tournament_id")
	if !ok {
		return
	}
	user, ok := GetQueryParam(r, w, "user")
	if !ok {
		return
	}

	p, err := h.service.GetUserPrediction(r.Context(), tournamentID, domain.Caller(user))
	if err != nil {
		respondServiceError(w, r, "get user prediction", err)
		return
	}
	if p == nil {
		respondError(w, http.StatusNotFound, ErrMsgPredictionNotFoundError)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

type OutcomeTotalResponse struct {
	TournamentID uint64 `json:"tournament_id"`
	Outcome      uint64 `json:"outcome"`
	Total        uint64 `json:"total"`
}

func (h *TournamentHandler) HandleGetOutcomeTotal(w http.ResponseWriter, r *http.Request) {
	tournamentID, ok := GetUintQueryParam(r, w, "id")
	if !ok {
		return
	}
	outcome, ok := GetUintQueryParam(r, w, "outcome")
	if !ok {
		return
	}

	total, err := h.service.GetOutcomeTotal(r.Context(), tournamentID, outcome)
	if err != nil {
		respondServiceError(w, r, "get outcome total", err)
		return
	}

	respondJSON(w, http.StatusOK, OutcomeTotalResponse{TournamentID: tournamentID, Outcome: outcome, Total: total})
}

type PotentialWinningsResponse struct {
	TournamentID uint64 `json:"tournament_id"`
	User         string `json:"user"`
	Amount       uint64 `json:"amount"`
}

func (h *TournamentHandler) HandleGetPotentialWinnings(w http.ResponseWriter, r *http.Request) {
	tournamentID, ok := GetUintQueryParam(r, w, "id")
	if !ok {
		return
	}
	user, ok := GetQueryParam(r, w, "user")
	if !ok {
		return
	}

	amount, err := h.service.CalculatePotentialWinnings(r.Context(), tournamentID, domain.Caller(user))
	if err != nil {
		respondServiceError(w, r, "calculate potential winnings", err)
		return
	}

	respondJSON(w, http.StatusOK, PotentialWinningsResponse{TournamentID: tournamentID, User: user, Amount: amount})
}

type ParticipationResponse struct {
	User  string `json:"user"`
	Count uint64 `json:"count"`
}

func (h *TournamentHandler) HandleGetParticipation(w http.ResponseWriter, r *http.Request) {
	user, ok := GetQueryParam(r, w, "user")
	if !ok {
		return
	}

	count, err := h.service.GetUserParticipationCount(r.Context(), domain.Caller(user))
	if err != nil {
		respondServiceError(w, r, "get participation count", err)
		return
	}

	respondJSON(w, http.StatusOK, ParticipationResponse{User: user, Count: count})
}

type StatsResponse struct {
	TournamentCount uint64 `json:"tournament_count"`
	PredictionCount uint64 `json:"prediction_count"`
}

func (h *TournamentHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.service.GetTournamentCount(r.Context())
	if err != nil {
		respondServiceError(w, r, "get tournament count", err)
		return
	}
	predictions, err := h.service.GetPredictionCount(r.Context())
	if err != nil {
		respondServiceError(w, r, "get prediction count", err)
		return
	}

	respondJSON(w, http.StatusOK, StatsResponse{TournamentCount: tournaments, PredictionCount: predictions})
}
