package handler

import (
	"net/http"

	"github.com/osse101/ForecastLedger_Go/internal/bank"
	"github.com/osse101/ForecastLedger_Go/internal/domain"
)

// BankHandler exposes read access to ledger accounts.
type BankHandler struct {
	bank bank.Bank
}

// NewBankHandler creates a new BankHandler
func NewBankHandler(b bank.Bank) *BankHandler {
	return &BankHandler{bank: b}
}

type BalanceResponse struct {
	User    string `json:"user"`
	Balance uint64 `json:"balance"`
}

func (h *BankHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	user, ok := GetQueryParam(r, w, "user")
	if !ok {
		return
	}

	balance, err := h.bank.Balance(r.Context(), bank.AccountFor(domain.Caller(user)))
	if err != nil {
		respondServiceError(w, r, "get balance", err)
		return
	}

	respondJSON(w, http.StatusOK, BalanceResponse{User: user, Balance: balance})
}
