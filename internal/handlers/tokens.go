package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

// TokensReader defines the ledger read the handler needs.
type TokensReader interface {
	Balance(ctx context.Context) int64
}

// TokensResponse represents the current token balance
// swagger:model TokensResponse
type TokensResponse struct {
	// Number of identification tokens left
	// default: 5
	Balance int64 `json:"balance"`
}

// NewTokensHandler returns an HTTP handler for reading the token balance.
// @Summary Get token balance
// @Description Returns the number of identification tokens currently available.
// @Tags tokens
// @Produce json
// @Success 200 {object} handlers.TokensResponse "Current balance"
// @Router /tokens [get]
func NewTokensHandler(svc TokensReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := TokensResponse{Balance: svc.Balance(r.Context())}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
