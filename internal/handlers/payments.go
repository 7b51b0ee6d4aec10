package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/autolens/autolens-api/internal/logger"
	"github.com/autolens/autolens-api/internal/services"
)

// PaymentIntentCreator defines the payment operation the handler needs.
type PaymentIntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, cardNumber, expiryDate, cvc string) (string, error)
}

// PaymentConfirmer defines the confirmation operation the handler needs.
type PaymentConfirmer interface {
	Confirm(ctx context.Context, clientSecret string) (amount int64, balance int64, err error)
}

// CreatePaymentRequest represents the JSON body for starting a token purchase
// swagger:model CreatePaymentRequest
type CreatePaymentRequest struct {
	// Purchase amount in dollars; one dollar buys one token
	// required: true
	// default: 10
	Amount int64 `json:"amount"`

	// Card number, 13 to 16 digits
	// required: true
	CardNumber string `json:"card_number"`

	// Expiry date in MM/YY format
	// required: true
	// default: 12/30
	ExpiryDate string `json:"expiry_date"`

	// Card verification code, 3 or 4 digits
	// required: true
	CVC string `json:"cvc"`
}

// CreatePaymentResponse represents a created payment intent
// swagger:model CreatePaymentResponse
type CreatePaymentResponse struct {
	// Client secret to confirm the purchase with
	ClientSecret string `json:"client_secret"`
}

// ConfirmPaymentRequest represents the JSON body for confirming a purchase
// swagger:model ConfirmPaymentRequest
type ConfirmPaymentRequest struct {
	// Client secret returned by the create call
	// required: true
	ClientSecret string `json:"client_secret"`
}

// ConfirmPaymentResponse represents a confirmed purchase
// swagger:model ConfirmPaymentResponse
type ConfirmPaymentResponse struct {
	// Success message
	// default: Payment confirmed
	Message string `json:"message"`

	// Number of tokens credited
	Amount int64 `json:"amount"`

	// Token balance after the purchase
	NewBalance int64 `json:"new_balance"`
}

// PaymentErrorResponse represents an error response for payment operations
// swagger:model PaymentErrorResponse
type PaymentErrorResponse struct {
	// Error message
	// default: Invalid payment details
	Error string `json:"error"`
}

// NewPaymentCreateHandler returns an HTTP handler for starting a simulated token purchase.
// @Summary Create a payment intent
// @Description Validates the card details and returns a client secret for confirming the purchase. No real payment is processed and card details are never stored.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body handlers.CreatePaymentRequest true "Purchase details"
// @Success 200 {object} handlers.CreatePaymentResponse "Payment intent created"
// @Failure 400 {object} handlers.PaymentErrorResponse "Invalid payment details"
// @Router /payments [post]
func NewPaymentCreateHandler(svc PaymentIntentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CreatePaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode payment request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PaymentErrorResponse{Error: "Invalid request body"})
			return
		}

		secret, err := svc.CreateIntent(ctx, req.Amount, req.CardNumber, req.ExpiryDate, req.CVC)
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				logger.Log.Warnw("rejected payment details", "amount", req.Amount)
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(PaymentErrorResponse{Error: "Invalid payment details"})
				return
			}
			logger.Log.Errorw("failed to create payment intent", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PaymentErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CreatePaymentResponse{ClientSecret: secret})
	}
}

// NewPaymentConfirmHandler returns an HTTP handler for confirming a simulated purchase.
// @Summary Confirm a payment
// @Description Verifies the client secret and credits the purchased tokens to the balance.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body handlers.ConfirmPaymentRequest true "Client secret"
// @Success 200 {object} handlers.ConfirmPaymentResponse "Tokens credited"
// @Failure 400 {object} handlers.PaymentErrorResponse "Invalid client secret"
// @Router /payments/confirm [post]
func NewPaymentConfirmHandler(svc PaymentConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req ConfirmPaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode confirmation request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PaymentErrorResponse{Error: "Invalid request body"})
			return
		}

		amount, balance, err := svc.Confirm(ctx, req.ClientSecret)
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				logger.Log.Warnw("rejected client secret")
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(PaymentErrorResponse{Error: "Invalid client secret"})
				return
			}
			logger.Log.Errorw("failed to confirm payment", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PaymentErrorResponse{Error: "Internal server error"})
			return
		}

		resp := ConfirmPaymentResponse{
			Message:    "Payment confirmed",
			Amount:     amount,
			NewBalance: balance,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
