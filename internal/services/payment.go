package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/autolens/autolens-api/internal/logger"
)

// secretPrefix marks simulated payment client secrets.
const secretPrefix = "pi_sim_"

// minPurchaseAmount is the smallest accepted purchase, in dollars. One dollar
// buys one token.
const minPurchaseAmount = 5

// Card fields get shape-only validation; no real payment processing occurs.
var (
	cardNumberPattern = regexp.MustCompile(`^\d{13,16}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvcPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// TokenCrediter is the ledger operation the purchase flow needs.
type TokenCrediter interface {
	Credit(ctx context.Context, amount int64) (int64, error) // Adds tokens, returns the new balance
}

// PaymentService simulates the token purchase flow. CreateIntent validates
// the card-like fields and issues a signed client secret; Confirm verifies
// the secret and credits the tokens.
type PaymentService struct {
	ledger     TokenCrediter
	signingKey []byte
	exp        time.Duration
}

// NewPaymentService creates a new PaymentService. Secrets expire after exp.
func NewPaymentService(ledger TokenCrediter, signingKey string, exp time.Duration) *PaymentService {
	return &PaymentService{
		ledger:     ledger,
		signingKey: []byte(signingKey),
		exp:        exp,
	}
}

// CreateIntent validates the purchase fields and returns a synthetic client
// secret: an HS256 token carrying the intent id and amount. Card details are
// checked for shape only and never stored.
func (s *PaymentService) CreateIntent(ctx context.Context, amount int64, cardNumber, expiryDate, cvc string) (string, error) {
	if amount < minPurchaseAmount {
		return "", fmt.Errorf("%w: minimum amount is $%d", ErrInvalidInput, minPurchaseAmount)
	}
	if !cardNumberPattern.MatchString(strings.ReplaceAll(cardNumber, " ", "")) {
		return "", fmt.Errorf("%w: invalid card number", ErrInvalidInput)
	}
	if !expiryPattern.MatchString(expiryDate) {
		return "", fmt.Errorf("%w: invalid expiry date", ErrInvalidInput)
	}
	if !cvcPattern.MatchString(cvc) {
		return "", fmt.Errorf("%w: invalid CVC", ErrInvalidInput)
	}

	intentID := uuid.NewString()
	claims := jwt.MapClaims{
		"intent_id": intentID,
		"amount":    amount,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(s.exp).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		logger.Log.Errorw("failed to sign client secret", "intent_id", intentID, "error", err)
		return "", err
	}

	logger.Log.Infow("payment intent created", "intent_id", intentID, "amount", amount)
	return secretPrefix + token, nil
}

// Confirm verifies a client secret and credits the purchased tokens.
// Returns the credited amount and the new balance.
func (s *PaymentService) Confirm(ctx context.Context, clientSecret string) (int64, int64, error) {
	tokenString, ok := strings.CutPrefix(clientSecret, secretPrefix)
	if !ok {
		return 0, 0, fmt.Errorf("%w: malformed client secret", ErrInvalidInput)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.signingKey, nil
	})
	if err != nil || !token.Valid {
		return 0, 0, fmt.Errorf("%w: invalid client secret", ErrInvalidInput)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, 0, fmt.Errorf("%w: invalid client secret", ErrInvalidInput)
	}

	amountClaim, ok := claims["amount"].(float64)
	if !ok || amountClaim < minPurchaseAmount {
		return 0, 0, fmt.Errorf("%w: invalid client secret", ErrInvalidInput)
	}
	amount := int64(amountClaim)

	balance, err := s.ledger.Credit(ctx, amount)
	if err != nil {
		return 0, 0, err
	}

	logger.Log.Infow("payment confirmed", "intent_id", claims["intent_id"], "amount", amount, "balance", balance)
	return amount, balance, nil
}
