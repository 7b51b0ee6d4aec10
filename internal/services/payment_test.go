package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

const testSigningKey = "payment-test-key"

func TestPaymentService_CreateIntent(t *testing.T) {
	ctx := context.Background()

	svc := NewPaymentService(nil, testSigningKey, time.Hour)

	secret, err := svc.CreateIntent(ctx, 10, "4242424242424242", "12/30", "123")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(secret, "pi_sim_"))
}

func TestPaymentService_CreateIntent_AcceptsSpacedCardNumber(t *testing.T) {
	ctx := context.Background()

	svc := NewPaymentService(nil, testSigningKey, time.Hour)

	_, err := svc.CreateIntent(ctx, 10, "4242 4242 4242 4242", "12/30", "123")
	assert.NoError(t, err)
}

func TestPaymentService_CreateIntent_Validation(t *testing.T) {
	ctx := context.Background()

	svc := NewPaymentService(nil, testSigningKey, time.Hour)

	tests := []struct {
		name       string
		amount     int64
		cardNumber string
		expiryDate string
		cvc        string
	}{
		{"amount below minimum", 4, "4242424242424242", "12/30", "123"},
		{"card number too short", 10, "424242424242", "12/30", "123"},
		{"card number too long", 10, "42424242424242424", "12/30", "123"},
		{"card number with letters", 10, "4242abcd42424242", "12/30", "123"},
		{"expiry month out of range", 10, "4242424242424242", "13/30", "123"},
		{"expiry wrong format", 10, "4242424242424242", "2030-12", "123"},
		{"cvc too short", 10, "4242424242424242", "12/30", "12"},
		{"cvc too long", 10, "4242424242424242", "12/30", "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateIntent(ctx, tt.amount, tt.cardNumber, tt.expiryDate, tt.cvc)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestPaymentService_ConfirmCreditsTokens(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := NewMockTokenCrediter(ctrl)
	ledger.EXPECT().Credit(gomock.Any(), int64(25)).Return(int64(27), nil)

	svc := NewPaymentService(ledger, testSigningKey, time.Hour)

	secret, err := svc.CreateIntent(ctx, 25, "4242424242424242", "12/30", "123")
	assert.NoError(t, err)

	amount, balance, err := svc.Confirm(ctx, secret)
	assert.NoError(t, err)
	assert.Equal(t, int64(25), amount)
	assert.Equal(t, int64(27), balance)
}

func TestPaymentService_Confirm_MalformedSecret(t *testing.T) {
	ctx := context.Background()

	svc := NewPaymentService(nil, testSigningKey, time.Hour)

	_, _, err := svc.Confirm(ctx, "not-a-client-secret")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPaymentService_Confirm_TamperedSecret(t *testing.T) {
	ctx := context.Background()

	svc := NewPaymentService(nil, testSigningKey, time.Hour)

	secret, err := svc.CreateIntent(ctx, 10, "4242424242424242", "12/30", "123")
	assert.NoError(t, err)

	_, _, err = svc.Confirm(ctx, secret+"x")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPaymentService_Confirm_WrongSigningKey(t *testing.T) {
	ctx := context.Background()

	issuer := NewPaymentService(nil, "some-other-key", time.Hour)
	secret, err := issuer.CreateIntent(ctx, 10, "4242424242424242", "12/30", "123")
	assert.NoError(t, err)

	svc := NewPaymentService(nil, testSigningKey, time.Hour)
	_, _, err = svc.Confirm(ctx, secret)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPaymentService_Confirm_ExpiredSecret(t *testing.T) {
	ctx := context.Background()

	svc := NewPaymentService(nil, testSigningKey, -time.Minute)

	secret, err := svc.CreateIntent(ctx, 10, "4242424242424242", "12/30", "123")
	assert.NoError(t, err)

	_, _, err = svc.Confirm(ctx, secret)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
