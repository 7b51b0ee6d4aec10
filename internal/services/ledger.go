package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/autolens/autolens-api/internal/logger"
	"github.com/autolens/autolens-api/internal/models"
	"github.com/autolens/autolens-api/internal/storage"
)

// LedgerStore defines the store operations the ledger needs.
type LedgerStore interface {
	GetRaw(ctx context.Context, key string) ([]byte, bool) // Reads a serialized value
	Set(ctx context.Context, key string, value any) error  // Writes and broadcasts a value
}

// TransactionWriter archives ledger transactions.
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn models.Transaction) error // Persists one transaction
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LedgerService owns the token balance. No other component reads or writes
// the underlying store key, so the decrement-if-positive invariant cannot be
// bypassed.
type LedgerService struct {
	store       LedgerStore
	archive     TransactionWriter
	kafkaWriter KafkaWriter
}

// NewLedgerService creates a new LedgerService. archive and kafkaWriter may
// be nil; transaction events are then skipped with a log line.
func NewLedgerService(store LedgerStore, archive TransactionWriter, kafkaWriter KafkaWriter) *LedgerService {
	return &LedgerService{
		store:       store,
		archive:     archive,
		kafkaWriter: kafkaWriter,
	}
}

// Balance returns the current token balance, 0 before the first credit.
func (s *LedgerService) Balance(ctx context.Context) int64 {
	return storage.Get(ctx, s.store, models.KeyTokens, int64(0))
}

// Spend decrements the balance by one and returns true when the balance is
// positive; otherwise the balance is left unchanged and Spend returns false.
// The read-modify-write is not serialized across concurrent callers; rapid
// double-submits are the caller's problem to debounce.
func (s *LedgerService) Spend(ctx context.Context) bool {
	balance := s.Balance(ctx)
	if balance <= 0 {
		return false
	}

	if err := s.store.Set(ctx, models.KeyTokens, balance-1); err != nil {
		logger.Log.Errorw("failed to write balance after spend", "balance", balance, "error", err)
		return false
	}

	s.recordTransaction(ctx, models.OpSpend, 1, balance-1)
	return true
}

// Credit adds amount tokens to the balance and returns the new balance.
func (s *LedgerService) Credit(ctx context.Context, amount int64) (int64, error) {
	if amount < 0 {
		return 0, ErrInvalidInput
	}

	balance := s.Balance(ctx) + amount
	if err := s.store.Set(ctx, models.KeyTokens, balance); err != nil {
		logger.Log.Errorw("failed to write balance after credit", "amount", amount, "error", err)
		return 0, err
	}

	s.recordTransaction(ctx, models.OpCredit, amount, balance)
	return balance, nil
}

// recordTransaction publishes the transaction to Kafka and archives it to
// Postgres. Both sinks are best-effort and never fail the ledger operation.
func (s *LedgerService) recordTransaction(ctx context.Context, operation string, amount, balance int64) {
	txn := models.Transaction{
		TransactionID: uuid.NewString(),
		Timestamp:     time.Now().Unix(),
		Operation:     operation,
		Amount:        amount,
		Balance:       balance,
	}

	if s.archive != nil {
		if err := s.archive.SaveTransaction(ctx, txn); err != nil {
			logger.Log.Errorw("failed to archive transaction", "transaction_id", txn.TransactionID, "error", err)
		}
	}

	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	data, err := json.Marshal(txn)
	if err != nil {
		logger.Log.Errorw("failed to marshal transaction for Kafka", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.TransactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish transaction to Kafka", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("transaction published to Kafka", "transaction_id", txn.TransactionID, "operation", operation, "amount", amount)
	}
}
