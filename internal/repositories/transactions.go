package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/autolens/autolens-api/internal/logger"
	"github.com/autolens/autolens-api/internal/models"
)

// TransactionWriterRepository archives ledger transactions to Postgres.
type TransactionWriterRepository struct {
	db *sqlx.DB
}

func NewTransactionWriterRepository(db *sqlx.DB) *TransactionWriterRepository {
	return &TransactionWriterRepository{db: db}
}

// SaveTransaction inserts one ledger transaction.
func (r *TransactionWriterRepository) SaveTransaction(ctx context.Context, txn models.Transaction) error {
	query := `
		INSERT INTO token_transactions (transaction_id, operation, amount, balance, created_at)
		VALUES ($1, $2, $3, $4, TO_TIMESTAMP($5))
	`

	_, err := r.db.ExecContext(ctx, query,
		txn.TransactionID, txn.Operation, txn.Amount, txn.Balance, txn.Timestamp)

	// Log query, args, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txn.TransactionID, txn.Operation, txn.Amount, txn.Balance},
		"error", err,
	)

	return err
}
