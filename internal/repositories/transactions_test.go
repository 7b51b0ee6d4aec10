package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/autolens/autolens-api/internal/models"
)

func TestTransactionWriterRepository_SaveTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "pgx")
	repo := NewTransactionWriterRepository(sqlxDB)

	txn := models.Transaction{
		TransactionID: uuid.NewString(),
		Timestamp:     time.Now().Unix(),
		Operation:     models.OpSpend,
		Amount:        1,
		Balance:       4,
	}

	mock.ExpectExec("INSERT INTO token_transactions").
		WithArgs(txn.TransactionID, txn.Operation, txn.Amount, txn.Balance, txn.Timestamp).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SaveTransaction(context.Background(), txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionWriterRepository_SaveTransaction_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "pgx")
	repo := NewTransactionWriterRepository(sqlxDB)

	txn := models.Transaction{
		TransactionID: uuid.NewString(),
		Timestamp:     time.Now().Unix(),
		Operation:     models.OpCredit,
		Amount:        5,
		Balance:       5,
	}

	mock.ExpectExec("INSERT INTO token_transactions").
		WillReturnError(assert.AnError)

	err = repo.SaveTransaction(context.Background(), txn)
	assert.Error(t, err)
}
