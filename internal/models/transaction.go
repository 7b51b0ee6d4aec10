package models

// Transaction is a ledger event emitted on every successful spend or credit.
// Published to Kafka and archived to Postgres when those sinks are configured.
type Transaction struct {
	TransactionID string `json:"transaction_id"`
	Timestamp     int64  `json:"timestamp"`

	// example: spend
	Operation string `json:"operation"`

	// Tokens moved by this operation
	Amount int64 `json:"amount"`

	// Balance after the operation
	Balance int64 `json:"balance"`
}

// Transaction operations.
const (
	OpSpend  = "spend"
	OpCredit = "credit"
)
