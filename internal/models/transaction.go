package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeTransfer   TransactionType = "transfer"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}

// Transaction is the immutable record of one completed ledger operation.
type Transaction struct {
	Date                 time.Time       `db:"date"`
	DestinationAccountID *int64          `db:"destination_account_id"`
	Amount               decimal.Decimal `db:"amount"`
	Type                 TransactionType `db:"type"`
	ID                   int64           `db:"id"`
	OriginAccountID      int64           `db:"origin_account_id"`
}

// NewTransaction builds a record dated on now. destination must be nil unless
// txType is a transfer.
func NewTransaction(txType TransactionType, amount decimal.Decimal, originID int64, destinationID *int64, now time.Time) *Transaction {
	return &Transaction{
		Type:                 txType,
		Amount:               amount,
		OriginAccountID:      originID,
		DestinationAccountID: destinationID,
		Date:                 truncateToDate(now),
	}
}

// Validate checks the record invariants: a positive amount and a destination
// present exactly when the type is transfer.
func (t *Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidTransaction
	}
	if !t.Amount.IsPositive() {
		return ErrInvalidTransaction
	}
	if (t.Type == TransactionTypeTransfer) != (t.DestinationAccountID != nil) {
		return ErrInvalidTransaction
	}
	return nil
}

// IdempotencyKey tracks processed requests so a retried POST replays its first response.
// A zero ResponseStatus marks a key claimed by a request that is still running.
type IdempotencyKey struct {
	CreatedAt        time.Time `db:"created_at"`
	Key              string    `db:"key"`
	RequestPath      string    `db:"request_path"`
	ResponseBody     string    `db:"response_body"`
	ResponseLocation string    `db:"response_location"`
	ResponseStatus   int       `db:"response_status"`
}

// Pending reports whether the request holding the key has not finished yet
func (k *IdempotencyKey) Pending() bool {
	return k.ResponseStatus == 0
}
