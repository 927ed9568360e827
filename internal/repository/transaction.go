package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/benx421/bank-api/internal/db"
	"github.com/benx421/bank-api/internal/models"
)

// TransactionRepository defines the interface for transaction record access.
// Records are append-only: there is no update or delete.
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	FindByID(ctx context.Context, id int64) (*models.Transaction, error)
	FindAllByOriginAccountID(ctx context.Context, accountID int64, page, size int) ([]*models.Transaction, error)
}

type transactionRepository struct {
	q db.Querier
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(q db.Querier) TransactionRepository {
	return &transactionRepository{q: q}
}

const transactionColumns = `id, amount, type, date, origin_account_id, destination_account_id`

// Create inserts a transaction record and fills in its generated id
func (r *transactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	if err := txn.Validate(); err != nil {
		return fmt.Errorf("refusing to store transaction: %w", err)
	}

	query := `
		INSERT INTO transactions (amount, type, date, origin_account_id, destination_account_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.q.QueryRowContext(ctx, query,
		txn.Amount,
		string(txn.Type),
		txn.Date,
		txn.OriginAccountID,
		txn.DestinationAccountID,
	).Scan(&txn.ID)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// FindByID retrieves a transaction by id
func (r *transactionRepository) FindByID(ctx context.Context, id int64) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	txn, err := scanTransaction(r.q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction by id: %w", err)
	}

	return txn, nil
}

// FindAllByOriginAccountID returns one page of the account's outgoing records,
// oldest first. page is zero-based.
func (r *transactionRepository) FindAllByOriginAccountID(
	ctx context.Context,
	accountID int64,
	page, size int,
) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE origin_account_id = $1
		ORDER BY date ASC, id ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.q.QueryContext(ctx, query, accountID, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txns := make([]*models.Transaction, 0, size)
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return txns, nil
}

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	var (
		txn         models.Transaction
		txType      string
		destination sql.NullInt64
	)

	err := row.Scan(
		&txn.ID,
		&txn.Amount,
		&txType,
		&txn.Date,
		&txn.OriginAccountID,
		&destination,
	)
	if err != nil {
		return nil, err
	}

	txn.Type = models.TransactionType(txType)
	if destination.Valid {
		id := destination.Int64
		txn.DestinationAccountID = &id
	}

	return &txn, nil
}
