// Package repository provides data access layer implementations for the bank API.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/benx421/bank-api/internal/db"
	"github.com/benx421/bank-api/internal/models"
	"github.com/lib/pq"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Account, error)
	FindByOwnerID(ctx context.Context, ownerID int64) ([]*models.Account, error)
	LockForUpdate(ctx context.Context, ids ...int64) error
	Create(ctx context.Context, account *models.Account) error
	Update(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, id int64) error
	DeleteByOwnerID(ctx context.Context, ownerID int64) (int64, error)
}

// accountRepository implements AccountRepository
type accountRepository struct {
	q db.Querier
}

// NewAccountRepository creates a new AccountRepository on a pool or a transaction
func NewAccountRepository(q db.Querier) AccountRepository {
	return &accountRepository{q: q}
}

const accountColumns = `id, bank, balance, created_at, owner_id`

// FindByID retrieves an account by its id
func (r *accountRepository) FindByID(ctx context.Context, id int64) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	account, err := scanAccount(r.q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account by id: %w", err)
	}

	return account, nil
}

// FindByOwnerID lists the accounts of one customer ordered by id
func (r *accountRepository) FindByOwnerID(ctx context.Context, ownerID int64) ([]*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE owner_id = $1 ORDER BY id`

	rows, err := r.q.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts by owner: %w", err)
	}
	defer rows.Close()

	accounts := make([]*models.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}

// LockForUpdate takes row locks on the given accounts in ascending id order.
// Only meaningful inside a transaction; missing ids are ignored.
func (r *accountRepository) LockForUpdate(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := `SELECT id FROM accounts WHERE id = ANY($1) ORDER BY id FOR UPDATE`

	rows, err := r.q.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to lock accounts: %w", err)
	}
	defer rows.Close()

	// the locks are held once the rows are read
	for rows.Next() {
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to lock accounts: %w", err)
	}

	return nil
}

// Create inserts a new account and fills in its generated id
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (bank, balance, created_at, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.q.QueryRowContext(ctx, query,
		account.Bank,
		account.Balance,
		account.CreatedAt,
		account.OwnerID,
	).Scan(&account.ID)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// Update persists the bank name and balance of an existing account
func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	query := `UPDATE accounts SET bank = $2, balance = $3 WHERE id = $1`

	result, err := r.q.ExecContext(ctx, query, account.ID, account.Bank, account.Balance)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	return expectRows(result, account.ID)
}

// Delete removes one account
func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return expectRows(result, id)
}

// DeleteByOwnerID removes every account of a customer and reports how many went
func (r *accountRepository) DeleteByOwnerID(ctx context.Context, ownerID int64) (int64, error) {
	result, err := r.q.ExecContext(ctx, `DELETE FROM accounts WHERE owner_id = $1`, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete accounts by owner: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.Bank,
		&account.Balance,
		&account.CreatedAt,
		&account.OwnerID,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func expectRows(result sql.Result, id int64) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("row %d: %w", id, models.ErrNotFound)
	}
	return nil
}
