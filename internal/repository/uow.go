package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/benx421/bank-api/internal/db"
)

// Repositories groups the repositories bound to one Querier, either the pool
// or an open transaction.
type Repositories struct {
	Accounts     AccountRepository
	Customers    CustomerRepository
	Transactions TransactionRepository
}

// NewRepositories binds every repository to q
func NewRepositories(q db.Querier) Repositories {
	return Repositories{
		Accounts:     NewAccountRepository(q),
		Customers:    NewCustomerRepository(q),
		Transactions: NewTransactionRepository(q),
	}
}

// UnitOfWork runs a function as one atomic database transaction
type UnitOfWork struct {
	db *db.DB
}

// NewUnitOfWork creates a UnitOfWork over the pool
func NewUnitOfWork(database *db.DB) *UnitOfWork {
	return &UnitOfWork{db: database}
}

// Do begins a transaction, hands fn repositories bound to it, and commits
// when fn returns nil. Any error from fn rolls everything back and is
// returned unchanged.
func (u *UnitOfWork) Do(ctx context.Context, fn func(repos Repositories) error) error {
	tx, err := u.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	if err := fn(NewRepositories(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
