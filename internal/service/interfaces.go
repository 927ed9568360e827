package service

import (
	"context"
	"time"

	"github.com/benx421/bank-api/internal/models"
	"github.com/benx421/bank-api/internal/repository"
	"github.com/shopspring/decimal"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// UnitOfWork runs fn against repositories bound to one database transaction.
// Returning an error from fn discards every write made through repos.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos repository.Repositories) error) error
}

// BankResolver turns a bank code into the bank's full name
type BankResolver interface {
	ResolveName(ctx context.Context, code int) (string, error)
}

// TransactionEngine moves money between accounts and records each movement
type TransactionEngine interface {
	CreateDeposit(ctx context.Context, originID int64, amount decimal.Decimal) (*models.Transaction, error)
	CreateWithdrawal(ctx context.Context, originID int64, amount decimal.Decimal) (*models.Transaction, error)
	CreateTransfer(ctx context.Context, originID, destinationID int64, amount decimal.Decimal) (*models.Transaction, error)
	FindTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	ListByOriginAccount(ctx context.Context, accountID int64, page, size int) ([]*models.Transaction, error)
}

// CustomerRegistry manages customers and keeps their natural ids and emails unique
type CustomerRegistry interface {
	CreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	FindCustomer(ctx context.Context, nationalID string) (*models.Customer, error)
	EditCustomer(ctx context.Context, nationalID, name, email string, birthDate time.Time) (*models.Customer, error)
	RemoveCustomer(ctx context.Context, nationalID string) error
}

// AccountManager manages the accounts of one customer
type AccountManager interface {
	CreateAccount(ctx context.Context, ownerNationalID string, bankCode int) (*models.Account, error)
	FindAccount(ctx context.Context, ownerNationalID string, accountID int64) (*models.Account, error)
	EditAccount(ctx context.Context, ownerNationalID string, accountID int64, bankCode int) (*models.Account, error)
	RemoveAccount(ctx context.Context, ownerNationalID string, accountID int64) error
	ListAccounts(ctx context.Context, ownerNationalID string) ([]*models.Account, error)
}

// Ensure concrete types implement interfaces
var (
	_ TransactionEngine = (*TransactionService)(nil)
	_ CustomerRegistry  = (*CustomerService)(nil)
	_ AccountManager    = (*AccountService)(nil)
	_ UnitOfWork        = (*repository.UnitOfWork)(nil)
)
