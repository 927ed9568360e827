package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/benx421/bank-api/internal/repository"
	"github.com/benx421/bank-api/internal/repository/mocks"
	"github.com/shopspring/decimal"
)

// fakeUnitOfWork hands the same mocked repositories to every unit and
// remembers whether the last one would have committed.
type fakeUnitOfWork struct {
	repos     repository.Repositories
	calls     int
	committed bool
}

func (f *fakeUnitOfWork) Do(_ context.Context, fn func(repos repository.Repositories) error) error {
	f.calls++
	f.committed = false
	if err := fn(f.repos); err != nil {
		return err
	}
	f.committed = true
	return nil
}

type repoMocks struct {
	accounts     *mocks.MockAccountRepository
	customers    *mocks.MockCustomerRepository
	transactions *mocks.MockTransactionRepository
	repos        repository.Repositories
	uow          *fakeUnitOfWork
}

func newRepoMocks(t *testing.T) *repoMocks {
	m := &repoMocks{
		accounts:     mocks.NewMockAccountRepository(t),
		customers:    mocks.NewMockCustomerRepository(t),
		transactions: mocks.NewMockTransactionRepository(t),
	}
	m.repos = repository.Repositories{
		Accounts:     m.accounts,
		Customers:    m.customers,
		Transactions: m.transactions,
	}
	m.uow = &fakeUnitOfWork{repos: m.repos}
	return m
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
