package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/benx421/bank-api/internal/models"
	"github.com/benx421/bank-api/internal/repository"
)

// AccountService opens, edits and closes the accounts of a customer. Every
// account-scoped operation goes through the ownership guard.
type AccountService struct {
	uow      UnitOfWork
	repos    repository.Repositories
	resolver BankResolver
	logger   *slog.Logger
	now      func() time.Time
}

// NewAccountService creates a new AccountService
func NewAccountService(
	uow UnitOfWork,
	repos repository.Repositories,
	resolver BankResolver,
	logger *slog.Logger,
) *AccountService {
	return &AccountService{
		uow:      uow,
		repos:    repos,
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateAccount opens an empty account at the bank identified by bankCode.
// The bank name is resolved before anything is written.
func (s *AccountService) CreateAccount(ctx context.Context, ownerNationalID string, bankCode int) (*models.Account, error) {
	if _, err := findCustomer(ctx, s.repos, ownerNationalID); err != nil {
		return nil, err
	}

	bank, err := s.resolveBank(ctx, bankCode)
	if err != nil {
		return nil, err
	}

	account := models.NewAccount(bank, s.now())

	// the owner is re-read under lock in case it was removed during the bank lookup
	var customer *models.Customer
	err = s.uow.Do(ctx, func(repos repository.Repositories) error {
		customer, err = lockCustomer(ctx, repos, ownerNationalID)
		if err != nil {
			return err
		}
		customer.AddAccount(account)

		if err := repos.Accounts.Create(ctx, account); err != nil {
			return internalError("failed to create account", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("account created", "account_id", account.ID, "customer_id", customer.ID, "bank_code", bankCode)
	return account, nil
}

// FindAccount retrieves one account of the customer
func (s *AccountService) FindAccount(ctx context.Context, ownerNationalID string, accountID int64) (*models.Account, error) {
	_, account, err := ownedAccount(ctx, s.repos, ownerNationalID, accountID)
	if err != nil {
		return nil, err
	}

	return account, nil
}

// EditAccount moves the account to the bank identified by bankCode. The
// balance is re-read under a row lock so concurrent movements are not lost.
func (s *AccountService) EditAccount(
	ctx context.Context,
	ownerNationalID string,
	accountID int64,
	bankCode int,
) (*models.Account, error) {
	if _, _, err := ownedAccount(ctx, s.repos, ownerNationalID, accountID); err != nil {
		return nil, err
	}

	bank, err := s.resolveBank(ctx, bankCode)
	if err != nil {
		return nil, err
	}

	var account *models.Account
	err = s.uow.Do(ctx, func(repos repository.Repositories) error {
		if err := repos.Accounts.LockForUpdate(ctx, accountID); err != nil {
			return internalError("failed to lock account", err)
		}

		var err error
		account, err = repos.Accounts.FindByID(ctx, accountID)
		if err != nil {
			return accountLookupError(err)
		}

		account.Bank = bank
		if err := repos.Accounts.Update(ctx, account); err != nil {
			return internalError("failed to update account", err)
		}
		return nil
	})
	if err != nil {
		return nil, internalError("failed to edit account", err)
	}

	s.logger.Info("account updated", "account_id", accountID, "bank_code", bankCode)
	return account, nil
}

// RemoveAccount detaches the account from its owner and deletes it
func (s *AccountService) RemoveAccount(ctx context.Context, ownerNationalID string, accountID int64) error {
	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		customer, account, err := ownedAccount(ctx, repos, ownerNationalID, accountID)
		if err != nil {
			return err
		}

		customer.RemoveAccount(account)

		if err := repos.Accounts.Delete(ctx, account.ID); err != nil {
			return accountLookupError(err)
		}
		return nil
	})
	if err != nil {
		return internalError("failed to remove account", err)
	}

	s.logger.Info("account removed", "account_id", accountID)
	return nil
}

// ListAccounts returns the customer's accounts ordered by id
func (s *AccountService) ListAccounts(ctx context.Context, ownerNationalID string) ([]*models.Account, error) {
	customer, err := findCustomer(ctx, s.repos, ownerNationalID)
	if err != nil {
		return nil, err
	}

	if err := loadAccounts(ctx, s.repos, customer); err != nil {
		return nil, err
	}

	return customer.Accounts, nil
}

func (s *AccountService) resolveBank(ctx context.Context, code int) (string, error) {
	name, err := s.resolver.ResolveName(ctx, code)
	if errors.Is(err, models.ErrInvalidBankCode) {
		return "", &ServiceError{
			Code:    ErrCodeInvalidBankCode,
			Message: "invalid bank code",
			Err:     err,
		}
	}
	if err != nil {
		s.logger.Error("bank name lookup failed", "bank_code", code, "error", err)
		return "", internalError("failed to resolve bank name", err)
	}

	return name, nil
}

// ownedAccount is the ownership guard: customer first, then the account, then
// the owner check. A foreign account reads as not found.
func ownedAccount(
	ctx context.Context,
	repos repository.Repositories,
	ownerNationalID string,
	accountID int64,
) (*models.Customer, *models.Account, error) {
	customer, err := findCustomer(ctx, repos, ownerNationalID)
	if err != nil {
		return nil, nil, err
	}

	account, err := repos.Accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, nil, accountLookupError(err)
	}

	if !account.OwnedBy(customer) {
		return nil, nil, &ServiceError{
			Code:    ErrCodeAccountMismatch,
			Message: msgAccountNotFound,
		}
	}

	customer.AddAccount(account)
	return customer, account, nil
}

func accountLookupError(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{
			Code:    ErrCodeAccountNotFound,
			Message: msgAccountNotFound,
			Err:     err,
		}
	}
	return internalError("failed to find account", err)
}
