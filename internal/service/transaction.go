package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/benx421/bank-api/internal/models"
	"github.com/benx421/bank-api/internal/repository"
	"github.com/shopspring/decimal"
)

const (
	msgOriginNotFound      = "origin account doesn't exist"
	msgDestinationNotFound = "destination account doesn't exist"
)

// TransactionService applies deposits, withdrawals and transfers to accounts.
// Every creation runs as one unit of work: the balance changes and the
// transaction record are committed together or not at all.
type TransactionService struct {
	uow    UnitOfWork
	repos  repository.Repositories
	logger *slog.Logger
	now    func() time.Time
	paging Paging
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(
	uow UnitOfWork,
	repos repository.Repositories,
	paging Paging,
	logger *slog.Logger,
) *TransactionService {
	return &TransactionService{
		uow:    uow,
		repos:  repos,
		paging: paging,
		logger: logger,
		now:    time.Now,
	}
}

// CreateDeposit credits amount to the origin account
func (s *TransactionService) CreateDeposit(ctx context.Context, originID int64, amount decimal.Decimal) (*models.Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}

	var txn *models.Transaction
	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		var err error
		txn, err = s.performDeposit(ctx, repos, originID, amount)
		return err
	})
	if err != nil {
		return nil, s.fail("deposit", err, "origin_account_id", originID)
	}

	s.logger.Info("deposit recorded", "transaction_id", txn.ID, "origin_account_id", originID)
	return txn, nil
}

// CreateWithdrawal debits amount from the origin account
func (s *TransactionService) CreateWithdrawal(ctx context.Context, originID int64, amount decimal.Decimal) (*models.Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}

	var txn *models.Transaction
	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		var err error
		txn, err = s.performWithdrawal(ctx, repos, originID, amount)
		return err
	})
	if err != nil {
		return nil, s.fail("withdrawal", err, "origin_account_id", originID)
	}

	s.logger.Info("withdrawal recorded", "transaction_id", txn.ID, "origin_account_id", originID)
	return txn, nil
}

// CreateTransfer moves amount from the origin to the destination account
func (s *TransactionService) CreateTransfer(
	ctx context.Context,
	originID, destinationID int64,
	amount decimal.Decimal,
) (*models.Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}

	var txn *models.Transaction
	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		var err error
		txn, err = s.performTransfer(ctx, repos, originID, destinationID, amount)
		return err
	})
	if err != nil {
		return nil, s.fail("transfer", err, "origin_account_id", originID, "destination_account_id", destinationID)
	}

	s.logger.Info("transfer recorded",
		"transaction_id", txn.ID,
		"origin_account_id", originID,
		"destination_account_id", destinationID,
	)
	return txn, nil
}

// performDeposit contains the core deposit logic
func (s *TransactionService) performDeposit(
	ctx context.Context,
	repos repository.Repositories,
	originID int64,
	amount decimal.Decimal,
) (*models.Transaction, error) {
	origin, err := s.lockAccount(ctx, repos, originID, msgOriginNotFound)
	if err != nil {
		return nil, err
	}

	origin.Deposit(amount)

	return s.record(ctx, repos, models.TransactionTypeDeposit, amount, origin)
}

// performWithdrawal contains the core withdrawal logic
func (s *TransactionService) performWithdrawal(
	ctx context.Context,
	repos repository.Repositories,
	originID int64,
	amount decimal.Decimal,
) (*models.Transaction, error) {
	origin, err := s.lockAccount(ctx, repos, originID, msgOriginNotFound)
	if err != nil {
		return nil, err
	}

	if err := origin.Withdraw(amount); err != nil {
		return nil, ledgerError(err)
	}

	return s.record(ctx, repos, models.TransactionTypeWithdrawal, amount, origin)
}

// performTransfer contains the core transfer logic. Both rows are locked up
// front in ascending id order; the origin is still resolved first.
func (s *TransactionService) performTransfer(
	ctx context.Context,
	repos repository.Repositories,
	originID, destinationID int64,
	amount decimal.Decimal,
) (*models.Transaction, error) {
	if err := repos.Accounts.LockForUpdate(ctx, originID, destinationID); err != nil {
		return nil, internalError("failed to lock accounts", err)
	}

	origin, err := findAccount(ctx, repos, originID, msgOriginNotFound)
	if err != nil {
		return nil, err
	}

	destination, err := findAccount(ctx, repos, destinationID, msgDestinationNotFound)
	if err != nil {
		return nil, err
	}

	if err := origin.Transfer(amount, destination); err != nil {
		return nil, ledgerError(err)
	}

	if err := repos.Accounts.Update(ctx, destination); err != nil {
		return nil, internalError("failed to update destination account", err)
	}

	return s.record(ctx, repos, models.TransactionTypeTransfer, amount, origin, destination)
}

// FindTransaction retrieves a transaction by ID
func (s *TransactionService) FindTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	txn, err := s.repos.Transactions.FindByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, &ServiceError{
			Code:    ErrCodeTransactionNotFound,
			Message: "transaction not found",
		}
	}
	if err != nil {
		return nil, internalError("failed to find transaction", err)
	}

	return txn, nil
}

// ListByOriginAccount returns one zero-based page of the transactions that
// debited or credited accountID as their origin, oldest first.
func (s *TransactionService) ListByOriginAccount(
	ctx context.Context,
	accountID int64,
	page, size int,
) ([]*models.Transaction, error) {
	size, err := s.paging.Normalize(page, size)
	if err != nil {
		return nil, &ServiceError{Code: ErrCodeInvalidPage, Message: err.Error()}
	}

	txns, err := s.repos.Transactions.FindAllByOriginAccountID(ctx, accountID, page, size)
	if err != nil {
		return nil, internalError("failed to list transactions", err)
	}

	return txns, nil
}

func (s *TransactionService) lockAccount(
	ctx context.Context,
	repos repository.Repositories,
	id int64,
	notFoundMessage string,
) (*models.Account, error) {
	if err := repos.Accounts.LockForUpdate(ctx, id); err != nil {
		return nil, internalError("failed to lock account", err)
	}
	return findAccount(ctx, repos, id, notFoundMessage)
}

// record persists the origin balance and the transaction row. destination is
// set only for transfers.
func (s *TransactionService) record(
	ctx context.Context,
	repos repository.Repositories,
	txType models.TransactionType,
	amount decimal.Decimal,
	origin *models.Account,
	destination ...*models.Account,
) (*models.Transaction, error) {
	if err := repos.Accounts.Update(ctx, origin); err != nil {
		return nil, internalError("failed to update origin account", err)
	}

	var destinationID *int64
	if len(destination) > 0 {
		id := destination[0].ID
		destinationID = &id
	}

	txn := models.NewTransaction(txType, amount, origin.ID, destinationID, s.now())
	if err := repos.Transactions.Create(ctx, txn); err != nil {
		return nil, internalError("failed to record transaction", err)
	}

	return txn, nil
}

func (s *TransactionService) fail(operation string, err error, attrs ...any) error {
	err = internalError("failed to complete "+operation, err)
	attrs = append(attrs, "operation", operation, "error", err)
	if IsCode(err, ErrCodeInternalError) {
		s.logger.Error("transaction failed", attrs...)
	} else {
		s.logger.Info("transaction rejected", attrs...)
	}
	return err
}

func findAccount(ctx context.Context, repos repository.Repositories, id int64, notFoundMessage string) (*models.Account, error) {
	account, err := repos.Accounts.FindByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidAccount,
			Message: notFoundMessage,
			Err:     err,
		}
	}
	if err != nil {
		return nil, internalError("failed to find account", err)
	}

	return account, nil
}

func ledgerError(err error) error {
	switch {
	case errors.Is(err, models.ErrInsufficientBalance):
		return &ServiceError{Code: ErrCodeInsufficientBalance, Message: err.Error(), Err: err}
	case errors.Is(err, models.ErrSelfTransfer):
		return &ServiceError{Code: ErrCodeSelfTransfer, Message: err.Error(), Err: err}
	default:
		return internalError("ledger operation failed", err)
	}
}
