package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/benx421/bank-api/internal/models"
	"github.com/benx421/bank-api/internal/repository"
)

// CustomerService registers customers and removes them together with their accounts
type CustomerService struct {
	uow    UnitOfWork
	repos  repository.Repositories
	logger *slog.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(uow UnitOfWork, repos repository.Repositories, logger *slog.Logger) *CustomerService {
	return &CustomerService{
		uow:    uow,
		repos:  repos,
		logger: logger,
	}
}

// CreateCustomer registers a customer. The email is checked before the national id.
func (s *CustomerService) CreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	emailTaken, err := s.repos.Customers.ExistsByEmail(ctx, customer.Email)
	if err != nil {
		return nil, internalError("failed to check email", err)
	}
	if emailTaken {
		return nil, &ServiceError{Code: ErrCodeEmailTaken, Message: msgEmailTaken}
	}

	idTaken, err := s.repos.Customers.ExistsByNationalID(ctx, customer.NationalID)
	if err != nil {
		return nil, internalError("failed to check national id", err)
	}
	if idTaken {
		return nil, &ServiceError{Code: ErrCodeIDTaken, Message: msgIDTaken}
	}

	if err := s.repos.Customers.Create(ctx, customer); err != nil {
		return nil, customerWriteError(err)
	}

	customer.Accounts = make([]*models.Account, 0)

	s.logger.Info("customer created", "customer_id", customer.ID)
	return customer, nil
}

// FindCustomer retrieves a customer by national id with its accounts loaded
func (s *CustomerService) FindCustomer(ctx context.Context, nationalID string) (*models.Customer, error) {
	customer, err := findCustomer(ctx, s.repos, nationalID)
	if err != nil {
		return nil, err
	}

	if err := loadAccounts(ctx, s.repos, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// EditCustomer overwrites name, email and birth date. The national id never changes.
func (s *CustomerService) EditCustomer(
	ctx context.Context,
	nationalID, name, email string,
	birthDate time.Time,
) (*models.Customer, error) {
	customer, err := findCustomer(ctx, s.repos, nationalID)
	if err != nil {
		return nil, err
	}

	if email != customer.Email {
		taken, err := s.repos.Customers.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, internalError("failed to check email", err)
		}
		if taken {
			return nil, &ServiceError{Code: ErrCodeEmailTaken, Message: msgEmailTaken}
		}
	}

	customer.Edit(name, email, birthDate)

	if err := s.repos.Customers.Update(ctx, customer); err != nil {
		return nil, customerWriteError(err)
	}

	if err := loadAccounts(ctx, s.repos, customer); err != nil {
		return nil, err
	}

	s.logger.Info("customer updated", "customer_id", customer.ID)
	return customer, nil
}

// RemoveCustomer deletes the customer and every account it owns in one unit of work
func (s *CustomerService) RemoveCustomer(ctx context.Context, nationalID string) error {
	var (
		customerID int64
		removed    int64
	)

	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		customer, err := lockCustomer(ctx, repos, nationalID)
		if err != nil {
			return err
		}
		customerID = customer.ID

		removed, err = repos.Accounts.DeleteByOwnerID(ctx, customer.ID)
		if err != nil {
			return internalError("failed to remove accounts", err)
		}

		if err := repos.Customers.DeleteByNationalID(ctx, nationalID); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return &ServiceError{Code: ErrCodeCustomerNotFound, Message: msgCustomerNotFound, Err: err}
			}
			return internalError("failed to remove customer", err)
		}

		return nil
	})
	if err != nil {
		return internalError("failed to remove customer", err)
	}

	s.logger.Info("customer removed", "customer_id", customerID, "accounts_removed", removed)
	return nil
}

func findCustomer(ctx context.Context, repos repository.Repositories, nationalID string) (*models.Customer, error) {
	return customerOrError(repos.Customers.FindByNationalID(ctx, nationalID))
}

// lockCustomer is findCustomer holding the customer row until the unit of work ends
func lockCustomer(ctx context.Context, repos repository.Repositories, nationalID string) (*models.Customer, error) {
	return customerOrError(repos.Customers.FindByNationalIDForUpdate(ctx, nationalID))
}

func customerOrError(customer *models.Customer, err error) (*models.Customer, error) {
	if errors.Is(err, models.ErrNotFound) {
		return nil, &ServiceError{
			Code:    ErrCodeCustomerNotFound,
			Message: msgCustomerNotFound,
			Err:     err,
		}
	}
	if err != nil {
		return nil, internalError("failed to find customer", err)
	}

	return customer, nil
}

func loadAccounts(ctx context.Context, repos repository.Repositories, customer *models.Customer) error {
	accounts, err := repos.Accounts.FindByOwnerID(ctx, customer.ID)
	if err != nil {
		return internalError("failed to load accounts", err)
	}

	customer.Accounts = make([]*models.Account, 0, len(accounts))
	for _, account := range accounts {
		customer.AddAccount(account)
	}

	return nil
}

// customerWriteError maps unique violations raced past the pre-checks
func customerWriteError(err error) error {
	switch {
	case errors.Is(err, models.ErrDuplicateEmail):
		return &ServiceError{Code: ErrCodeEmailTaken, Message: msgEmailTaken, Err: err}
	case errors.Is(err, models.ErrDuplicateNationalID):
		return &ServiceError{Code: ErrCodeIDTaken, Message: msgIDTaken, Err: err}
	case errors.Is(err, models.ErrNotFound):
		return &ServiceError{Code: ErrCodeCustomerNotFound, Message: msgCustomerNotFound, Err: err}
	default:
		return internalError("failed to save customer", err)
	}
}
