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

const (
	pgUniqueViolation = pq.ErrorCode("23505")

	constraintCustomerEmail      = "customers_email_key"
	constraintCustomerNationalID = "customers_national_id_key"
)

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	FindByNationalID(ctx context.Context, nationalID string) (*models.Customer, error)
	FindByNationalIDForUpdate(ctx context.Context, nationalID string) (*models.Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByNationalID(ctx context.Context, nationalID string) (bool, error)
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customer *models.Customer) error
	DeleteByNationalID(ctx context.Context, nationalID string) error
}

type customerRepository struct {
	q db.Querier
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(q db.Querier) CustomerRepository {
	return &customerRepository{q: q}
}

const customerByNationalID = `
	SELECT id, name, email, national_id, birth_date, created_at
	FROM customers
	WHERE national_id = $1
`

// FindByNationalID retrieves a customer by natural key
func (r *customerRepository) FindByNationalID(ctx context.Context, nationalID string) (*models.Customer, error) {
	return r.findOne(ctx, customerByNationalID, nationalID)
}

// FindByNationalIDForUpdate retrieves a customer and holds its row lock until
// the surrounding transaction ends, so accounts cannot be attached or removed
// concurrently.
func (r *customerRepository) FindByNationalIDForUpdate(ctx context.Context, nationalID string) (*models.Customer, error) {
	return r.findOne(ctx, customerByNationalID+"FOR UPDATE", nationalID)
}

func (r *customerRepository) findOne(ctx context.Context, query, nationalID string) (*models.Customer, error) {
	var customer models.Customer
	err := r.q.QueryRowContext(ctx, query, nationalID).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.NationalID,
		&customer.BirthDate,
		&customer.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("customer: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find customer by national id: %w", err)
	}

	return &customer, nil
}

// ExistsByEmail reports whether any customer uses email
func (r *customerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE email = $1)`, email)
}

// ExistsByNationalID reports whether any customer uses nationalID
func (r *customerRepository) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE national_id = $1)`, nationalID)
}

func (r *customerRepository) exists(ctx context.Context, query, arg string) (bool, error) {
	var found bool
	if err := r.q.QueryRowContext(ctx, query, arg).Scan(&found); err != nil {
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}
	return found, nil
}

// Create inserts a customer and fills in its generated id
func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (name, email, national_id, birth_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.q.QueryRowContext(ctx, query,
		customer.Name,
		customer.Email,
		customer.NationalID,
		customer.BirthDate,
	).Scan(&customer.ID, &customer.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", mapUniqueViolation(err))
	}

	return nil
}

// Update overwrites the mutable attributes. The national id is never written.
func (r *customerRepository) Update(ctx context.Context, customer *models.Customer) error {
	query := `UPDATE customers SET name = $2, email = $3, birth_date = $4 WHERE id = $1`

	result, err := r.q.ExecContext(ctx, query,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.BirthDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", mapUniqueViolation(err))
	}

	return expectRows(result, customer.ID)
}

// DeleteByNationalID removes the customer row. Accounts must be gone already.
func (r *customerRepository) DeleteByNationalID(ctx context.Context, nationalID string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM customers WHERE national_id = $1`, nationalID)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("customer: %w", models.ErrNotFound)
	}

	return nil
}

func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != pgUniqueViolation {
		return err
	}

	switch pqErr.Constraint {
	case constraintCustomerEmail:
		return models.ErrDuplicateEmail
	case constraintCustomerNationalID:
		return models.ErrDuplicateNationalID
	default:
		return err
	}
}
