package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/benx421/bank-api/internal/db"
	"github.com/benx421/bank-api/internal/models"
)

// IdempotencyRepository claims request keys and stores the first successful response per key and path
type IdempotencyRepository interface {
	Claim(ctx context.Context, key, requestPath string) (bool, error)
	Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error)
	Complete(ctx context.Context, idemKey *models.IdempotencyKey) error
	Release(ctx context.Context, key, requestPath string) error
}

type idempotencyRepository struct {
	q db.Querier
}

// NewIdempotencyRepository creates a new IdempotencyRepository
func NewIdempotencyRepository(q db.Querier) IdempotencyRepository {
	return &idempotencyRepository{q: q}
}

// Claim inserts a pending row for the key. It reports false when another
// request already holds or has completed the key.
func (r *idempotencyRepository) Claim(ctx context.Context, key, requestPath string) (bool, error) {
	query := `
		INSERT INTO idempotency_keys (key, request_path)
		VALUES ($1, $2)
		ON CONFLICT (key, request_path) DO NOTHING
	`

	result, err := r.q.ExecContext(ctx, query, key, requestPath)
	if err != nil {
		return false, fmt.Errorf("failed to claim idempotency key: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to claim idempotency key: %w", err)
	}

	return rows == 1, nil
}

// Get returns the stored row, or nil when the key has not been seen
func (r *idempotencyRepository) Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error) {
	query := `
		SELECT key, request_path, response_status, response_body, response_location, created_at
		FROM idempotency_keys
		WHERE key = $1 AND request_path = $2
	`

	var idemKey models.IdempotencyKey
	err := r.q.QueryRowContext(ctx, query, key, requestPath).Scan(
		&idemKey.Key,
		&idemKey.RequestPath,
		&idemKey.ResponseStatus,
		&idemKey.ResponseBody,
		&idemKey.ResponseLocation,
		&idemKey.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get idempotency key: %w", err)
	}

	return &idemKey, nil
}

// Complete records the response of a claimed key
func (r *idempotencyRepository) Complete(ctx context.Context, idemKey *models.IdempotencyKey) error {
	query := `
		UPDATE idempotency_keys
		SET response_status = $3, response_body = $4, response_location = $5
		WHERE key = $1 AND request_path = $2 AND response_status = 0
	`

	_, err := r.q.ExecContext(ctx, query,
		idemKey.Key,
		idemKey.RequestPath,
		idemKey.ResponseStatus,
		idemKey.ResponseBody,
		idemKey.ResponseLocation,
	)
	if err != nil {
		return fmt.Errorf("failed to store idempotency key: %w", err)
	}

	return nil
}

// Release drops a pending claim so the key can be retried
func (r *idempotencyRepository) Release(ctx context.Context, key, requestPath string) error {
	query := `
		DELETE FROM idempotency_keys
		WHERE key = $1 AND request_path = $2 AND response_status = 0
	`

	if _, err := r.q.ExecContext(ctx, query, key, requestPath); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}

	return nil
}
