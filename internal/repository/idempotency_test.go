package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/benx421/bank-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idempotencyColumns = []string{"key", "request_path", "response_status", "response_body", "response_location", "created_at"}

func TestIdempotencyRepository_Claim(t *testing.T) {
	t.Run("first request claims the key", func(t *testing.T) {
		database, mock := setupMockDB(t)

		mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (key, request_path) DO NOTHING")).
			WithArgs("key-1", "/transactions/deposits").
			WillReturnResult(sqlmock.NewResult(0, 1))

		claimed, err := NewIdempotencyRepository(database).Claim(context.Background(), "key-1", "/transactions/deposits")
		require.NoError(t, err)
		assert.True(t, claimed)
	})

	t.Run("key already held", func(t *testing.T) {
		database, mock := setupMockDB(t)

		mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (key, request_path) DO NOTHING")).
			WithArgs("key-1", "/transactions/deposits").
			WillReturnResult(sqlmock.NewResult(0, 0))

		claimed, err := NewIdempotencyRepository(database).Claim(context.Background(), "key-1", "/transactions/deposits")
		require.NoError(t, err)
		assert.False(t, claimed)
	})

	t.Run("database error", func(t *testing.T) {
		database, mock := setupMockDB(t)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO idempotency_keys")).
			WillReturnError(errors.New("connection reset"))

		claimed, err := NewIdempotencyRepository(database).Claim(context.Background(), "key-1", "/transactions/deposits")
		assert.ErrorContains(t, err, "failed to claim idempotency key")
		assert.False(t, claimed)
	})
}

func TestIdempotencyRepository_Get(t *testing.T) {
	t.Run("unseen key", func(t *testing.T) {
		database, mock := setupMockDB(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM idempotency_keys")).
			WithArgs("key-1", "/transactions/deposits").
			WillReturnRows(sqlmock.NewRows(idempotencyColumns))

		got, err := NewIdempotencyRepository(database).Get(context.Background(), "key-1", "/transactions/deposits")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("cached response", func(t *testing.T) {
		database, mock := setupMockDB(t)
		created := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

		mock.ExpectQuery(regexp.QuoteMeta("FROM idempotency_keys")).
			WithArgs("key-1", "/transactions/deposits").
			WillReturnRows(sqlmock.NewRows(idempotencyColumns).
				AddRow("key-1", "/transactions/deposits", 201, []byte(`{"id":1}`), "/api/v1/transactions/1", created))

		got, err := NewIdempotencyRepository(database).Get(context.Background(), "key-1", "/transactions/deposits")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 201, got.ResponseStatus)
		assert.JSONEq(t, `{"id":1}`, got.ResponseBody)
		assert.Equal(t, "/api/v1/transactions/1", got.ResponseLocation)
		assert.False(t, got.Pending())
	})

	t.Run("pending claim", func(t *testing.T) {
		database, mock := setupMockDB(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM idempotency_keys")).
			WithArgs("key-1", "/transactions/deposits").
			WillReturnRows(sqlmock.NewRows(idempotencyColumns).
				AddRow("key-1", "/transactions/deposits", 0, "", "", time.Now()))

		got, err := NewIdempotencyRepository(database).Get(context.Background(), "key-1", "/transactions/deposits")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.Pending())
	})
}

func TestIdempotencyRepository_Complete(t *testing.T) {
	database, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE idempotency_keys")).
		WithArgs("key-1", "/transactions/deposits", 201, `{"id":1}`, "/api/v1/transactions/1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewIdempotencyRepository(database).Complete(context.Background(), &models.IdempotencyKey{
		Key:              "key-1",
		RequestPath:      "/transactions/deposits",
		ResponseStatus:   201,
		ResponseBody:     `{"id":1}`,
		ResponseLocation: "/api/v1/transactions/1",
	})
	assert.NoError(t, err)
}

func TestIdempotencyRepository_Release(t *testing.T) {
	database, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM idempotency_keys")).
		WithArgs("key-1", "/transactions/deposits").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewIdempotencyRepository(database).Release(context.Background(), "key-1", "/transactions/deposits")
	assert.NoError(t, err)
}
