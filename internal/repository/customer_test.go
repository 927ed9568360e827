package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/benx421/bank-api/internal/models"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var customerCols = []string{"id", "name", "email", "national_id", "birth_date", "created_at"}

func TestCustomerRepository_FindByNationalID(t *testing.T) {
	birth := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		database, mock := setupMockDB(t)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE national_id = $1")).
			WithArgs("52998224725").
			WillReturnRows(sqlmock.NewRows(customerCols).
				AddRow(int64(3), "Ana Souza", "ana@example.com", "52998224725", birth, created))

		customer, err := NewCustomerRepository(database).FindByNationalID(context.Background(), "52998224725")

		require.NoError(t, err)
		assert.Equal(t, int64(3), customer.ID)
		assert.Equal(t, "Ana Souza", customer.Name)
		assert.Equal(t, "ana@example.com", customer.Email)
		assert.Equal(t, birth, customer.BirthDate)
		assert.Empty(t, customer.Accounts)
	})

	t.Run("not found", func(t *testing.T) {
		database, mock := setupMockDB(t)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE national_id = $1")).
			WithArgs("11144477735").
			WillReturnRows(sqlmock.NewRows(customerCols))

		customer, err := NewCustomerRepository(database).FindByNationalID(context.Background(), "11144477735")

		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, customer)
	})
}

func TestCustomerRepository_FindByNationalIDForUpdate(t *testing.T) {
	t.Run("locks the row", func(t *testing.T) {
		database, mock := setupMockDB(t)

		mock.ExpectQuery(`WHERE national_id = \$1\s+FOR UPDATE`).
			WithArgs("52998224725").
			WillReturnRows(sqlmock.NewRows(customerCols).
				AddRow(int64(3), "Ana Souza", "ana@example.com", "52998224725", time.Now(), time.Now()))

		customer, err := NewCustomerRepository(database).FindByNationalIDForUpdate(context.Background(), "52998224725")

		require.NoError(t, err)
		assert.Equal(t, int64(3), customer.ID)
	})

	t.Run("removed concurrently", func(t *testing.T) {
		database, mock := setupMockDB(t)

		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
			WithArgs("52998224725").
			WillReturnRows(sqlmock.NewRows(customerCols))

		customer, err := NewCustomerRepository(database).FindByNationalIDForUpdate(context.Background(), "52998224725")

		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, customer)
	})
}

func TestCustomerRepository_Exists(t *testing.T) {
	database, mock := setupMockDB(t)
	repo := NewCustomerRepository(database)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE email = $1")).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE national_id = $1")).
		WithArgs("52998224725").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	found, err := repo.ExistsByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.ExistsByNationalID(context.Background(), "52998224725")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCustomerRepository_Create(t *testing.T) {
	birth := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

	newCustomer := func() *models.Customer {
		return &models.Customer{
			Name:       "Ana Souza",
			Email:      "ana@example.com",
			NationalID: "52998224725",
			BirthDate:  birth,
		}
	}

	tests := []struct {
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
		name    string
	}{
		{
			name: "inserted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customers")).
					WithArgs("Ana Souza", "ana@example.com", "52998224725", birth).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(9), created))
			},
		},
		{
			name: "email taken",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customers")).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "customers_email_key"})
			},
			wantErr: models.ErrDuplicateEmail,
		},
		{
			name: "national id taken",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customers")).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "customers_national_id_key"})
			},
			wantErr: models.ErrDuplicateNationalID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database, mock := setupMockDB(t)
			tt.setup(mock)

			customer := newCustomer()
			err := NewCustomerRepository(database).Create(context.Background(), customer)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(9), customer.ID)
			assert.Equal(t, created, customer.CreatedAt)
		})
	}
}

func TestCustomerRepository_Update(t *testing.T) {
	birth := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)

	t.Run("never writes the national id", func(t *testing.T) {
		database, mock := setupMockDB(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE customers SET name = $2, email = $3, birth_date = $4 WHERE id = $1")).
			WithArgs(int64(3), "Ana S.", "ana@new.example.com", birth).
			WillReturnResult(sqlmock.NewResult(0, 1))

		customer := &models.Customer{ID: 3, Name: "Ana S.", Email: "ana@new.example.com", BirthDate: birth, NationalID: "52998224725"}
		assert.NoError(t, NewCustomerRepository(database).Update(context.Background(), customer))
	})

	t.Run("email collision", func(t *testing.T) {
		database, mock := setupMockDB(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE customers")).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "customers_email_key"})

		err := NewCustomerRepository(database).Update(context.Background(), &models.Customer{ID: 3})
		assert.ErrorIs(t, err, models.ErrDuplicateEmail)
	})
}

func TestCustomerRepository_DeleteByNationalID(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		database, mock := setupMockDB(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM customers WHERE national_id = $1")).
			WithArgs("52998224725").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewCustomerRepository(database).DeleteByNationalID(context.Background(), "52998224725"))
	})

	t.Run("missing", func(t *testing.T) {
		database, mock := setupMockDB(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM customers")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewCustomerRepository(database).DeleteByNationalID(context.Background(), "52998224725")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestMapUniqueViolation(t *testing.T) {
	other := errors.New("boom")
	fk := &pq.Error{Code: "23503", Constraint: "accounts_owner_id_fkey"}
	unknownUnique := &pq.Error{Code: "23505", Constraint: "something_else"}

	assert.Same(t, other, mapUniqueViolation(other))
	assert.Same(t, fk, mapUniqueViolation(fk))
	assert.Equal(t, error(unknownUnique), mapUniqueViolation(unknownUnique))
	assert.Equal(t, models.ErrDuplicateEmail, mapUniqueViolation(&pq.Error{Code: "23505", Constraint: "customers_email_key"}))
}
