package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/benx421/bank-api/internal/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*db.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to open sqlmock")

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet(), "unmet sql expectations")
		_ = sqlDB.Close() //nolint:errcheck // test cleanup
	})

	return db.NewTestDB(sqlDB), mock
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func int64Ptr(v int64) *int64 {
	return &v
}
