package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benx421/bank-api/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testServer struct {
	transactions *mocks.MockTransactionEngine
	customers    *mocks.MockCustomerRegistry
	accounts     *mocks.MockAccountManager
	health       *mocks.MockHealthChecker
	mux          *http.ServeMux
}

func newTestServer(t *testing.T) *testServer {
	ts := &testServer{
		transactions: mocks.NewMockTransactionEngine(t),
		customers:    mocks.NewMockCustomerRegistry(t),
		accounts:     mocks.NewMockAccountManager(t),
		health:       mocks.NewMockHealthChecker(t),
		mux:          http.NewServeMux(),
	}

	handler := NewHandler(ts.transactions, ts.customers, ts.accounts, ts.health, testLogger())
	handler.RegisterRoutes(ts.mux)
	return ts
}

func (ts *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	ts.mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decEq(s string) func(decimal.Decimal) bool {
	want := dec(s)
	return func(d decimal.Decimal) bool { return d.Equal(want) }
}

func int64Ptr(v int64) *int64 {
	return &v
}

func fieldMessages(resp errorResponse) map[string]string {
	out := make(map[string]string, len(resp.Errors))
	for _, fe := range resp.Errors {
		out[fe.Field] = fe.Message
	}
	return out
}
