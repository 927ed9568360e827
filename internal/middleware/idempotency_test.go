package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/benx421/bank-api/internal/models"
	"github.com/benx421/bank-api/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const depositsPath = "/api/v1/transactions/deposits"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body)) //nolint:errcheck // test helper
	})
}

func postWithKey(target, key string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, nil)
	req.Header.Set("Idempotency-Key", key)
	return req
}

func TestIdempotency_GETRequestsBypassed(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	middleware := Idempotency(repo, testLogger())

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	req.Header.Set("Idempotency-Key", "test-key")
	rec := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rec, req)

	assert.True(t, handlerCalled, "handler should be called for GET requests")
	repo.AssertNotCalled(t, "Claim")
}

func TestIdempotency_NonIdempotentPathBypassed(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	middleware := Idempotency(repo, testLogger())

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rec, postWithKey("/api/v1/customers/52998224725/accounts/3", "test-key"))

	assert.True(t, handlerCalled, "handler should be called for non-idempotent paths")
	repo.AssertNotCalled(t, "Claim")
}

func TestIdempotency_MissingKeyPassesThrough(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	middleware := Idempotency(repo, testLogger())

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, depositsPath, nil)
	rec := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rec, req)

	assert.True(t, handlerCalled, "handler should be called without idempotency key")
	repo.AssertNotCalled(t, "Claim")
}

func TestIdempotency_FirstRequestStored(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Claim", mock.Anything, "unique-key-123", depositsPath).Return(true, nil)
	repo.On("Complete", mock.Anything, mock.MatchedBy(func(k *models.IdempotencyKey) bool {
		return k.Key == "unique-key-123" &&
			k.ResponseStatus == http.StatusCreated &&
			k.ResponseBody == `{"id":7}` &&
			k.ResponseLocation == "/api/v1/transactions/7"
	})).Return(nil)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "/api/v1/transactions/7")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7}`)) //nolint:errcheck // test helper
	})

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(handler).ServeHTTP(rec, postWithKey(depositsPath, "unique-key-123"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `{"id":7}`, rec.Body.String())
	assert.Empty(t, rec.Header().Get("X-Idempotent-Replayed"), "first request should not have replay header")
	repo.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
}

func TestIdempotency_CompletedKeyReplaysResponse(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Claim", mock.Anything, "duplicate-key", depositsPath).Return(false, nil)
	repo.On("Get", mock.Anything, "duplicate-key", depositsPath).Return(&models.IdempotencyKey{
		Key:              "duplicate-key",
		RequestPath:      depositsPath,
		ResponseStatus:   http.StatusCreated,
		ResponseBody:     `{"id":1}`,
		ResponseLocation: "/api/v1/transactions/1",
	}, nil)

	callCount := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callCount++
		w.WriteHeader(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(handler).ServeHTTP(rec, postWithKey(depositsPath, "duplicate-key"))

	assert.Equal(t, 0, callCount, "handler should not be called when a response is stored")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `{"id":1}`, rec.Body.String())
	assert.Equal(t, "true", rec.Header().Get("X-Idempotent-Replayed"))
	assert.Equal(t, "/api/v1/transactions/1", rec.Header().Get("Location"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestIdempotency_PendingKeyConflicts(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Claim", mock.Anything, "busy-key", depositsPath).Return(false, nil)
	repo.On("Get", mock.Anything, "busy-key", depositsPath).Return(&models.IdempotencyKey{
		Key:         "busy-key",
		RequestPath: depositsPath,
	}, nil)

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	})

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(handler).ServeHTTP(rec, postWithKey(depositsPath, "busy-key"))

	assert.False(t, handlerCalled)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.JSONEq(t,
		`{"error":"request_in_progress","message":"a request with this Idempotency-Key is still being processed"}`,
		rec.Body.String())
}

func TestIdempotency_ConcurrentSameKeyRunsHandlerOnce(t *testing.T) {
	const requests = 8

	var claims atomic.Int32
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Claim", mock.Anything, "k1", "/api/v1/transactions/withdrawals").
		Return(func(context.Context, string, string) (bool, error) {
			return claims.Add(1) == 1, nil
		})
	repo.On("Get", mock.Anything, "k1", "/api/v1/transactions/withdrawals").
		Return(&models.IdempotencyKey{Key: "k1", RequestPath: "/api/v1/transactions/withdrawals"}, nil).
		Maybe()
	repo.On("Complete", mock.Anything, mock.AnythingOfType("*models.IdempotencyKey")).Return(nil)

	var executions atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		executions.Add(1)
		w.WriteHeader(http.StatusCreated)
	})
	wrapped := Idempotency(repo, testLogger())(handler)

	statuses := make([]int, requests)
	var wg sync.WaitGroup
	for i := range requests {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := httptest.NewRecorder()
			wrapped.ServeHTTP(rec, postWithKey("/api/v1/transactions/withdrawals", "k1"))
			statuses[i] = rec.Code
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), executions.Load(), "one Idempotency-Key runs the handler once")

	created, conflicts := 0, 0
	for _, status := range statuses {
		switch status {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicts++
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, requests-1, conflicts)
}

func TestIdempotency_ReleasedKeyIsClaimedAgain(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Claim", mock.Anything, "retry-key", depositsPath).Return(false, nil).Once()
	repo.On("Get", mock.Anything, "retry-key", depositsPath).Return(nil, nil).Once()
	repo.On("Claim", mock.Anything, "retry-key", depositsPath).Return(true, nil).Once()
	repo.On("Complete", mock.Anything, mock.AnythingOfType("*models.IdempotencyKey")).Return(nil)

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(testHandler(http.StatusCreated, `{}`)).
		ServeHTTP(rec, postWithKey(depositsPath, "retry-key"))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestIdempotency_SameKeyDifferentPathsAreSeparate(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Claim", mock.Anything, "shared-key", mock.Anything).Return(true, nil)
	repo.On("Complete", mock.Anything, mock.AnythingOfType("*models.IdempotencyKey")).Return(nil)

	middleware := Idempotency(repo, testLogger())

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"path":"` + r.URL.Path + `"}`)) //nolint:errcheck // test helper
	})

	rec1 := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rec1, postWithKey(depositsPath, "shared-key"))

	rec2 := httptest.NewRecorder()
	middleware(handler).ServeHTTP(rec2, postWithKey("/api/v1/transactions/transfers", "shared-key"))

	assert.Contains(t, rec1.Body.String(), "deposits")
	assert.Contains(t, rec2.Body.String(), "transfers")

	repo.AssertCalled(t, "Claim", mock.Anything, "shared-key", depositsPath)
	repo.AssertCalled(t, "Claim", mock.Anything, "shared-key", "/api/v1/transactions/transfers")
}

func TestIdempotency_FailedResponsesReleaseKey(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			repo := mocks.NewMockIdempotencyRepository(t)
			repo.On("Claim", mock.Anything, "error-key", depositsPath).Return(true, nil)
			repo.On("Release", mock.Anything, "error-key", depositsPath).Return(nil)

			rec := httptest.NewRecorder()
			Idempotency(repo, testLogger())(testHandler(status, `{"error":"x"}`)).
				ServeHTTP(rec, postWithKey(depositsPath, "error-key"))

			assert.Equal(t, status, rec.Code)
			repo.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
		})
	}
}

func TestIdempotency_PanicReleasesKey(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Claim", mock.Anything, "panic-key", depositsPath).Return(true, nil)
	repo.On("Release", mock.Anything, "panic-key", depositsPath).Return(nil)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	assert.Panics(t, func() {
		Idempotency(repo, testLogger())(handler).ServeHTTP(httptest.NewRecorder(), postWithKey(depositsPath, "panic-key"))
	})
}

func TestIdempotency_ClaimErrorFailsOpen(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Claim", mock.Anything, "test-key", depositsPath).Return(false, errors.New("database connection failed"))

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(handler).ServeHTTP(rec, postWithKey(depositsPath, "test-key"))

	assert.True(t, handlerCalled, "handler should be called when the key cannot be claimed")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIdempotency_LookupErrorDoesNotRunHandler(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Claim", mock.Anything, "test-key", depositsPath).Return(false, nil)
	repo.On("Get", mock.Anything, "test-key", depositsPath).Return(nil, errors.New("database connection failed"))

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	})

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(handler).ServeHTTP(rec, postWithKey(depositsPath, "test-key"))

	assert.False(t, handlerCalled)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestIdempotency_CompleteErrorDoesNotAffectResponse(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Claim", mock.Anything, "test-key", depositsPath).Return(true, nil)
	repo.On("Complete", mock.Anything, mock.AnythingOfType("*models.IdempotencyKey")).Return(errors.New("failed to store"))

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(testHandler(http.StatusOK, `{"status":"success"}`)).
		ServeHTTP(rec, postWithKey(depositsPath, "test-key"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"status":"success"}`, rec.Body.String())
	repo.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
}

func TestIdempotency_AllIdempotentPaths(t *testing.T) {
	paths := []string{
		"/api/v1/customers",
		"/api/v1/customers/52998224725/accounts",
		"/api/v1/transactions/deposits",
		"/api/v1/transactions/withdrawals",
		"/api/v1/transactions/transfers",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			repo := mocks.NewMockIdempotencyRepository(t)
			repo.On("Claim", mock.Anything, "test-key", path).Return(true, nil)
			repo.On("Complete", mock.Anything, mock.AnythingOfType("*models.IdempotencyKey")).Return(nil)

			rec := httptest.NewRecorder()
			Idempotency(repo, testLogger())(testHandler(http.StatusOK, `{"path":"`+path+`"}`)).
				ServeHTTP(rec, postWithKey(path, "test-key"))

			repo.AssertCalled(t, "Complete", mock.Anything, mock.AnythingOfType("*models.IdempotencyKey"))
		})
	}
}

func TestIdempotency_TrailingSlashSharesKey(t *testing.T) {
	repo := mocks.NewMockIdempotencyRepository(t)
	repo.On("Claim", mock.Anything, "slash-key", "/api/v1/customers").Return(true, nil)
	repo.On("Complete", mock.Anything, mock.MatchedBy(func(k *models.IdempotencyKey) bool {
		return k.RequestPath == "/api/v1/customers" && k.ResponseStatus == http.StatusCreated
	})).Return(nil)

	rec := httptest.NewRecorder()
	Idempotency(repo, testLogger())(testHandler(http.StatusCreated, `{"id":1}`)).
		ServeHTTP(rec, postWithKey("/api/v1/customers/", "slash-key"))

	assert.Equal(t, http.StatusCreated, rec.Code)
}
