// Package middleware provides HTTP middleware components for the bank API.
package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/benx421/bank-api/internal/models"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "X-Idempotent-Replayed"

	// a key released by a failed request between our claim and lookup is claimed again once
	claimAttempts = 2
)

// idempotentPaths are path.Match patterns of the POST endpoints whose first
// successful response is replayed for a repeated key
var idempotentPaths = []string{
	"/api/v1/customers",
	"/api/v1/customers/*/accounts",
	"/api/v1/transactions/deposits",
	"/api/v1/transactions/withdrawals",
	"/api/v1/transactions/transfers",
}

// IdempotencyRepository claims keys and keeps the first successful response
type IdempotencyRepository interface {
	Claim(ctx context.Context, key, requestPath string) (bool, error)
	Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error)
	Complete(ctx context.Context, idemKey *models.IdempotencyKey) error
	Release(ctx context.Context, key, requestPath string) error
}

type responseCapture struct {
	http.ResponseWriter
	body       bytes.Buffer
	statusCode int
}

func newResponseCapture(w http.ResponseWriter) *responseCapture {
	return &responseCapture{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rc *responseCapture) WriteHeader(code int) {
	rc.statusCode = code
	rc.ResponseWriter.WriteHeader(code)
}

func (rc *responseCapture) Write(b []byte) (int, error) {
	rc.body.Write(b)
	return rc.ResponseWriter.Write(b)
}

type idempotentRequest struct {
	repo        IdempotencyRepository
	logger      *slog.Logger
	key         string
	requestPath string
}

// Idempotency makes the money-moving and create endpoints safe to retry.
// The first request with a given Idempotency-Key claims it; a concurrent
// duplicate gets 409 and a later one replays the stored 2xx response.
func Idempotency(repo IdempotencyRepository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requiresIdempotency(r) {
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get(idempotencyKeyHeader)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			req := &idempotentRequest{
				repo:        repo,
				key:         key,
				requestPath: normalizeRequestPath(r.URL.Path),
				logger: logger.With(
					"request_id", RequestID(r.Context()),
					"key", key,
				),
			}

			// bookkeeping must outlive a client that hangs up mid-request
			ctx := context.WithoutCancel(r.Context())

			for range claimAttempts {
				claimed, err := repo.Claim(ctx, req.key, req.requestPath)
				if err != nil {
					req.logger.Error("failed to claim idempotency key", "error", err)
					next.ServeHTTP(w, r)
					return
				}
				if claimed {
					req.serve(ctx, next, w, r)
					return
				}

				stored, err := repo.Get(ctx, req.key, req.requestPath)
				if err != nil {
					req.logger.Error("failed to read idempotency key", "error", err)
					writeError(w, http.StatusInternalServerError, "internal_error", "an unexpected error occurred")
					return
				}
				if stored == nil {
					continue
				}
				if stored.Pending() {
					w.Header().Set("Retry-After", "1")
					writeError(w, http.StatusConflict, "request_in_progress",
						"a request with this Idempotency-Key is still being processed")
					return
				}

				req.replay(w, stored)
				return
			}

			writeError(w, http.StatusConflict, "request_in_progress",
				"a request with this Idempotency-Key is still being processed")
		})
	}
}

// serve runs the handler under a held claim. A 2xx response completes the
// claim; anything else, panics included, releases it for a retry.
func (req *idempotentRequest) serve(ctx context.Context, next http.Handler, w http.ResponseWriter, r *http.Request) {
	settled := false
	defer func() {
		if settled {
			return
		}
		if err := req.repo.Release(ctx, req.key, req.requestPath); err != nil {
			req.logger.Error("failed to release idempotency key", "error", err)
		}
	}()

	capture := newResponseCapture(w)
	next.ServeHTTP(capture, r)

	if !shouldCacheResponse(capture.statusCode) {
		return
	}

	// once the handler succeeded the key must never run again, even if recording fails
	settled = true
	err := req.repo.Complete(ctx, &models.IdempotencyKey{
		Key:              req.key,
		RequestPath:      req.requestPath,
		ResponseStatus:   capture.statusCode,
		ResponseBody:     capture.body.String(),
		ResponseLocation: capture.Header().Get("Location"),
	})
	if err != nil {
		req.logger.Error("failed to store idempotent response", "error", err)
	}
}

func (req *idempotentRequest) replay(w http.ResponseWriter, stored *models.IdempotencyKey) {
	req.logger.Debug("replaying idempotent response",
		"path", req.requestPath,
		"status", stored.ResponseStatus,
	)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(replayedHeader, "true")
	if stored.ResponseLocation != "" {
		w.Header().Set("Location", stored.ResponseLocation)
	}
	w.WriteHeader(stored.ResponseStatus)
	//nolint:errcheck // best effort
	w.Write([]byte(stored.ResponseBody))
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // best effort
	json.NewEncoder(w).Encode(map[string]string{"error": code, "message": message})
}

func requiresIdempotency(r *http.Request) bool {
	if r.Method != http.MethodPost {
		return false
	}

	requestPath := normalizeRequestPath(r.URL.Path)
	for _, pattern := range idempotentPaths {
		if ok, _ := path.Match(pattern, requestPath); ok {
			return true
		}
	}
	return false
}

func normalizeRequestPath(urlPath string) string {
	return strings.TrimSuffix(urlPath, "/")
}

func shouldCacheResponse(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
