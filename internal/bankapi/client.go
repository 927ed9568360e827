// Package bankapi resolves bank codes to bank names through the public bank registry.
package bankapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/benx421/bank-api/internal/config"
	"github.com/benx421/bank-api/internal/models"
	"github.com/hashicorp/go-retryablehttp"
)

// retry attempts are logged through the service logger
var _ retryablehttp.LeveledLogger = (*slog.Logger)(nil)

// Client calls GET {base}/banks/v1/{code} on the registry
type Client struct {
	client  *retryablehttp.Client
	baseURL string
	logger  *slog.Logger
}

type bankResponse struct {
	FullName string `json:"fullName"`
	Name     string `json:"name"`
	Code     *int   `json:"code"`
}

// NewClient creates a registry client. Connection errors and 5xx responses
// are retried up to cfg.MaxRetries times; 4xx responses are not.
func NewClient(cfg *config.BankAPIConfig, logger *slog.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.MaxRetries
	rc.HTTPClient.Timeout = cfg.Timeout
	rc.Logger = logger

	return &Client{
		client:  rc,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}
}

// ResolveName returns the full name of the bank with the given code, or
// models.ErrInvalidBankCode when the registry does not know it.
func (c *Client) ResolveName(ctx context.Context, code int) (string, error) {
	if code <= 0 {
		return "", models.ErrInvalidBankCode
	}

	url := fmt.Sprintf("%s/banks/v1/%d", c.baseURL, code)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build bank registry request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("bank registry unreachable: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() //nolint:errcheck // body already consumed
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.logger.Info("unknown bank code", "bank_code", code)
		return "", models.ErrInvalidBankCode
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", fmt.Errorf("bank registry returned status %d for code %d", resp.StatusCode, code)
	}

	var body bankResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode bank registry response: %w", err)
	}

	if body.FullName == "" {
		return "", fmt.Errorf("bank registry returned no name for code %d", code)
	}

	return body.FullName, nil
}
