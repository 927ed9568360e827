// Package handlers implements HTTP handlers for the bank API.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/benx421/bank-api/internal/service"
	"github.com/go-playground/validator/v10"
)

// Handler serves the customer, account and transaction endpoints
type Handler struct {
	transactions  service.TransactionEngine
	customers     service.CustomerRegistry
	accounts      service.AccountManager
	healthChecker service.HealthChecker
	validate      *validator.Validate
	logger        *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	transactions service.TransactionEngine,
	customers service.CustomerRegistry,
	accounts service.AccountManager,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		transactions:  transactions,
		customers:     customers,
		accounts:      accounts,
		healthChecker: healthChecker,
		validate:      newValidator(),
		logger:        logger,
	}
}

// RegisterRoutes mounts every endpoint on mux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.GetHealth)

	mux.HandleFunc("POST /api/v1/customers", h.CreateCustomer)
	mux.HandleFunc("GET /api/v1/customers/{cpf}", h.GetCustomer)
	mux.HandleFunc("PUT /api/v1/customers/{cpf}", h.EditCustomer)
	mux.HandleFunc("DELETE /api/v1/customers/{cpf}", h.RemoveCustomer)

	mux.HandleFunc("POST /api/v1/customers/{cpf}/accounts", h.CreateAccount)
	mux.HandleFunc("GET /api/v1/customers/{cpf}/accounts", h.ListAccounts)
	mux.HandleFunc("GET /api/v1/customers/{cpf}/accounts/{id}", h.GetAccount)
	mux.HandleFunc("PUT /api/v1/customers/{cpf}/accounts/{id}", h.EditAccount)
	mux.HandleFunc("DELETE /api/v1/customers/{cpf}/accounts/{id}", h.RemoveAccount)

	mux.HandleFunc("POST /api/v1/transactions/deposits", h.CreateDeposit)
	mux.HandleFunc("POST /api/v1/transactions/withdrawals", h.CreateWithdrawal)
	mux.HandleFunc("POST /api/v1/transactions/transfers", h.CreateTransfer)
	mux.HandleFunc("GET /api/v1/transactions/{id}", h.GetTransaction)
	mux.HandleFunc("GET /api/v1/transactions", h.ListTransactions)
}
