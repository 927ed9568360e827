package handlers

import (
	"log/slog"
	"net/http"

	"github.com/benx421/bank-api/internal/api"
	"github.com/benx421/bank-api/internal/config"
	"github.com/benx421/bank-api/internal/db"
	"github.com/benx421/bank-api/internal/middleware"
	"github.com/benx421/bank-api/internal/repository"
	"github.com/benx421/bank-api/internal/service"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	resolver service.BankResolver,
	logger *slog.Logger,
) http.Handler {
	repos := repository.NewRepositories(database)
	uow := repository.NewUnitOfWork(database)
	paging := service.Paging{
		DefaultSize: cfg.App.DefaultPageSize,
		MaxSize:     cfg.App.MaxPageSize,
	}

	transactionService := service.NewTransactionService(uow, repos, paging, logger)
	customerService := service.NewCustomerService(uow, repos, logger)
	accountService := service.NewAccountService(uow, repos, resolver, logger)

	handler := NewHandler(transactionService, customerService, accountService, database, logger)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	handler.RegisterRoutes(mux)

	var finalHandler http.Handler = mux

	idempotencyRepo := repository.NewIdempotencyRepository(database)
	finalHandler = middleware.Idempotency(idempotencyRepo, logger)(finalHandler)
	finalHandler = middleware.RequestLogger(logger)(finalHandler)

	return finalHandler
}
