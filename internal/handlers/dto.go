package handlers

import (
	"github.com/benx421/bank-api/internal/models"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

type customerRequest struct {
	Name      string             `json:"name" validate:"notblank,alphaspace"`
	Email     string             `json:"email" validate:"notblank,email"`
	CPF       string             `json:"cpf" validate:"notblank,cpf"`
	BirthDate openapi_types.Date `json:"birthDate" validate:"required,past"`
}

// the national id cannot change, so sending one is rejected
type editCustomerRequest struct {
	CPF       *string            `json:"cpf" validate:"isdefault"`
	Name      string             `json:"name" validate:"notblank,alphaspace"`
	Email     string             `json:"email" validate:"notblank,email"`
	BirthDate openapi_types.Date `json:"birthDate" validate:"required,past"`
}

type accountRequest struct {
	BankCode *int `json:"bankCode" validate:"required"`
}

type movementRequest struct {
	Amount               *decimal.Decimal `json:"amount" validate:"required,positive_amount,amount_scale"`
	OriginAccountID      *int64           `json:"originAccountId" validate:"required"`
	DestinationAccountID *int64           `json:"destinationAccountId" validate:"isdefault"`
}

type transferRequest struct {
	Amount               *decimal.Decimal `json:"amount" validate:"required,positive_amount,amount_scale"`
	OriginAccountID      *int64           `json:"originAccountId" validate:"required"`
	DestinationAccountID *int64           `json:"destinationAccountId" validate:"required"`
}

type customerResponse struct {
	BirthDate openapi_types.Date `json:"birthDate"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	CPF       string             `json:"cpf"`
	ID        int64              `json:"id"`
}

type accountResponse struct {
	CreatedAt openapi_types.Date `json:"createdAt"`
	Bank      string             `json:"bank"`
	Balance   decimal.Decimal    `json:"balance"`
	ID        int64              `json:"id"`
}

type transactionResponse struct {
	Date                 openapi_types.Date     `json:"date"`
	DestinationAccountID *int64                 `json:"destinationAccountId"`
	Amount               decimal.Decimal        `json:"amount"`
	Type                 models.TransactionType `json:"type"`
	ID                   int64                  `json:"id"`
	OriginAccountID      int64                  `json:"originAccountId"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message"`
	Errors  []fieldError `json:"errors,omitempty"`
}

func toCustomerResponse(c *models.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CPF:       c.NationalID,
		BirthDate: openapi_types.Date{Time: c.BirthDate},
	}
}

func toAccountResponse(a *models.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Bank:      a.Bank,
		Balance:   a.Balance,
		CreatedAt: openapi_types.Date{Time: a.CreatedAt},
	}
}

func toAccountResponses(accounts []*models.Account) []accountResponse {
	out := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	return out
}

func toTransactionResponse(t *models.Transaction) transactionResponse {
	return transactionResponse{
		ID:                   t.ID,
		Amount:               t.Amount,
		Type:                 t.Type,
		Date:                 openapi_types.Date{Time: t.Date},
		OriginAccountID:      t.OriginAccountID,
		DestinationAccountID: t.DestinationAccountID,
	}
}

func toTransactionResponses(txns []*models.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, toTransactionResponse(t))
	}
	return out
}
