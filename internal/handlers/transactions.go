package handlers

import (
	"fmt"
	"net/http"

	"github.com/benx421/bank-api/internal/models"
	"github.com/oapi-codegen/runtime"
)

type transactionQuery struct {
	Page *int `json:"page" validate:"omitempty,min=0"`
	Size *int `json:"size" validate:"omitempty,min=0"`
}

// CreateDeposit handles POST /api/v1/transactions/deposits
func (h *Handler) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	req, ok := bindAndValidate[movementRequest](h, w, r)
	if !ok {
		return
	}

	txn, err := h.transactions.CreateDeposit(r.Context(), *req.OriginAccountID, *req.Amount)
	h.writeCreatedTransaction(w, r, txn, err)
}

// CreateWithdrawal handles POST /api/v1/transactions/withdrawals
func (h *Handler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	req, ok := bindAndValidate[movementRequest](h, w, r)
	if !ok {
		return
	}

	txn, err := h.transactions.CreateWithdrawal(r.Context(), *req.OriginAccountID, *req.Amount)
	h.writeCreatedTransaction(w, r, txn, err)
}

// CreateTransfer handles POST /api/v1/transactions/transfers
func (h *Handler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	req, ok := bindAndValidate[transferRequest](h, w, r)
	if !ok {
		return
	}

	txn, err := h.transactions.CreateTransfer(r.Context(), *req.OriginAccountID, *req.DestinationAccountID, *req.Amount)
	h.writeCreatedTransaction(w, r, txn, err)
}

func (h *Handler) writeCreatedTransaction(w http.ResponseWriter, r *http.Request, txn *models.Transaction, err error) {
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/transactions/%d", txn.ID))
	writeJSON(w, http.StatusCreated, toTransactionResponse(txn))
}

// GetTransaction handles GET /api/v1/transactions/{id}
func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		writeBadParam(w, err)
		return
	}

	txn, err := h.transactions.FindTransaction(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransactionResponse(txn))
}

// ListTransactions handles GET /api/v1/transactions?account-id=&page=&size=
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var accountID int64
	if err := runtime.BindQueryParameter("form", true, true, "account-id", query, &accountID); err != nil {
		writeBadParam(w, err)
		return
	}

	var params transactionQuery
	if err := runtime.BindQueryParameter("form", true, false, "page", query, &params.Page); err != nil {
		writeBadParam(w, err)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "size", query, &params.Size); err != nil {
		writeBadParam(w, err)
		return
	}

	if err := h.validate.Struct(&params); err != nil {
		h.writeValidationError(w, err, msgQueryValidation)
		return
	}

	var page, size int
	if params.Page != nil {
		page = *params.Page
	}
	if params.Size != nil {
		size = *params.Size
	}

	txns, err := h.transactions.ListByOriginAccount(r.Context(), accountID, page, size)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransactionResponses(txns))
}
