package handlers

import (
	"fmt"
	"net/http"
)

// ownerAndAccount reads the {cpf} and {id} path segments
func ownerAndAccount(r *http.Request) (string, int64, error) {
	nationalID, err := nationalIDParam(r)
	if err != nil {
		return "", 0, err
	}
	accountID, err := pathInt64(r, "id")
	if err != nil {
		return "", 0, err
	}
	return nationalID, accountID, nil
}

// CreateAccount handles POST /api/v1/customers/{cpf}/accounts
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	nationalID, err := nationalIDParam(r)
	if err != nil {
		writeBadParam(w, err)
		return
	}

	req, ok := bindAndValidate[accountRequest](h, w, r)
	if !ok {
		return
	}

	account, err := h.accounts.CreateAccount(r.Context(), nationalID, *req.BankCode)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/customers/%s/accounts/%d", nationalID, account.ID))
	writeJSON(w, http.StatusCreated, toAccountResponse(account))
}

// ListAccounts handles GET /api/v1/customers/{cpf}/accounts
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	nationalID, err := nationalIDParam(r)
	if err != nil {
		writeBadParam(w, err)
		return
	}

	accounts, err := h.accounts.ListAccounts(r.Context(), nationalID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponses(accounts))
}

// GetAccount handles GET /api/v1/customers/{cpf}/accounts/{id}
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	nationalID, accountID, err := ownerAndAccount(r)
	if err != nil {
		writeBadParam(w, err)
		return
	}

	account, err := h.accounts.FindAccount(r.Context(), nationalID, accountID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

// EditAccount handles PUT /api/v1/customers/{cpf}/accounts/{id}
func (h *Handler) EditAccount(w http.ResponseWriter, r *http.Request) {
	nationalID, accountID, err := ownerAndAccount(r)
	if err != nil {
		writeBadParam(w, err)
		return
	}

	req, ok := bindAndValidate[accountRequest](h, w, r)
	if !ok {
		return
	}

	account, err := h.accounts.EditAccount(r.Context(), nationalID, accountID, *req.BankCode)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

// RemoveAccount handles DELETE /api/v1/customers/{cpf}/accounts/{id}
func (h *Handler) RemoveAccount(w http.ResponseWriter, r *http.Request) {
	nationalID, accountID, err := ownerAndAccount(r)
	if err != nil {
		writeBadParam(w, err)
		return
	}

	if err := h.accounts.RemoveAccount(r.Context(), nationalID, accountID); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
