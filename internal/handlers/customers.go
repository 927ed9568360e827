package handlers

import (
	"net/http"

	"github.com/benx421/bank-api/internal/models"
	"github.com/benx421/bank-api/internal/service"
)

// CreateCustomer handles POST /api/v1/customers
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	req, ok := bindAndValidate[customerRequest](h, w, r)
	if !ok {
		return
	}

	customer, err := h.customers.CreateCustomer(r.Context(), &models.Customer{
		Name:       req.Name,
		Email:      req.Email,
		NationalID: service.NormalizeNationalID(req.CPF),
		BirthDate:  req.BirthDate.Time,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/customers/"+customer.NationalID)
	writeJSON(w, http.StatusCreated, toCustomerResponse(customer))
}

// GetCustomer handles GET /api/v1/customers/{cpf}
func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	nationalID, err := nationalIDParam(r)
	if err != nil {
		writeBadParam(w, err)
		return
	}

	customer, err := h.customers.FindCustomer(r.Context(), nationalID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerResponse(customer))
}

// EditCustomer handles PUT /api/v1/customers/{cpf}
func (h *Handler) EditCustomer(w http.ResponseWriter, r *http.Request) {
	nationalID, err := nationalIDParam(r)
	if err != nil {
		writeBadParam(w, err)
		return
	}

	req, ok := bindAndValidate[editCustomerRequest](h, w, r)
	if !ok {
		return
	}

	customer, err := h.customers.EditCustomer(r.Context(), nationalID, req.Name, req.Email, req.BirthDate.Time)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerResponse(customer))
}

// RemoveCustomer handles DELETE /api/v1/customers/{cpf}
func (h *Handler) RemoveCustomer(w http.ResponseWriter, r *http.Request) {
	nationalID, err := nationalIDParam(r)
	if err != nil {
		writeBadParam(w, err)
		return
	}

	if err := h.customers.RemoveCustomer(r.Context(), nationalID); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
