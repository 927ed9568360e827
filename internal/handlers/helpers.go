package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/benx421/bank-api/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/runtime"
)

// Error codes produced by the HTTP layer itself
const (
	errCodeInvalidRequest   = "invalid_request"
	errCodeValidationFailed = "validation_failed"
)

const (
	msgBodyValidation  = "validation errors on your request body"
	msgQueryValidation = "validation errors on your request query parameters"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body) //nolint:errcheck // Nothing useful to do if write fails
}

func writeError(w http.ResponseWriter, status int, code, message string, fields ...fieldError) {
	writeJSON(w, status, errorResponse{
		Error:   code,
		Message: message,
		Errors:  fields,
	})
}

func statusForCode(code string) int {
	switch code {
	case service.ErrCodeInvalidAmount,
		service.ErrCodeInvalidPage,
		service.ErrCodeInsufficientBalance,
		service.ErrCodeSelfTransfer,
		service.ErrCodeInvalidAccount,
		service.ErrCodeInvalidBankCode:
		return http.StatusUnprocessableEntity
	case service.ErrCodeCustomerNotFound,
		service.ErrCodeAccountNotFound,
		service.ErrCodeAccountMismatch,
		service.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case service.ErrCodeEmailTaken,
		service.ErrCodeIDTaken:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// handleServiceError maps a service failure onto an error response
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	svcErr := extractServiceError(err)
	if svcErr == nil {
		h.logger.Error("unexpected error", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, service.ErrCodeInternalError, "internal error")
		return
	}

	status := statusForCode(svcErr.Code)
	if status == http.StatusInternalServerError {
		writeError(w, status, service.ErrCodeInternalError, "internal error")
		return
	}

	writeError(w, status, svcErr.Code, svcErr.Message)
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

// bindAndValidate decodes the JSON body into T and validates it. On failure
// the error response is already written and ok is false.
func bindAndValidate[T any](h *Handler, w http.ResponseWriter, r *http.Request) (*T, bool) {
	var input T
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, errCodeInvalidRequest, fmt.Sprintf("malformed request body: %v", err))
		return nil, false
	}

	if err := h.validate.Struct(&input); err != nil {
		h.writeValidationError(w, err, msgBodyValidation)
		return nil, false
	}

	return &input, true
}

func (h *Handler) writeValidationError(w http.ResponseWriter, err error, message string) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		h.logger.Error("request validation failed", "error", err)
		writeError(w, http.StatusInternalServerError, service.ErrCodeInternalError, "internal error")
		return
	}
	writeError(w, http.StatusUnprocessableEntity, errCodeValidationFailed, message, toFieldErrors(validationErrs)...)
}

func toFieldErrors(errs validator.ValidationErrors) []fieldError {
	fields := make([]fieldError, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return fields
}

func pathInt64(r *http.Request, name string) (int64, error) {
	var value int64
	err := runtime.BindStyledParameterWithOptions("simple", name, r.PathValue(name), &value, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	return value, err
}

func pathString(r *http.Request, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, r.PathValue(name), &value, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	return value, err
}

// nationalIDParam reads the {cpf} path segment in its unformatted form
func nationalIDParam(r *http.Request) (string, error) {
	cpf, err := pathString(r, "cpf")
	if err != nil {
		return "", err
	}
	return service.NormalizeNationalID(cpf), nil
}

func writeBadParam(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadRequest, errCodeInvalidRequest, err.Error())
}
