package service

import (
	"errors"
	"fmt"
)

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeInsufficientBalance = "insufficient_balance"
	ErrCodeSelfTransfer        = "self_transfer"
	ErrCodeInvalidAccount      = "invalid_account"
	ErrCodeInvalidAmount       = "invalid_amount"
	ErrCodeInvalidPage         = "invalid_page"
	ErrCodeAccountNotFound     = "account_not_found"
	ErrCodeAccountMismatch     = "account_mismatch"
	ErrCodeCustomerNotFound    = "customer_not_found"
	ErrCodeTransactionNotFound = "transaction_not_found"
	ErrCodeEmailTaken          = "email_taken"
	ErrCodeIDTaken             = "id_taken"
	ErrCodeInvalidBankCode     = "invalid_bank_code"
	ErrCodeInternalError       = "internal_error"
)

// Messages shared by more than one operation
const (
	msgAccountNotFound  = "account not found"
	msgCustomerNotFound = "customer with given cpf not found"
	msgEmailTaken       = "email address already in use"
	msgIDTaken          = "cpf number already in use"
)

// IsCode reports whether err carries a ServiceError with the given code
func IsCode(err error, code string) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Code == code
}

// internalError wraps an infrastructure failure unless it already is a ServiceError
func internalError(message string, err error) error {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return err
	}
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: message,
		Err:     err,
	}
}
