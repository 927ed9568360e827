package models

import "errors"

// Domain errors returned by entities and repositories
var (
	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrInsufficientBalance indicates a debit larger than the current balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrSelfTransfer indicates a transfer whose origin and destination are the same account
	ErrSelfTransfer = errors.New("can't transfer to the same account")

	// ErrInvalidTransaction indicates a transaction record that breaks its invariants
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrDuplicateEmail indicates the email is already registered to a customer
	ErrDuplicateEmail = errors.New("email address already in use")

	// ErrDuplicateNationalID indicates the national id is already registered to a customer
	ErrDuplicateNationalID = errors.New("national id already in use")

	// ErrInvalidBankCode indicates the bank registry does not know the code
	ErrInvalidBankCode = errors.New("invalid bank code")
)
