package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a bank account owned by exactly one customer. Its balance never
// goes below zero and only changes through Deposit, Withdraw and Transfer.
type Account struct {
	CreatedAt time.Time       `db:"created_at"`
	Bank      string          `db:"bank"`
	Balance   decimal.Decimal `db:"balance"`
	ID        int64           `db:"id"`
	OwnerID   int64           `db:"owner_id"`
}

// NewAccount opens an empty account at the named bank, dated today.
func NewAccount(bank string, now time.Time) *Account {
	return &Account{
		Bank:      bank,
		Balance:   decimal.Zero,
		CreatedAt: truncateToDate(now),
	}
}

// Deposit credits amount. The caller guarantees amount is positive.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// Withdraw debits amount, or returns ErrInsufficientBalance and leaves the
// balance untouched when amount exceeds it.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientBalance
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Transfer moves amount from a to destination. The debit happens first so a
// failed withdrawal never credits the destination.
func (a *Account) Transfer(amount decimal.Decimal, destination *Account) error {
	if a.ID == destination.ID {
		return ErrSelfTransfer
	}
	if err := a.Withdraw(amount); err != nil {
		return err
	}
	destination.Deposit(amount)
	return nil
}

// OwnedBy reports whether c is the account's owner.
func (a *Account) OwnedBy(c *Customer) bool {
	return c != nil && a.OwnerID == c.ID
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
