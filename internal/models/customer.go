package models

import (
	"slices"
	"time"
)

// Customer owns zero or more accounts. NationalID is the natural key and is
// never changed after creation.
type Customer struct {
	BirthDate  time.Time  `db:"birth_date"`
	CreatedAt  time.Time  `db:"created_at"`
	Name       string     `db:"name"`
	Email      string     `db:"email"`
	NationalID string     `db:"national_id"`
	Accounts   []*Account `db:"-"`
	ID         int64      `db:"id"`
}

// AddAccount registers acc in the customer's collection and points its owner
// back-reference at c.
func (c *Customer) AddAccount(acc *Account) {
	acc.OwnerID = c.ID
	if !slices.ContainsFunc(c.Accounts, func(a *Account) bool { return a == acc || (a.ID != 0 && a.ID == acc.ID) }) {
		c.Accounts = append(c.Accounts, acc)
	}
}

// RemoveAccount drops acc from the collection and clears its owner.
func (c *Customer) RemoveAccount(acc *Account) {
	c.Accounts = slices.DeleteFunc(c.Accounts, func(a *Account) bool {
		return a == acc || (a.ID != 0 && a.ID == acc.ID)
	})
	if acc.OwnerID == c.ID {
		acc.OwnerID = 0
	}
}

// Edit overwrites the mutable attributes. NationalID is not among them.
func (c *Customer) Edit(name, email string, birthDate time.Time) {
	c.Name = name
	c.Email = email
	c.BirthDate = truncateToDate(birthDate)
}
