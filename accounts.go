package stockgame

import (
	"fmt"
	"iter"
)

// Accounts holds the full collection of game accounts, indexed by email.
//
// Iteration order is insertion order: the order accounts were registered in,
// which is also the order records appear in the persisted store. The
// leaderboard relies on it to break ties deterministically.
type Accounts struct {
	list  []*Account
	index map[string]*Account
}

// NewAccounts returns a new empty account collection.
func NewAccounts() *Accounts {
	return &Accounts{
		list:  make([]*Account, 0),
		index: make(map[string]*Account),
	}
}

func (c *Accounts) Has(email string) bool {
	_, ok := c.index[email]
	return ok
}

// Get returns the account registered under this email, or nil if unknown.
func (c *Accounts) Get(email string) *Account { return c.index[email] }

func (c *Accounts) Len() int { return len(c.list) }

// Add inserts a new account at the end of the collection.
func (c *Accounts) Add(acc *Account) error {
	if c.Has(acc.Email) {
		return fmt.Errorf("add account %q: %w", acc.Email, ErrDuplicateEmail)
	}
	c.list = append(c.list, acc)
	c.index[acc.Email] = acc
	return nil
}

// remove drops an account again, undoing a failed registration.
func (c *Accounts) remove(email string) {
	acc, ok := c.index[email]
	if !ok {
		return
	}
	delete(c.index, email)
	for i, a := range c.list {
		if a == acc {
			c.list = append(c.list[:i], c.list[i+1:]...)
			return
		}
	}
}

// All iterates over accounts in insertion order.
func (c *Accounts) All() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		for _, acc := range c.list {
			if !yield(acc) {
				return
			}
		}
	}
}

// hasUserID reports whether any account already carries this user id.
func (c *Accounts) hasUserID(id string) bool {
	for _, acc := range c.list {
		if acc.UserID == id {
			return true
		}
	}
	return false
}
