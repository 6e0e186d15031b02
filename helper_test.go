package stockgame

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// newTestStore returns a store persisting under a fresh temp directory, with
// the cheapest bcrypt cost so account creation stays fast.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(t.TempDir() + "/accounts.jsonl")
	s.cost = bcrypt.MinCost
	return s
}

// newTestAccount registers a fresh account and returns it with its collection.
func newTestAccount(t *testing.T, s *Store, email string) (*Accounts, *Account) {
	t.Helper()
	accounts := NewAccounts()
	acc, err := s.CreateAccount(accounts, email, "secret-password")
	if err != nil {
		t.Fatalf("CreateAccount(%q): %v", email, err)
	}
	return accounts, acc
}

// newTestEngine returns an engine over the store and the given quote source,
// with a deterministic clock.
func newTestEngine(s *Store, quotes Quoter) *Engine {
	e := NewEngine(s, quotes)
	e.now = func() time.Time { return time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC) }
	return e
}
