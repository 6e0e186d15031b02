package stockgame

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Account is one player of the game: an identity, a cash balance, the shares
// currently held, and the full chronological trade history.
//
// Holdings only contain tickers with a strictly positive share count; a
// position sold down to zero is removed, never stored as zero. The history
// is append-only and reconciles with the holdings at all times.
type Account struct {
	Email        string           // unique identity, immutable once created
	UserID       string           // short numeric id, unique across accounts
	PasswordHash string           // bcrypt digest, never the raw password
	Balance      Money            // cash, never negative
	Holdings     map[string]int64 // ticker to positive share count
	History      []Trade          // chronological, append-only
}

// Position returns the number of shares of ticker currently held.
func (a *Account) Position(ticker string) int64 {
	return a.Holdings[ticker]
}

// Tickers returns the held tickers in sorted order, so reports iterate the
// portfolio deterministically.
func (a *Account) Tickers() []string {
	tickers := slices.Collect(maps.Keys(a.Holdings))
	slices.Sort(tickers)
	return tickers
}

// Equal reports whether two accounts carry the same state field for field.
func (a *Account) Equal(b *Account) bool {
	if a.Email != b.Email || a.UserID != b.UserID || a.PasswordHash != b.PasswordHash {
		return false
	}
	if !a.Balance.Equal(b.Balance) {
		return false
	}
	if !maps.Equal(a.Holdings, b.Holdings) {
		return false
	}
	if len(a.History) != len(b.History) {
		return false
	}
	for i := range a.History {
		if !a.History[i].Equal(b.History[i]) {
			return false
		}
	}
	return true
}

// Validate checks the structural invariants of an account record. It is the
// gate between persisted data and business logic: a record that fails here is
// a corrupt store, not a deep failure later on.
func (a *Account) Validate() error {
	if a.Email == "" {
		return fmt.Errorf("account has no email")
	}
	if a.UserID == "" {
		return fmt.Errorf("account %q has no user id", a.Email)
	}
	if a.Balance.IsNegative() {
		return fmt.Errorf("account %q has negative balance %s", a.Email, a.Balance)
	}
	for ticker, count := range a.Holdings {
		if count <= 0 {
			return fmt.Errorf("account %q holds %d shares of %s", a.Email, count, ticker)
		}
	}
	return a.reconcileHistory()
}

// reconcileHistory replays the trade history and checks that it adds up to
// the current holdings: per ticker, buys minus sells equals the held count,
// without going negative at any prefix.
func (a *Account) reconcileHistory() error {
	replayed := make(map[string]int64)
	for i, t := range a.History {
		if t.Quantity <= 0 {
			return fmt.Errorf("account %q trade #%d has quantity %d", a.Email, i, t.Quantity)
		}
		switch t.Type {
		case TradeBuy:
			replayed[t.Ticker] += t.Quantity
		case TradeSell:
			replayed[t.Ticker] -= t.Quantity
			if replayed[t.Ticker] < 0 {
				return fmt.Errorf("account %q history sells %s short at trade #%d", a.Email, t.Ticker, i)
			}
		default:
			return fmt.Errorf("account %q trade #%d has unknown type %q", a.Email, i, t.Type)
		}
	}
	for ticker, count := range replayed {
		if count == 0 {
			delete(replayed, ticker)
		}
	}
	if !maps.Equal(replayed, a.Holdings) {
		return fmt.Errorf("account %q history does not reconcile with holdings", a.Email)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Account, keeping a
// stable field order in the persisted record.
func (a *Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("email", a.Email)
	w.Append("userId", a.UserID)
	w.Append("passwordHash", a.PasswordHash)
	w.Append("balance", a.Balance)
	w.Append("holdings", a.Holdings)
	w.Append("history", a.History)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Account. It
// only decodes the shape; Validate is the caller's responsibility.
func (a *Account) UnmarshalJSON(data []byte) error {
	var temp struct {
		Email        string           `json:"email"`
		UserID       string           `json:"userId"`
		PasswordHash string           `json:"passwordHash"`
		Balance      moneyRec         `json:"balance"`
		Holdings     map[string]int64 `json:"holdings"`
		History      []Trade          `json:"history"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	a.Email = temp.Email
	a.UserID = temp.UserID
	a.PasswordHash = temp.PasswordHash
	a.Balance = temp.Balance.Money()
	a.Holdings = temp.Holdings
	if a.Holdings == nil {
		a.Holdings = make(map[string]int64)
	}
	a.History = temp.History
	return nil
}
