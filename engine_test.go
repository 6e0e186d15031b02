package stockgame

import (
	"errors"
	"maps"
	"slices"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBuy(t *testing.T) {
	s := newTestStore(t)
	accounts, acc := newTestAccount(t, s, "alice@example.com")
	e := newTestEngine(s, FixedQuoter{"AAPL": USD(150)})

	trade, err := e.Buy(accounts, acc, "AAPL", 5)
	if err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if !trade.Amount().Equal(USD(750)) {
		t.Errorf("trade amount = %s, want %s", trade.Amount(), USD(750))
	}
	if !acc.Balance.Equal(USD(9250)) {
		t.Errorf("balance = %s, want %s", acc.Balance, USD(9250))
	}
	if acc.Position("AAPL") != 5 {
		t.Errorf("position = %d, want 5", acc.Position("AAPL"))
	}
	if len(acc.History) != 1 {
		t.Fatalf("history has %d trades, want 1", len(acc.History))
	}
	if !acc.History[0].Equal(trade) {
		t.Error("recorded trade differs from the returned one")
	}

	// the trade is persisted immediately.
	reloaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reloaded.Get(acc.Email).Equal(acc) {
		t.Error("persisted account differs after the buy")
	}
}

func TestBuyAccumulates(t *testing.T) {
	s := newTestStore(t)
	accounts, acc := newTestAccount(t, s, "alice@example.com")
	e := newTestEngine(s, FixedQuoter{"AAPL": USD(150)})

	e.Buy(accounts, acc, "AAPL", 5)
	e.Buy(accounts, acc, "AAPL", 3)
	if acc.Position("AAPL") != 8 {
		t.Errorf("position = %d, want 8", acc.Position("AAPL"))
	}
	if len(acc.History) != 2 {
		t.Errorf("history has %d trades, want 2", len(acc.History))
	}
}

func TestBuyRejects(t *testing.T) {
	s := newTestStore(t)
	accounts, acc := newTestAccount(t, s, "alice@example.com")
	e := newTestEngine(s, FixedQuoter{"AAPL": USD(150)})

	tests := []struct {
		name     string
		ticker   string
		quantity int64
		want     error
	}{
		{"zero quantity", "AAPL", 0, ErrInvalidQuantity},
		{"negative quantity", "AAPL", -5, ErrInvalidQuantity},
		{"no quote", "NOPE", 1, ErrPriceUnavailable},
		{"too expensive", "AAPL", 67, ErrInsufficientFunds},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.Buy(accounts, acc, tc.ticker, tc.quantity)
			if !errors.Is(err, tc.want) {
				t.Errorf("Buy error = %v, want %v", err, tc.want)
			}
		})
	}

	// failed buys leave the account untouched.
	if !acc.Balance.Equal(USD(10000)) || len(acc.Holdings) != 0 || len(acc.History) != 0 {
		t.Errorf("failed buys mutated the account: balance %s, holdings %v, %d trades",
			acc.Balance, acc.Holdings, len(acc.History))
	}
}

func TestSell(t *testing.T) {
	s := newTestStore(t)
	accounts, acc := newTestAccount(t, s, "alice@example.com")
	e := newTestEngine(s, FixedQuoter{"AAPL": USD(150)})
	if _, err := e.Buy(accounts, acc, "AAPL", 5); err != nil {
		t.Fatalf("Buy: %v", err)
	}

	// partial sell at a higher price.
	e.quotes = FixedQuoter{"AAPL": USD(160)}
	if _, err := e.Sell(accounts, acc, "AAPL", 2); err != nil {
		t.Fatalf("Sell: %v", err)
	}
	if !acc.Balance.Equal(USD(9570)) { // 10000 - 750 + 320
		t.Errorf("balance = %s, want %s", acc.Balance, USD(9570))
	}
	if acc.Position("AAPL") != 3 {
		t.Errorf("position = %d, want 3", acc.Position("AAPL"))
	}

	// selling the rest removes the ticker entirely.
	if _, err := e.Sell(accounts, acc, "AAPL", 3); err != nil {
		t.Fatalf("Sell: %v", err)
	}
	if _, held := acc.Holdings["AAPL"]; held {
		t.Error("sold-out ticker still present in holdings")
	}
	if len(acc.History) != 3 {
		t.Errorf("history has %d trades, want 3", len(acc.History))
	}
}

// countingQuoter records how many quotes were requested.
type countingQuoter struct {
	calls int
	FixedQuoter
}

func (q *countingQuoter) CurrentPrice(ticker string) (Money, error) {
	q.calls++
	return q.FixedQuoter.CurrentPrice(ticker)
}

func TestSellChecksHoldingsBeforeQuoting(t *testing.T) {
	s := newTestStore(t)
	accounts, acc := newTestAccount(t, s, "alice@example.com")
	quotes := &countingQuoter{FixedQuoter: FixedQuoter{"AAPL": USD(150)}}
	e := newTestEngine(s, quotes)
	if _, err := e.Buy(accounts, acc, "AAPL", 5); err != nil {
		t.Fatalf("Buy: %v", err)
	}
	quotes.calls = 0

	if _, err := e.Sell(accounts, acc, "GOOGL", 1); !errors.Is(err, ErrUnknownHolding) {
		t.Errorf("Sell unheld error = %v, want ErrUnknownHolding", err)
	}
	if _, err := e.Sell(accounts, acc, "AAPL", 6); !errors.Is(err, ErrInsufficientShares) {
		t.Errorf("Sell too many error = %v, want ErrInsufficientShares", err)
	}
	if _, err := e.Sell(accounts, acc, "AAPL", 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("Sell zero error = %v, want ErrInvalidQuantity", err)
	}
	if quotes.calls != 0 {
		t.Errorf("impossible sells requested %d quotes, want 0", quotes.calls)
	}
}

func TestTradeRollsBackOnSaveFailure(t *testing.T) {
	s := newTestStore(t)
	accounts, acc := newTestAccount(t, s, "alice@example.com")
	e := newTestEngine(s, FixedQuoter{"AAPL": USD(150)})
	if _, err := e.Buy(accounts, acc, "AAPL", 5); err != nil {
		t.Fatalf("Buy: %v", err)
	}
	before := &Account{
		Email:        acc.Email,
		UserID:       acc.UserID,
		PasswordHash: acc.PasswordHash,
		Balance:      acc.Balance,
		Holdings:     maps.Clone(acc.Holdings),
		History:      slices.Clone(acc.History),
	}

	// break persistence: a directory at the store path makes the rename fail.
	broken := NewStore(t.TempDir())
	broken.cost = bcrypt.MinCost
	e.store = broken

	if _, err := e.Buy(accounts, acc, "AAPL", 1); err == nil {
		t.Fatal("Buy succeeded against an unwritable store")
	}
	if _, err := e.Sell(accounts, acc, "AAPL", 1); err == nil {
		t.Fatal("Sell succeeded against an unwritable store")
	}
	if !acc.Equal(before) {
		t.Errorf("failed trades mutated the account:\ngot  %+v\nwant %+v", acc, before)
	}
}
