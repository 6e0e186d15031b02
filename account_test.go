package stockgame

import (
	"testing"
	"time"
)

func validAccount() *Account {
	return &Account{
		Email:        "alice@example.com",
		UserID:       "1234",
		PasswordHash: "$2a$04$fakefakefakefakefakefake",
		Balance:      USD(9250),
		Holdings:     map[string]int64{"AAPL": 5},
		History: []Trade{
			{Type: TradeBuy, Ticker: "AAPL", Quantity: 5, Price: USD(150), Time: time.Now()},
		},
	}
}

func TestAccountValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(a *Account)
		wantErr bool
	}{
		{"valid", func(a *Account) {}, false},
		{"no email", func(a *Account) { a.Email = "" }, true},
		{"no user id", func(a *Account) { a.UserID = "" }, true},
		{"negative balance", func(a *Account) { a.Balance = USD(-1) }, true},
		{"zero holding", func(a *Account) {
			a.Holdings["GOOGL"] = 0
		}, true},
		{"negative holding", func(a *Account) {
			a.Holdings["GOOGL"] = -3
		}, true},
		{"holdings without history", func(a *Account) {
			a.History = nil
		}, true},
		{"history sells short", func(a *Account) {
			a.History = append(a.History,
				Trade{Type: TradeSell, Ticker: "GOOGL", Quantity: 1, Price: USD(100), Time: time.Now()})
		}, true},
		{"history with zero quantity", func(a *Account) {
			a.History = append(a.History,
				Trade{Type: TradeBuy, Ticker: "AAPL", Quantity: 0, Price: USD(100), Time: time.Now()})
		}, true},
		{"round trip position closed", func(a *Account) {
			a.History = append(a.History,
				Trade{Type: TradeBuy, Ticker: "LMT", Quantity: 2, Price: USD(400), Time: time.Now()},
				Trade{Type: TradeSell, Ticker: "LMT", Quantity: 2, Price: USD(410), Time: time.Now()})
		}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := validAccount()
			tc.mutate(a)
			err := a.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestAccountTickersSorted(t *testing.T) {
	a := &Account{Holdings: map[string]int64{"LMT": 1, "AAPL": 2, "GOOGL": 3}}
	got := a.Tickers()
	want := []string{"AAPL", "GOOGL", "LMT"}
	if len(got) != len(want) {
		t.Fatalf("Tickers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tickers()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAccountPosition(t *testing.T) {
	a := &Account{Holdings: map[string]int64{"AAPL": 5}}
	if got := a.Position("AAPL"); got != 5 {
		t.Errorf("Position(AAPL) = %d, want 5", got)
	}
	if got := a.Position("GOOGL"); got != 0 {
		t.Errorf("Position(GOOGL) = %d, want 0", got)
	}
}
