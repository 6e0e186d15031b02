package stockgame

import (
	"log"
	"sort"
)

// Standing is one leaderboard row.
type Standing struct {
	Email    string
	NetWorth Money // cash balance plus market value of all holdings
}

// Leaderboard ranks all accounts by net worth, strictly descending.
//
// A ticker whose price cannot be resolved contributes zero to that account's
// net worth; the failure is logged and ranking carries on. Accounts with
// equal net worth keep the collection's insertion order (the sort is stable),
// so the ranking is deterministic when prices are held fixed.
func Leaderboard(accounts *Accounts, quotes Quoter) []Standing {
	standings := make([]Standing, 0, accounts.Len())
	for acc := range accounts.All() {
		worth := acc.Balance
		for _, ticker := range acc.Tickers() {
			price, err := quotes.CurrentPrice(ticker)
			if err != nil {
				log.Printf("leaderboard %s: %s counts for nothing: %v", acc.Email, ticker, err)
				continue
			}
			worth = worth.Add(price.MulInt(acc.Position(ticker)))
		}
		standings = append(standings, Standing{Email: acc.Email, NetWorth: worth})
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].NetWorth.GreaterThan(standings[j].NetWorth)
	})
	return standings
}
