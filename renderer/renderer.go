// Package renderer turns game reports into markdown, ready to be printed to
// the terminal (optionally through a markdown renderer) or published as is.
// It only formats structured data produced by the stockgame package; it never
// computes anything itself.
package renderer

import (
	"fmt"
	"strings"

	"github.com/mroche/stockgame"
)

// Portfolio renders a portfolio valuation report to a markdown string.
func Portfolio(r *stockgame.PortfolioReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio of %s\n\n", r.Email)

	if len(r.Lines) > 0 {
		fmt.Fprintln(&b, "| Ticker | Amount | Current Price | Total Value |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|")
		for _, line := range r.Lines {
			fmt.Fprintf(&b, "| %s | %d | %s | %s |\n",
				line.Ticker, line.Quantity, line.Price, line.Value)
		}
		fmt.Fprintln(&b)
	} else {
		fmt.Fprintf(&b, "No holdings.\n\n")
	}

	fmt.Fprintf(&b, "- Balance: %s\n", r.Balance)
	fmt.Fprintf(&b, "- Total Invested: %s\n", r.TotalInvested)
	fmt.Fprintf(&b, "- Total Value: %s\n", r.TotalValue)
	fmt.Fprintf(&b, "- Return on Investment (ROI): %s\n", r.ROI)

	if len(r.Skipped) > 0 {
		fmt.Fprintf(&b, "\nNo price available for: %s.\n", strings.Join(r.Skipped, ", "))
	}
	return b.String()
}

// Leaderboard renders the ranking of all players to a markdown string.
func Leaderboard(standings []stockgame.Standing) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Leaderboard\n\n")
	fmt.Fprintln(&b, "| Rank | Email | Total Portfolio Value |")
	fmt.Fprintln(&b, "|---:|:---|---:|")
	for i, s := range standings {
		fmt.Fprintf(&b, "| %d | %s | %s |\n", i+1, s.Email, s.NetWorth)
	}
	return b.String()
}

// PriceRow is one watchlist entry: a ticker and its current price.
type PriceRow struct {
	Ticker string
	Price  stockgame.Money
}

// Prices renders the watchlist quotes to a markdown string.
func Prices(rows []PriceRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Stock Prices\n\n")
	fmt.Fprintln(&b, "| Ticker | Current Price |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n", row.Ticker, row.Price)
	}
	return b.String()
}

// History renders the chronological trade log of an account.
func History(acc *stockgame.Account) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Trades of %s\n\n", acc.Email)
	if len(acc.History) == 0 {
		fmt.Fprintln(&b, "No trades yet.")
		return b.String()
	}
	for _, t := range acc.History {
		fmt.Fprintf(&b, "- %s: %s\n", t.Time.Format("2006-01-02 15:04:05"), Trade(t))
	}
	return b.String()
}

// Trade renders a single trade to a one-line string.
func Trade(t stockgame.Trade) string {
	switch t.Type {
	case stockgame.TradeBuy:
		return fmt.Sprintf("Bought %d %s at %s for %s", t.Quantity, t.Ticker, t.Price, t.Amount())
	case stockgame.TradeSell:
		return fmt.Sprintf("Sold %d %s at %s for %s", t.Quantity, t.Ticker, t.Price, t.Amount())
	default:
		return string(t.Type)
	}
}
