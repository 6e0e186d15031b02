package stockgame

import "log"

// PortfolioLine is the valuation of one held ticker at current prices.
type PortfolioLine struct {
	Ticker   string
	Quantity int64
	Price    Money // current unit price
	Value    Money // Price times Quantity
}

// PortfolioReport is a point-in-time financial summary of one account.
type PortfolioReport struct {
	Email         string
	Balance       Money // cash, reported separately from holdings value
	Lines         []PortfolioLine
	TotalInvested Money
	TotalValue    Money
	ROI           Percent
	Skipped       []string // tickers whose price could not be resolved
}

// NewPortfolioReport values every holding of the account at current prices.
//
// A ticker whose price cannot be resolved is skipped, not fatal: the report
// degrades to the tickers that priced, and lists the rest in Skipped. The
// invested cost replays the full trade history and sums every buy of each
// ticker that is still held (and priced in this report); selling never
// removes cost basis, so exiting and re-entering a position inflates the
// invested figure. That is the historical behavior of the game, kept as is.
func NewPortfolioReport(acc *Account, quotes Quoter) *PortfolioReport {
	r := &PortfolioReport{
		Email:         acc.Email,
		Balance:       acc.Balance,
		TotalInvested: M(0, DefaultCurrency),
		TotalValue:    M(0, DefaultCurrency),
	}
	for _, ticker := range acc.Tickers() {
		price, err := quotes.CurrentPrice(ticker)
		if err != nil {
			log.Printf("portfolio %s: skipping %s: %v", acc.Email, ticker, err)
			r.Skipped = append(r.Skipped, ticker)
			continue
		}
		quantity := acc.Position(ticker)
		value := price.MulInt(quantity)
		r.TotalValue = r.TotalValue.Add(value)
		for _, t := range acc.History {
			if t.Type == TradeBuy && t.Ticker == ticker {
				r.TotalInvested = r.TotalInvested.Add(t.Amount())
			}
		}
		r.Lines = append(r.Lines, PortfolioLine{
			Ticker:   ticker,
			Quantity: quantity,
			Price:    price,
			Value:    value,
		})
	}
	r.ROI = roi(r.TotalValue, r.TotalInvested)
	return r
}

// roi is the percentage gain of value over invested, and exactly 0 when
// nothing is invested.
func roi(value, invested Money) Percent {
	if invested.IsZero() {
		return 0
	}
	gain := value.Sub(invested)
	return Percent(gain.AsFloat() / invested.AsFloat() * 100)
}
