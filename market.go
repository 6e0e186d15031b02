package stockgame

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Quoter resolves the latest market price of a ticker. Implementations must
// reflect the price at call time; the engine never caches a quote.
//
// A quoter that cannot resolve a ticker returns an error wrapping
// ErrPriceUnavailable.
type Quoter interface {
	CurrentPrice(ticker string) (Money, error)
}

// SeriesProvider resolves historical daily market data for a ticker.
// rng is a market-data range such as "1mo", "6mo" or "1y".
type SeriesProvider interface {
	HistoricalSeries(ticker, rng string) ([]Candle, error)
}

// Candle is one day of market data for a ticker.
type Candle struct {
	Time   time.Time
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume int64
}

// MovingAverage computes the rolling mean of closing prices over the given
// window. The result is aligned with candles; entries before the window is
// full are NaN, as is everything when the window is not positive.
func MovingAverage(candles []Candle, window int) []float64 {
	avg := make([]float64, len(candles))
	if window <= 0 {
		for i := range avg {
			avg[i] = math.NaN()
		}
		return avg
	}
	var sum decimal.Decimal
	for i, c := range candles {
		sum = sum.Add(c.Close)
		if i >= window {
			sum = sum.Sub(candles[i-window].Close)
		}
		if i < window-1 {
			avg[i] = math.NaN()
			continue
		}
		avg[i] = sum.Div(decimal.NewFromInt(int64(window))).InexactFloat64()
	}
	return avg
}

// FixedQuoter is a Quoter backed by a static price table. It is what tests
// and offline runs use to hold prices fixed.
type FixedQuoter map[string]Money

func (q FixedQuoter) CurrentPrice(ticker string) (Money, error) {
	price, ok := q[ticker]
	if !ok {
		return Money{}, fmt.Errorf("no quote for %s: %w", ticker, ErrPriceUnavailable)
	}
	return price, nil
}
