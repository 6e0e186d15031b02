// Package yahoo resolves market prices from the Yahoo Finance chart API.
//
// It provides the live quotes the trading engine executes against and the
// daily OHLC series the chart report is drawn from. Both are served by the
// same v8/finance/chart endpoint; the quote is the regularMarketPrice carried
// in the chart metadata.
package yahoo

import (
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"github.com/mroche/stockgame"
)

const yahooBaseEnv = "STG_YAHOO_BASE_URL"

var baseFlag = flag.String("yahoo-base-url", "",
	"Base URL of the Yahoo Finance API.\n If missing it will read the environment variable \""+yahooBaseEnv+"\", and default to the public endpoint.")

func baseURL() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *baseFlag == "" {
		*baseFlag = os.Getenv(yahooBaseEnv)
	}
	if *baseFlag == "" {
		return "https://query1.finance.yahoo.com"
	}
	return *baseFlag
}

// Client fetches quotes and historical series from the Yahoo Finance API.
// The zero value is not usable; call New.
type Client struct {
	base    string
	quotes  *http.Client // live quotes, never cached
	history *http.Client // historical series, cached with daily expiry
}

// New returns a client against the public Yahoo endpoint (or the base URL
// configured by flag or environment).
func New() *Client {
	return &Client{
		base:    baseURL(),
		quotes:  new(http.Client),
		history: newDailyCachingClient(),
	}
}

// NewWithBase returns a client against a specific base URL, caching nothing.
// Tests point it at an httptest server.
func NewWithBase(base string) *Client {
	return &Client{base: base, quotes: new(http.Client), history: new(http.Client)}
}

// chartURL builds the chart endpoint address for a ticker.
func (c *Client) chartURL(ticker, rng, interval string) string {
	return fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		c.base, url.PathEscape(ticker), url.QueryEscape(interval), url.QueryEscape(rng))
}

// CurrentPrice returns the latest regular market price for the ticker.
// Any transport, HTTP or payload failure is reported as a price that is
// unavailable right now; the caller decides whether to retry.
func (c *Client) CurrentPrice(ticker string) (stockgame.Money, error) {
	addr := c.chartURL(ticker, "1d", "1d")
	var jobj any
	if err := jwget(c.quotes, addr, &jobj); err != nil {
		return stockgame.Money{}, fmt.Errorf("quote %s: %v: %w", ticker, err, stockgame.ErrPriceUnavailable)
	}

	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return stockgame.Money{}, fmt.Errorf("quote %s: parsing %q: %v: %w", ticker, path, err, stockgame.ErrPriceUnavailable)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return stockgame.Money{}, fmt.Errorf("quote %s: %q is not a number (%v): %w", ticker, path, jval, stockgame.ErrPriceUnavailable)
	}
	return stockgame.M(val, stockgame.DefaultCurrency), nil
}

// chartResponse matches the shape of the v8/finance/chart payload, limited to
// the fields the game needs.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

// HistoricalSeries returns the ordered sequence of daily candles for the
// ticker over the given range ("1mo", "6mo", "1y", ...). Days with missing
// market data (nulls in the payload) are dropped.
func (c *Client) HistoricalSeries(ticker, rng string) ([]stockgame.Candle, error) {
	addr := c.chartURL(ticker, rng, "1d")
	var content chartResponse
	if err := jwget(c.history, addr, &content); err != nil {
		return nil, fmt.Errorf("history %s: %v: %w", ticker, err, stockgame.ErrPriceUnavailable)
	}
	if len(content.Chart.Result) == 0 || len(content.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("history %s: empty chart payload: %w", ticker, stockgame.ErrPriceUnavailable)
	}

	result := content.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	candles := make([]stockgame.Candle, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		candle := stockgame.Candle{
			Time:  time.Unix(ts, 0).UTC(),
			Close: decimal.NewFromFloat(*quote.Close[i]),
		}
		if i < len(quote.Open) && quote.Open[i] != nil {
			candle.Open = decimal.NewFromFloat(*quote.Open[i])
		}
		if i < len(quote.High) && quote.High[i] != nil {
			candle.High = decimal.NewFromFloat(*quote.High[i])
		}
		if i < len(quote.Low) && quote.Low[i] != nil {
			candle.Low = decimal.NewFromFloat(*quote.Low[i])
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			candle.Volume = *quote.Volume[i]
		}
		candles = append(candles, candle)
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("history %s: no data in range %q: %w", ticker, rng, stockgame.ErrPriceUnavailable)
	}
	return candles, nil
}

// compile-time checks that Client satisfies the core interfaces.
var _ stockgame.Quoter = (*Client)(nil)
var _ stockgame.SeriesProvider = (*Client)(nil)
