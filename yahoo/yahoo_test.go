package yahoo

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mroche/stockgame"
)

const quotePayload = `{
  "chart": {
    "result": [
      {
        "meta": {"currency": "USD", "symbol": "AAPL", "regularMarketPrice": 150.25},
        "timestamp": [1750000000]
      }
    ],
    "error": null
  }
}`

const historyPayload = `{
  "chart": {
    "result": [
      {
        "meta": {"currency": "USD", "symbol": "AAPL"},
        "timestamp": [1749772800, 1749859200, 1749945600],
        "indicators": {
          "quote": [
            {
              "open":   [148.0, null, 151.5],
              "high":   [151.0, null, 153.0],
              "low":    [147.5, null, 150.0],
              "close":  [150.0, null, 152.25],
              "volume": [1000000, null, 1200000]
            }
          ]
        }
      }
    ],
    "error": null
  }
}`

func TestCurrentPrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v8/finance/chart/AAPL" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(quotePayload))
	}))
	defer server.Close()

	price, err := NewWithBase(server.URL).CurrentPrice("AAPL")
	if err != nil {
		t.Fatalf("CurrentPrice: %v", err)
	}
	if want := stockgame.M(150.25, "USD"); !price.Equal(want) {
		t.Errorf("price = %s, want %s", price, want)
	}
}

func TestCurrentPriceUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}},
		{"not json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>maintenance</html>"))
		}},
		{"no price in payload", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"chart":{"result":[{"meta":{}}],"error":null}}`))
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			_, err := NewWithBase(server.URL).CurrentPrice("AAPL")
			if !errors.Is(err, stockgame.ErrPriceUnavailable) {
				t.Errorf("error = %v, want ErrPriceUnavailable", err)
			}
		})
	}
}

func TestHistoricalSeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got, want := r.URL.Query().Get("range"), "6mo"; got != want {
			t.Errorf("range = %q, want %q", got, want)
		}
		if got, want := r.URL.Query().Get("interval"), "1d"; got != want {
			t.Errorf("interval = %q, want %q", got, want)
		}
		w.Write([]byte(historyPayload))
	}))
	defer server.Close()

	candles, err := NewWithBase(server.URL).HistoricalSeries("AAPL", "6mo")
	if err != nil {
		t.Fatalf("HistoricalSeries: %v", err)
	}
	// the null day is dropped.
	if len(candles) != 2 {
		t.Fatalf("got %d candles, want 2", len(candles))
	}
	if got := candles[0].Close.InexactFloat64(); got != 150.0 {
		t.Errorf("first close = %v, want 150", got)
	}
	if got := candles[1].Close.InexactFloat64(); got != 152.25 {
		t.Errorf("second close = %v, want 152.25", got)
	}
	if candles[0].Volume != 1000000 {
		t.Errorf("first volume = %d, want 1000000", candles[0].Volume)
	}
	if !candles[0].Time.Before(candles[1].Time) {
		t.Error("candles are not in chronological order")
	}
}

func TestHistoricalSeriesEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[],"error":{"code":"Not Found"}}}`))
	}))
	defer server.Close()

	_, err := NewWithBase(server.URL).HistoricalSeries("NOPE", "6mo")
	if !errors.Is(err, stockgame.ErrPriceUnavailable) {
		t.Errorf("error = %v, want ErrPriceUnavailable", err)
	}
}
