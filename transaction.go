package stockgame

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TradeType is a typed string identifying the side of a trade.
type TradeType string

const (
	TradeBuy  TradeType = "buy"
	TradeSell TradeType = "sell"
)

// ParseTradeType parses a string into a TradeType.
func ParseTradeType(s string) (TradeType, error) {
	switch TradeType(s) {
	case TradeBuy:
		return TradeBuy, nil
	case TradeSell:
		return TradeSell, nil
	default:
		return "", fmt.Errorf("unknown trade type: %q", s)
	}
}

// Trade is one executed buy or sell in an account's history. The history is
// append-only: trades are never mutated or reordered once recorded.
type Trade struct {
	Type     TradeType // side of the trade
	Ticker   string    // symbol of the traded security
	Quantity int64     // number of shares, always positive
	Price    Money     // unit price at execution time
	Time     time.Time // execution instant
}

// Amount is the total cash moved by the trade (unit price times shares).
func (t Trade) Amount() Money { return t.Price.MulInt(t.Quantity) }

func (t Trade) Equal(o Trade) bool {
	return t.Type == o.Type &&
		t.Ticker == o.Ticker &&
		t.Quantity == o.Quantity &&
		t.Price.Equal(o.Price) &&
		t.Time.Equal(o.Time)
}

// MarshalJSON implements the json.Marshaler interface for Trade, keeping a
// stable field order in the persisted record.
func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", t.Type)
	w.Append("ticker", t.Ticker)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price.Exact())
	w.Append("time", t.Time.Format(time.RFC3339Nano))
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Trade.
func (t *Trade) UnmarshalJSON(data []byte) error {
	var temp struct {
		Type     string   `json:"type"`
		Ticker   string   `json:"ticker"`
		Quantity int64    `json:"quantity"`
		Price    moneyRec `json:"price"`
		Time     string   `json:"time"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	kind, err := ParseTradeType(temp.Type)
	if err != nil {
		return err
	}
	when, err := time.Parse(time.RFC3339Nano, temp.Time)
	if err != nil {
		return fmt.Errorf("invalid trade time %q: %w", temp.Time, err)
	}
	t.Type = kind
	t.Ticker = temp.Ticker
	t.Quantity = temp.Quantity
	t.Price = temp.Price.Money().Exact()
	t.Time = when
	return nil
}

// moneyRec is a specialized struct to read a money value from its two
// persisted fields.
type moneyRec struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (r moneyRec) Money() Money { return M(r.Amount, r.Currency) }
