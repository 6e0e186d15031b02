package stockgame

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTradeMarshalJSON(t *testing.T) {
	trade := Trade{
		Type:     TradeBuy,
		Ticker:   "AAPL",
		Quantity: 5,
		Price:    USD(150.25),
		Time:     time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
	}
	got, err := json.Marshal(trade)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"type":"buy","ticker":"AAPL","quantity":5,"price":{"currency":"USD","amount":150.25},"time":"2025-06-15T10:30:00Z"}`
	if string(got) != want {
		t.Errorf("Marshal =\n%s\nwant\n%s", got, want)
	}
}

func TestTradeRoundTrip(t *testing.T) {
	trade := Trade{
		Type:     TradeSell,
		Ticker:   "GOOGL",
		Quantity: 3,
		Price:    USD(178.125),
		Time:     time.Date(2025, 6, 15, 10, 30, 0, 123456789, time.UTC),
	}
	data, err := json.Marshal(trade)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got Trade
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got.Equal(trade) {
		t.Errorf("round trip = %+v, want %+v", got, trade)
	}
}

func TestTradeUnmarshalRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown type", `{"type":"short","ticker":"AAPL","quantity":1,"price":{"currency":"USD","amount":1},"time":"2025-06-15T10:30:00Z"}`},
		{"bad time", `{"type":"buy","ticker":"AAPL","quantity":1,"price":{"currency":"USD","amount":1},"time":"yesterday"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var trade Trade
			if err := json.Unmarshal([]byte(tc.data), &trade); err == nil {
				t.Error("Unmarshal succeeded, want error")
			}
		})
	}
}

func TestTradeAmount(t *testing.T) {
	trade := Trade{Type: TradeBuy, Ticker: "AAPL", Quantity: 5, Price: USD(150.25)}
	if got, want := trade.Amount(), USD(751.25); !got.Equal(want) {
		t.Errorf("Amount() = %s, want %s", got, want)
	}
}

func TestParseTradeType(t *testing.T) {
	if _, err := ParseTradeType("buy"); err != nil {
		t.Errorf("ParseTradeType(buy): %v", err)
	}
	if _, err := ParseTradeType("sell"); err != nil {
		t.Errorf("ParseTradeType(sell): %v", err)
	}
	if _, err := ParseTradeType("hold"); err == nil {
		t.Error("ParseTradeType(hold) succeeded, want error")
	}
}
