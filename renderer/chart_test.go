package renderer

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mroche/stockgame"
)

func testCandles(n int) []stockgame.Candle {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]stockgame.Candle, n)
	for i := range candles {
		candles[i] = stockgame.Candle{
			Time:  day.AddDate(0, 0, i),
			Close: decimal.NewFromInt(int64(100 + i)),
		}
	}
	return candles
}

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestPriceChart(t *testing.T) {
	png, err := PriceChart("AAPL", testCandles(30), 10)
	if err != nil {
		t.Fatalf("PriceChart: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Errorf("PriceChart did not produce a PNG (starts with % x)", png[:4])
	}
}

func TestPriceChartWithoutAverage(t *testing.T) {
	// a window larger than the series just drops the overlay.
	png, err := PriceChart("AAPL", testCandles(5), 10)
	if err != nil {
		t.Fatalf("PriceChart: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("PriceChart did not produce a PNG")
	}
}

func TestPriceChartZeroWindow(t *testing.T) {
	// -w 0 on the command line must still produce a chart, just without the
	// moving-average overlay.
	png, err := PriceChart("AAPL", testCandles(5), 0)
	if err != nil {
		t.Fatalf("PriceChart: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("PriceChart did not produce a PNG")
	}
}

func TestPriceChartRejectsShortSeries(t *testing.T) {
	if _, err := PriceChart("AAPL", testCandles(1), 10); err == nil {
		t.Error("PriceChart accepted a single candle")
	}
}
