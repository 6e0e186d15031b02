package renderer

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mroche/stockgame"
)

// PriceChart renders a PNG line chart of daily closing prices with a
// moving-average overlay. Two series: Close (blue solid) and the
// maWindow-day moving average (gray dashed). Returns raw PNG bytes.
func PriceChart(ticker string, candles []stockgame.Candle, maWindow int) ([]byte, error) {
	if len(candles) < 2 {
		return nil, fmt.Errorf("need at least 2 candles, got %d", len(candles))
	}

	xValues := make([]time.Time, len(candles))
	closeY := make([]float64, len(candles))
	for i, c := range candles {
		xValues[i] = c.Time
		closeY[i] = c.Close.InexactFloat64()
	}

	closeSeries := chart.TimeSeries{
		Name: "Close",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"),
			StrokeWidth: 2.0,
		},
		XValues: xValues,
		YValues: closeY,
	}

	series := []chart.Series{closeSeries}

	// the moving average only exists once the window is full; trim the NaN
	// warm-up prefix instead of plotting it.
	if maWindow > 1 && maWindow <= len(candles) {
		avg := stockgame.MovingAverage(candles, maWindow)
		var maX []time.Time
		var maY []float64
		for i, v := range avg {
			if math.IsNaN(v) {
				continue
			}
			maX = append(maX, xValues[i])
			maY = append(maY, v)
		}
		if len(maY) >= 2 {
			series = append(series, chart.TimeSeries{
				Name: fmt.Sprintf("%d Day MA", maWindow),
				Style: chart.Style{
					StrokeColor:     drawing.ColorFromHex("9ca3af"),
					StrokeWidth:     1.5,
					StrokeDashArray: []float64{5.0, 3.0},
				},
				XValues: maX,
				YValues: maY,
			})
		}
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s Closing Prices", ticker),
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 02")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.2f", f)
				}
				return ""
			},
		},
		Series: series,
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
