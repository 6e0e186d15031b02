package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mroche/stockgame/renderer"
	"github.com/mroche/stockgame/yahoo"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	ticker string
	rng    string
	window int
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render a price chart of a stock to a PNG file" }
func (*chartCmd) Usage() string {
	return `stg chart -t <ticker> [-r <range>] [-w <window>] [-o <file>]

  Fetches the daily price history of a stock and renders a PNG line chart of
  closing prices with a moving-average overlay.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker symbol to chart (e.g. AAPL).")
	f.StringVar(&c.rng, "r", "6mo", "History range (e.g. 1mo, 6mo, 1y, 5y).")
	f.IntVar(&c.window, "w", 10, "Moving average window, in days.")
	f.StringVar(&c.output, "o", "", "Output PNG file. Defaults to <ticker>.png.")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -t flag is required.")
		return subcommands.ExitUsageError
	}
	output := c.output
	if output == "" {
		output = c.ticker + ".png"
	}

	candles, err := yahoo.New().HistoricalSeries(c.ticker, c.rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching history: %v\n", err)
		return subcommands.ExitFailure
	}

	png, err := renderer.PriceChart(c.ticker, candles, c.window)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(output, png, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing chart: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Chart of %s (%s, %d-day MA) written to %s.\n", c.ticker, c.rng, c.window, output)
	return subcommands.ExitSuccess
}
