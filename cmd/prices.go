package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/mroche/stockgame/renderer"
	"github.com/mroche/stockgame/yahoo"
)

// defaultWatchlist is the set of tickers quoted when none are given.
const defaultWatchlist = "GOOGL,AAPL,AMZN,BCOV,LMT"

// pricesCmd holds the flags for the 'prices' subcommand.
type pricesCmd struct {
	tickers string
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "display current prices for a watchlist of stocks" }
func (*pricesCmd) Usage() string {
	return `stg prices [-t <ticker,ticker,...>]

  Displays the current market price of each watchlist stock. Stocks whose
  price cannot be fetched are skipped with a warning.
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tickers, "t", defaultWatchlist, "Comma separated list of tickers to quote.")
}

func (c *pricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quotes := yahoo.New()

	var rows []renderer.PriceRow
	for _, ticker := range strings.Split(c.tickers, ",") {
		ticker = strings.TrimSpace(ticker)
		if ticker == "" {
			continue
		}
		price, err := quotes.CurrentPrice(ticker)
		if err != nil {
			log.Printf("skipping %s: %v", ticker, err)
			continue
		}
		rows = append(rows, renderer.PriceRow{Ticker: ticker, Price: price})
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no prices available.")
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Prices(rows))
	return subcommands.ExitSuccess
}
