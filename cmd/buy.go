package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mroche/stockgame"
	"github.com/mroche/stockgame/renderer"
	"github.com/mroche/stockgame/yahoo"
)

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	email    string
	ticker   string
	quantity int64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy shares at the current market price" }
func (*buyCmd) Usage() string {
	return `stg buy -e <email> -t <ticker> -q <quantity>

  Buys shares of a stock at its current market price, debiting the account
  cash balance. Fails if the price is unavailable or the balance is too low.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "e", "", "Email of the account placing the order.")
	f.StringVar(&c.ticker, "t", "", "Ticker symbol to buy (e.g. AAPL).")
	f.Int64Var(&c.quantity, "q", 0, "Number of shares to buy.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.email == "" || c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -e and -t flags are required.")
		return subcommands.ExitUsageError
	}

	store, accounts, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading accounts: %v\n", err)
		return subcommands.ExitFailure
	}

	acc, err := authenticate(store, accounts, c.email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	engine := stockgame.NewEngine(store, yahoo.New())
	trade, err := engine.Buy(accounts, acc, c.ticker, c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s. New balance: %s.\n", renderer.Trade(trade), acc.Balance)
	return subcommands.ExitSuccess
}
