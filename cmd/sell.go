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

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	email    string
	ticker   string
	quantity int64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares at the current market price" }
func (*sellCmd) Usage() string {
	return `stg sell -e <email> -t <ticker> -q <quantity>

  Sells shares from the account holdings at the current market price,
  crediting the proceeds to the cash balance. Fails if the account does not
  hold enough shares of the stock.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "e", "", "Email of the account placing the order.")
	f.StringVar(&c.ticker, "t", "", "Ticker symbol to sell (e.g. AAPL).")
	f.Int64Var(&c.quantity, "q", 0, "Number of shares to sell.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	trade, err := engine.Sell(accounts, acc, c.ticker, c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s. New balance: %s.\n", renderer.Trade(trade), acc.Balance)
	return subcommands.ExitSuccess
}
