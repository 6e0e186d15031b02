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

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	email string
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display the current portfolio valuation" }
func (*portfolioCmd) Usage() string {
	return `stg portfolio -e <email>

  Displays the account holdings valued at current market prices, along with
  the cash balance, the total invested, and the return on investment.
  Stocks whose price is unavailable are listed but excluded from the totals.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "e", "", "Email of the account to report on.")
}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.email == "" {
		fmt.Fprintln(os.Stderr, "Error: -e flag is required.")
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

	report := stockgame.NewPortfolioReport(acc, yahoo.New())
	printMarkdown(renderer.Portfolio(report))
	return subcommands.ExitSuccess
}
