package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mroche/stockgame/renderer"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	email string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list all trades of an account" }
func (*historyCmd) Usage() string {
	return `stg history -e <email>

  Lists every buy and sell of the account, in chronological order.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "e", "", "Email of the account to report on.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.History(acc))
	return subcommands.ExitSuccess
}
