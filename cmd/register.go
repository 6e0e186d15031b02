package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// registerCmd holds the flags for the 'register' subcommand.
type registerCmd struct {
	email string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new player account" }
func (*registerCmd) Usage() string {
	return `stg register -e <email>

  Creates a new player account with a starting cash balance, and assigns it
  a unique 4-digit user ID. The password is prompted twice on the terminal.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "e", "", "Email address identifying the new account.")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.email == "" {
		fmt.Fprintln(os.Stderr, "Error: -e flag is required.")
		return subcommands.ExitUsageError
	}

	store, accounts, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading accounts: %v\n", err)
		return subcommands.ExitFailure
	}

	password, err := promptPassword("Choose a password: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
		return subcommands.ExitFailure
	}
	// skip the confirmation prompt when the password came from the environment.
	if os.Getenv(passwordEnv) == "" {
		confirm, err := promptPassword("Confirm your password: ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
			return subcommands.ExitFailure
		}
		if password != confirm {
			fmt.Fprintln(os.Stderr, "Error: passwords do not match.")
			return subcommands.ExitFailure
		}
	}

	acc, err := store.CreateAccount(accounts, c.email, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating account: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Account created for %s (user ID %s) with a starting balance of %s.\n",
		acc.Email, acc.UserID, acc.Balance)
	return subcommands.ExitSuccess
}
