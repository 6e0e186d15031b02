// Package cmd implements the CLI application to play the stock trading game.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"golang.org/x/term"

	"github.com/mroche/stockgame"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&registerCmd{}, "account")

	c.Register(&buyCmd{}, "trading")
	c.Register(&sellCmd{}, "trading")

	c.Register(&portfolioCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&leaderboardCmd{}, "reports")

	c.Register(&pricesCmd{}, "market data")
	c.Register(&chartCmd{}, "market data")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store", "accounts.jsonl", "Path to the account store file (JSONL format)")

// passwordEnv lets scripts pass the password without a terminal prompt.
const passwordEnv = "STG_PASSWORD"

// openStore loads the account collection from the app store file.
func openStore() (*stockgame.Store, *stockgame.Accounts, error) {
	store := stockgame.NewStore(*storeFile)
	accounts, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	return store, accounts, nil
}

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// promptPassword reads a password from the terminal without echo, or from
// the STG_PASSWORD environment variable when set.
func promptPassword(prompt string) (string, error) {
	if pw := os.Getenv(passwordEnv); pw != "" {
		return pw, nil
	}
	fmt.Fprint(os.Stderr, prompt)
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// authenticate prompts for the password of the given account and verifies it.
func authenticate(store *stockgame.Store, accounts *stockgame.Accounts, email string) (*stockgame.Account, error) {
	password, err := promptPassword("Enter your password: ")
	if err != nil {
		return nil, err
	}
	return store.Authenticate(accounts, email, password)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when no fancy rendering is possible.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err == nil {
		if out, rerr := r.Render(md); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}
