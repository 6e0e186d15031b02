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

// leaderboardCmd holds the flags for the 'leaderboard' subcommand.
type leaderboardCmd struct{}

func (*leaderboardCmd) Name() string     { return "leaderboard" }
func (*leaderboardCmd) Synopsis() string { return "rank all players by total portfolio value" }
func (*leaderboardCmd) Usage() string {
	return `stg leaderboard

  Ranks every player by net worth: cash balance plus holdings valued at
  current market prices. Requires no authentication.
`
}

func (*leaderboardCmd) SetFlags(f *flag.FlagSet) {}

func (c *leaderboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, accounts, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading accounts: %v\n", err)
		return subcommands.ExitFailure
	}

	standings := stockgame.Leaderboard(accounts, yahoo.New())
	printMarkdown(renderer.Leaderboard(standings))
	return subcommands.ExitSuccess
}
