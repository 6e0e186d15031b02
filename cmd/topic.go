package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mroche/stockgame/docs"
)

// topicCmd implements the 'topic' subcommand to display documentation.
type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "display a documentation topic" }
func (*topicCmd) Usage() string {
	return `stg topic [<name> ...]

  Displays one or more documentation topics. Without arguments, displays the
  index of available topics.
`
}

func (*topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	names := f.Args()
	if len(names) == 0 {
		names = []string{"readme"}
	}

	content, err := docs.GetTopics(names...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(content)
	return subcommands.ExitSuccess
}
