package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nbak/stocks-overview/date"
	"github.com/nbak/stocks-overview/renderer"
)

type showCmd struct {
	since string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show the current stock positions" }
func (*showCmd) Usage() string {
	return `so show [-since <date>]

  Shows the visible positions: every open lot, plus closed lots bought on or
  after the cutoff date. Defaults to the start of the current year.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.since, "since", date.StartOfYear().String(), "Hide lots sold before this date (YYYY-MM-DD)")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	min, err := date.Parse(c.since)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -since date: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ledger, err := store.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Positions(ledger.Positions(min)))
	return subcommands.ExitSuccess
}
