package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nbak/stocks-overview/renderer"
)

type instrumentsCmd struct{}

func (*instrumentsCmd) Name() string     { return "instruments" }
func (*instrumentsCmd) Synopsis() string { return "list all known instruments" }
func (*instrumentsCmd) Usage() string {
	return `so instruments

  Lists every instrument ever recorded in the ledger, open or closed.
`
}

func (*instrumentsCmd) SetFlags(*flag.FlagSet) {}

func (*instrumentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.Instruments(ledger))
	return subcommands.ExitSuccess
}
