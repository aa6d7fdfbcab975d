package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	stocks "github.com/nbak/stocks-overview"
	"github.com/nbak/stocks-overview/date"
	"github.com/nbak/stocks-overview/renderer"
)

type addCmd struct {
	instrument string
	name       string
	quantity   float64
	date       string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new stock position" }
func (*addCmd) Usage() string {
	return `so add -i <instrument> -q <quantity> [-n <name>] [-d <date>]

  Records a purchase as a new open lot. Every purchase stays a distinct lot,
  even for an instrument and date already present. For a new instrument the
  display name -n is required; for a known one the recorded name is reused.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.instrument, "i", "", "Instrument identifier, e.g. a WKN")
	f.StringVar(&c.name, "n", "", "Display name for a new instrument")
	f.Float64Var(&c.quantity, "q", 0, "Number of stocks bought")
	f.StringVar(&c.date, "d", date.Today().String(), "Buy date (YYYY-MM-DD)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.instrument == "" || c.quantity <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
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

	// For a known instrument the recorded display name wins over -n.
	name := c.name
	if ledger.HasInstrument(c.instrument) {
		name, err = ledger.DisplayName(c.instrument)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	} else if name == "" {
		fmt.Fprintf(os.Stderr, "Instrument %q is new, please provide a display name with -n.\n", c.instrument)
		return subcommands.ExitUsageError
	}

	updated, err := ledger.Buy(c.instrument, name, stocks.Q(c.quantity), day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.Save(updated); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println("Successfully added")
	printMarkdown(renderer.Positions(updated.Positions(date.StartOfYear())))
	return subcommands.ExitSuccess
}
