package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	stocks "github.com/nbak/stocks-overview"
	"github.com/nbak/stocks-overview/date"
	"github.com/nbak/stocks-overview/renderer"
)

type sellCmd struct {
	instrument string
	quantity   float64
	date       string
	yes        bool
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell some stocks of a position" }
func (*sellCmd) Usage() string {
	return `so sell -i <instrument> -q <quantity> [-d <date>] [-y]

  Sells the given quantity, consuming the oldest open lots first. A partially
  consumed lot is split into a closed part and an open remainder. Asks for
  confirmation unless -y is given.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.instrument, "i", "", "Instrument identifier, e.g. a WKN")
	f.Float64Var(&c.quantity, "q", 0, "Number of stocks sold")
	f.StringVar(&c.date, "d", date.Today().String(), "Sell date (YYYY-MM-DD)")
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if !ledger.HasInstrument(c.instrument) {
		fmt.Fprintf(os.Stderr, "Unknown instrument %q. Known instruments:\n", c.instrument)
		printMarkdown(renderer.Instruments(ledger))
		return subcommands.ExitFailure
	}

	if !c.yes && !confirm(fmt.Sprintf("Are you sure to sell %v stocks of %s?", c.quantity, c.instrument)) {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}

	updated, err := ledger.Sell(c.instrument, stocks.Q(c.quantity), day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.Save(updated); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println("Successfully removed")
	printMarkdown(renderer.Positions(updated.Positions(date.StartOfYear())))
	return subcommands.ExitSuccess
}

// confirm asks a yes/no question on stdin and defaults to no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
