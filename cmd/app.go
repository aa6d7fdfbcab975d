// Package cmd implements the CLI application to manage the stock ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	stocks "github.com/nbak/stocks-overview"
)

// Commands lists the subcommands of the application. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&showCmd{},
	&addCmd{},
	&sellCmd{},
	&instrumentsCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the config file (TOML). Defaults to the per-user app directory.")
var stocksFile = flag.String("stocks", "", "Path to the stocks file (CSV). Overrides the config file.")

// openStore resolves the backing stocks file, from the -stocks flag or from
// the config file, bootstrapping a default setup on first run.
func openStore() (*stocks.Store, error) {
	if *stocksFile != "" {
		return stocks.NewStore(*stocksFile), nil
	}
	cfg, err := loadOrInitConfig()
	if err != nil {
		return nil, err
	}
	return stocks.NewStore(cfg.StocksFile), nil
}

// loadOrInitConfig loads the config file, creating the default setup when
// none exists yet.
func loadOrInitConfig() (stocks.Config, error) {
	path := *configFile
	if path == "" {
		cfg, err := stocks.DefaultConfig()
		if err != nil {
			return stocks.Config{}, err
		}
		path = cfg.ConfigPath
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.Printf("no config at %s, looks like a first run: creating the default setup", path)
		cfg, err := stocks.DefaultConfig()
		if err != nil {
			return stocks.Config{}, err
		}
		cfg.ConfigPath = path
		if err := cfg.Write(); err != nil {
			return stocks.Config{}, err
		}
		return cfg, nil
	}
	return stocks.LoadConfig(path)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
