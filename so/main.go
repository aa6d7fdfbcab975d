package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/common-nighthawk/go-figure"
	"github.com/google/subcommands"
	stocks "github.com/nbak/stocks-overview"
	"github.com/nbak/stocks-overview/cmd"
)

func main() {
	figure.NewFigure(stocks.AppName, "", true).Print()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
