// Command jnl explores journal schemas, precisions and transaction ordering.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/journal"
	"github.com/etnz/journal/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Handles shell completion requests, and COMP_INSTALL/COMP_UNINSTALL.
	cmd.Completion().Complete("jnl")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	journal.Verbose = *cmd.Verbose

	if name := flag.Arg(0); name != "" && !cmd.IsCommand(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
