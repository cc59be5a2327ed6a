package cmd

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completer is implemented by subcommands that predict the values of their
// flags or arguments.
type completer interface {
	complete(cmd *complete.Command)
}

// Completion returns the shell completion of jnl: its global flags and
// subcommands with their flags.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	root.Flags["currency"] = predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"}

	for _, g := range groups {
		for _, cmd := range g.commands {
			fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
			cmd.SetFlags(fs)
			sub := &complete.Command{Flags: flagPredictors(fs)}
			if c, ok := cmd.(completer); ok {
				c.complete(sub)
			}
			root.Sub[cmd.Name()] = sub
		}
	}
	return root
}

// flagPredictors predicts nothing for boolean flags and something for the others.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
