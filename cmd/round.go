package cmd

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/etnz/journal"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type roundCmd struct {
	decimals float64
}

func (*roundCmd) Name() string     { return "round" }
func (*roundCmd) Synopsis() string { return "round values down to a number of decimals" }
func (*roundCmd) Usage() string {
	return `jnl round [-d <decimals>] <value>...

  Round each value toward zero to exactly <decimals> fractional digits.
  A negative or NaN number of decimals leaves values unchanged. Other
  numbers of decimals must be whole.

Usage Examples:
$ jnl round -d 1 10.19 -10.19
10.1
-10.1
`
}

func (c *roundCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.decimals, "d", math.NaN(), "Number of decimals to keep. Values are unchanged by default.")
}

func (c *roundCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing value to round")
		return subcommands.ExitUsageError
	}
	if err := journal.CheckDecimals(c.decimals); err != nil {
		fmt.Fprintf(os.Stderr, "Error: -d: %v\n", err)
		return subcommands.ExitUsageError
	}
	for _, arg := range f.Args() {
		v, err := decimal.NewFromString(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %q is not a decimal: %v\n", arg, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, journal.RoundDown(v, c.decimals).String())
	}
	return subcommands.ExitSuccess
}
