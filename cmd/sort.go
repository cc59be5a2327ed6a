package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/journal"
	"github.com/etnz/journal/date"
	"github.com/etnz/journal/renderer"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

type sortCmd struct {
	period string
	on     string
}

func (*sortCmd) Name() string     { return "sort" }
func (*sortCmd) Synopsis() string { return "show how transactions are ordered by date" }
func (*sortCmd) Usage() string {
	return `jnl sort [-period <period> [-on <date>]] <date>...

  Insert one transaction per date, in the order of the arguments, and show
  the resulting ledger. Each transaction is noted with the position of its
  argument (#0, #1, ...).

  Dates are YYYY-MM-DD or YYYY-MM-DD HH:MM:SS. Transactions on equal dates
  keep their insertion order. Other values are ordered as text.

  With -period, only the transactions of the day, week, month, quarter or
  year containing the -on date are shown. They keep their ledger position.

Usage Examples:
$ jnl sort 2025-01-02 2025-01-01 2025-01-01
$ jnl sort -period month -on 2025-01-15 2024-12-31 2025-01-02
`
}

func (c *sortCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "", "only show transactions in the `period` (day, week, month, quarter, year) containing -on")
	f.StringVar(&c.on, "on", "", "the `date` selecting the -period, defaults to today")
}

func (c *sortCmd) complete(cmd *complete.Command) {
	cmd.Flags["period"] = predict.Set{"day", "week", "month", "quarter", "year"}
}

func (c *sortCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing dates")
		return subcommands.ExitUsageError
	}
	if c.on != "" && c.period == "" {
		fmt.Fprintln(os.Stderr, "Error: -on requires -period")
		return subcommands.ExitUsageError
	}

	l := journal.NewLedger()
	for i, arg := range f.Args() {
		if _, err := date.ParseStamp(arg); err != nil {
			log.Printf("warning: %q is not a date, it is ordered as text", arg)
		}
		l.Insert(journal.Transaction{Date: arg, Notes: fmt.Sprintf("#%d", i)})
	}
	if c.period == "" {
		printMarkdown(renderer.Transactions(l))
		return subcommands.ExitSuccess
	}

	r, err := c.rangeOf()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.Period(l, r))
	return subcommands.ExitSuccess
}

// rangeOf returns the period range selected by the flags.
func (c *sortCmd) rangeOf() (date.Range, error) {
	p, err := date.ParsePeriod(c.period)
	if err != nil {
		return date.Range{}, err
	}
	on := date.Today()
	if c.on != "" {
		if on, err = date.Parse(c.on); err != nil {
			return date.Range{}, err
		}
	}
	return date.NewRange(on, p), nil
}
