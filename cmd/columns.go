package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/journal"
	"github.com/etnz/journal/renderer"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// extraFlag collects extra column definitions given as "Name:kind".
type extraFlag []journal.ExtraColumn

func (e *extraFlag) String() string {
	var names []string
	for _, c := range *e {
		names = append(names, c.Title()+":"+string(c.Kind()))
	}
	return strings.Join(names, ",")
}

func (e *extraFlag) Set(v string) error {
	c, err := parseExtraColumn(v)
	if err != nil {
		return err
	}
	*e = append(*e, c)
	return nil
}

// parseExtraColumn parses "Name:kind" into an extra column. The kind defaults
// to text.
func parseExtraColumn(v string) (journal.ExtraColumn, error) {
	name, kind, _ := strings.Cut(v, ":")
	if name == "" {
		return nil, fmt.Errorf("extra column %q: missing name", v)
	}
	h := journal.ColumnHeader{Name: name}
	switch journal.ColumnKind(kind) {
	case "", journal.KindText:
		return journal.TextColumn{ColumnHeader: h}, nil
	case journal.KindInteger:
		return journal.IntegerColumn{ColumnHeader: h}, nil
	case journal.KindBoolean:
		return journal.BooleanColumn{ColumnHeader: h}, nil
	case journal.KindDecimal:
		return journal.DecimalColumn{ColumnHeader: h}, nil
	default:
		return nil, fmt.Errorf("extra column %q: %w: kind %q cannot be an extra column", v, journal.ErrInvalidColumnEdit, kind)
	}
}

type columnsCmd struct {
	typ    string
	all    bool
	hide   string
	extras extraFlag
}

func (*columnsCmd) Name() string     { return "columns" }
func (*columnsCmd) Synopsis() string { return "show the default columns of a journal type" }
func (*columnsCmd) Usage() string {
	return `jnl columns [-type trading|income|expense] [-a] [-hide <role>] [-extra Name:kind]...

  Show the columns of a new journal of the given type, in display order.

  -extra appends an extra column (kind is text, integer, boolean or decimal).
  -hide hides a column and the columns denominated in it, e.g. '-hide quote'.
  -a lists every column, including hidden ones.

Usage Examples:
$ jnl columns -type income -a
$ jnl columns -extra Tax:decimal -extra Exchange -hide quote
`
}

func (c *columnsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", string(journal.Trading), "Journal type: trading, income or expense.")
	f.BoolVar(&c.all, "a", false, "List all columns, including hidden ones.")
	f.StringVar(&c.hide, "hide", "", "Role of a column to hide, with the columns denominated in it.")
	f.Var(&c.extras, "extra", "Extra column to append, as Name:kind. Can be repeated.")
}

func (c *columnsCmd) complete(cmd *complete.Command) {
	cmd.Flags["type"] = predict.Set{string(journal.Trading), string(journal.Income), string(journal.Expense)}
	var roles predict.Set
	for _, r := range journal.CoreRoles() {
		roles = append(roles, string(r))
	}
	cmd.Flags["hide"] = roles
}

func (c *columnsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := journal.ParseJournalType(c.typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	j := journal.NewJournal(strings.ToUpper(c.typ[:1])+c.typ[1:], typ)
	for _, col := range c.extras {
		if _, err := j.AddExtraColumn(col); err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot add %q: %v\n", col.Title(), err)
			return subcommands.ExitFailure
		}
	}
	if c.hide != "" {
		if err := j.SetColumnHidden(journal.Role(c.hide), true, true); err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot hide %q: %v\n", c.hide, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.Columns(j, c.all))
	return subcommands.ExitSuccess
}
