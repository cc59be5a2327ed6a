// Package cmd implements the jnl CLI application to explore journal schemas,
// precisions and transaction ordering.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/journal"
	"github.com/google/subcommands"
)

// groups lists the subcommands by group, in registration order.
var groups = []struct {
	name     string
	commands []subcommands.Command
}{
	{"journal", []subcommands.Command{&columnsCmd{}, &sortCmd{}}},
	{"numbers", []subcommands.Command{&roundCmd{}, &precisionCmd{}}},
	{"help", []subcommands.Command{&topicCmd{}}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// IsCommand reports whether name is a subcommand of jnl, including the
// subcommands builtins.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, g := range groups {
		for _, cmd := range g.commands {
			if cmd.Name() == name {
				return true
			}
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	defaultCurrency = flag.String("currency", envOr(EnvCurrency, "USD"), "Accounting currency (ISO 4217 code). Defaults to $"+EnvCurrency+" or USD.")
	Verbose         = flag.Bool("v", envBool(EnvVerbose), "Verbose logging. Defaults to $"+EnvVerbose+".")
	plain           = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal.")
)

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && b
}

// newAccount creates an account in the accounting currency, holding assets.
func newAccount(assets ...journal.Asset) (*journal.Account, error) {
	cur, err := journal.NewCurrencyAsset(*defaultCurrency)
	if err != nil {
		return nil, fmt.Errorf("accounting currency: %w", err)
	}
	account := journal.NewAccount("jnl", cur)
	for _, a := range assets {
		if err := account.AddAsset(a); err != nil {
			return nil, err
		}
	}
	return account, nil
}

// printMarkdown renders md for the terminal, or prints it raw with -plain.
func printMarkdown(md string) {
	if *plain {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	log.Printf("warning: cannot render markdown: %v", err)
	fmt.Fprint(stdout, md)
}
