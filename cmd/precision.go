package cmd

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/journal"
	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// precisionFlag collects explicit precisions given as "KEY=N".
type precisionFlag map[string]int

func (p precisionFlag) String() string {
	var kv []string
	for _, k := range slices.Sorted(maps.Keys(p)) {
		kv = append(kv, k+"="+strconv.Itoa(p[k]))
	}
	return strings.Join(kv, ",")
}

func (p precisionFlag) Set(v string) error {
	key, n, ok := strings.Cut(v, "=")
	if !ok || key == "" {
		return fmt.Errorf("precision %q: want KEY=N", v)
	}
	i, err := strconv.Atoi(n)
	if err != nil {
		return fmt.Errorf("precision %q: %w", v, err)
	}
	p[key] = i
	return nil
}

// assetFlag collects assets given as "TICKER=record[:price]".
type assetFlag []journal.Asset

func (a *assetFlag) String() string {
	var tickers []string
	for _, asset := range *a {
		tickers = append(tickers, asset.Ticker)
	}
	return strings.Join(tickers, ",")
}

func (a *assetFlag) Set(v string) error {
	asset, err := parseAsset(v)
	if err != nil {
		return err
	}
	*a = append(*a, asset)
	return nil
}

// parseAsset parses "TICKER=record[:price]". The price precision defaults to
// the record precision.
func parseAsset(v string) (journal.Asset, error) {
	ticker, precisions, ok := strings.Cut(v, "=")
	if !ok || ticker == "" {
		return journal.Asset{}, fmt.Errorf("asset %q: want TICKER=record[:price]", v)
	}
	record, price, hasPrice := strings.Cut(precisions, ":")
	r, err := strconv.Atoi(record)
	if err != nil {
		return journal.Asset{}, fmt.Errorf("asset %q: record precision: %w", v, err)
	}
	p := r
	if hasPrice {
		if p, err = strconv.Atoi(price); err != nil {
			return journal.Asset{}, fmt.Errorf("asset %q: price precision: %w", v, err)
		}
	}
	return journal.Asset{Ticker: ticker, Name: ticker, RecordPrecision: r, DisplayPricePrecision: p}, nil
}

type precisionCmd struct {
	desc      string
	base      string
	quote     string
	precision precisionFlag
	assets    assetFlag
}

func (*precisionCmd) Name() string { return "precision" }
func (*precisionCmd) Synopsis() string {
	return "resolve the number of decimals of amounts and prices"
}
func (*precisionCmd) Usage() string {
	return `jnl precision -base <ticker> -quote <ticker> [-desc base|quote|price] [-p KEY=N]... [-asset TICKER=record[:price]]...

  Resolve the number of decimals used for the base amount, the quote amount
  and the price of a transaction exchanging base for quote.

  Explicit precisions (-p) are keyed by ticker for amounts and by BASE/QUOTE
  for prices, and always win. Otherwise amounts use the record precision of
  their asset, and prices the display price precision of the quote asset.

  The accounting currency (-currency) is always a known asset.

Usage Examples:
$ jnl precision -base BTC -quote USD -asset BTC=8:2
$ jnl precision -base BTC -quote USD -asset BTC=8 -p BTC=4 -p BTC/USD=0
`
}

func (c *precisionCmd) SetFlags(f *flag.FlagSet) {
	c.precision = make(precisionFlag)
	f.StringVar(&c.desc, "desc", "", "Only resolve that description: base, quote or price.")
	f.StringVar(&c.base, "base", "", "Ticker of the base asset.")
	f.StringVar(&c.quote, "quote", "", "Ticker of the quote asset. Defaults to the accounting currency.")
	f.Var(c.precision, "p", "Explicit precision, as KEY=N. Can be repeated.")
	f.Var(&c.assets, "asset", "Asset declaration, as TICKER=record[:price]. Can be repeated.")
}

func (c *precisionCmd) complete(cmd *complete.Command) {
	cmd.Flags["desc"] = predict.Set{string(journal.DescBase), string(journal.DescQuote), string(journal.DescPrice)}
}

func (c *precisionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	account, err := newAccount(c.assets...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.base == "" {
		fmt.Fprintln(os.Stderr, "Error: missing -base")
		return subcommands.ExitUsageError
	}
	if c.quote == "" {
		c.quote = account.Settings().AccountingCurrency.Ticker
	}

	descs := []journal.Description{journal.DescBase, journal.DescQuote, journal.DescPrice}
	if c.desc != "" {
		d := journal.Description(c.desc)
		if !slices.Contains(descs, d) {
			fmt.Fprintf(os.Stderr, "Error: unknown description %q\n", c.desc)
			return subcommands.ExitUsageError
		}
		descs = []journal.Description{d}
	}

	table := md.TableSet{Header: []string{"Description", "Key", "Decimals", "Source"}}
	for _, d := range descs {
		col := journal.DecimalColumn{Description: d, Precision: c.precision}
		key := col.PrecisionKey(c.base, c.quote)
		n := journal.ResolvePrecision(col, c.base, c.quote, account, -1)
		decimals := strconv.Itoa(n)
		if n < 0 {
			decimals = "unknown"
		}
		table.Rows = append(table.Rows, []string{string(d), key, decimals, source(col, key, c.base, c.quote, account)})
	}

	var b strings.Builder
	doc := md.NewMarkdown(&b)
	doc.H1(fmt.Sprintf("Precision of %s/%s", c.base, c.quote))
	doc.Table(table)
	printMarkdown(doc.String())
	return subcommands.ExitSuccess
}

// source explains where the precision of col comes from.
func source(col journal.DecimalColumn, key, base, quote string, assets journal.AssetFinder) string {
	if _, ok := col.Precision[key]; ok {
		return "explicit"
	}
	ticker := base
	if col.Description != journal.DescBase {
		ticker = quote
	}
	if _, ok := assets.Asset(ticker); !ok {
		return "unknown asset " + ticker
	}
	if col.Description == journal.DescPrice {
		return "price precision of " + ticker
	}
	return "record precision of " + ticker
}
