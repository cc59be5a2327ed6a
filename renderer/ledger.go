package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/journal"
	"github.com/etnz/journal/date"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// Ledger renders the transactions of j as a table of its visible columns, in
// display order. Column names are printed upper-cased in the table header.
//
// Decimal values are rounded down to the precision resolved against assets.
// Values of unknown assets are printed in full.
func Ledger(j *journal.Journal, assets journal.AssetFinder) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(j.Name)

	var (
		roles   []journal.Role
		columns []journal.Column
		table   md.TableSet
	)
	for role, c := range j.VisibleColumns() {
		roles = append(roles, role)
		columns = append(columns, c)
		table.Header = append(table.Header, c.Title())
	}
	if len(columns) == 0 {
		doc.PlainText("No visible column.")
		return doc.String()
	}

	for _, tx := range j.Ledger().Transactions() {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = cell(roles[i], c, tx, assets)
		}
		table.Rows = append(table.Rows, row)
	}
	if len(table.Rows) == 0 {
		doc.PlainText("No transaction.")
		return doc.String()
	}
	doc.Table(table)
	return doc.String()
}

// Transactions renders the transactions of l in ledger order, with their
// position.
func Transactions(l *journal.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.Table(transactionTable(l))
	return doc.String()
}

// Period renders the transactions of l whose day is in r, with their ledger
// position, under a heading naming r.
func Period(l *journal.Ledger, r date.Range) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(fmt.Sprintf("%s (%s)", r.Identifier(), r.Name()))
	table := transactionTable(l, journal.Between(r))
	if len(table.Rows) == 0 {
		doc.PlainText("No transaction.")
		return doc.String()
	}
	doc.Table(table)
	return doc.String()
}

func transactionTable(l *journal.Ledger, filters ...func(journal.Transaction) bool) md.TableSet {
	table := md.TableSet{Header: []string{"#", "Date", "Kind", "Notes"}}
	for i, tx := range l.Transactions(filters...) {
		table.Rows = append(table.Rows, []string{strconv.Itoa(i), tx.Date, string(tx.Kind()), tx.Notes})
	}
	return table
}

// cell formats the value of tx for the column c addressed by role.
func cell(role journal.Role, c journal.Column, tx journal.Transaction, assets journal.AssetFinder) string {
	switch role {
	case journal.RoleDate:
		return tx.Date
	case journal.RoleBase:
		return tx.Base
	case journal.RoleQuote:
		return tx.Quote
	case journal.RoleNotes:
		return tx.Notes
	case journal.RoleBaseAmount:
		return Decimal(tx.BaseAmount, c, tx, assets)
	case journal.RoleQuoteAmount:
		return Decimal(tx.QuoteAmount, c, tx, assets)
	case journal.RoleFeeBase:
		return Decimal(tx.FeeBase, c, tx, assets)
	case journal.RoleFeeQuote:
		return Decimal(tx.FeeQuote, c, tx, assets)
	case journal.RolePrice:
		price, ok := tx.Price()
		if !ok {
			return ""
		}
		return Decimal(price, c, tx, assets)
	}

	v, ok := tx.Extra[c.Title()]
	if !ok {
		return ""
	}
	if d, ok := v.(decimal.Decimal); ok {
		return Decimal(d, c, tx, assets)
	}
	if b, ok := v.(bool); ok {
		if b {
			return "yes"
		}
		return "no"
	}
	return fmt.Sprint(v)
}

// Decimal formats v rounded down to the precision of c for tx. Columns that
// are not decimal columns, or whose precision cannot be resolved, print v in
// full.
func Decimal(v decimal.Decimal, c journal.Column, tx journal.Transaction, assets journal.AssetFinder) string {
	dc, ok := c.(journal.DecimalColumn)
	if !ok {
		return v.String()
	}
	p := journal.ResolvePrecision(dc, tx.Base, tx.Quote, assets, -1)
	if p < 0 {
		return v.String()
	}
	return journal.RoundDown(v, p).StringFixed(int32(p))
}
