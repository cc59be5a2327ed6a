// Package renderer renders journals as markdown documents.
package renderer

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/journal"
	md "github.com/nao1215/markdown"
)

// Columns renders the schema of j: one row per column, in display order.
//
// With all set, every column is listed (core columns first, then extra
// columns) and columns missing from the display order are listed too.
func Columns(j *journal.Journal, all bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("%s (%s)", j.Name, j.Type()))

	columns := j.Columns()
	table := md.TableSet{Header: []string{"Role", "Name", "Kind", "Details", "Hidden"}}
	if all {
		for _, role := range columns.Roles() {
			c, _ := columns.Column(role)
			table.Rows = append(table.Rows, columnRow(columns, role, c))
		}
	} else {
		for role, c := range j.VisibleColumns() {
			table.Rows = append(table.Rows, columnRow(columns, role, c))
		}
	}
	doc.Table(table)
	doc.Build()

	ConditionalBlock(&buf, func(w io.Writer) bool {
		var hidden []string
		for _, role := range columns.Roles() {
			if c, _ := columns.Column(role); c.Hidden() {
				hidden = append(hidden, c.Title())
			}
		}
		if all || len(hidden) == 0 {
			return false
		}
		doc := md.NewMarkdown(w)
		doc.PlainText("Hidden: " + strings.Join(hidden, ", "))
		doc.Build()
		return true
	})
	return buf.String()
}

func columnRow(columns *journal.ColumnSet, role journal.Role, c journal.Column) []string {
	hidden := ""
	if c.Hidden() {
		hidden = "yes"
	}
	return []string{columns.DescribeRole(role), c.Title(), string(c.Kind()), details(c), hidden}
}

// details describes the attributes specific to the kind of c.
func details(c journal.Column) string {
	switch c := c.(type) {
	case journal.DateColumn:
		return string(c.Format)
	case journal.AssetColumn:
		if c.Ticker != "" {
			return "default " + c.Ticker
		}
	case journal.DecimalColumn:
		parts := []string{string(c.Description)}
		for _, key := range slices.Sorted(maps.Keys(c.Precision)) {
			parts = append(parts, key+"="+strconv.Itoa(c.Precision[key]))
		}
		return strings.Join(parts, " ")
	}
	return ""
}
