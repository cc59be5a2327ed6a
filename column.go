package journal

import (
	"fmt"
	"maps"

	"github.com/shopspring/decimal"
)

// ColumnKind identifies the variant of a Column.
type ColumnKind string

// Column kinds.
const (
	KindDate    ColumnKind = "date"
	KindAsset   ColumnKind = "asset"
	KindText    ColumnKind = "text"
	KindInteger ColumnKind = "integer"
	KindBoolean ColumnKind = "boolean"
	KindDecimal ColumnKind = "decimal"
)

// DateFormat is the format of the values of a DateColumn.
type DateFormat string

const (
	FormatDate     DateFormat = "date"     // YYYY-MM-DD
	FormatDateTime DateFormat = "datetime" // YYYY-MM-DD HH:MM:SS
)

// Description tells which side of a transaction a DecimalColumn describes.
type Description string

const (
	DescBase  Description = "base"  // an amount of the base asset
	DescQuote Description = "quote" // an amount of the quote asset
	DescPrice Description = "price" // a price of the base asset in the quote asset
)

// Column is the definition of a column of a journal.
//
// Column is a closed set of variants: DateColumn, AssetColumn, TextColumn,
// IntegerColumn, BooleanColumn and DecimalColumn.
type Column interface {
	// Kind returns the variant of the column.
	Kind() ColumnKind
	// Title returns the display name of the column.
	Title() string
	// Hidden reports whether the column is hidden.
	Hidden() bool

	header() ColumnHeader
	column()
}

// ExtraColumn is a Column that can be added by the user to a journal: a
// TextColumn, an IntegerColumn, a BooleanColumn or a DecimalColumn.
type ExtraColumn interface {
	Column
	// Check returns an error if v is not a valid value for the column.
	Check(v any) error

	extra()
}

// ColumnHeader holds the attributes shared by all columns.
type ColumnHeader struct {
	Name string
	Hide bool
}

func (h ColumnHeader) Title() string       { return h.Name }
func (h ColumnHeader) Hidden() bool        { return h.Hide }
func (h ColumnHeader) header() ColumnHeader { return h }

// DateColumn holds the date of transactions.
type DateColumn struct {
	ColumnHeader
	Format DateFormat
}

// AssetColumn holds an asset ticker.
type AssetColumn struct {
	ColumnHeader
	Ticker string // default ticker for new transactions, optional
}

type TextColumn struct{ ColumnHeader }

type IntegerColumn struct{ ColumnHeader }

type BooleanColumn struct{ ColumnHeader }

// DecimalColumn holds an amount or a price.
type DecimalColumn struct {
	ColumnHeader
	// Precision declares explicit precisions, keyed by ticker for amounts and
	// by "BASE/QUOTE" for prices. See ResolvePrecision.
	Precision   map[string]int
	Description Description
}

func (DateColumn) Kind() ColumnKind    { return KindDate }
func (AssetColumn) Kind() ColumnKind   { return KindAsset }
func (TextColumn) Kind() ColumnKind    { return KindText }
func (IntegerColumn) Kind() ColumnKind { return KindInteger }
func (BooleanColumn) Kind() ColumnKind { return KindBoolean }
func (DecimalColumn) Kind() ColumnKind { return KindDecimal }

func (DateColumn) column()    {}
func (AssetColumn) column()   {}
func (TextColumn) column()    {}
func (IntegerColumn) column() {}
func (BooleanColumn) column() {}
func (DecimalColumn) column() {}

func (TextColumn) extra()    {}
func (IntegerColumn) extra() {}
func (BooleanColumn) extra() {}
func (DecimalColumn) extra() {}

func (c TextColumn) Check(v any) error {
	if _, ok := v.(string); !ok {
		return fmt.Errorf("column %q: want a string, got %T: %w", c.Name, v, ErrInvalidExtraValue)
	}
	return nil
}

func (c IntegerColumn) Check(v any) error {
	switch v.(type) {
	case int, int32, int64:
		return nil
	}
	return fmt.Errorf("column %q: want an integer, got %T: %w", c.Name, v, ErrInvalidExtraValue)
}

func (c BooleanColumn) Check(v any) error {
	if _, ok := v.(bool); !ok {
		return fmt.Errorf("column %q: want a boolean, got %T: %w", c.Name, v, ErrInvalidExtraValue)
	}
	return nil
}

func (c DecimalColumn) Check(v any) error {
	if _, ok := v.(decimal.Decimal); !ok {
		return fmt.Errorf("column %q: want a decimal, got %T: %w", c.Name, v, ErrInvalidExtraValue)
	}
	return nil
}

// check that all variants implement the interfaces.
var (
	_ Column      = DateColumn{}
	_ Column      = AssetColumn{}
	_ ExtraColumn = TextColumn{}
	_ ExtraColumn = IntegerColumn{}
	_ ExtraColumn = BooleanColumn{}
	_ ExtraColumn = DecimalColumn{}
)

// withHeader returns a copy of c with its header replaced by h.
func withHeader(c Column, h ColumnHeader) Column {
	switch v := c.(type) {
	case DateColumn:
		v.ColumnHeader = h
		return v
	case AssetColumn:
		v.ColumnHeader = h
		return v
	case TextColumn:
		v.ColumnHeader = h
		return v
	case IntegerColumn:
		v.ColumnHeader = h
		return v
	case BooleanColumn:
		v.ColumnHeader = h
		return v
	case DecimalColumn:
		v.ColumnHeader = h
		return v
	default:
		panic(fmt.Sprintf("unknown column type %T", c))
	}
}

// cloneColumn returns a copy of c that shares no mutable state with c.
func cloneColumn(c Column) Column {
	if v, ok := c.(DecimalColumn); ok {
		v.Precision = maps.Clone(v.Precision)
		if v.Precision == nil {
			v.Precision = make(map[string]int)
		}
		return v
	}
	return c
}

// sameShape reports whether next can replace prev as a core column: same kind
// and, for decimal columns, same description.
func sameShape(prev, next Column) bool {
	if prev.Kind() != next.Kind() {
		return false
	}
	if p, ok := prev.(DecimalColumn); ok {
		return p.Description == next.(DecimalColumn).Description
	}
	return true
}

// editCore applies the editable attributes of next to the core column prev:
// name, visibility, and precision for decimal columns.
func editCore(prev, next Column) Column {
	edited := withHeader(prev, next.header())
	if d, ok := edited.(DecimalColumn); ok {
		d.Precision = maps.Clone(next.(DecimalColumn).Precision)
		if d.Precision == nil {
			d.Precision = make(map[string]int)
		}
		return d
	}
	return edited
}
