package journal

import (
	"fmt"
	"slices"
)

// JournalType is the kind of activity recorded in a journal. It is fixed when
// the journal is created and decides the default columns.
type JournalType string

const (
	Trading JournalType = "trading"
	Income  JournalType = "income"
	Expense JournalType = "expense"
)

// ParseJournalType parses "trading", "income" or "expense".
func ParseJournalType(s string) (JournalType, error) {
	switch t := JournalType(s); t {
	case Trading, Income, Expense:
		return t, nil
	default:
		return "", fmt.Errorf("unknown journal type %q", s)
	}
}

// ColumnOrder is the display order of the columns of a journal.
//
// It does not need to list every column: a column missing from the order is
// simply not displayed in that order. It never lists a column twice.
type ColumnOrder []Role

// Journal is a named list of transactions, with the schema used to display
// and record them.
type Journal struct {
	Name string

	typ     JournalType
	columns *ColumnSet
	order   ColumnOrder
	ledger  *Ledger
}

// NewJournal creates an empty journal of type typ with the default columns
// and column order for that type.
func NewJournal(name string, typ JournalType) *Journal {
	switch typ {
	case Trading:
		return NewTradingJournal(name, nil)
	case Income:
		return NewIncomeJournal(name, nil)
	case Expense:
		return NewExpenseJournal(name, nil)
	default:
		panic(fmt.Sprintf("unknown journal type %q", typ))
	}
}

// NewTradingJournal creates a journal to record trades: every core column is
// visible and the date has a time of day.
//
// A nil order selects the default order. txs are inserted in order. It panics
// if order is not a valid order for the trading columns.
func NewTradingJournal(name string, order ColumnOrder, txs ...Transaction) *Journal {
	return newJournal(name, Trading, TradingColumns(), order, txs)
}

// NewIncomeJournal creates a journal to record income. The quote side of
// transactions is hidden.
//
// A nil order selects the default order. txs are inserted in order. It panics
// if order is not a valid order for the income columns.
func NewIncomeJournal(name string, order ColumnOrder, txs ...Transaction) *Journal {
	return newJournal(name, Income, IncomeColumns(), order, txs)
}

// NewExpenseJournal creates a journal to record expenses. The quote side of
// transactions is hidden.
//
// A nil order selects the default order. txs are inserted in order. It panics
// if order is not a valid order for the expense columns.
func NewExpenseJournal(name string, order ColumnOrder, txs ...Transaction) *Journal {
	return newJournal(name, Expense, ExpenseColumns(), order, txs)
}

func newJournal(name string, typ JournalType, columns *ColumnSet, order ColumnOrder, txs []Transaction) *Journal {
	if order == nil {
		order = DefaultOrder(typ)
	}
	if err := checkOrder(columns, order); err != nil {
		panic(err.Error())
	}
	j := &Journal{
		Name:    name,
		typ:     typ,
		columns: columns,
		order:   slices.Clone(order),
		ledger:  NewLedger(),
	}
	for _, tx := range txs {
		j.ledger.Insert(tx)
	}
	return j
}

// TradingColumns returns a new column set for trading journals.
func TradingColumns() *ColumnSet {
	return NewColumnSet(
		DateColumn{ColumnHeader: ColumnHeader{Name: "Date"}, Format: FormatDateTime},
		AssetColumn{ColumnHeader: ColumnHeader{Name: "Base"}},
		DecimalColumn{ColumnHeader: ColumnHeader{Name: "Base amount"}},
		AssetColumn{ColumnHeader: ColumnHeader{Name: "Quote"}},
		DecimalColumn{ColumnHeader: ColumnHeader{Name: "Quote amount"}},
		DecimalColumn{ColumnHeader: ColumnHeader{Name: "Price"}},
		DecimalColumn{ColumnHeader: ColumnHeader{Name: "Base fee"}},
		DecimalColumn{ColumnHeader: ColumnHeader{Name: "Quote fee"}},
		TextColumn{ColumnHeader{Name: "Notes"}},
	)
}

// IncomeColumns returns a new column set for income journals.
func IncomeColumns() *ColumnSet { return cashflowColumns("Income") }

// ExpenseColumns returns a new column set for expense journals.
func ExpenseColumns() *ColumnSet { return cashflowColumns("Expense") }

// cashflowColumns returns columns where the base side is the asset received
// or spent, and the quote side is hidden.
func cashflowColumns(what string) *ColumnSet {
	return NewColumnSet(
		DateColumn{ColumnHeader: ColumnHeader{Name: "Date"}, Format: FormatDate},
		AssetColumn{ColumnHeader: ColumnHeader{Name: "Asset"}},
		DecimalColumn{ColumnHeader: ColumnHeader{Name: what}},
		AssetColumn{ColumnHeader: ColumnHeader{Name: "Quote", Hide: true}},
		DecimalColumn{ColumnHeader: ColumnHeader{Name: "Quote amount", Hide: true}},
		DecimalColumn{ColumnHeader: ColumnHeader{Name: "Price", Hide: true}},
		DecimalColumn{ColumnHeader: ColumnHeader{Name: "Fee"}},
		DecimalColumn{ColumnHeader: ColumnHeader{Name: "Quote fee", Hide: true}},
		TextColumn{ColumnHeader{Name: "Notes"}},
	)
}

// DefaultOrder returns the default column order for a journal type.
func DefaultOrder(typ JournalType) ColumnOrder {
	switch typ {
	case Trading:
		return ColumnOrder(CoreRoles())
	case Income, Expense:
		return ColumnOrder{RoleDate, RoleBase, RoleBaseAmount, RoleFeeBase, RoleNotes}
	default:
		panic(fmt.Sprintf("unknown journal type %q", typ))
	}
}

// Type returns the type the journal was created with.
func (j *Journal) Type() JournalType { return j.typ }

// Columns returns the schema of the journal. Use the journal methods to change it.
func (j *Journal) Columns() *ColumnSet { return j.columns }

// Order returns a copy of the column order.
func (j *Journal) Order() ColumnOrder { return slices.Clone(j.order) }

// Ledger returns the transactions of the journal.
func (j *Journal) Ledger() *Ledger { return j.ledger }

// Clone returns a deep copy of j.
func (j *Journal) Clone() *Journal {
	return &Journal{
		Name:    j.Name,
		typ:     j.typ,
		columns: j.columns.Clone(),
		order:   slices.Clone(j.order),
		ledger:  j.ledger.clone(),
	}
}

// Record checks the extra values of tx against the extra columns and inserts
// tx in the ledger. It returns the position of tx.
func (j *Journal) Record(tx Transaction) (int, error) {
	if err := j.Check(tx); err != nil {
		return -1, err
	}
	return j.ledger.Insert(tx), nil
}

// Check returns an error if an extra value of tx does not match the kind of
// its column, or if it has no column.
func (j *Journal) Check(tx Transaction) error {
	for name, v := range tx.Extra {
		_, col, ok := j.extraByName(name)
		if !ok {
			return fmt.Errorf("no extra column named %q: %w", name, ErrInvalidExtraValue)
		}
		if err := col.Check(v); err != nil {
			return err
		}
	}
	return nil
}

// extraByName returns the extra column with that name.
func (j *Journal) extraByName(name string) (Role, ExtraColumn, bool) {
	for role, c := range j.columns.Extras() {
		if c.Title() == name {
			return role, c, true
		}
	}
	return "", nil, false
}
