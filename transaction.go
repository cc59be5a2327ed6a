package journal

import (
	"fmt"
	"maps"

	"github.com/shopspring/decimal"
)

// TransactionKind is the nature of a transaction, derived from the signs of
// its amounts.
type TransactionKind string

const (
	KindBuy     TransactionKind = "buy"
	KindSell    TransactionKind = "sell"
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
	KindUnknown TransactionKind = "unknown"
)

// Transaction is one row of a journal: an exchange of an amount of the base
// asset against an amount of the quote asset.
type Transaction struct {
	// Date is "YYYY-MM-DD" or "YYYY-MM-DD HH:MM:SS". It is not validated, see
	// date.Compare for how dates are ordered.
	Date        string
	Base        string // ticker of the base asset
	BaseAmount  decimal.Decimal
	Quote       string // ticker of the quote asset
	QuoteAmount decimal.Decimal
	FeeBase     decimal.Decimal
	FeeQuote    decimal.Decimal
	Notes       string
	// Extra holds the values of extra columns, keyed by column name.
	// Values are string, int64, bool or decimal.Decimal depending on the column kind.
	Extra map[string]any
}

// Kind returns the nature of the transaction:
//   - buy when the base amount is positive and the quote amount negative.
//   - sell when the base amount is negative and the quote amount positive.
//   - income when the base amount is positive and the quote amount is not negative.
//   - expense when the base amount is negative and the quote amount is not positive.
func (t Transaction) Kind() TransactionKind {
	switch {
	case t.BaseAmount.IsPositive() && t.QuoteAmount.IsNegative():
		return KindBuy
	case t.BaseAmount.IsNegative() && t.QuoteAmount.IsPositive():
		return KindSell
	case t.BaseAmount.IsPositive():
		return KindIncome
	case t.BaseAmount.IsNegative():
		return KindExpense
	default:
		return KindUnknown
	}
}

// Price returns the price of one unit of base in quote, and false when the
// base amount is zero.
func (t Transaction) Price() (decimal.Decimal, bool) {
	if t.BaseAmount.IsZero() {
		return decimal.Zero, false
	}
	return t.QuoteAmount.Div(t.BaseAmount).Abs(), true
}

// Equal reports whether t and o hold the same values.
func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date &&
		t.Base == o.Base && t.BaseAmount.Equal(o.BaseAmount) &&
		t.Quote == o.Quote && t.QuoteAmount.Equal(o.QuoteAmount) &&
		t.FeeBase.Equal(o.FeeBase) && t.FeeQuote.Equal(o.FeeQuote) &&
		t.Notes == o.Notes &&
		maps.EqualFunc(t.Extra, o.Extra, equalValue)
}

func equalValue(a, b any) bool {
	if da, ok := a.(decimal.Decimal); ok {
		db, ok := b.(decimal.Decimal)
		return ok && da.Equal(db)
	}
	return a == b
}

// Clone returns a copy of t that does not share its Extra map.
func (t Transaction) Clone() Transaction {
	t.Extra = maps.Clone(t.Extra)
	return t
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s", t.Date, t.Kind(), t.BaseAmount, t.Base, t.QuoteAmount, t.Quote)
}
