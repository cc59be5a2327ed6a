package journal

import "testing"

// tx is a helper for test to create a transaction on a day, identified by its notes.
func tx(day, notes string) Transaction { return Transaction{Date: day, Notes: notes} }

// trade is a helper for test to create a transaction exchanging base for quote.
func trade(day string, baseAmount float64, base string, quoteAmount float64, quote string) Transaction {
	return Transaction{Date: day, Base: base, BaseAmount: D(baseAmount), Quote: quote, QuoteAmount: D(quoteAmount)}
}

// dates lists the dates of the ledger transactions, in ledger order.
func dates(l *Ledger) []string {
	var got []string
	for _, tx := range l.Transactions() {
		got = append(got, tx.Date)
	}
	return got
}

// notes lists the notes of the ledger transactions, in ledger order.
func notes(l *Ledger) []string {
	var got []string
	for _, tx := range l.Transactions() {
		got = append(got, tx.Notes)
	}
	return got
}

// text is a helper for test to create a text column.
func text(name string) TextColumn { return TextColumn{ColumnHeader{Name: name}} }

// addExtra adds col to j and returns its role, failing the test on error.
func addExtra(t *testing.T, j *Journal, col ExtraColumn) Role {
	t.Helper()
	role, err := j.AddExtraColumn(col)
	if err != nil {
		t.Fatalf("AddExtraColumn(%q) unexpected error: %v", col.Title(), err)
	}
	return role
}
