package journal

import (
	"fmt"
	"iter"
	"log"
	"slices"

	"github.com/etnz/journal/date"
)

// Verbose turns on the logging of ledger moves.
var Verbose bool

// Ledger is the list of transactions of a journal.
//
// In a Ledger transactions are always in chronological order. Transactions on
// the same date are kept in the order they were recorded.
//
// Transactions are addressed by position. A position is only valid until the
// next mutation of the ledger.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates a ledger by inserting txs in that order.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{transactions: make([]Transaction, 0, len(txs))}
	for _, tx := range txs {
		l.Insert(tx)
	}
	return l
}

// InsertOrdered inserts tx into txs, sorted by date, and returns the new
// slice with the position of tx.
//
// tx is placed right after the last transaction whose date is not after tx's
// date: among equal dates, the most recently inserted comes last.
//
// Like append, InsertOrdered reuses the backing array of txs when it has
// room, so other slices sharing that array see the change. Callers must use
// the returned slice.
func InsertOrdered(txs []Transaction, tx Transaction) ([]Transaction, int) {
	// Scan backward: recording new transactions at the end is the common case.
	i := len(txs)
	for i > 0 && date.Compare(txs[i-1].Date, tx.Date) > 0 {
		i--
	}
	return slices.Insert(txs, i, tx), i
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// At returns a copy of the transaction at position i.
func (l *Ledger) At(i int) (Transaction, error) {
	if err := l.check(i); err != nil {
		return Transaction{}, err
	}
	return l.transactions[i].Clone(), nil
}

// Insert records a copy of tx at its chronological position and returns that
// position.
func (l *Ledger) Insert(tx Transaction) int {
	var i int
	l.transactions, i = InsertOrdered(l.transactions, tx.Clone())
	return i
}

// Update replaces the transaction at position i with a copy of tx, and returns
// the new position of tx.
//
// If tx has the same date, it stays in place. Otherwise it is moved as if it
// was inserted.
func (l *Ledger) Update(i int, tx Transaction) (int, error) {
	if err := l.check(i); err != nil {
		return i, err
	}
	old := l.transactions[i]
	tx = tx.Clone()
	if old.Date == tx.Date {
		l.transactions[i] = tx
		return i, nil
	}
	l.transactions = slices.Delete(l.transactions, i, i+1)
	var j int
	l.transactions, j = InsertOrdered(l.transactions, tx)
	if Verbose && i != j {
		log.Printf("%v: move transaction from %v to %v (#%d -> #%d)", tx.Kind(), old.Date, tx.Date, i, j)
	}
	return j, nil
}

// Delete removes the transaction at position i.
func (l *Ledger) Delete(i int) error {
	if err := l.check(i); err != nil {
		return err
	}
	l.transactions = slices.Delete(l.transactions, i, i+1)
	return nil
}

// Transactions returns an iterator over copies of the transactions, with
// their position, accepted by all filters.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
	next:
		for i, tx := range l.transactions {
			for _, accept := range filters {
				if !accept(tx) {
					continue next
				}
			}
			if !yield(i, tx.Clone()) {
				return
			}
		}
	}
}

// Between returns a filter accepting transactions whose day is in r.
func Between(r date.Range) func(Transaction) bool {
	return func(tx Transaction) bool { return r.ContainsStamp(tx.Date) }
}

// OfKind returns a filter accepting transactions of that kind.
func OfKind(kind TransactionKind) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Kind() == kind }
}

// OldestTransactionDate returns the date of the earliest transaction in the ledger.
// It returns "" if the ledger has no transactions.
func (l *Ledger) OldestTransactionDate() string {
	if len(l.transactions) == 0 {
		return ""
	}
	return l.transactions[0].Date
}

// NewestTransactionDate returns the date of the latest transaction in the ledger.
// It returns "" if the ledger has no transactions.
func (l *Ledger) NewestTransactionDate() string {
	if len(l.transactions) == 0 {
		return ""
	}
	return l.transactions[len(l.transactions)-1].Date
}

// clone returns a copy of l that shares no transaction with l.
func (l *Ledger) clone() *Ledger {
	c := &Ledger{transactions: make([]Transaction, len(l.transactions))}
	for i, tx := range l.transactions {
		c.transactions[i] = tx.Clone()
	}
	return c
}

func (l *Ledger) check(i int) error {
	if i < 0 || i >= len(l.transactions) {
		return fmt.Errorf("transaction #%d of %d: %w", i, len(l.transactions), ErrOutOfRange)
	}
	return nil
}
