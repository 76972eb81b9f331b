package ledger

import (
	"iter"
	"slices"
)

// Ledger represents the list of transactions of a session.
//
// In a Ledger transactions are always in reverse chronological order: newest
// first by (date, time). Transactions sharing the same second keep their
// relative order.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates a ledger holding txs, sorted newest first.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{transactions: slices.Clone(txs)}
	l.stableSort()
	return l
}

// stableSort sorts newest first, preserving the order of transactions at the same second.
func (l *Ledger) stableSort() {
	slices.SortStableFunc(l.transactions, func(a, b Transaction) int {
		return b.Compare(a)
	})
}

// Insert adds a transaction at its chronological position.
//
// It is placed before every transaction that is not newer than itself, so
// among transactions recorded at the same second the latest inserted comes
// first. It does not assume tx is the newest one.
func (l *Ledger) Insert(tx Transaction) {
	i, _ := slices.BinarySearchFunc(l.transactions, tx, func(e, target Transaction) int {
		// the slice is sorted by descending time: "smaller" means newer.
		if e.Compare(target) > 0 {
			return -1
		}
		return 1
	})
	l.transactions = slices.Insert(l.transactions, i, tx)
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns a copy of the transactions, newest first.
func (l *Ledger) Transactions() []Transaction { return slices.Clone(l.transactions) }

// All returns an iterator over the transactions, newest first.
func (l *Ledger) All() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}
