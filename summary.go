package ledger

// Tally is the count and the sum of a set of transactions.
type Tally struct {
	Count int    `json:"count"`
	Sum   Amount `json:"sum"`
}

func (t *Tally) add(a Amount) {
	t.Count++
	t.Sum = t.Sum.Add(a)
}

// Summary aggregates a list of transactions.
//
// A transaction is never zero, so Deposits and Payments partition the list:
// their counts and sums add up to Count and Total.
type Summary struct {
	Count    int    `json:"count"`
	Total    Amount `json:"total"`
	Deposits Tally  `json:"deposits"`
	Payments Tally  `json:"payments"`
}

// Summarize computes the summary of txs.
func Summarize(txs []Transaction) Summary {
	var s Summary
	for _, tx := range txs {
		s.Count++
		s.Total = s.Total.Add(tx.amount)
		switch {
		case tx.IsDeposit():
			s.Deposits.add(tx.amount)
		case tx.IsPayment():
			s.Payments.add(tx.amount)
		}
	}
	return s
}
