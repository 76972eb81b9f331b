package ledger

import "encoding/json"

// Kind returns "deposit" or "payment".
func (t Transaction) Kind() string {
	if t.IsPayment() {
		return "payment"
	}
	return "deposit"
}

// MarshalJSON writes the transaction as a JSON object with its fields in ledger order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.date)
	w.Append("time", t.time)
	w.Append("description", t.description)
	w.Append("vendor", t.vendor)
	w.Append("amount", t.amount)
	w.Append("kind", t.Kind())
	return w.MarshalJSON()
}

var _ json.Marshaler = Transaction{}
