package ledger

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// txCmp compares transactions field by field.
var txCmp = cmp.Comparer(func(a, b Transaction) bool { return a.Equal(b) })

// amountCmp compares amounts by value.
var amountCmp = cmp.Comparer(func(a, b Amount) bool { return a.Equal(b) })

// tx is a helper for test to create a transaction from literals, it fails the test on invalid input.
func tx(t *testing.T, on, at, description, vendor string, amount float64) Transaction {
	t.Helper()
	d, err := DecodeDate(on)
	if err != nil {
		t.Fatalf("DecodeDate(%q) failed: %v", on, err)
	}
	c, err := DecodeClock(at)
	if err != nil {
		t.Fatalf("DecodeClock(%q) failed: %v", at, err)
	}
	res, err := NewTransaction(d, c, description, vendor, A(amount))
	if err != nil {
		t.Fatalf("NewTransaction(%s, %s, %q, %q, %v) failed: %v", on, at, description, vendor, amount, err)
	}
	return res
}

func ptr[T any](v T) *T { return &v }
