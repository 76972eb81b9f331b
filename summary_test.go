package ledger

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSummarize(t *testing.T) {
	txs := []Transaction{
		tx(t, "2024-03-10", "10:00:00", "A", "Acme", 100),
		tx(t, "2024-03-09", "10:00:00", "B", "Acme", -20.25),
		tx(t, "2024-03-08", "10:00:00", "C", "Zeta", 50.1),
		tx(t, "2024-03-07", "10:00:00", "D", "Zeta", -0.01),
	}
	want := Summary{
		Count:    4,
		Total:    A(129.84),
		Deposits: Tally{Count: 2, Sum: A(150.1)},
		Payments: Tally{Count: 2, Sum: A(-20.26)},
	}
	if diff := cmp.Diff(want, Summarize(txs), amountCmp); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Count != 0 || !s.Total.IsZero() || s.Deposits.Count != 0 || s.Payments.Count != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero", s)
	}
}

// TestSummarize_Partition checks that deposits and payments add up to the total for every report.
func TestSummarize_Partition(t *testing.T) {
	today := NewDate(2024, 3, 15)
	txs := sample(t)
	results := map[string][]Transaction{
		"all":      txs,
		"mtd":      MonthToDate(txs, today),
		"ytd":      YearToDate(txs, today),
		"deposits": Deposits(txs),
		"payments": Payments(txs),
		"acme":     ByVendor(txs, "acme"),
	}
	for name, res := range results {
		s := Summarize(res)
		if s.Deposits.Count+s.Payments.Count != s.Count {
			t.Errorf("%s: %d deposits + %d payments != %d", name, s.Deposits.Count, s.Payments.Count, s.Count)
		}
		if got := s.Deposits.Sum.Add(s.Payments.Sum); !got.Equal(s.Total) {
			t.Errorf("%s: %v + %v != %v", name, s.Deposits.Sum, s.Payments.Sum, s.Total)
		}
	}
}
