package ledger

import (
	"fmt"
	"strings"
)

// Predicate selects transactions.
type Predicate func(Transaction) bool

// And returns a Predicate that is true when all preds are. And() is always true.
func And(preds ...Predicate) Predicate {
	return func(tx Transaction) bool {
		for _, p := range preds {
			if !p(tx) {
				return false
			}
		}
		return true
	}
}

// Filter returns the transactions matching p, in their original order.
// The input is never modified.
func Filter(txs []Transaction, p Predicate) []Transaction {
	res := make([]Transaction, 0)
	for _, tx := range txs {
		if p(tx) {
			res = append(res, tx)
		}
	}
	return res
}

// OnOrAfter selects transactions dated d or later.
func OnOrAfter(d Date) Predicate {
	return func(tx Transaction) bool { return !tx.date.Before(d) }
}

// OnOrBefore selects transactions dated d or earlier.
func OnOrBefore(d Date) Predicate {
	return func(tx Transaction) bool { return !tx.date.After(d) }
}

// Within selects transactions dated within r, boundaries included.
func Within(r Range) Predicate {
	return func(tx Transaction) bool { return r.Contains(tx.date) }
}

// VendorContains selects transactions whose vendor contains needle, ignoring case.
func VendorContains(needle string) Predicate {
	needle = strings.ToLower(needle)
	return func(tx Transaction) bool { return strings.Contains(strings.ToLower(tx.vendor), needle) }
}

// DescriptionContains selects transactions whose description contains needle, ignoring case.
func DescriptionContains(needle string) Predicate {
	needle = strings.ToLower(needle)
	return func(tx Transaction) bool { return strings.Contains(strings.ToLower(tx.description), needle) }
}

// AmountAtLeast selects transactions whose signed amount is min or more.
func AmountAtLeast(min Amount) Predicate {
	return func(tx Transaction) bool { return tx.amount.GreaterThanOrEqual(min) }
}

// AmountAtMost selects transactions whose signed amount is max or less.
func AmountAtMost(max Amount) Predicate {
	return func(tx Transaction) bool { return tx.amount.LessThanOrEqual(max) }
}

// IsDeposit selects deposits.
func IsDeposit(tx Transaction) bool { return tx.IsDeposit() }

// IsPayment selects payments.
func IsPayment(tx Transaction) bool { return tx.IsPayment() }

// InRange returns the transactions dated within r.
func InRange(txs []Transaction, r Range) []Transaction { return Filter(txs, Within(r)) }

// MonthToDate returns the transactions from the first day of today's month up to today.
func MonthToDate(txs []Transaction, today Date) []Transaction {
	return InRange(txs, Monthly.ToDate(today))
}

// PreviousMonth returns the transactions of the whole calendar month before today's.
func PreviousMonth(txs []Transaction, today Date) []Transaction {
	return InRange(txs, Monthly.Previous(today))
}

// YearToDate returns the transactions from January 1st of today's year up to today.
func YearToDate(txs []Transaction, today Date) []Transaction {
	return InRange(txs, Yearly.ToDate(today))
}

// PreviousYear returns the transactions of the whole calendar year before today's.
func PreviousYear(txs []Transaction, today Date) []Transaction {
	return InRange(txs, Yearly.Previous(today))
}

// ByVendor returns the transactions whose vendor contains needle, ignoring case.
func ByVendor(txs []Transaction, needle string) []Transaction {
	return Filter(txs, VendorContains(needle))
}

// Deposits returns only the deposits.
func Deposits(txs []Transaction) []Transaction { return Filter(txs, IsDeposit) }

// Payments returns only the payments.
func Payments(txs []Transaction) []Transaction { return Filter(txs, IsPayment) }

// Report identifies one of the canned date-window reports.
type Report int

const (
	MonthToDateReport Report = iota
	PreviousMonthReport
	YearToDateReport
	PreviousYearReport
)

// Reports lists all canned reports.
var Reports = []Report{MonthToDateReport, PreviousMonthReport, YearToDateReport, PreviousYearReport}

func (r Report) String() string {
	switch r {
	case MonthToDateReport:
		return "mtd"
	case PreviousMonthReport:
		return "prev-month"
	case YearToDateReport:
		return "ytd"
	case PreviousYearReport:
		return "prev-year"
	default:
		return fmt.Sprintf("report(%d)", int(r))
	}
}

// Title returns the display title of the report.
func (r Report) Title() string {
	switch r {
	case MonthToDateReport:
		return "Month To Date"
	case PreviousMonthReport:
		return "Previous Month"
	case YearToDateReport:
		return "Year To Date"
	case PreviousYearReport:
		return "Previous Year"
	default:
		return r.String()
	}
}

// Range returns the date window of the report for the reference date today.
func (r Report) Range(today Date) Range {
	switch r {
	case MonthToDateReport:
		return Monthly.ToDate(today)
	case PreviousMonthReport:
		return Monthly.Previous(today)
	case YearToDateReport:
		return Yearly.ToDate(today)
	case PreviousYearReport:
		return Yearly.Previous(today)
	default:
		panic("unknown report " + r.String())
	}
}

// Apply runs the report over txs for the reference date today.
func (r Report) Apply(txs []Transaction, today Date) []Transaction {
	return InRange(txs, r.Range(today))
}

// ParseReport parses a report name such as "mtd" or "previous-year".
func ParseReport(s string) (Report, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mtd", "month-to-date", "month":
		return MonthToDateReport, nil
	case "prev-month", "previous-month", "last-month":
		return PreviousMonthReport, nil
	case "ytd", "year-to-date", "year":
		return YearToDateReport, nil
	case "prev-year", "previous-year", "last-year":
		return PreviousYearReport, nil
	default:
		return 0, &ValidationError{Field: "report", Value: s, Reason: "want one of mtd, prev-month, ytd, prev-year"}
	}
}
