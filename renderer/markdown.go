package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/ledger"
	md "github.com/nao1215/markdown"
)

// Markdown renders the report as a markdown document, amounts in the totals
// being formatted in currency.
func Markdown(r *Report, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(r.Title)
	if len(r.Rows) == 0 {
		doc.PlainText("No transactions found.")
		return doc.String()
	}

	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, []string{row.Date, row.Time, row.Description, row.Vendor, row.Amount})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Time", "Description", "Vendor", "Amount"},
		Rows:   rows,
	})

	s := r.Summary
	doc.PlainText("")
	doc.PlainText(fmt.Sprintf("Total: %d transactions, Balance: %s", s.Count, Money(s.Total, currency)))
	doc.PlainText("")
	doc.PlainText(fmt.Sprintf("Deposits: %d (%s), Payments: %d (%s)",
		s.Deposits.Count, Money(s.Deposits.Sum, currency),
		s.Payments.Count, Money(s.Payments.Sum, currency)))

	return doc.String()
}

// Money formats an amount in the given currency, like "$1,234.56".
//
// An unknown currency code is appended to the plain amount.
func Money(a ledger.Amount, currency string) string {
	cur := money.GetCurrency(strings.ToUpper(currency))
	if cur == nil {
		return fmt.Sprintf("%s %s", a, currency)
	}
	// to get the currency formatter I need to go through the Money constructor.
	minor := a.Decimal().Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}
