package renderer

import (
	"os"
	"time"

	"github.com/etnz/ledger"
)

const (
	descriptionWidth = 30
	vendorWidth      = 20
	ellipsis         = "..."
)

// EnvTestingNow names the variable that freezes Now, in the "2006-01-02 15:04:05" layout.
const EnvTestingNow = "LGR_TESTING_NOW"

// Now is the current time used in reports and new transactions.
// It can be frozen through the environment so that documentation examples are stable.
func Now() time.Time {
	if v := os.Getenv(EnvTestingNow); v != "" {
		t, err := time.ParseInLocation("2006-01-02 15:04:05", v, time.Local)
		if err != nil {
			panic(err)
		}
		return t
	}
	return time.Now()
}

// Report is the display model of a list of transactions.
type Report struct {
	Title     string
	Generated time.Time
	Rows      []Row
	Summary   ledger.Summary
}

// Row holds the display strings of a single transaction.
type Row struct {
	Date        string
	Time        string
	Description string
	Vendor      string
	Amount      string

	tx ledger.Transaction
}

// NewReport builds the report of txs, kept in the given order.
func NewReport(title string, txs []ledger.Transaction) *Report {
	r := &Report{
		Title:     title,
		Generated: Now(),
		Rows:      make([]Row, 0, len(txs)),
		Summary:   ledger.Summarize(txs),
	}
	for _, tx := range txs {
		r.Rows = append(r.Rows, newRow(tx))
	}
	return r
}

func newRow(tx ledger.Transaction) Row {
	return Row{
		Date:        tx.Date().String(),
		Time:        tx.Time().String(),
		Description: truncate(tx.Description(), descriptionWidth),
		Vendor:      truncate(tx.Vendor(), vendorWidth),
		Amount:      tx.Amount().String(),
		tx:          tx,
	}
}

// truncate shortens s to width runes, the last three being an ellipsis.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-len(ellipsis)]) + ellipsis
}
