package renderer

import (
	"encoding/json"
	"io"
	"time"

	"github.com/etnz/ledger"
)

// jsonReport is the JSON document of a report. Transactions are not truncated.
type jsonReport struct {
	Title        string               `json:"title"`
	Generated    time.Time            `json:"generated"`
	Transactions []ledger.Transaction `json:"transactions"`
	Summary      ledger.Summary       `json:"summary"`
}

// JSON writes the report as an indented JSON document to w.
func JSON(w io.Writer, r *Report) error {
	doc := jsonReport{
		Title:        r.Title,
		Generated:    r.Generated,
		Transactions: make([]ledger.Transaction, 0, len(r.Rows)),
		Summary:      r.Summary,
	}
	for _, row := range r.Rows {
		doc.Transactions = append(doc.Transactions, row.tx)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
