package ledger

import (
	"fmt"
	"io"
	"strings"
)

// Separator separates the fields of a ledger line.
const Separator = "|"

// Header is the first line of a ledger file.
const Header = "date|time|description|vendor|amount"

// fieldCount is the number of fields in a ledger line.
const fieldCount = 5

// EncodeTransaction returns the ledger line of a transaction, without line terminator:
//
//	date|time|description|vendor|amount
func EncodeTransaction(tx Transaction) string {
	return strings.Join([]string{
		tx.date.String(),
		tx.time.String(),
		tx.description,
		tx.vendor,
		tx.amount.String(),
	}, Separator)
}

// WriteTransaction writes the ledger line of a transaction followed by a newline.
func WriteTransaction(w io.Writer, tx Transaction) error {
	if _, err := io.WriteString(w, EncodeTransaction(tx)+"\n"); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// DecodeTransaction parses a ledger line. Any failure is reported as a *FormatError.
func DecodeTransaction(line string) (Transaction, error) {
	tx, err := decodeTransaction(strings.TrimSuffix(line, "\r"))
	if err != nil {
		return Transaction{}, &FormatError{Text: line, Err: err}
	}
	return tx, nil
}

func decodeTransaction(line string) (Transaction, error) {
	parts := strings.Split(line, Separator)
	if len(parts) != fieldCount {
		return Transaction{}, fmt.Errorf("got %d fields, want %d", len(parts), fieldCount)
	}

	on, err := DecodeDate(parts[0])
	if err != nil {
		return Transaction{}, err
	}
	at, err := DecodeClock(parts[1])
	if err != nil {
		return Transaction{}, err
	}
	amount, err := DecodeAmount(parts[4])
	if err != nil {
		return Transaction{}, err
	}
	return NewTransaction(on, at, parts[2], parts[3], amount)
}
