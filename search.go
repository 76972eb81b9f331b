package ledger

import (
	"strings"
)

// Search holds the criteria of a custom search.
//
// A nil field imposes no constraint, nor does an empty text. Date and amount
// bounds are inclusive, amounts are compared signed so payments can be
// searched with negative bounds. All criteria must hold.
type Search struct {
	From, To    *Date
	Description *string
	Vendor      *string
	Min, Max    *Amount
}

// Predicate returns the predicate combining all the criteria.
func (s Search) Predicate() Predicate {
	var preds []Predicate
	if s.From != nil {
		preds = append(preds, OnOrAfter(*s.From))
	}
	if s.To != nil {
		preds = append(preds, OnOrBefore(*s.To))
	}
	if s.Description != nil && *s.Description != "" {
		preds = append(preds, DescriptionContains(*s.Description))
	}
	if s.Vendor != nil && *s.Vendor != "" {
		preds = append(preds, VendorContains(*s.Vendor))
	}
	if s.Min != nil {
		preds = append(preds, AmountAtLeast(*s.Min))
	}
	if s.Max != nil {
		preds = append(preds, AmountAtMost(*s.Max))
	}
	return And(preds...)
}

// Filter returns the transactions matching the search, in their original order.
func (s Search) Filter(txs []Transaction) []Transaction { return Filter(txs, s.Predicate()) }

// CustomSearch returns the transactions of txs matching s.
func CustomSearch(txs []Transaction, s Search) []Transaction { return s.Filter(txs) }

// ParseSearch builds Search criteria from raw user input. Blank inputs are
// left unconstrained. Dates accept the same forms as ParseDate, relative
// ones counting from today.
//
// Unparseable dates or amounts, and inverted bounds, are reported as *ValidationError.
func ParseSearch(today Date, from, to, description, vendor, min, max string) (Search, error) {
	var s Search
	var err error
	if s.From, err = optionalDate("start date", from, today); err != nil {
		return Search{}, err
	}
	if s.To, err = optionalDate("end date", to, today); err != nil {
		return Search{}, err
	}
	if s.From != nil && s.To != nil && s.From.After(*s.To) {
		return Search{}, &ValidationError{Field: "date range", Value: from + " " + to, Reason: "start date is after end date"}
	}
	s.Description = optionalText(description)
	s.Vendor = optionalText(vendor)
	if s.Min, err = optionalAmount("minimum amount", min); err != nil {
		return Search{}, err
	}
	if s.Max, err = optionalAmount("maximum amount", max); err != nil {
		return Search{}, err
	}
	if s.Min != nil && s.Max != nil && s.Min.GreaterThan(*s.Max) {
		return Search{}, &ValidationError{Field: "amount range", Value: min + " " + max, Reason: "minimum is greater than maximum"}
	}
	return s, nil
}

func optionalDate(field, str string, today Date) (*Date, error) {
	if strings.TrimSpace(str) == "" {
		return nil, nil
	}
	d, err := ParseDate(str, today)
	if err != nil {
		return nil, &ValidationError{Field: field, Value: str, Reason: DateHint}
	}
	return &d, nil
}

func optionalText(str string) *string {
	str = strings.TrimSpace(str)
	if str == "" {
		return nil
	}
	return &str
}

func optionalAmount(field, str string) (*Amount, error) {
	if strings.TrimSpace(str) == "" {
		return nil, nil
	}
	a, err := ParseAmount(str)
	if err != nil {
		return nil, &ValidationError{Field: field, Value: str, Reason: "not a decimal number"}
	}
	return &a, nil
}
