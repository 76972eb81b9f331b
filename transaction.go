package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Transaction is a single, immutable deposit or payment recorded in the ledger.
//
// Its zero value is not a valid transaction; use NewTransaction, NewDeposit or NewPayment.
type Transaction struct {
	date        Date
	time        Clock
	description string
	vendor      string
	amount      Amount // positive for deposits, negative for payments, never zero.
}

// textFields holds the free-text fields for validation.
type textFields struct {
	Description string `validate:"required,singleline"`
	Vendor      string `validate:"required,singleline"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// the ledger file has no escaping: a separator or a line break would corrupt the line.
	if err := v.RegisterValidation("singleline", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), Separator+"\r\n")
	}); err != nil {
		panic(err)
	}
	return v
}

// NewTransaction validates and creates a transaction.
//
// Surrounding white space is trimmed from description and vendor. Both are
// required and must not contain the field separator or line breaks. The
// amount is rounded to two fractional digits and must not be zero.
// Failures are reported as *ValidationError (joined when several).
func NewTransaction(on Date, at Clock, description, vendor string, amount Amount) (Transaction, error) {
	f := textFields{
		Description: strings.TrimSpace(description),
		Vendor:      strings.TrimSpace(vendor),
	}
	var errs error
	if err := validate.Struct(f); err != nil {
		errs = fromValidator(err)
	}
	amount = A(amount.value)
	if amount.IsZero() {
		errs = errors.Join(errs, &ValidationError{Field: "amount", Value: amount.String(), Reason: "must not be zero"})
	}
	if errs != nil {
		return Transaction{}, errs
	}
	return Transaction{
		date:        on,
		time:        at,
		description: f.Description,
		vendor:      f.Vendor,
		amount:      amount,
	}, nil
}

// NewDeposit creates a deposit at the given instant. The amount must be strictly positive.
func NewDeposit(at time.Time, description, vendor string, amount Amount) (Transaction, error) {
	if !A(amount.value).IsPositive() {
		return Transaction{}, &ValidationError{Field: "amount", Value: amount.String(), Reason: "deposit amount must be positive"}
	}
	return NewTransaction(DateOf(at), ClockOf(at), description, vendor, amount)
}

// NewPayment creates a payment at the given instant. The amount is the
// strictly positive sum paid, it is recorded as a negative amount.
func NewPayment(at time.Time, description, vendor string, amount Amount) (Transaction, error) {
	if !A(amount.value).IsPositive() {
		return Transaction{}, &ValidationError{Field: "amount", Value: amount.String(), Reason: "payment amount must be positive"}
	}
	return NewTransaction(DateOf(at), ClockOf(at), description, vendor, amount.Neg())
}

// Date returns the day of the transaction.
func (t Transaction) Date() Date { return t.date }

// Time returns the time of day of the transaction.
func (t Transaction) Time() Clock { return t.time }

func (t Transaction) Description() string { return t.description }
func (t Transaction) Vendor() string      { return t.vendor }
func (t Transaction) Amount() Amount      { return t.amount }

// IsDeposit reports whether money came in.
func (t Transaction) IsDeposit() bool { return t.amount.IsPositive() }

// IsPayment reports whether money went out.
func (t Transaction) IsPayment() bool { return t.amount.IsNegative() }

// Equal reports whether both transactions have the same fields.
func (t Transaction) Equal(x Transaction) bool {
	return t.date == x.date &&
		t.time == x.time &&
		t.description == x.description &&
		t.vendor == x.vendor &&
		t.amount.Equal(x.amount)
}

// Compare orders transactions chronologically by (date, time).
// It returns -1 if t happened before x, +1 if after, and 0 for the same second.
func (t Transaction) Compare(x Transaction) int {
	if c := t.date.Compare(x.date); c != 0 {
		return c
	}
	return t.time.Compare(x.time)
}

// String returns the ledger line of the transaction.
func (t Transaction) String() string { return EncodeTransaction(t) }
