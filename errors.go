package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatError reports a ledger line that cannot be decoded into a Transaction.
type FormatError struct {
	Line int    // 1-based line number in the ledger file, 0 when unknown.
	Text string // the offending line.
	Err  error
}

func (e *FormatError) Error() string {
	text := e.Text
	if len(text) > maxQuotedText {
		text = strings.ToValidUTF8(text[:maxQuotedText], "") + "..."
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid transaction %q: %v", e.Line, text, e.Err)
	}
	return fmt.Sprintf("invalid transaction %q: %v", text, e.Err)
}

// maxQuotedText is the number of bytes of an invalid line quoted in its error.
const maxQuotedText = 120

func (e *FormatError) Unwrap() error { return e.Err }

// PersistenceError reports a failure to create, read or write the ledger file.
type PersistenceError struct {
	Op   string // "create", "open", "read", "write"...
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("cannot %s ledger file %q: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ValidationError reports an invalid user input, either when building a
// Transaction or when parsing search criteria.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsPersistence reports whether err is, or wraps, a *PersistenceError.
func IsPersistence(err error) bool {
	var p *PersistenceError
	return errors.As(err, &p)
}

// fromValidator converts the validator failures into ValidationErrors, joined.
func fromValidator(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var errs error
	for _, fe := range verrs {
		errs = errors.Join(errs, &ValidationError{
			Field:  strings.ToLower(fe.Field()),
			Value:  fmt.Sprint(fe.Value()),
			Reason: reason(fe.Tag()),
		})
	}
	return errs
}

func reason(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "singleline":
		return fmt.Sprintf("must not contain %q or line breaks", Separator)
	default:
		return "fails " + tag
	}
}
