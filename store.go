package ledger

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Store persists transactions in a ledger file.
//
// The file is pipe-delimited text with a header line and one transaction per
// line. It is only ever appended to.
type Store struct {
	path string
	log  zerolog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used by the store. The default discards everything.
func WithLogger(log zerolog.Logger) StoreOption {
	return func(s *Store) { s.log = log }
}

// NewStore returns a Store for the ledger file at path. The file is not touched until Load or Append.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{path: path, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("file", path).Logger()
	return s
}

// Path returns the ledger file path.
func (s *Store) Path() string { return s.path }

// Load reads the whole ledger file.
//
// If the file does not exist it is created with only the header line, and an
// empty Ledger is returned. Otherwise each line is decoded independently: the
// first line is skipped if it is exactly the Header, blank lines are ignored,
// and lines that cannot be decoded are dropped and reported in warnings as
// *FormatError. The returned error is a *PersistenceError, in which case the
// ledger is nil.
func (s *Store) Load() (ledger *Ledger, warnings []error, err error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.create(); err != nil {
			return nil, nil, err
		}
		return NewLedger(), nil, nil
	}
	if err != nil {
		return nil, nil, &PersistenceError{Op: "open", Path: s.path, Err: err}
	}
	defer f.Close()

	txs, warnings, err := decodeLedger(f)
	if err != nil {
		return nil, nil, &PersistenceError{Op: "read", Path: s.path, Err: err}
	}
	for _, w := range warnings {
		ev := s.log.Warn()
		var fe *FormatError
		if errors.As(w, &fe) {
			ev = ev.Int("line", fe.Line)
		}
		ev.Err(w).Msg("skipping invalid transaction")
	}
	s.log.Debug().Int("transactions", len(txs)).Int("skipped", len(warnings)).Msg("ledger loaded")
	return NewLedger(txs...), warnings, nil
}

// decodeLedger decodes every line of r, in file order.
//
// Lines have no length limit, so a corrupted line of any size is reported as a
// warning like any other.
func decodeLedger(r io.Reader) (txs []Transaction, warnings []error, err error) {
	reader := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, nil, err
		}
		if line == "" && err == io.EOF {
			break
		}
		lineNo++
		line = strings.TrimSuffix(line, "\n")
		if lineNo == 1 && strings.TrimSuffix(line, "\r") == Header {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue // Skip empty lines
		}
		tx, derr := DecodeTransaction(line)
		if derr != nil {
			var fe *FormatError
			if errors.As(derr, &fe) {
				fe.Line = lineNo
			}
			warnings = append(warnings, derr)
		} else {
			txs = append(txs, tx)
		}
		if err == io.EOF {
			break
		}
	}
	return txs, warnings, nil
}
