// Package ledger provides the types and functions for keeping a personal
// ledger of deposits and payments. It is designed to be local-first and
// auditable: the whole history lives in a single pipe-delimited text file
// that can be read, diffed and versioned by hand.
//
// The core functionalities include:
//   - Record Model: an immutable Transaction (date, time, description,
//     vendor and a signed two-place Amount, positive for deposits and
//     negative for payments) and its line codec.
//   - Store: loading the ledger file into an ordered, newest-first Ledger
//     while skipping (and reporting) malformed lines, and appending new
//     records without ever rewriting existing content.
//   - Reports: stateless queries over a snapshot of transactions, such as
//     month-to-date, previous month, year-to-date, previous year, vendor
//     search and a multi-criteria custom search.
//   - Summary: counts and sums of a result set, split between deposits and
//     payments.
//
// This package serves as the foundational logic for the `lgr` command-line
// tool. Every report and relative date takes the reference date explicitly,
// so nothing in the package reads the system clock.
package ledger
