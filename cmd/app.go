// Package cmd implements the lgr command line application to manage a personal ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, sc := range commands {
		c.Register(sc.cmd, sc.group)
	}
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
}

type command struct {
	cmd   subcommands.Command
	group string
}

// commands lists the application subcommands, it is also used to build the completion tree.
var commands = []command{
	{&depositCmd{}, "record"},
	{&paymentCmd{}, "record"},
	{&ledgerCmd{}, "reports"},
	{&reportCmd{}, "reports"},
	{&vendorCmd{}, "reports"},
	{&searchCmd{}, "reports"},
	{&topicCmd{}, "help"},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile = flag.String("ledger-file", "", "Path to the ledger file (default from config, "+defaultLedgerFile+")")
	currency   = flag.String("currency", "", "Currency used to display totals (default from config, "+defaultCurrency+")")
	verbose    = flag.Bool("v", false, "Verbose logging")
	plain      = flag.Bool("plain", false, "Print raw markdown instead of rendering it")
)

// stdout and stderr are the outputs of the commands, tests replace them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// env holds what every command needs: the resolved settings, a logger and the ledger store.
type env struct {
	settings
	log   zerolog.Logger
	store *ledger.Store
}

// newEnv resolves the configuration and creates the logger and the store.
func newEnv() (*env, error) {
	s, err := loadSettings()
	if err != nil {
		return nil, err
	}
	log := newLogger(stderr, s.Verbose)
	return &env{
		settings: s,
		log:      log,
		store:    ledger.NewStore(s.LedgerFile, ledger.WithLogger(log)),
	}, nil
}

// open creates the environment and loads the ledger.
// Malformed lines have already been logged by the store, they are counted here.
func open() (*env, *ledger.Ledger, subcommands.ExitStatus) {
	e, err := newEnv()
	if err != nil {
		fmt.Fprintf(stderr, "Error reading configuration: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}
	l, warnings, err := e.store.Load()
	if err != nil {
		return e, nil, e.fail(err)
	}
	if len(warnings) > 0 {
		e.log.Warn().Int("skipped", len(warnings)).Msg("some lines of the ledger file could not be read")
	}
	return e, l, subcommands.ExitSuccess
}

// fail logs err and returns the matching exit status.
func (e *env) fail(err error) subcommands.ExitStatus {
	e.log.Error().Err(err).Send()
	return exitStatus(err)
}

// exitStatus maps an error to the process exit status: bad input is a usage error, anything else a failure.
func exitStatus(err error) subcommands.ExitStatus {
	switch {
	case err == nil:
		return subcommands.ExitSuccess
	case ledger.IsValidation(err):
		return subcommands.ExitUsageError
	default:
		return subcommands.ExitFailure
	}
}

// render prints the transactions as a report, in JSON or in markdown.
func (e *env) render(title string, txs []ledger.Transaction, asJSON bool) subcommands.ExitStatus {
	r := renderer.NewReport(title, txs)
	if asJSON {
		if err := renderer.JSON(stdout, r); err != nil {
			return e.fail(fmt.Errorf("cannot write report: %w", err))
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Markdown(r, e.Currency))
	return subcommands.ExitSuccess
}

// invalid reports a malformed user input as a validation error.
func invalid(field, value string, err error) error {
	var ve *ledger.ValidationError
	if errors.As(err, &ve) {
		return err
	}
	return &ledger.ValidationError{Field: field, Value: value, Reason: err.Error()}
}
