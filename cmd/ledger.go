package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/ledger"
	"github.com/google/subcommands"
)

type ledgerCmd struct {
	deposits bool
	payments bool
	json     bool
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "list the transactions, newest first" }
func (*ledgerCmd) Usage() string {
	return `lgr ledger [-deposits | -payments] [-json]

  Lists all the transactions of the ledger, newest first, or only the
  deposits, or only the payments.
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.deposits, "deposits", false, "Show deposits only")
	f.BoolVar(&c.payments, "payments", false, "Show payments only")
	f.BoolVar(&c.json, "json", false, "Print the report as JSON")
}

func (c *ledgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.deposits && c.payments {
		fmt.Fprintln(stderr, "Error: -deposits and -payments flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	e, l, status := open()
	if status != subcommands.ExitSuccess {
		return status
	}

	txs, title := l.Transactions(), "All Transactions"
	switch {
	case c.deposits:
		txs, title = ledger.Deposits(txs), "Deposits"
	case c.payments:
		txs, title = ledger.Payments(txs), "Payments"
	}
	return e.render(title, txs, c.json)
}
