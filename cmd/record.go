package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/renderer"
	"github.com/google/subcommands"
)

// recordFlags are the flags shared by the deposit and payment commands.
type recordFlags struct {
	description string
	vendor      string
	amount      string
}

func (r *recordFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.description, "d", "", "Description of the transaction")
	f.StringVar(&r.vendor, "vendor", "", "Vendor, payer or payee")
	f.StringVar(&r.amount, "a", "", "Amount, a positive decimal number such as 42.10")
}

// record builds a transaction dated now with newTx and appends it to the ledger.
func (r *recordFlags) record(newTx func(time.Time, string, string, ledger.Amount) (ledger.Transaction, error)) subcommands.ExitStatus {
	e, l, status := open()
	if status != subcommands.ExitSuccess {
		return status
	}

	amount, err := ledger.ParseAmount(r.amount)
	if err != nil {
		return e.fail(invalid("amount", r.amount, err))
	}
	tx, err := newTx(renderer.Now(), r.description, r.vendor, amount)
	if err != nil {
		return e.fail(err)
	}
	if err := e.store.Record(l, tx); err != nil {
		return e.fail(err)
	}

	kind := "Deposit"
	if tx.IsPayment() {
		kind = "Payment"
	}
	fmt.Fprintf(stdout, "%s recorded in %s: %s\n", kind, e.store.Path(), tx)
	return subcommands.ExitSuccess
}

// --- Deposit Command ---

type depositCmd struct{ recordFlags }

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record money received" }
func (*depositCmd) Usage() string {
	return `lgr deposit -d <description> -vendor <payer> -a <amount>

  Records a deposit dated now. The amount must be positive.
`
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(ledger.NewDeposit)
}

// --- Payment Command ---

type paymentCmd struct{ recordFlags }

func (*paymentCmd) Name() string     { return "payment" }
func (*paymentCmd) Synopsis() string { return "record money spent" }
func (*paymentCmd) Usage() string {
	return `lgr payment -d <description> -vendor <payee> -a <amount>

  Records a payment dated now. The amount is entered positive, it is
  recorded as a negative amount in the ledger.
`
}

func (c *paymentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(ledger.NewPayment)
}
