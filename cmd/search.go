package cmd

import (
	"context"
	"flag"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/renderer"
	"github.com/google/subcommands"
)

type searchCmd struct {
	from, to    string
	description string
	vendor      string
	min, max    string
	json        bool
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search transactions by date, text and amount" }
func (*searchCmd) Usage() string {
	return `lgr search [-from <date>] [-to <date>] [-desc <text>] [-vendor <text>] [-min <amount>] [-max <amount>] [-json]

  Lists the transactions matching all the given criteria. Omitted criteria
  are ignored. Bounds are inclusive, amounts are signed: payments are negative.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start date, inclusive")
	f.StringVar(&c.to, "to", "", "End date, inclusive")
	f.StringVar(&c.description, "desc", "", "Text the description contains, ignoring case")
	f.StringVar(&c.vendor, "vendor", "", "Text the vendor contains, ignoring case")
	f.StringVar(&c.min, "min", "", "Minimum signed amount, inclusive")
	f.StringVar(&c.max, "max", "", "Maximum signed amount, inclusive")
	f.BoolVar(&c.json, "json", false, "Print the report as JSON")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, l, status := open()
	if status != subcommands.ExitSuccess {
		return status
	}
	s, err := ledger.ParseSearch(ledger.DateOf(renderer.Now()), c.from, c.to, c.description, c.vendor, c.min, c.max)
	if err != nil {
		return e.fail(err)
	}
	return e.render("Custom Search Results", ledger.CustomSearch(l.Transactions(), s), c.json)
}
