package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	report string
	on     string
	json   bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "run a canned report: month or year, to date or previous" }
func (*reportCmd) Usage() string {
	return `lgr report -r <mtd|prev-month|ytd|prev-year> [-on <date>] [-json]

  Lists the transactions of the current month or year up to today, or of
  the whole previous month or year.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.report, "r", "mtd", "Report to run: mtd, prev-month, ytd or prev-year")
	f.StringVar(&c.on, "on", "", "Reference date of the report (defaults to today). See 'lgr topic search' for date formats.")
	f.BoolVar(&c.json, "json", false, "Print the report as JSON")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, l, status := open()
	if status != subcommands.ExitSuccess {
		return status
	}

	report, err := ledger.ParseReport(c.report)
	if err != nil {
		return e.fail(err)
	}
	today := ledger.DateOf(renderer.Now())
	if c.on != "" {
		if today, err = ledger.ParseDate(c.on, today); err != nil {
			return e.fail(invalid("date", c.on, err))
		}
	}

	title := fmt.Sprintf("%s (%s)", report.Title(), report.Range(today))
	return e.render(title, report.Apply(l.Transactions(), today), c.json)
}
