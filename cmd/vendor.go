package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/ledger"
	"github.com/google/subcommands"
)

type vendorCmd struct {
	json bool
}

func (*vendorCmd) Name() string     { return "vendor" }
func (*vendorCmd) Synopsis() string { return "list the transactions of a vendor" }
func (*vendorCmd) Usage() string {
	return `lgr vendor [-json] <name>

  Lists the transactions whose vendor contains <name>, ignoring case.
`
}

func (c *vendorCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the report as JSON")
}

func (c *vendorCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.TrimSpace(strings.Join(f.Args(), " "))
	if name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	e, l, status := open()
	if status != subcommands.ExitSuccess {
		return status
	}
	return e.render(fmt.Sprintf("Vendor: %s", name), ledger.ByVendor(l.Transactions(), name), c.json)
}
