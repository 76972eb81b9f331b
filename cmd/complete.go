package cmd

import (
	"flag"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete runs the shell completion for the program name when the shell asked for it
// (COMP_LINE is set) and exits. It returns immediately otherwise.
func Complete(name string) {
	complete.Complete(name, completion())
}

// completion builds the completion tree of the application from the registered commands and their flags.
func completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, sc := range commands {
		fs := flag.NewFlagSet(sc.cmd.Name(), flag.ContinueOnError)
		sc.cmd.SetFlags(fs)
		root.Sub[sc.cmd.Name()] = &complete.Command{Flags: flagPredictors(fs)}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(append(topics, "readme"))
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{}
	}
	return root
}

// flagPredictors returns a predictor for every flag of fs.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	reports := make([]string, 0, len(ledger.Reports))
	for _, r := range ledger.Reports {
		reports = append(reports, r.String())
	}

	res := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch f.Name {
		case "ledger-file":
			res[f.Name] = predict.Files("*.csv")
		case "currency":
			res[f.Name] = predict.Set{"USD", "EUR", "GBP", "CHF", "JPY", "CAD"}
		case "r":
			res[f.Name] = predict.Set(reports)
		default:
			if isBool(f) {
				res[f.Name] = predict.Nothing
			} else {
				res[f.Name] = predict.Something
			}
		}
	})
	return res
}

// isBool reports whether f is a boolean flag, that takes no value.
func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
