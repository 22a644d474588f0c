package cmd

import (
	"flag"
	"io"

	"github.com/etnz/tradejournal/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the commands of c and their flags for shell completion.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		fs := flag.NewFlagSet(sub.Name(), flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		sub.SetFlags(fs)
		cmd := &complete.Command{Flags: flagPredictors(fs)}
		if sub.Name() == "topic" {
			topics, _ := docs.GetAllTopics()
			cmd.Args = predict.Set(append(topics, "*"))
		}
		root.Sub[sub.Name()] = cmd
	})
	return root
}

// flagPredictors predicts file names for the flags taking a file, no value for
// boolean flags, anything otherwise.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	predictors := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			predictors[f.Name] = predict.Nothing
			return
		}
		switch f.Name {
		case "f":
			predictors[f.Name] = predict.Files("*")
		case "o", "charts":
			predictors[f.Name] = predict.Files("*.xlsx")
		case "by":
			predictors[f.Name] = predict.Set{"day", "week", "month", "quarter", "year"}
		default:
			predictors[f.Name] = predict.Something
		}
	})
	return predictors
}
