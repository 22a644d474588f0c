// Package cmd implements the tj command line commands.
package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tradejournal"
	"github.com/etnz/tradejournal/config"
	"github.com/etnz/tradejournal/source"
	"github.com/etnz/tradejournal/trace"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")

	c.Register(&statsCmd{}, "views")
	c.Register(&sizesCmd{}, "views")
	c.Register(&monthlyCmd{}, "views")
	c.Register(&daysCmd{}, "views")
	c.Register(&pairsCmd{}, "views")
	c.Register(&cumulativeCmd{}, "views")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var tradesFile = flag.String("f", "", "trades file, overrides $TJ_TRADES_FILE (default Trades.csv)")

// Verbose enables debug logs.
var Verbose = flag.Bool("v", false, "verbose logging")

// where commands print, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// setup reads the configuration, the command line having the last word, and
// sets up logging and tracing.
func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if *tradesFile != "" {
		cfg.TradesFile = *tradesFile
	}

	level := cfg.Level()
	if *Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	if err := trace.Init(stderr, cfg.Trace); err != nil {
		return nil, fmt.Errorf("could not start tracing: %w", err)
	}
	return cfg, nil
}

// run sets up the command, loads the trades file and runs body.
// Errors are printed prefixed by the stage that failed.
func run(ctx context.Context, name string, body func(ctx context.Context, cfg *config.Config, j *tradejournal.Journal) error) subcommands.ExitStatus {
	cfg, err := setup()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer trace.Shutdown(ctx)

	ctx, span := trace.StartSpan(ctx, name)
	defer span.End()

	j, err := load(ctx, cfg)
	if err == nil {
		err = body(ctx, cfg, j)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// load opens the configured trades file and loads it.
func load(ctx context.Context, cfg *config.Config) (*tradejournal.Journal, error) {
	var j *tradejournal.Journal
	err := trace.Stage(ctx, "load", func(ctx context.Context) error {
		src, err := source.Open(cfg.TradesFile, cfg.SourceOptions())
		if err != nil {
			return err
		}
		j = tradejournal.NewJournal(src, cfg.Currency)
		return j.Load()
	})
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return j, nil
}

// compute runs f in the aggregate stage.
func compute[T any](ctx context.Context, f func() (T, error)) (T, error) {
	var v T
	err := trace.Stage(ctx, "aggregate", func(context.Context) error {
		var err error
		v, err = f()
		return err
	})
	if err != nil {
		return v, fmt.Errorf("aggregate: %w", err)
	}
	return v, nil
}

// output holds the flags of the commands printing a report.
type output struct {
	json bool
	raw  bool
}

func (o *output) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&o.json, "json", false, "print as JSON")
	f.BoolVar(&o.raw, "raw", false, "print markdown without terminal formatting")
}

// print writes v in the report stage, as JSON or as the markdown rendered by md.
func (o *output) print(ctx context.Context, v any, md func() string) error {
	err := trace.Stage(ctx, "report", func(context.Context) error {
		switch {
		case o.json:
			enc := json.NewEncoder(stdout)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		case o.raw:
			_, err := io.WriteString(stdout, md())
			return err
		default:
			printMarkdown(md())
			return nil
		}
	})
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

// printMarkdown renders markdown for the terminal, or prints it as is when it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	slog.Debug("markdown rendering failed", "error", err)
	fmt.Fprint(stdout, md)
}
