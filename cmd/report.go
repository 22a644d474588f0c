package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tradejournal"
	"github.com/etnz/tradejournal/chart"
	"github.com/etnz/tradejournal/config"
	"github.com/etnz/tradejournal/date"
	"github.com/etnz/tradejournal/renderer"
	"github.com/etnz/tradejournal/trace"
	"github.com/google/subcommands"
)

type reportCmd struct {
	out    output
	top    int
	from   string
	to     string
	charts string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the full trade journal report" }
func (*reportCmd) Usage() string {
	return `tj report [-top <n>] [-from <date>] [-to <date>] [-charts <file.xlsx>] [-json] [-raw]

  Displays the data summary, the missing values, the overall statistics, the
  trade size impact, the monthly performance, the best days and the most
  profitable symbols.

  -from and -to (YYYY-MM-DD) restrict the report to the trades closed within
  these dates, boundaries included.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.out.SetFlags(f)
	f.IntVar(&c.top, "top", 0, "number of best days (default $TJ_TOP_DAYS or 5)")
	f.StringVar(&c.from, "from", "", "first exit date of the report")
	f.StringVar(&c.to, "to", "", "last exit date of the report")
	f.StringVar(&c.charts, "charts", "", "also write the chart workbook to this .xlsx file")
}

func (c *reportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, restrict, err := parsePeriod(c.from, c.to)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return run(ctx, c.Name(), func(ctx context.Context, cfg *config.Config, j *tradejournal.Journal) error {
		if restrict {
			if err := j.Restrict(period); err != nil {
				return fmt.Errorf("aggregate: %w", err)
			}
		}
		n := topDays(c.top, cfg)
		report, err := compute(ctx, func() (*tradejournal.Report, error) { return j.Report(n) })
		if err != nil {
			return err
		}
		if err := c.out.print(ctx, report, func() string { return renderer.Markdown(report) }); err != nil {
			return err
		}
		if c.charts == "" {
			return nil
		}
		return writeCharts(ctx, c.charts, report)
	})
}

// parsePeriod parses the -from and -to flags; restrict is false when both are empty.
func parsePeriod(from, to string) (r date.Range, restrict bool, err error) {
	if from == "" && to == "" {
		return r, false, nil
	}
	r = date.Between(date.New(1, 1, 1), date.New(9999, 12, 31))
	if from != "" {
		if r.From, err = date.Parse(from); err != nil {
			return r, false, fmt.Errorf("invalid -from date: %w", err)
		}
	}
	if to != "" {
		if r.To, err = date.Parse(to); err != nil {
			return r, false, fmt.Errorf("invalid -to date: %w", err)
		}
	}
	if r.To.Before(r.From) {
		return r, false, fmt.Errorf("-to %s is before -from %s", r.To, r.From)
	}
	return r, true, nil
}

// writeCharts writes the chart workbook in the chart stage.
func writeCharts(ctx context.Context, path string, report *tradejournal.Report) error {
	if err := trace.Stage(ctx, "chart", func(context.Context) error { return chart.Write(path, report) }); err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	return nil
}

type chartCmd struct {
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "write the cumulative and monthly P&L charts" }
func (*chartCmd) Usage() string {
	return `tj chart -o <file.xlsx>

  Writes an Excel workbook with the cumulative P&L line chart and the monthly
  total P&L column chart, next to their data.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "workbook to write (.xlsx)")
}

func (c *chartCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "" {
		fmt.Fprintln(stderr, "Error: -o is required")
		return subcommands.ExitUsageError
	}
	return run(ctx, c.Name(), func(ctx context.Context, cfg *config.Config, j *tradejournal.Journal) error {
		report, err := compute(ctx, func() (*tradejournal.Report, error) { return j.Report(cfg.TopDays) })
		if err != nil {
			return err
		}
		if err := writeCharts(ctx, c.output, report); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Charts written to %s\n", c.output)
		return nil
	})
}
