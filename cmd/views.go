package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tradejournal"
	"github.com/etnz/tradejournal/config"
	"github.com/etnz/tradejournal/date"
	"github.com/etnz/tradejournal/renderer"
	"github.com/google/subcommands"
)

// view prints a single view of the journal.
func view[T any](ctx context.Context, name string, out *output, get func(j *tradejournal.Journal, cfg *config.Config) (T, error), md func(T) string) subcommands.ExitStatus {
	return run(ctx, name, func(ctx context.Context, cfg *config.Config, j *tradejournal.Journal) error {
		v, err := compute(ctx, func() (T, error) { return get(j, cfg) })
		if err != nil {
			return err
		}
		return out.print(ctx, v, func() string { return md(v) })
	})
}

type statsCmd struct{ out output }

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display overall trade statistics" }
func (*statsCmd) Usage() string {
	return `tj stats [-json] [-raw]

  Displays the number of trades, wins and losses, the win rate, the total and average P&L.
`
}
func (c *statsCmd) SetFlags(f *flag.FlagSet) { c.out.SetFlags(f) }
func (c *statsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return view(ctx, c.Name(), &c.out, func(j *tradejournal.Journal, _ *config.Config) (tradejournal.Stats, error) {
		return j.Stats()
	}, renderer.StatsMarkdown)
}

type sizesCmd struct{ out output }

func (*sizesCmd) Name() string     { return "sizes" }
func (*sizesCmd) Synopsis() string { return "display the impact of trade size on P&L" }
func (*sizesCmd) Usage() string {
	return `tj sizes [-json] [-raw]

  Displays the average P&L and the number of trades of each trade size.
`
}
func (c *sizesCmd) SetFlags(f *flag.FlagSet) { c.out.SetFlags(f) }
func (c *sizesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return view(ctx, c.Name(), &c.out, func(j *tradejournal.Journal, _ *config.Config) ([]tradejournal.SizeSummary, error) {
		return j.Sizes()
	}, renderer.SizesMarkdown)
}

type monthlyCmd struct {
	out output
	by  string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the monthly performance" }
func (*monthlyCmd) Usage() string {
	return `tj monthly [-by <period>] [-json] [-raw]

  Displays the total and average P&L, the number of trades and the win rate of each month.

  -by groups the trades by day, week, month, quarter or year instead. Weeks
  start on Monday and are labelled with their ISO week number.
`
}
func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	c.out.SetFlags(f)
	f.StringVar(&c.by, "by", "month", "period to group trades by: day, week, month, quarter or year")
}
func (c *monthlyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := date.ParsePeriod(c.by)
	if err != nil {
		fmt.Fprintf(stderr, "Error: invalid -by: %v\n", err)
		return subcommands.ExitUsageError
	}
	if p == date.Monthly {
		return view(ctx, c.Name(), &c.out, func(j *tradejournal.Journal, _ *config.Config) ([]tradejournal.MonthSummary, error) {
			return j.Monthly()
		}, renderer.MonthlyMarkdown)
	}
	return view(ctx, c.Name(), &c.out, func(j *tradejournal.Journal, _ *config.Config) ([]tradejournal.PeriodSummary, error) {
		return j.Periodic(p)
	}, func(periods []tradejournal.PeriodSummary) string { return renderer.PeriodicMarkdown(p, periods) })
}

type daysCmd struct {
	out output
	top int
}

func (*daysCmd) Name() string     { return "days" }
func (*daysCmd) Synopsis() string { return "display the best performing days" }
func (*daysCmd) Usage() string {
	return `tj days [-top <n>] [-json] [-raw]

  Displays the days with the highest total P&L, best first.
`
}
func (c *daysCmd) SetFlags(f *flag.FlagSet) {
	c.out.SetFlags(f)
	f.IntVar(&c.top, "top", 0, "number of days (default $TJ_TOP_DAYS or 5)")
}
func (c *daysCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var n int
	return view(ctx, c.Name(), &c.out, func(j *tradejournal.Journal, cfg *config.Config) ([]tradejournal.DaySummary, error) {
		n = topDays(c.top, cfg)
		return j.BestDays(n)
	}, func(days []tradejournal.DaySummary) string { return renderer.BestDaysMarkdown(days, n) })
}

type pairsCmd struct{ out output }

func (*pairsCmd) Name() string     { return "pairs" }
func (*pairsCmd) Synopsis() string { return "display the symbols ranked by total P&L" }
func (*pairsCmd) Usage() string {
	return `tj pairs [-json] [-raw]

  Displays every symbol with its total P&L, most profitable first.
`
}
func (c *pairsCmd) SetFlags(f *flag.FlagSet) { c.out.SetFlags(f) }
func (c *pairsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return view(ctx, c.Name(), &c.out, func(j *tradejournal.Journal, _ *config.Config) ([]tradejournal.PairSummary, error) {
		return j.Pairs()
	}, renderer.PairsMarkdown)
}

type cumulativeCmd struct{ out output }

func (*cumulativeCmd) Name() string     { return "cumulative" }
func (*cumulativeCmd) Synopsis() string { return "display the cumulative P&L after each trade" }
func (*cumulativeCmd) Usage() string {
	return `tj cumulative [-json] [-raw]

  Displays the running P&L in exit time order.
`
}
func (c *cumulativeCmd) SetFlags(f *flag.FlagSet) { c.out.SetFlags(f) }
func (c *cumulativeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return view(ctx, c.Name(), &c.out, func(j *tradejournal.Journal, _ *config.Config) ([]tradejournal.CumulativePoint, error) {
		return j.Cumulative()
	}, renderer.CumulativeMarkdown)
}

// topDays returns the flag value if set, the configured one otherwise.
func topDays(flagValue int, cfg *config.Config) int {
	if flagValue > 0 {
		return flagValue
	}
	return cfg.TopDays
}
