package tradejournal

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/etnz/tradejournal/date"
	"github.com/google/go-cmp/cmp"
)

func TestScenario(t *testing.T) {
	rs := mustLoad(t, scenarioCSV)

	stats := rs.Stats()
	if stats.Total != 3 || stats.Wins != 2 || stats.Losses != 1 {
		t.Errorf("Stats() counts = %d/%d/%d, want 3/2/1", stats.Total, stats.Wins, stats.Losses)
	}
	if got, want := stats.WinRate.String(), "66.67%"; got != want {
		t.Errorf("Stats().WinRate = %s, want %s", got, want)
	}
	if !stats.TotalPnL.Equal(USD(75.5)) {
		t.Errorf("Stats().TotalPnL = %v, want %v", stats.TotalPnL, USD(75.5))
	}
	if got, want := stats.AvgPnL.String(), "$25.17"; got != want {
		t.Errorf("Stats().AvgPnL = %s, want %s", got, want)
	}

	var pairs []string
	for _, p := range rs.Pairs() {
		pairs = append(pairs, p.Symbol+" "+p.TotalPnL.String())
	}
	if diff := cmp.Diff([]string{"EURUSD $50.00", "GBPUSD $25.50"}, pairs); diff != "" {
		t.Errorf("Pairs() mismatch (-want +got):\n%s", diff)
	}

	monthly := rs.Monthly()
	if len(monthly) != 2 {
		t.Fatalf("Monthly() = %d rows, want 2", len(monthly))
	}
	for i, want := range []struct {
		month  string
		total  Money
		trades int
	}{
		{"2024-01", USD(50), 2},
		{"2024-02", USD(25.5), 1},
	} {
		got := monthly[i]
		if got.Month != want.month || !got.TotalPnL.Equal(want.total) || got.Trades != want.trades {
			t.Errorf("Monthly()[%d] = %s %v %d, want %s %v %d", i, got.Month, got.TotalPnL, got.Trades, want.month, want.total, want.trades)
		}
	}
	if got := monthly[0].WinRate; !got.Equal(50) {
		t.Errorf("Monthly()[0].WinRate = %v, want 50%%", got)
	}
}

func TestSizes(t *testing.T) {
	rs := records(t,
		trade(t, "2024-01-01T09:00", 10, "2", "A"),
		trade(t, "2024-01-01T10:00", 20, "1", "A"),
		trade(t, "2024-01-01T11:00", -5, "2", "A"),
		trade(t, "2024-01-01T12:00", 0, "1.0", "A"),
	)
	var got []string
	for _, s := range rs.Sizes() {
		got = append(got, fmt.Sprintf("%s %v %d", s.Size, s.AvgPnL, s.Trades))
	}
	// grouping is by verbatim label, in order of first appearance.
	want := []string{"2 $2.50 2", "1 $20.00 1", "1.0 $0.00 1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sizes() mismatch (-want +got):\n%s", diff)
	}
}

func TestCumulative(t *testing.T) {
	rs := records(t,
		trade(t, "2024-01-03T09:00", 5, "1", "A"),
		trade(t, "2024-01-01T09:00", 10, "1", "B"),
		trade(t, "2024-01-03T09:00", -3, "1", "C"),
		trade(t, "2024-01-02T09:00", 1, "1", "D"),
	)
	var got []string
	for _, p := range rs.Cumulative() {
		got = append(got, p.ExitTime.Format("01-02")+" "+p.Cumulative.String())
	}
	want := []string{"01-01 $10.00", "01-02 $11.00", "01-03 $16.00", "01-03 $13.00"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Cumulative() mismatch (-want +got):\n%s", diff)
	}
	// the record set itself is left untouched.
	if first := rs.Trades()[0]; first.Symbol != "A" {
		t.Errorf("Cumulative() reordered the record set: first symbol = %s", first.Symbol)
	}
}

func TestBestDays(t *testing.T) {
	rs := records(t,
		trade(t, "2024-01-05T09:00", 30, "1", "A"),
		trade(t, "2024-01-01T09:00", 10, "1", "A"),
		trade(t, "2024-01-01T15:00", 20, "1", "B"),
		trade(t, "2024-01-03T09:00", 30, "1", "A"),
		trade(t, "2024-01-02T09:00", -40, "1", "A"),
		trade(t, "2024-01-04T09:00", 5, "1", "A"),
		trade(t, "2024-01-06T09:00", 1, "1", "A"),
	)
	days := func(n int) []string {
		var got []string
		for _, d := range rs.BestDays(n) {
			got = append(got, d.Date.String()+" "+d.TotalPnL.String())
		}
		return got
	}

	// equal totals are listed chronologically.
	want := []string{"2024-01-01 $30.00", "2024-01-03 $30.00", "2024-01-05 $30.00", "2024-01-04 $5.00", "2024-01-06 $1.00"}
	if diff := cmp.Diff(want, days(0)); diff != "" {
		t.Errorf("BestDays(0) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want[:2], days(2)); diff != "" {
		t.Errorf("BestDays(2) mismatch (-want +got):\n%s", diff)
	}
	if got := days(100); len(got) != 6 {
		t.Errorf("BestDays(100) = %d days, want 6", len(got))
	}
}

func TestPairs_Ranking(t *testing.T) {
	rs := records(t,
		trade(t, "2024-01-01T09:00", 5, "1", "GBPUSD"),
		trade(t, "2024-01-01T10:00", 10, "1", "EURUSD"),
		trade(t, "2024-01-01T11:00", -5, "1", "USDJPY"),
		trade(t, "2024-01-01T12:00", 5, "1", "AUDUSD"),
		trade(t, "2024-01-01T13:00", -2, "1", "EURUSD"),
		trade(t, "2024-01-01T14:00", 3, "1", "GBPUSD"),
	)
	pairs := rs.Pairs()

	seen := make(map[string]int)
	for i, p := range pairs {
		seen[p.Symbol]++
		if i > 0 && p.TotalPnL.GreaterThan(pairs[i-1].TotalPnL) {
			t.Errorf("Pairs() not sorted at %d: %v > %v", i, p.TotalPnL, pairs[i-1].TotalPnL)
		}
	}
	for _, tr := range rs.Trades() {
		if seen[tr.Symbol] != 1 {
			t.Errorf("symbol %s listed %d times, want 1", tr.Symbol, seen[tr.Symbol])
		}
	}
	var got []string
	for _, p := range pairs {
		got = append(got, p.Symbol)
	}
	// GBPUSD and EURUSD tie at 8 and keep their order of first appearance.
	if diff := cmp.Diff([]string{"GBPUSD", "EURUSD", "AUDUSD", "USDJPY"}, got); diff != "" {
		t.Errorf("Pairs() mismatch (-want +got):\n%s", diff)
	}
}

func TestInvariants(t *testing.T) {
	rs := records(t,
		trade(t, "2024-03-01T09:00", 12.34, "1", "A"),
		trade(t, "2024-01-01T09:00", -0.01, "2", "B"),
		trade(t, "2024-02-01T09:00", 0, "1", "A"),
		trade(t, "2024-02-01T09:00", 1000.5, "3", "C"),
		trade(t, "2024-01-15T09:00", -99.99, "1", "B"),
	)
	stats := rs.Stats()

	if stats.Wins+stats.Losses != stats.Total {
		t.Errorf("wins %d + losses %d != total %d", stats.Wins, stats.Losses, stats.Total)
	}
	if stats.Losses != 3 {
		t.Errorf("Losses = %d, want 3 (zero is a loss)", stats.Losses)
	}

	sum := USD(0)
	for _, tr := range rs.Trades() {
		sum = sum.Add(tr.PnL)
	}
	points := rs.Cumulative()
	if last := points[len(points)-1].Cumulative; !last.Equal(stats.TotalPnL) || !sum.Equal(stats.TotalPnL) {
		t.Errorf("cumulative %v, sum %v, total %v must be equal", last, sum, stats.TotalPnL)
	}
	for i := 1; i < len(points); i++ {
		if points[i].ExitTime.Before(points[i-1].ExitTime) {
			t.Errorf("Cumulative() exit times decrease at %d", i)
		}
	}

	monthlyTotal := USD(0)
	var months []string
	for _, m := range rs.Monthly() {
		monthlyTotal = monthlyTotal.Add(m.TotalPnL)
		months = append(months, m.Month)
	}
	if diff := cmp.Diff([]string{"2024-01", "2024-02", "2024-03"}, months); diff != "" {
		t.Errorf("Monthly() months mismatch (-want +got):\n%s", diff)
	}
	if !monthlyTotal.Equal(stats.TotalPnL) {
		t.Errorf("monthly totals %v != total %v", monthlyTotal, stats.TotalPnL)
	}
}

func TestEmpty(t *testing.T) {
	rs := mustLoad(t, "Entry Time,Exit Time,P&L,Size,Symbol\n")

	want := Stats{TotalPnL: USD(0), AvgPnL: USD(0)}
	got := rs.Stats()
	if got.Total != 0 || got.Wins != 0 || got.Losses != 0 || got.WinRate != 0 {
		t.Errorf("Stats() = %+v, want zero counts", got)
	}
	if !got.TotalPnL.Equal(want.TotalPnL) || !got.AvgPnL.Equal(want.AvgPnL) {
		t.Errorf("Stats() amounts = %v %v, want zero", got.TotalPnL, got.AvgPnL)
	}
	if got.AvgPnL.String() != "$0.00" {
		t.Errorf("Stats().AvgPnL = %s, want $0.00", got.AvgPnL)
	}

	if n := len(rs.Cumulative()); n != 0 {
		t.Errorf("Cumulative() = %d points, want 0", n)
	}
	if v := rs.Sizes(); v == nil || len(v) != 0 {
		t.Errorf("Sizes() = %v, want an empty slice", v)
	}
	if v := rs.Monthly(); v == nil || len(v) != 0 {
		t.Errorf("Monthly() = %v, want an empty slice", v)
	}
	if v := rs.BestDays(5); v == nil || len(v) != 0 {
		t.Errorf("BestDays() = %v, want an empty slice", v)
	}
	if v := rs.Pairs(); v == nil || len(v) != 0 {
		t.Errorf("Pairs() = %v, want an empty slice", v)
	}
}

func TestBetween(t *testing.T) {
	rs := mustLoad(t, scenarioCSV)
	jan := rs.Between(date.NewRange(date.New(2024, time.January, 10), date.Monthly))

	if jan.Len() != 2 {
		t.Fatalf("Between(january).Len() = %d, want 2", jan.Len())
	}
	if !jan.Stats().TotalPnL.Equal(USD(50)) {
		t.Errorf("Between(january).Stats().TotalPnL = %v, want $50.00", jan.Stats().TotalPnL)
	}
	if rs.Len() != 3 {
		t.Errorf("Between() modified the record set")
	}
	if jan.Profile().Rows != 3 {
		t.Errorf("Between() must keep the profile of the loaded table")
	}
}

func TestPeriodic(t *testing.T) {
	rs := records(t,
		trade(t, "2024-04-02T09:00", 10, "1", "A"), // Q2, week 14
		trade(t, "2024-01-03T09:00", 5, "1", "A"),  // Q1, week 1
		trade(t, "2024-01-05T09:00", -3, "1", "B"), // Q1, week 1
		trade(t, "2024-03-31T09:00", 1, "1", "B"),  // Q1, week 13
	)

	tests := []struct {
		period date.Period
		want   []string
	}{
		{date.Daily, []string{"2024-01-03 $5.00 1", "2024-01-05 -$3.00 1", "2024-03-31 $1.00 1", "2024-04-02 $10.00 1"}},
		{date.Weekly, []string{"2024-W01 $2.00 2", "2024-W13 $1.00 1", "2024-W14 $10.00 1"}},
		{date.Monthly, []string{"2024-01 $2.00 2", "2024-03 $1.00 1", "2024-04 $10.00 1"}},
		{date.Quarterly, []string{"2024-Q1 $3.00 3", "2024-Q2 $10.00 1"}},
		{date.Yearly, []string{"2024 $13.00 4"}},
	}
	for _, tt := range tests {
		t.Run(tt.period.String(), func(t *testing.T) {
			var got []string
			for _, p := range rs.Periodic(tt.period) {
				got = append(got, fmt.Sprintf("%s %s %d", p.Period, p.TotalPnL, p.Trades))
				if p.Range.Identifier() != p.Period {
					t.Errorf("%s range is %v", p.Period, p.Range)
				}
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Periodic(%v) mismatch (-want +got):\n%s", tt.period, diff)
			}
		})
	}
}

func TestNewRecordSet_Currency(t *testing.T) {
	eur := Trade{PnL: M(10, "EUR")}
	_, err := NewRecordSet("USD", trade(t, "2024-01-01T09:00", 1, "1", "A"), eur)
	var ce *CurrencyError
	if !errors.As(err, &ce) {
		t.Fatalf("NewRecordSet() error = %v, want a *CurrencyError", err)
	}
	if ce.Trade != 1 || ce.Currency != "EUR" || ce.Want != "USD" {
		t.Errorf("NewRecordSet() error = %+v", ce)
	}

	rs, err := NewRecordSet("EUR", eur, Trade{PnL: M(5, "")})
	if err != nil {
		t.Fatalf("NewRecordSet() error = %v", err)
	}
	if got := rs.Stats().TotalPnL; !got.Equal(M(15, "EUR")) {
		t.Errorf("Stats().TotalPnL = %v, want 15 EUR", got)
	}
}
