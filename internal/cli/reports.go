package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/google/subcommands"
	"shiftbook/internal/core"
	"shiftbook/internal/store"
)

type summaryCmd struct {
	app *App
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show today's earnings, goals and unpaid balance" }
func (*summaryCmd) Usage() string {
	return `shiftbook summary
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var (
		doc core.Document
		cal core.Calendar
	)
	err := c.app.withStore(ctx, func(s *store.Store) error {
		doc, cal = s.Snapshot(), s.Calendar()
		return nil
	})
	if err != nil {
		return c.app.fail(err)
	}

	out := c.app.stdout()
	if name := doc.Profile.FirstName; name != "" {
		fmt.Fprintf(out, "Hello, %s\n\n", name)
	}

	for _, day := range []struct{ title, label string }{
		{"Today", cal.Today()},
		{"Yesterday", cal.Yesterday()},
	} {
		t := core.TotalsForDay(doc.Records, day.label)
		fmt.Fprintf(out, "%-10s %s  shifts: %d  average: %s\n",
			day.title+":", c.app.money(t.Total), t.Shifts, c.app.money(t.Average()))
	}
	fmt.Fprintf(out, "%-10s %s\n", "Overall:", c.app.money(doc.TotalEarnings))

	best, ok := core.BestShift(doc.Records)
	if ok {
		fmt.Fprintf(out, "Best shift: %s on %s\n", c.app.money(best.Total), best.Date)
	}

	if len(doc.Goals) > 0 {
		fmt.Fprintln(out, "\nGoals:")
		for _, g := range doc.Goals {
			fmt.Fprintf(out, "  %s: %s (%.0f%%)\n", g.Name, c.app.money(g.Amount), core.GoalProgress(best.Total, g))
		}
	}

	b := core.Balance(doc.Records, doc.Payouts)
	fmt.Fprintf(out, "\nPaid out: %s  unpaid: %s\n", c.app.money(b.Paid), c.app.money(b.Unpaid()))
	if b.LastPayoutDate != "" {
		fmt.Fprintf(out, "Last payout: %s\n", b.LastPayoutDate)
	}
	return subcommands.ExitSuccess
}

type statsCmd struct {
	app   *App
	limit int
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "list recorded shifts, newest first, with totals" }
func (*statsCmd) Usage() string {
	return `shiftbook stats [-n <count>]
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 0, "Show only the newest n shifts (0 shows all).")
}

func (c *statsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var records []core.Record
	err := c.app.withStore(ctx, func(s *store.Store) error {
		records = core.NewestFirst(s.Snapshot().Records, s.Calendar())
		return nil
	})
	if err != nil {
		return c.app.fail(err)
	}

	out := c.app.stdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No shifts recorded yet.")
		return subcommands.ExitSuccess
	}

	totals := core.Totals(records)
	if c.limit > 0 && c.limit < len(records) {
		records = records[:c.limit]
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i, h := range core.StatsHeader {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, h)
	}
	fmt.Fprintln(w, "\t")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s%%\t%s\t%s\t%s\t\n", r.Date,
			core.Fixed2(r.ShiftSalary), core.Fixed2(r.Sales), core.Fixed2(r.Percentage),
			core.Fixed2(r.Earnings), core.Fixed2(r.Tips), core.Fixed2(r.Total))
	}
	fmt.Fprintf(w, "%s\t%s\t%s\t\t%s\t%s\t%s\t\n", core.TotalsLabel,
		core.Fixed2(totals.ShiftSalary), core.Fixed2(totals.Sales),
		core.Fixed2(totals.Earnings), core.Fixed2(totals.Tips), core.Fixed2(totals.Total))
	if err := w.Flush(); err != nil {
		return c.app.fail(err)
	}
	return subcommands.ExitSuccess
}
