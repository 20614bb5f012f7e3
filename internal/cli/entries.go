package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"shiftbook/internal/core"
	"shiftbook/internal/store"
)

type addShiftCmd struct {
	app *App
	in  core.ShiftInput
}

func (*addShiftCmd) Name() string     { return "add-shift" }
func (*addShiftCmd) Synopsis() string { return "record a shift worked today" }
func (*addShiftCmd) Usage() string {
	return `shiftbook add-shift -salary <base pay> [-sales <sales> -percent <rate>] [-tips <tips>]

  Records a shift dated today. Sales income is sales times percent / 100 and
  the shift total is base pay plus sales income plus tips.
`
}

func (c *addShiftCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.in.ShiftSalary, "salary", 0, "Base pay for the shift.")
	f.Float64Var(&c.in.Sales, "sales", 0, "Total sales during the shift.")
	f.Float64Var(&c.in.Percentage, "percent", 0, "Commission rate on sales, in percent.")
	f.Float64Var(&c.in.Tips, "tips", 0, "Tips received.")
}

func (c *addShiftCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var rec core.Record
	err := c.app.withStore(ctx, func(s *store.Store) (err error) {
		rec, err = s.AddShift(ctx, c.in)
		return err
	})
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.stdout(), "Shift %s saved: %s (sales income %s, tips %s)\n",
		rec.Date, c.app.money(rec.Total), c.app.money(rec.Earnings), c.app.money(rec.Tips))
	return subcommands.ExitSuccess
}

type addGoalCmd struct {
	app    *App
	name   string
	amount float64
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "add a savings goal" }
func (*addGoalCmd) Usage() string {
	return `shiftbook add-goal -name <name> -amount <amount>
`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the goal.")
	f.Float64Var(&c.amount, "amount", 0, "Amount to save, must be positive.")
}

func (c *addGoalCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var g core.Goal
	err := c.app.withStore(ctx, func(s *store.Store) (err error) {
		g, err = s.AddGoal(ctx, c.name, c.amount)
		return err
	})
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.stdout(), "Goal %q added: %s\n", g.Name, c.app.money(g.Amount))
	return subcommands.ExitSuccess
}

type addPayoutCmd struct {
	app    *App
	amount float64
}

func (*addPayoutCmd) Name() string     { return "add-payout" }
func (*addPayoutCmd) Synopsis() string { return "record a payout received today" }
func (*addPayoutCmd) Usage() string {
	return `shiftbook add-payout -amount <amount>
`
}

func (c *addPayoutCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Amount paid out, must be positive.")
}

func (c *addPayoutCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var p core.Payout
	err := c.app.withStore(ctx, func(s *store.Store) (err error) {
		p, err = s.AddPayout(ctx, c.amount)
		return err
	})
	if err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.stdout(), "Payout %s recorded: %s\n", p.Date, c.app.money(p.Amount))
	return subcommands.ExitSuccess
}

type profileCmd struct {
	app     *App
	profile core.Profile
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "show or update the profile" }
func (*profileCmd) Usage() string {
	return `shiftbook profile [-first <name>] [-last <name>] [-restaurant <name>] [-avatar <url>]

  Without flags the current profile is printed. Flags that are set replace
  the matching field; the others are kept.
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.profile.FirstName, "first", "", "First name.")
	f.StringVar(&c.profile.LastName, "last", "", "Last name.")
	f.StringVar(&c.profile.Restaurant, "restaurant", "", "Restaurant.")
	f.StringVar(&c.profile.Avatar, "avatar", "", "Avatar image URL or data URI.")
}

func (c *profileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	set := map[string]bool{}
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	var p core.Profile
	err := c.app.withStore(ctx, func(s *store.Store) error {
		p = s.Snapshot().Profile
		if len(set) == 0 {
			return nil
		}
		if set["first"] {
			p.FirstName = c.profile.FirstName
		}
		if set["last"] {
			p.LastName = c.profile.LastName
		}
		if set["restaurant"] {
			p.Restaurant = c.profile.Restaurant
		}
		if set["avatar"] {
			p.Avatar = c.profile.Avatar
		}
		return s.UpdateProfile(ctx, p)
	})
	if err != nil {
		return c.app.fail(err)
	}

	out := c.app.stdout()
	fmt.Fprintf(out, "First name: %s\n", p.FirstName)
	fmt.Fprintf(out, "Last name:  %s\n", p.LastName)
	fmt.Fprintf(out, "Restaurant: %s\n", p.Restaurant)
	return subcommands.ExitSuccess
}
