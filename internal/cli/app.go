package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/google/subcommands"
	"shiftbook/internal/backend"
	"shiftbook/internal/config"
	"shiftbook/internal/core"
	"shiftbook/internal/log"
	"shiftbook/internal/notify"
	"shiftbook/internal/sheets"
	gsheet "shiftbook/internal/sheets/google"
	"shiftbook/internal/store"
)

// ErrSheetsDisabled is returned by sheet commands when no spreadsheet is
// configured.
var ErrSheetsDisabled = errors.New("spreadsheet not configured (set GOOGLE_SPREADSHEET_ID)")

// App carries what every subcommand needs.
type App struct {
	Config   *config.Config
	Logger   *log.Logger
	Stdout   io.Writer
	Stderr   io.Writer
	Backends backend.Factory

	// Publisher, when set, receives every notification over AMQP.
	Publisher notify.Publisher

	// Sheet opens the spreadsheet used by import-sheet and export-sheet.
	// When nil the Google Sheets client is built from Config.
	Sheet func(ctx context.Context) (sheets.Sheet, error)

	// Clock and Location override the wall clock and local zone.
	Clock    func() time.Time
	Location *time.Location
}

func (a *App) logger() *log.Logger {
	if a.Logger == nil {
		a.Logger = log.Discard()
	}
	return a.Logger
}

func (a *App) stdout() io.Writer {
	if a.Stdout == nil {
		return os.Stdout
	}
	return a.Stdout
}

func (a *App) stderr() io.Writer {
	if a.Stderr == nil {
		return os.Stderr
	}
	return a.Stderr
}

// Calendar returns the calendar used for day labels.
func (a *App) Calendar() core.Calendar {
	return core.Calendar{
		Layout:   a.Config.DateLayout,
		Location: a.Location,
		Clock:    a.Clock,
	}
}

func (a *App) money(v float64) string {
	return core.Display(v, a.Config.Currency)
}

func (a *App) notifier() notify.Notifier {
	n := []notify.Notifier{notify.Writer(a.stderr()), notify.Log(a.logger())}
	if a.Publisher != nil {
		n = append(n, notify.AMQP(a.Publisher, a.logger()))
	}
	return notify.Multi(n...)
}

// withStore opens the configured store, runs fn and closes the store again.
func (a *App) withStore(ctx context.Context, fn func(*store.Store) error) error {
	bc, err := backend.FromAppConfig(a.Config)
	if err != nil {
		return err
	}
	factory := a.Backends
	if factory == nil {
		factory = backend.NewFactory(a.logger())
	}
	res, err := factory.CreateBackend(ctx, bc)
	if err != nil {
		return err
	}

	s, err := store.Open(ctx, res.KV,
		store.WithKey(a.Config.StorageKey),
		store.WithNotifier(a.notifier()),
		store.WithLogger(a.logger()),
		store.WithCalendar(a.Calendar()),
		store.WithBackendName(bc.Type.String()),
	)
	if err != nil {
		if res.Cleanup != nil {
			_ = res.Cleanup()
		}
		return err
	}

	runErr := fn(s)
	closeErr := s.Close(ctx)
	if runErr != nil {
		return runErr
	}
	return closeErr
}

func (a *App) sheet(ctx context.Context) (sheets.Sheet, error) {
	if a.Sheet != nil {
		return a.Sheet(ctx)
	}
	if !a.Config.SheetsEnabled() {
		return nil, ErrSheetsDisabled
	}
	return gsheet.New(ctx, gsheet.Config{
		SpreadsheetID:      a.Config.GoogleSpreadsheetID,
		SheetName:          a.Config.GoogleSheetName,
		ServiceAccountJSON: a.Config.GoogleServiceAccountJSON,
		ServiceAccountFile: a.Config.GoogleServiceAccountFile,
	})
}

// fail prints err and returns the failure status.
func (a *App) fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(a.stderr(), "Error:", err)
	return subcommands.ExitFailure
}

// Register the subcommands.
func Register(c *subcommands.Commander, app *App) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&addShiftCmd{app: app}, "entries")
	c.Register(&addGoalCmd{app: app}, "entries")
	c.Register(&addPayoutCmd{app: app}, "entries")
	c.Register(&profileCmd{app: app}, "entries")

	c.Register(&summaryCmd{app: app}, "reports")
	c.Register(&statsCmd{app: app}, "reports")

	c.Register(&importCmd{app: app}, "data")
	c.Register(&importSheetCmd{app: app}, "data")
	c.Register(&exportCmd{app: app}, "data")
	c.Register(&exportSheetCmd{app: app}, "data")
	c.Register(&clearCmd{app: app}, "data")
}

// Run parses args and executes the selected subcommand.
func Run(ctx context.Context, app *App, name string, args []string) int {
	fs := flag.NewFlagSet(path.Base(name), flag.ContinueOnError)
	fs.SetOutput(app.stderr())
	commander := subcommands.NewCommander(fs, path.Base(name))
	commander.Output = app.stdout()
	commander.Error = app.stderr()
	Register(commander, app)

	if err := fs.Parse(args); err != nil {
		return int(subcommands.ExitUsageError)
	}
	return int(commander.Execute(ctx))
}
