package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"shiftbook/internal/export"
	"shiftbook/internal/log"
	"shiftbook/internal/store"
)

type importCmd struct {
	app *App
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "merge a backup or statistics file into the data" }
func (*importCmd) Usage() string {
	return `shiftbook import <file.json|file.csv|file.xlsx|file.xls>

  Records and goals whose id is already present are kept as they are; new
  ones are appended. Payouts are never imported.
`
}

func (*importCmd) SetFlags(*flag.FlagSet) {}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(c.app.stderr(), c.Usage())
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	err := c.app.withStore(ctx, func(s *store.Store) error {
		file, err := os.Open(name)
		if err != nil {
			// Let the store report the read failure like any other import error.
			return s.Import(ctx, errReader{err}, filepath.Base(name))
		}
		defer file.Close()
		return s.Import(ctx, file, filepath.Base(name))
	})
	if err != nil {
		// The store has already reported import failures as notifications.
		if !isImportError(err) {
			return c.app.fail(err)
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func isImportError(err error) bool {
	for _, target := range []error{
		store.ErrUnsupportedFormat,
		store.ErrReadFailed,
		store.ErrInvalidImportShape,
		store.ErrSaveFailed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

type importSheetCmd struct {
	app *App
}

func (*importSheetCmd) Name() string     { return "import-sheet" }
func (*importSheetCmd) Synopsis() string { return "merge the statistics table from the configured spreadsheet" }
func (*importSheetCmd) Usage() string {
	return `shiftbook import-sheet
`
}

func (*importSheetCmd) SetFlags(*flag.FlagSet) {}

func (c *importSheetCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sheet, err := c.app.sheet(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	rows, err := sheet.ReadRows(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	c.app.logger().WithComponent(log.ComponentSheets).InfoContext(ctx, "Rows fetched from sheet", log.FieldRows, len(rows))

	err = c.app.withStore(ctx, func(s *store.Store) error {
		return s.ImportRows(ctx, "spreadsheet", rows)
	})
	if err != nil {
		if !isImportError(err) {
			return c.app.fail(err)
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type exportCmd struct {
	app *App
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a JSON backup and the statistics as CSV and XLSX" }
func (*exportCmd) Usage() string {
	return `shiftbook export <dir>

  Writes waiter_backup_<date>.json and, when shifts exist,
  waiter_stats_<date>.csv and waiter_stats_<date>.xlsx into dir.
`
}

func (*exportCmd) SetFlags(*flag.FlagSet) {}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dir := "."
	if f.NArg() > 0 {
		dir = f.Arg(0)
	}

	var files []string
	err := c.app.withStore(ctx, func(s *store.Store) (err error) {
		files, err = export.WriteAll(ctx, dir, s.Snapshot(), s.Calendar().Now())
		return err
	})
	if err != nil {
		return c.app.fail(err)
	}
	c.app.logger().WithComponent(log.ComponentExport).InfoContext(ctx, "Export written",
		log.FieldOperation, log.OpExport,
		log.FieldDir, dir,
		"files", len(files))
	for _, name := range files {
		fmt.Fprintln(c.app.stdout(), name)
	}
	return subcommands.ExitSuccess
}

type exportSheetCmd struct {
	app *App
}

func (*exportSheetCmd) Name() string     { return "export-sheet" }
func (*exportSheetCmd) Synopsis() string { return "replace the configured spreadsheet with the statistics table" }
func (*exportSheetCmd) Usage() string {
	return `shiftbook export-sheet
`
}

func (*exportSheetCmd) SetFlags(*flag.FlagSet) {}

func (c *exportSheetCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sheet, err := c.app.sheet(ctx)
	if err != nil {
		return c.app.fail(err)
	}

	var rows [][]any
	err = c.app.withStore(ctx, func(s *store.Store) error {
		doc := s.Snapshot()
		if len(doc.Records) == 0 {
			return export.ErrNoRecords
		}
		rows = export.Rows(doc)
		return nil
	})
	if err != nil {
		return c.app.fail(err)
	}

	if err := sheet.WriteRows(ctx, rows); err != nil {
		return c.app.fail(err)
	}
	fmt.Fprintf(c.app.stdout(), "%d rows written\n", len(rows))
	return subcommands.ExitSuccess
}

type clearCmd struct {
	app *App
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all shifts, goals, payouts and the profile" }
func (*clearCmd) Usage() string {
	return `shiftbook clear -yes
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Confirm that all data should be deleted.")
}

func (c *clearCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		fmt.Fprintln(c.app.stderr(), "Refusing to clear data without -yes.")
		return subcommands.ExitUsageError
	}
	cleared := false
	err := c.app.withStore(ctx, func(s *store.Store) error {
		cleared = s.Clear(ctx)
		return nil
	})
	if err != nil {
		return c.app.fail(err)
	}
	if !cleared {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
