// Package export writes the document out as a JSON backup and as a
// statistics table in CSV, XLSX or spreadsheet form.
package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"shiftbook/internal/core"
)

// SheetName is the worksheet the statistics table is written to.
const SheetName = "Statistics"

var ErrNoRecords = errors.New("no records to export")

// Rows builds the statistics table: header, one row per record in stored
// order, a blank separator and the totals row. Record values stay numeric;
// totals are formatted with two decimals.
func Rows(doc core.Document) [][]any {
	rows := make([][]any, 0, len(doc.Records)+3)
	rows = append(rows, anyRow(core.StatsHeader))

	var base, income, tips, total []float64
	for _, r := range doc.Records {
		rows = append(rows, []any{r.Date, r.ShiftSalary, r.Sales, r.Percentage, r.Earnings, r.Tips, r.Total})
		base = append(base, r.ShiftSalary)
		income = append(income, r.Earnings)
		tips = append(tips, r.Tips)
		total = append(total, r.Total)
	}

	rows = append(rows, []any{"", "", "", "", "", "", ""})
	rows = append(rows, []any{
		core.TotalsLabel,
		core.SumFixed2(base),
		"",
		"",
		core.SumFixed2(income),
		core.SumFixed2(tips),
		core.SumFixed2(total),
	})
	return rows
}

// Table is Rows rendered as text.
func Table(doc core.Document) [][]string {
	rows := Rows(doc)
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			switch v := cell.(type) {
			case float64:
				out[i][j] = strconv.FormatFloat(v, 'f', -1, 64)
			default:
				out[i][j] = fmt.Sprint(v)
			}
		}
	}
	return out
}

func anyRow(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}

// WriteJSON writes a full backup.
func WriteJSON(w io.Writer, doc core.Document) error {
	data, err := doc.MarshalIndent()
	if err != nil {
		return fmt.Errorf("marshal backup: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

func WriteCSV(w io.Writer, doc core.Document) error {
	if len(doc.Records) == 0 {
		return ErrNoRecords
	}
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(Table(doc)); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func WriteXLSX(w io.Writer, doc core.Document) error {
	if len(doc.Records) == 0 {
		return ErrNoRecords
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("name worksheet: %w", err)
	}
	for i, row := range Rows(doc) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	if err := f.SetColWidth(SheetName, "A", "G", 16); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// BackupFileName and StatsFileName follow waiter_<kind>_<YYYY-MM-DD>.<ext>.
func BackupFileName(day time.Time) string {
	return "waiter_backup_" + day.UTC().Format("2006-01-02") + ".json"
}

func StatsFileName(day time.Time, ext string) string {
	return "waiter_stats_" + day.UTC().Format("2006-01-02") + "." + ext
}

// WriteAll writes the backup, CSV and XLSX files into dir concurrently and
// returns their paths. Without records only the backup is written.
func WriteAll(ctx context.Context, dir string, doc core.Document, now time.Time) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	type job struct {
		name  string
		write func(io.Writer, core.Document) error
	}
	jobs := []job{{BackupFileName(now), WriteJSON}}
	if len(doc.Records) > 0 {
		jobs = append(jobs,
			job{StatsFileName(now, "csv"), WriteCSV},
			job{StatsFileName(now, "xlsx"), WriteXLSX},
		)
	}

	paths := make([]string, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	for i, j := range jobs {
		i, j := i, j
		paths[i] = filepath.Join(dir, j.name)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writeFile(paths[i], doc, j.write)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func writeFile(path string, doc core.Document, write func(io.Writer, core.Document) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", filepath.Base(path), cerr)
		}
	}()
	return write(f, doc)
}
