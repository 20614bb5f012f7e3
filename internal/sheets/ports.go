package sheets

import "context"

// Ports for spreadsheet adapters.
type (
	// RowReader returns every row of the statistics sheet, header included.
	RowReader interface {
		ReadRows(ctx context.Context) ([][]string, error)
	}

	// RowWriter replaces the contents of the statistics sheet.
	RowWriter interface {
		WriteRows(ctx context.Context, rows [][]any) error
	}

	Sheet interface {
		RowReader
		RowWriter
	}
)
