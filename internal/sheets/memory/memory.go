package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	ports "shiftbook/internal/sheets"
)

var _ ports.Sheet = (*Sheet)(nil)

// Sheet is an in-memory stand-in for a spreadsheet tab. Values are stored
// the way a spreadsheet shows them: as text.
type Sheet struct {
	mu     sync.Mutex
	rows   [][]string
	writes int
}

func New(rows [][]string) *Sheet {
	return &Sheet{rows: copyRows(rows)}
}

// ReadRows returns a copy of the stored rows.
func (s *Sheet) ReadRows(_ context.Context) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyRows(s.rows), nil
}

// WriteRows replaces the stored rows.
func (s *Sheet) WriteRows(_ context.Context, rows [][]any) error {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			switch x := v.(type) {
			case string:
				out[i][j] = x
			case float64:
				out[i][j] = strconv.FormatFloat(x, 'f', -1, 64)
			default:
				out[i][j] = fmt.Sprint(x)
			}
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = out
	s.writes++
	return nil
}

// Writes reports how many times WriteRows was called.
func (s *Sheet) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func copyRows(in [][]string) [][]string {
	out := make([][]string, len(in))
	for i, row := range in {
		out[i] = append([]string(nil), row...)
	}
	return out
}
