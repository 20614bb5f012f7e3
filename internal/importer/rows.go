package importer

import (
	"strings"

	"shiftbook/internal/core"
)

// Column order of core.StatsHeader.
const (
	colDate = iota
	colShiftSalary
	colSales
	colPercentage
	colEarnings
	colTips
	colTotal

	minColumns
)

// FromRows converts spreadsheet rows into a candidate holding only records.
// The first row is a header. Rows with fewer than seven cells, blank rows and
// the totals row are skipped. Missing ids, dates and timestamps are left for
// the record normalizer.
func FromRows(rows [][]string) Candidate {
	records := []any{}
	for i, row := range rows {
		if i == 0 || len(row) < minColumns || blank(row) {
			continue
		}
		date := strings.TrimSpace(row[colDate])
		if strings.EqualFold(date, core.TotalsLabel) {
			continue
		}
		records = append(records, map[string]any{
			"date":        date,
			"shiftSalary": core.ParseFloat(row[colShiftSalary]),
			"sales":       core.ParseFloat(row[colSales]),
			"percentage":  core.ParseFloat(row[colPercentage]),
			"earnings":    core.ParseFloat(row[colEarnings]),
			"tips":        core.ParseFloat(row[colTips]),
			"total":       core.ParseFloat(row[colTotal]),
		})
	}
	return Candidate{
		"version": core.CurrentVersion,
		"records": records,
	}
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
