package core

// StatsHeader is the header row of tabular exports. Imports expect the same
// column order.
var StatsHeader = []string{"Date", "Base Pay", "Sales", "Percentage", "Sales Income", "Tips", "Total"}

// TotalsLabel opens the summary row at the end of a tabular export.
const TotalsLabel = "Total"
