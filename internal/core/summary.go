package core

import (
	"math"
	"sort"
	"time"
)

// DayTotals aggregates the shifts recorded under one day label.
type DayTotals struct {
	Label  string
	Shifts int
	Total  float64
}

// Average returns the mean total per shift, 0 when there were none.
func (d DayTotals) Average() float64 {
	if d.Shifts == 0 {
		return 0
	}
	return d.Total / float64(d.Shifts)
}

// TotalsForDay sums the records whose date equals label.
func TotalsForDay(records []Record, label string) DayTotals {
	out := DayTotals{Label: label}
	for _, r := range records {
		if r.Date == label {
			out.Shifts++
			out.Total += r.Total
		}
	}
	return out
}

// BestShift returns the record with the largest total. The earliest record
// wins ties. ok is false for an empty slice.
func BestShift(records []Record) (best Record, ok bool) {
	for i, r := range records {
		if i == 0 || r.Total > best.Total {
			best = r
		}
	}
	return best, len(records) > 0
}

// GoalProgress is the share of the goal amount covered by value, in percent,
// capped at 100.
func GoalProgress(value float64, goal Goal) float64 {
	if goal.Amount <= 0 {
		return 0
	}
	return math.Min(value/goal.Amount*100, 100)
}

// PayoutBalance compares money paid out with money earned from base pay and
// commission. Tips are paid directly and never owed.
type PayoutBalance struct {
	Paid           float64
	Earned         float64
	LastPayoutDate string
}

// Unpaid is what is still owed.
func (b PayoutBalance) Unpaid() float64 {
	return b.Earned - b.Paid
}

func Balance(records []Record, payouts []Payout) PayoutBalance {
	var b PayoutBalance
	for _, p := range payouts {
		b.Paid += p.Amount
	}
	for _, r := range records {
		b.Earned += r.ShiftSalary + r.Earnings
	}
	if len(payouts) > 0 {
		b.LastPayoutDate = payouts[len(payouts)-1].Date
	}
	return b
}

// ColumnTotals sums each numeric column of the stats table.
type ColumnTotals struct {
	ShiftSalary float64
	Sales       float64
	Earnings    float64
	Tips        float64
	Total       float64
}

func Totals(records []Record) ColumnTotals {
	var t ColumnTotals
	for _, r := range records {
		t.ShiftSalary += r.ShiftSalary
		t.Sales += r.Sales
		t.Earnings += r.Earnings
		t.Tips += r.Tips
		t.Total += r.Total
	}
	return t
}

// NewestFirst returns a copy of records ordered by instant, newest first.
// Records without a usable timestamp are placed by their day label; records
// with neither keep their relative order at the end.
func NewestFirst(records []Record, cal Calendar) []Record {
	out := append([]Record(nil), records...)
	when := func(r Record) time.Time {
		if t, ok := r.Timestamp.Time(); ok {
			return t
		}
		if t, ok := cal.ParseLabel(r.Date); ok {
			return t
		}
		return time.Time{}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return when(out[i]).After(when(out[j]))
	})
	return out
}
