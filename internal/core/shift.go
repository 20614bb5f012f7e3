package core

// ShiftInput holds the values entered for a new shift.
type ShiftInput struct {
	ShiftSalary float64
	Sales       float64
	Percentage  float64
	Tips        float64
}

// Earnings is the commission earned on sales.
func (in ShiftInput) Earnings() float64 {
	return in.Sales * in.Percentage / 100
}

// Total is base pay plus commission plus tips.
func (in ShiftInput) Total() float64 {
	return in.ShiftSalary + in.Earnings() + in.Tips
}

func (in ShiftInput) Validate() error {
	if in.ShiftSalary < 0 || in.Sales < 0 || in.Percentage < 0 || in.Tips < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// Record builds the record for this shift. Timestamps of new shifts are
// stored as epoch milliseconds.
func (in ShiftInput) Record(id ID, cal Calendar) Record {
	now := cal.Now()
	return Record{
		ID:          id,
		Date:        cal.Label(now),
		Timestamp:   EpochTimestamp(now),
		ShiftSalary: in.ShiftSalary,
		Sales:       in.Sales,
		Percentage:  in.Percentage,
		Earnings:    in.Earnings(),
		Tips:        in.Tips,
		Total:       in.Total(),
	}
}
