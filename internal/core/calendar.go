package core

import "time"

// DefaultDateLayout renders day labels as day.month.year.
const DefaultDateLayout = "02.01.2006"

// Calendar produces day labels and instants for new data. A zero Calendar
// uses the default layout, the local zone and the wall clock.
type Calendar struct {
	Layout   string
	Location *time.Location
	Clock    func() time.Time
}

func (c Calendar) layout() string {
	if c.Layout == "" {
		return DefaultDateLayout
	}
	return c.Layout
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// Now returns the current instant.
func (c Calendar) Now() time.Time {
	if c.Clock != nil {
		return c.Clock()
	}
	return time.Now()
}

// Label formats t as a calendar-day label.
func (c Calendar) Label(t time.Time) string {
	return t.In(c.location()).Format(c.layout())
}

// Today returns the label of the current day.
func (c Calendar) Today() string {
	return c.Label(c.Now())
}

// Yesterday returns the label of the previous day.
func (c Calendar) Yesterday() string {
	return c.Label(c.Now().In(c.location()).AddDate(0, 0, -1))
}

// ParseLabel reads a day label back into a time at midnight.
func (c Calendar) ParseLabel(label string) (time.Time, bool) {
	t, err := time.ParseInLocation(c.layout(), label, c.location())
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
