package store

import "shiftbook/internal/core"

// NewDefault returns an empty document stamped with the current version.
func NewDefault() core.Document {
	return core.Document{
		Version: core.CurrentVersion,
		Goals:   []core.Goal{},
		Records: []core.Record{},
		Payouts: []core.Payout{},
	}
}

// Normalizer turns loosely typed input into canonical values, filling in
// identities and dates that are missing.
type Normalizer struct {
	Calendar core.Calendar
	IDs      *core.IDGenerator
}

func NewNormalizer(cal core.Calendar) Normalizer {
	return Normalizer{Calendar: cal, IDs: core.NewIDGenerator(cal.Now)}
}

// shared by zero Normalizers so their ids stay unique too
var fallbackIDs = core.NewIDGenerator(nil)

func (n Normalizer) nextID() core.ID {
	if n.IDs == nil {
		return fallbackIDs.Next()
	}
	return n.IDs.Next()
}

// NormalizeRecord never fails. Numbers that cannot be read become 0.
func (n Normalizer) NormalizeRecord(m map[string]any) core.Record {
	r := core.RecordFromLoose(m)
	if r.ID.IsZero() {
		r.ID = n.nextID()
	}
	if r.Date == "" {
		r.Date = n.Calendar.Today()
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = core.ISOTimestamp(n.Calendar.Now())
	}
	return r
}

func (n Normalizer) NormalizeGoal(m map[string]any) core.Goal {
	g := core.GoalFromLoose(m)
	if g.ID.IsZero() {
		g.ID = n.nextID()
	}
	if g.CreatedAt == "" {
		g.CreatedAt = core.ISOTimestamp(n.Calendar.Now()).String()
	}
	return g
}

func (n Normalizer) NormalizePayout(m map[string]any) core.Payout {
	p := core.PayoutFromLoose(m)
	if p.ID.IsZero() {
		p.ID = n.nextID()
	}
	if p.Date == "" {
		p.Date = n.Calendar.Today()
	}
	return p
}
