// Package core holds the shift book domain: the versioned document with its
// records, goals and payouts, lenient decoding of loosely typed JSON values,
// ids and timestamps that remember whether they were numbers or strings,
// the shift calendar, earnings math, summaries and money formatting.
package core

import (
	"encoding/json"
	"errors"
	"strings"
)

// CurrentVersion is the schema tag stamped on every Document the store returns.
const CurrentVersion = "1.2"

type (
	Profile struct {
		FirstName  string `json:"firstName"`
		LastName   string `json:"lastName"`
		Restaurant string `json:"restaurant"`
		Avatar     string `json:"avatar"`
	}

	// Record is one logged shift. Total is authoritative for aggregation even
	// when it differs from ShiftSalary + Earnings + Tips.
	Record struct {
		ID          ID        `json:"id"`
		Date        string    `json:"date"`
		Timestamp   Timestamp `json:"timestamp"`
		ShiftSalary float64   `json:"shiftSalary"`
		Sales       float64   `json:"sales"`
		Percentage  float64   `json:"percentage"`
		Earnings    float64   `json:"earnings"`
		Tips        float64   `json:"tips"`
		Total       float64   `json:"total"`
	}

	Goal struct {
		ID        ID      `json:"id"`
		Name      string  `json:"name"`
		Amount    float64 `json:"amount"`
		CreatedAt string  `json:"createdAt"`
	}

	Payout struct {
		ID     ID      `json:"id"`
		Date   string  `json:"date"`
		Amount float64 `json:"amount"`
	}

	// Document is the whole persisted state of one user.
	Document struct {
		Version       string   `json:"version"`
		Profile       Profile  `json:"profile"`
		TotalEarnings float64  `json:"totalEarnings"`
		Goals         []Goal   `json:"goals"`
		Records       []Record `json:"records"`
		Payouts       []Payout `json:"payouts"`
	}
)

var (
	ErrEmptyGoalName  = errors.New("empty goal name")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("negative amount")
	ErrNotAnObject    = errors.New("not a JSON object")
)

// SumTotals returns the sum of every record total.
func SumTotals(records []Record) float64 {
	var sum float64
	for _, r := range records {
		sum += r.Total
	}
	return sum
}

// Recalculate refreshes the derived TotalEarnings cache.
func (d *Document) Recalculate() {
	d.TotalEarnings = SumTotals(d.Records)
}

// Clone returns a deep copy safe to hand out to readers.
func (d Document) Clone() Document {
	out := d
	out.Goals = append([]Goal{}, d.Goals...)
	out.Records = append([]Record{}, d.Records...)
	out.Payouts = append([]Payout{}, d.Payouts...)
	return out
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyGoalName
	}
	if g.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (p Payout) Validate() error {
	if p.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// UnmarshalJSON decodes leniently: numeric fields go through Float, and
// sections of the wrong shape fall back to their zero value.
func (d *Document) UnmarshalJSON(data []byte) error {
	v, err := DecodeLoose(data)
	if err != nil {
		return err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return ErrNotAnObject
	}
	*d = DocumentFromLoose(obj)
	return nil
}

func (r *Record) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	*r = RecordFromLoose(obj)
	return nil
}

func (g *Goal) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	*g = GoalFromLoose(obj)
	return nil
}

func (p *Payout) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	*p = PayoutFromLoose(obj)
	return nil
}

// DocumentFromLoose converts a decoded JSON object into a Document without
// filling in defaults for missing identities or dates. Collections are always
// non-nil. The version is kept only when it is a JSON string.
func DocumentFromLoose(obj map[string]any) Document {
	d := Document{
		Goals:   []Goal{},
		Records: []Record{},
		Payouts: []Payout{},
	}
	if v, ok := obj["version"].(string); ok {
		d.Version = v
	}
	if p, ok := obj["profile"].(map[string]any); ok {
		d.Profile = OverlayProfile(d.Profile, p)
	}
	d.TotalEarnings = Float(obj["totalEarnings"])
	for _, m := range Objects(obj["records"]) {
		d.Records = append(d.Records, RecordFromLoose(m))
	}
	for _, m := range Objects(obj["goals"]) {
		d.Goals = append(d.Goals, GoalFromLoose(m))
	}
	for _, m := range Objects(obj["payouts"]) {
		d.Payouts = append(d.Payouts, PayoutFromLoose(m))
	}
	return d
}

// OverlayProfile copies every field present in src over base.
func OverlayProfile(base Profile, src map[string]any) Profile {
	if v, ok := src["firstName"]; ok {
		base.FirstName = Text(v)
	}
	if v, ok := src["lastName"]; ok {
		base.LastName = Text(v)
	}
	if v, ok := src["restaurant"]; ok {
		base.Restaurant = Text(v)
	}
	if v, ok := src["avatar"]; ok {
		base.Avatar = Text(v)
	}
	return base
}

func RecordFromLoose(m map[string]any) Record {
	return Record{
		ID:          IDFrom(m["id"]),
		Date:        Text(m["date"]),
		Timestamp:   TimestampFrom(m["timestamp"]),
		ShiftSalary: Float(m["shiftSalary"]),
		Sales:       Float(m["sales"]),
		Percentage:  Float(m["percentage"]),
		Earnings:    Float(m["earnings"]),
		Tips:        Float(m["tips"]),
		Total:       Float(m["total"]),
	}
}

func GoalFromLoose(m map[string]any) Goal {
	return Goal{
		ID:        IDFrom(m["id"]),
		Name:      Text(m["name"]),
		Amount:    Float(m["amount"]),
		CreatedAt: Text(m["createdAt"]),
	}
}

func PayoutFromLoose(m map[string]any) Payout {
	return Payout{
		ID:     IDFrom(m["id"]),
		Date:   Text(m["date"]),
		Amount: Float(m["amount"]),
	}
}

func decodeObject(data []byte) (map[string]any, error) {
	v, err := DecodeLoose(data)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotAnObject
	}
	return obj, nil
}

// MarshalIndent renders a Document the way backups are written.
func (d Document) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
