package store

import (
	"testing"

	"shiftbook/internal/core"
)

func TestNewDefault(t *testing.T) {
	doc := NewDefault()

	if doc.Version != core.CurrentVersion {
		t.Errorf("Version = %q, want %q", doc.Version, core.CurrentVersion)
	}
	if doc.Profile != (core.Profile{}) {
		t.Errorf("Profile = %+v, want empty", doc.Profile)
	}
	if doc.TotalEarnings != 0 {
		t.Errorf("TotalEarnings = %v, want 0", doc.TotalEarnings)
	}
	if doc.Records == nil || doc.Goals == nil || doc.Payouts == nil {
		t.Error("collections must be empty, not nil")
	}

	data, err := doc.MarshalIndent()
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  "version": "1.2",
  "profile": {
    "firstName": "",
    "lastName": "",
    "restaurant": "",
    "avatar": ""
  },
  "totalEarnings": 0,
  "goals": [],
  "records": [],
  "payouts": []
}`
	if string(data) != want {
		t.Errorf("default document JSON =\n%s\nwant\n%s", data, want)
	}
}

func TestNormalizeRecord_Totality(t *testing.T) {
	n := testNormalizer()

	tests := []struct {
		name  string
		input string
		want  core.Record
	}{
		{
			name:  "empty object",
			input: `{}`,
			want:  core.Record{},
		},
		{
			name:  "numeric strings",
			input: `{"shiftSalary":"1000","sales":" 5000.5","percentage":"10%","earnings":"1e2","tips":".5","total":"50"}`,
			want:  core.Record{ShiftSalary: 1000, Sales: 5000.5, Percentage: 10, Earnings: 100, Tips: 0.5, Total: 50},
		},
		{
			name:  "garbage values",
			input: `{"shiftSalary":"abc","sales":null,"percentage":true,"earnings":{},"tips":[],"total":"NaN"}`,
			want:  core.Record{},
		},
		{
			name:  "plain numbers",
			input: `{"shiftSalary":1000,"sales":0,"percentage":5,"earnings":0,"tips":-20,"total":980}`,
			want:  core.Record{ShiftSalary: 1000, Percentage: 5, Tips: -20, Total: 980},
		},
		{
			name:  "infinite value",
			input: `{"total":"Infinity","tips":1e400}`,
			want:  core.Record{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.NormalizeRecord(looseObject(t, tt.input))

			if got.ShiftSalary != tt.want.ShiftSalary || got.Sales != tt.want.Sales ||
				got.Percentage != tt.want.Percentage || got.Earnings != tt.want.Earnings ||
				got.Tips != tt.want.Tips || got.Total != tt.want.Total {
				t.Errorf("NormalizeRecord() numbers = %+v, want %+v", got, tt.want)
			}
			if got.ID.IsZero() {
				t.Error("NormalizeRecord() left the id empty")
			}
			if got.Date != "05.03.2024" {
				t.Errorf("NormalizeRecord() Date = %q, want 05.03.2024", got.Date)
			}
			if got.Timestamp.String() != "2024-03-05T18:30:00.000Z" {
				t.Errorf("NormalizeRecord() Timestamp = %q", got.Timestamp)
			}
		})
	}
}

func TestNormalizeRecord_KeepsPresentFields(t *testing.T) {
	n := testNormalizer()
	got := n.NormalizeRecord(looseObject(t, `{"id":1700000000000,"date":"01.01.2024","timestamp":1704103200000,"total":10}`))

	if got.ID.Key() != "1700000000000" || !got.ID.Numeric() {
		t.Errorf("ID = %q numeric=%v", got.ID, got.ID.Numeric())
	}
	if got.Date != "01.01.2024" {
		t.Errorf("Date = %q", got.Date)
	}
	if got.Timestamp.String() != "1704103200000" || !got.Timestamp.Numeric() {
		t.Errorf("Timestamp = %q numeric=%v", got.Timestamp, got.Timestamp.Numeric())
	}
}

func TestNormalizeRecord_ZeroIDIsReplaced(t *testing.T) {
	n := testNormalizer()
	for _, input := range []string{`{"id":0}`, `{"id":""}`, `{"id":null}`} {
		if got := n.NormalizeRecord(looseObject(t, input)); got.ID.IsZero() {
			t.Errorf("NormalizeRecord(%s) kept a falsy id", input)
		}
	}
}

func TestNormalizer_UniqueIDsOnFrozenClock(t *testing.T) {
	n := testNormalizer()
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		id := n.NormalizeRecord(map[string]any{}).ID.Key()
		if seen[id] {
			t.Fatalf("duplicate id %s after %d records", id, i)
		}
		seen[id] = true
	}
}

func TestNormalizer_ZeroValue(t *testing.T) {
	var n Normalizer
	a := n.NormalizeRecord(map[string]any{})
	b := n.NormalizeRecord(map[string]any{})
	if a.ID.Key() == b.ID.Key() {
		t.Errorf("zero Normalizer produced the same id twice: %s", a.ID)
	}
}

func TestNormalizeGoalAndPayout(t *testing.T) {
	n := testNormalizer()

	g := n.NormalizeGoal(looseObject(t, `{"name":"Trip","amount":"1000"}`))
	if g.Name != "Trip" || g.Amount != 1000 || g.ID.IsZero() || g.CreatedAt != "2024-03-05T18:30:00.000Z" {
		t.Errorf("NormalizeGoal() = %+v", g)
	}

	p := n.NormalizePayout(looseObject(t, `{"amount":"250.5"}`))
	if p.Amount != 250.5 || p.ID.IsZero() || p.Date != "05.03.2024" {
		t.Errorf("NormalizePayout() = %+v", p)
	}
}
