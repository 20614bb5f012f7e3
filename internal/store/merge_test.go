package store

import (
	"fmt"
	"math/rand"
	"testing"

	"shiftbook/internal/core"
	"shiftbook/internal/importer"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"numeric totals", `{"records":[{"total":10},{"total":0},{"total":-5.5}]}`, true},
		{"empty records", `{"records":[]}`, true},
		{"missing records", `{"goals":[]}`, false},
		{"records not a list", `{"records":{"total":1}}`, false},
		{"string total", `{"records":[{"total":10},{"total":"20"}]}`, false},
		{"missing total", `{"records":[{"total":10},{"tips":5}]}`, false},
		{"null total", `{"records":[{"total":null}]}`, false},
		{"non-object record", `{"records":[{"total":10},5]}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := importer.Candidate(looseObject(t, tt.input))
			if got := IsValid(c); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}

	if IsValid(nil) {
		t.Error("IsValid(nil) = true")
	}
}

func TestIsValid_TabularCandidate(t *testing.T) {
	c := importer.FromRows([][]string{
		{"Date", "Base Pay", "Sales", "Percentage", "Sales Income", "Tips", "Total"},
		{"05.03.2024", "x", "y", "z", "", "", "oops"},
	})
	if !IsValid(c) {
		t.Error("tabular candidates always carry numeric totals")
	}
}

func record(id string, total float64) core.Record {
	return core.Record{ID: core.NumericID(id), Total: total}
}

func TestMerge_CurrentWins(t *testing.T) {
	current := NewDefault()
	current.Records = []core.Record{record("1", 10)}
	incoming := NewDefault()
	incoming.Records = []core.Record{record("1", 999), record("2", 20)}

	merged := Merge(current, incoming)

	if got := ids(merged.Records); !equalStrings(got, []string{"1", "2"}) {
		t.Fatalf("ids = %v, want [1 2]", got)
	}
	if merged.Records[0].Total != 10 || merged.Records[1].Total != 20 {
		t.Errorf("records = %+v", merged.Records)
	}
	if merged.TotalEarnings != 30 {
		t.Errorf("TotalEarnings = %v, want 30", merged.TotalEarnings)
	}
}

func TestMerge_IDIdentity(t *testing.T) {
	tests := []struct {
		name     string
		current  core.ID
		incoming core.ID
		want     int
	}{
		{"number and string differ", core.NumericID("1"), core.StringID("1"), 2},
		{"string and number differ", core.StringID("1"), core.NumericID("1"), 2},
		{"1 and 1.0 match", core.NumericID("1"), core.NumericID("1.0"), 1},
		{"exponent form matches", core.NumericID("1700000000000"), core.NumericID("1.7e12"), 1},
		{"0 and -0 match", core.NumericID("0"), core.NumericID("-0"), 1},
		{"strings compare by text", core.StringID("1.0"), core.StringID("1"), 2},
		{"equal strings match", core.StringID("abc"), core.StringID("abc"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := NewDefault()
			current.Records = []core.Record{{ID: tt.current, Total: 10}}
			incoming := NewDefault()
			incoming.Records = []core.Record{{ID: tt.incoming, Total: 50}}

			got := Merge(current, incoming)
			if len(got.Records) != tt.want {
				t.Fatalf("got %d records, want %d: %+v", len(got.Records), tt.want, got.Records)
			}
			if got.Records[0].ID != tt.current || got.Records[0].Total != 10 {
				t.Errorf("first record = %+v, want the current one", got.Records[0])
			}
		})
	}
}

func TestMerge_Dedup(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 50; round++ {
		current := NewDefault()
		incoming := NewDefault()
		nCurrent, nIncoming := rng.Intn(10), rng.Intn(15)
		for i := 0; i < nCurrent; i++ {
			current.Records = append(current.Records, record(fmt.Sprint(i*2), 1))
		}
		for i := 0; i < nIncoming; i++ {
			incoming.Records = append(incoming.Records, record(fmt.Sprint(rng.Intn(20)), 2))
		}

		merged := Merge(current, incoming)

		count := map[string]int{}
		for _, r := range merged.Records {
			count[r.ID.Key()]++
		}
		for id, n := range count {
			if n != 1 {
				t.Fatalf("round %d: id %s appears %d times", round, id, n)
			}
		}
		for _, r := range current.Records {
			if count[r.ID.Key()] != 1 {
				t.Fatalf("round %d: current id %s missing", round, r.ID)
			}
		}
		for _, r := range incoming.Records {
			if count[r.ID.Key()] != 1 {
				t.Fatalf("round %d: incoming id %s missing", round, r.ID)
			}
		}
		if got := ids(merged.Records[:len(current.Records)]); !equalStrings(got, ids(current.Records)) {
			t.Fatalf("round %d: current records not first: %v", round, got)
		}
		if merged.TotalEarnings != core.SumTotals(merged.Records) {
			t.Fatalf("round %d: totalEarnings not recomputed", round)
		}
	}
}

func TestMerge_GoalsUnionPayoutsUntouched(t *testing.T) {
	current := NewDefault()
	current.Goals = []core.Goal{{ID: core.NumericID("1"), Name: "Car", Amount: 500}}
	current.Payouts = []core.Payout{{ID: core.NumericID("9"), Amount: 100}}
	current.Profile.FirstName = "Anna"

	incoming := NewDefault()
	incoming.Version = "0.1"
	incoming.Profile.FirstName = "Someone else"
	incoming.Goals = []core.Goal{
		{ID: core.NumericID("1"), Name: "Not this", Amount: 1},
		{ID: core.NumericID("2"), Name: "Trip", Amount: 1000},
		{ID: core.NumericID("2"), Name: "Trip copy", Amount: 1000},
	}
	incoming.Payouts = []core.Payout{{ID: core.NumericID("10"), Amount: 700}}

	merged := Merge(current, incoming)

	if len(merged.Goals) != 2 || merged.Goals[0].Name != "Car" || merged.Goals[1].Name != "Trip" {
		t.Errorf("goals = %+v", merged.Goals)
	}
	if len(merged.Payouts) != 1 || merged.Payouts[0].ID.Key() != "9" {
		t.Errorf("payouts = %+v, want current payouts only", merged.Payouts)
	}
	if merged.Version != current.Version || merged.Profile.FirstName != "Anna" {
		t.Errorf("version/profile taken from incoming: %q %+v", merged.Version, merged.Profile)
	}
}

func TestMerge_DoesNotAliasCurrent(t *testing.T) {
	current := NewDefault()
	current.Records = make([]core.Record, 1, 10)
	current.Records[0] = record("1", 1)
	incoming := NewDefault()
	incoming.Records = []core.Record{record("2", 2)}

	Merge(current, incoming)

	if len(current.Records) != 1 || current.Records[:2][1].ID.Key() == "2" {
		t.Error("Merge wrote into the current document's backing array")
	}
}
