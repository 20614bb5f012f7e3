package store

import "shiftbook/internal/core"

// Shape names the layouts a stored document is recognized in.
type Shape int

const (
	// ShapeBare is anything unrecognized, including non-objects.
	ShapeBare Shape = iota
	// ShapeCurrent carries the current version tag.
	ShapeCurrent
	// ShapeSingleGoal is the legacy layout with one named goal object.
	ShapeSingleGoal
	// ShapeGoalList keeps goals as a sequence under an older or missing tag.
	ShapeGoalList
)

func (s Shape) String() string {
	switch s {
	case ShapeCurrent:
		return "current"
	case ShapeSingleGoal:
		return "single_goal"
	case ShapeGoalList:
		return "goal_list"
	default:
		return "bare"
	}
}

// Classify decides which shape v has.
func Classify(v any) Shape {
	obj, ok := v.(map[string]any)
	if !ok {
		return ShapeBare
	}
	if version, ok := obj["version"].(string); ok && version == core.CurrentVersion {
		return ShapeCurrent
	}
	if _, ok := legacyGoal(obj); ok {
		return ShapeSingleGoal
	}
	if core.IsSequence(obj["goals"]) {
		return ShapeGoalList
	}
	return ShapeBare
}

// legacyGoal returns the single named goal of the oldest layout. It wins
// over a goals sequence whatever the version tag says.
func legacyGoal(obj map[string]any) (map[string]any, bool) {
	goal, ok := obj["goal"].(map[string]any)
	if !ok || !core.Truthy(goal["name"]) {
		return nil, false
	}
	return goal, true
}

// Migrator upgrades documents of any shape to the current schema. It does
// not persist anything; the store does that.
type Migrator struct {
	Normalizer Normalizer
}

// Migrate never fails: whatever cannot be read keeps its default.
func (m Migrator) Migrate(v any) core.Document {
	doc := NewDefault()
	obj, _ := v.(map[string]any)
	if obj == nil {
		return doc
	}

	if p, ok := obj["profile"].(map[string]any); ok {
		doc.Profile = core.OverlayProfile(doc.Profile, p)
	}

	for _, r := range core.Objects(obj["records"]) {
		doc.Records = append(doc.Records, m.Normalizer.NormalizeRecord(r))
	}

	if legacy, ok := legacyGoal(obj); ok {
		doc.Goals = []core.Goal{{
			ID:        m.Normalizer.nextID(),
			Name:      core.Text(legacy["name"]),
			Amount:    core.Float(legacy["amount"]),
			CreatedAt: core.ISOTimestamp(m.Normalizer.Calendar.Now()).String(),
		}}
	} else {
		// goals are carried over as they are, without new ids or dates
		for _, g := range core.Objects(obj["goals"]) {
			doc.Goals = append(doc.Goals, core.GoalFromLoose(g))
		}
	}

	for _, p := range core.Objects(obj["payouts"]) {
		doc.Payouts = append(doc.Payouts, core.PayoutFromLoose(p))
	}

	doc.Recalculate()
	return doc
}
