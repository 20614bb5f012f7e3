package store

import (
	"shiftbook/internal/core"
	"shiftbook/internal/importer"
)

// IsValid accepts a candidate only when it has a records sequence and every
// record is an object with a finite numeric total. One bad record rejects
// the whole candidate.
func IsValid(c importer.Candidate) bool {
	list, ok := c["records"].([]any)
	if !ok {
		return false
	}
	for _, item := range list {
		rec, ok := item.(map[string]any)
		if !ok || !core.FiniteNumber(rec["total"]) {
			return false
		}
	}
	return true
}

// Merge adds the records and goals of incoming whose ids current does not
// have yet. Current entries come first and win ties; payouts are taken from
// current only.
func Merge(current, incoming core.Document) core.Document {
	merged := current.Clone()
	merged.Records = unionByID(merged.Records, incoming.Records, func(r core.Record) core.ID { return r.ID })
	merged.Goals = unionByID(merged.Goals, incoming.Goals, func(g core.Goal) core.ID { return g.ID })
	merged.Recalculate()
	return merged
}

func unionByID[T any](current, incoming []T, id func(T) core.ID) []T {
	out := make([]T, 0, len(current)+len(incoming))
	seen := make(map[string]bool, len(current)+len(incoming))
	for _, item := range current {
		seen[id(item).Identity()] = true
		out = append(out, item)
	}
	for _, item := range incoming {
		key := id(item).Identity()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

// fromCandidate converts a validated candidate into a document to merge.
func (n Normalizer) fromCandidate(c importer.Candidate) core.Document {
	doc := NewDefault()
	for _, r := range core.Objects(c["records"]) {
		doc.Records = append(doc.Records, n.NormalizeRecord(r))
	}
	for _, g := range core.Objects(c["goals"]) {
		doc.Goals = append(doc.Goals, n.NormalizeGoal(g))
	}
	doc.Recalculate()
	return doc
}
