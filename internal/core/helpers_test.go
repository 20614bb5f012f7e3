package core

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return ts
}

func fixedCalendar(t *testing.T, s string) Calendar {
	t.Helper()
	now := mustTime(t, s)
	return Calendar{Location: time.UTC, Clock: func() time.Time { return now }}
}
