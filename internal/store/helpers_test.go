package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"shiftbook/internal/core"
	"shiftbook/internal/notify"
	"shiftbook/internal/storage"
)

var testNow = time.Date(2024, time.March, 5, 18, 30, 0, 0, time.UTC)

func testCalendar() core.Calendar {
	return core.Calendar{
		Location: time.UTC,
		Clock:    func() time.Time { return testNow },
	}
}

func testNormalizer() Normalizer {
	return NewNormalizer(testCalendar())
}

func loose(t *testing.T, s string) any {
	t.Helper()
	v, err := core.DecodeLoose([]byte(s))
	if err != nil {
		t.Fatalf("DecodeLoose(%s) error = %v", s, err)
	}
	return v
}

func looseObject(t *testing.T, s string) map[string]any {
	t.Helper()
	m, ok := loose(t, s).(map[string]any)
	if !ok {
		t.Fatalf("%s is not an object", s)
	}
	return m
}

// faultyKV wraps Memory and fails on demand.
type faultyKV struct {
	*storage.Memory
	setErr error
	getErr error
	sets   int
}

func newFaultyKV() *faultyKV {
	return &faultyKV{Memory: storage.NewMemory(0)}
}

func (f *faultyKV) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.Memory.Get(ctx, key)
}

func (f *faultyKV) Set(ctx context.Context, key string, value []byte) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	return f.Memory.Set(ctx, key, value)
}

var errDiskFull = errors.New("disk full")

func openTest(t *testing.T, kv storage.KV) (*Store, *notify.Recorder) {
	t.Helper()
	rec := &notify.Recorder{}
	s, err := Open(context.Background(), kv, WithCalendar(testCalendar()), WithNotifier(rec))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s, rec
}

func ids(records []core.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID.Key()
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
