package aggie

import (
	"testing"
	"time"
)

// USD is a helper for tests to create dollar amounts from consts.
func USD(v float64) Money { return M(v) }

// run is a helper for tests to create report generation times.
func run(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 9, 15, 0, 0, time.UTC)
}

// mustSnapshot builds an in-memory snapshot or fails the test.
func mustSnapshot(t *testing.T, generatedAt time.Time, projects ...Project) *Snapshot {
	t.Helper()
	s, err := NewSnapshot(generatedAt, projects...)
	if err != nil {
		t.Fatalf("NewSnapshot() error = %v", err)
	}
	return s
}
