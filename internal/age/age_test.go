package age

import (
	"testing"
	"time"
)

func TestSince(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		then time.Time
		want time.Duration
		ok   bool
	}{
		{name: "past", then: now.Add(-10 * time.Minute), want: 10 * time.Minute, ok: true},
		{name: "now", then: now, want: 0, ok: true},
		{name: "clamps future", then: now.Add(4 * time.Minute), want: 0, ok: true},
		{name: "zero time", then: time.Time{}, want: 0, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Since(tc.then, now)
			if ok != tc.ok {
				t.Fatalf("expected ok %v, got %v", tc.ok, ok)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDoneAge(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	if _, ok := DoneAge(nil, now); ok {
		t.Fatal("expected pending event to have no done age")
	}

	doneAt := now.Add(-36 * time.Hour)
	got, ok := DoneAge(&doneAt, now)
	if !ok || got != 36*time.Hour {
		t.Fatalf("expected 36h, got %v (ok=%v)", got, ok)
	}
}
