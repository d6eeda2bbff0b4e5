package timezone

import (
	"testing"
	"time"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	loc := Location("Not/AZone")
	if loc.String() != DefaultTimezone && loc != time.UTC {
		t.Fatalf("expected default location, got %s", loc)
	}
}

func TestDayRange(t *testing.T) {
	start, end, err := DayRange("2026-03-10", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Errorf("range = %v, want 24h", end.Sub(start))
	}

	if _, _, err := DayRange("10/03/2026", time.UTC); err == nil {
		t.Error("expected error for non ISO date")
	}
}

func TestDayKey(t *testing.T) {
	ts := time.Date(2026, 1, 2, 23, 59, 0, 0, time.UTC)
	if got := DayKey(ts); got != "2026-01-02" {
		t.Errorf("DayKey() = %s", got)
	}
}
