package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

func TestColorForCyclesPalette(t *testing.T) {
	if got := ColorFor(0); got != Palette[0] {
		t.Errorf("ColorFor(0) = %s", got)
	}
	if got := ColorFor(int64(len(Palette)) + 1); got != Palette[1] {
		t.Errorf("ColorFor(len+1) = %s, want %s", got, Palette[1])
	}
}

func TestApplyClientAndServiceRecomputeTitle(t *testing.T) {
	ap := &models.Appointment{}
	ApplyClient(ap, &models.Client{ID: "c1", Name: "Ana Silva", Phone: "+351910000000"})
	ApplyService(ap, &models.Service{ID: "s1", Name: "Corte", DurationMin: 45})

	if ap.Title != "Ana Silva – Corte" {
		t.Fatalf("title = %q", ap.Title)
	}
	if ap.ServiceDuration != 45 || ap.ClientPhone != "+351910000000" {
		t.Fatalf("denormalized fields not copied: %+v", ap)
	}
}

func TestScheduleDefaultsEndFromDuration(t *testing.T) {
	ap := &models.Appointment{ServiceDuration: 30}
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	if err := Schedule(ap, start, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ap.EndTime.Equal(start.Add(30 * time.Minute)) {
		t.Errorf("end = %v", ap.EndTime)
	}

	before := start.Add(-time.Minute)
	if err := Schedule(ap, start, &before); !httperr.IsBusiness(err, "invalid_time_range") {
		t.Errorf("expected invalid_time_range, got %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"", StatusPending, false},
		{"confirmed", StatusConfirmed, false},
		{"cancelled", StatusCancelled, false},
		{"completed", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStatus(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
