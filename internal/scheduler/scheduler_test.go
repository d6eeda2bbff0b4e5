package scheduler

import (
	"context"
	"testing"
	"time"
)

func TestEveryRejectsInvalidSpec(t *testing.T) {
	s := New(time.UTC)
	if err := s.Every("not a cron", "bad", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected error for invalid cron spec")
	}
}

func TestEveryRegistersJob(t *testing.T) {
	s := New(time.UTC)
	if err := s.Every("0 9 * * *", "automations", func(context.Context) error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len(s.cron.Entries()); n != 1 {
		t.Errorf("entries = %d", n)
	}
	s.Start()
	s.Stop()
}
