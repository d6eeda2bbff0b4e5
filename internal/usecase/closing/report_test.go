package closing

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/salon-manager/internal/domain/closing"
)

type memReports struct {
	enabled bool
	objects map[string][]byte
}

func (m *memReports) Enabled() bool { return m.enabled }

func (m *memReports) Put(_ context.Context, key string, body []byte, _ string) error {
	m.objects[key] = body
	return nil
}

func TestArchiveReport(t *testing.T) {
	store := &memReports{enabled: true, objects: map[string][]byte{}}
	hook := ArchiveReport(store, fixedNowFunc)

	s := domain.NewSession("s-1", day, nil)
	stats := domain.Stats{ClientCount: 1, ServiceCount: 1, TotalRevenue: decimal.NewFromInt(25)}
	if err := hook(context.Background(), s, stats); err != nil {
		t.Fatal(err)
	}

	body, ok := store.objects["closings/"+day+".json"]
	if !ok {
		t.Fatalf("report not stored: %v", store.objects)
	}
	var got struct {
		Session struct {
			Date string `json:"date"`
		} `json:"session"`
		Stats struct {
			TotalRevenue string `json:"total_revenue"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatal(err)
	}
	if got.Session.Date != day || got.Stats.TotalRevenue != "25" {
		t.Errorf("report = %s", body)
	}

	disabled := &memReports{objects: map[string][]byte{}}
	if err := ArchiveReport(disabled, fixedNowFunc)(context.Background(), s, stats); err != nil || len(disabled.objects) != 0 {
		t.Errorf("disabled store written: %v %v", err, disabled.objects)
	}
}

func fixedNowFunc() time.Time { return fixedNow }
