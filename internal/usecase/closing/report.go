package closing

import (
	"context"
	"encoding/json"
	"time"

	domain "github.com/BruksfildServices01/salon-manager/internal/domain/closing"
)

type ReportStore interface {
	Enabled() bool
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

type report struct {
	Session     *domain.Session `json:"session"`
	Stats       domain.Stats    `json:"stats"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// ArchiveReport grava o fechamento concluído em closings/<data>.json.
// Sem armazenamento configurado o hook não faz nada.
func ArchiveReport(store ReportStore, now func() time.Time) CompletionHook {
	return func(ctx context.Context, s *domain.Session, stats domain.Stats) error {
		if store == nil || !store.Enabled() {
			return nil
		}

		body, err := json.MarshalIndent(report{
			Session:     s,
			Stats:       stats,
			GeneratedAt: now(),
		}, "", "  ")
		if err != nil {
			return err
		}
		return store.Put(ctx, "closings/"+s.Date+".json", body, "application/json")
	}
}
