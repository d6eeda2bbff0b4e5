package financial

import (
	"context"

	"github.com/BruksfildServices01/salon-manager/internal/models"
)

type ListFilter struct {
	From string
	To   string
	Type string
}

type Repository interface {
	// SaveTransaction é um upsert pelo id.
	SaveTransaction(ctx context.Context, tx *models.Transaction) error
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	ListTransactions(ctx context.Context, f ListFilter) ([]models.Transaction, error)
	ListTransactionsByDate(ctx context.Context, date string) ([]models.Transaction, error)

	GetSummaryByDate(ctx context.Context, date string) (*models.DailySummary, error)
	SaveSummary(ctx context.Context, s *models.DailySummary) error
	ListSummaries(ctx context.Context, from string, to string) ([]models.DailySummary, error)
}
