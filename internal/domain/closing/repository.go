package closing

import (
	"context"

	"github.com/BruksfildServices01/salon-manager/internal/models"
)

type Repository interface {
	// GetClosing devolve closing_not_found quando o dia ainda não foi aberto.
	GetClosing(ctx context.Context, date string) (*models.ClosingRecord, error)
	SaveClosing(ctx context.Context, rec *models.ClosingRecord) error
	ListClosings(ctx context.Context, from string, to string) ([]models.ClosingRecord, error)
}
