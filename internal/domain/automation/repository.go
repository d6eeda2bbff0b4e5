package automation

import (
	"context"

	"github.com/BruksfildServices01/salon-manager/internal/models"
)

type Repository interface {
	CreateAutomation(ctx context.Context, a *models.Automation) error
	GetAutomation(ctx context.Context, id string) (*models.Automation, error)
	UpdateAutomation(ctx context.Context, a *models.Automation) error
	DeleteAutomation(ctx context.Context, id string) error
	ListAutomations(ctx context.Context, onlyActive bool) ([]models.Automation, error)

	CreateMessageLog(ctx context.Context, l *models.MessageLog) error
	ListMessageLogs(ctx context.Context, automationID string) ([]models.MessageLog, error)
}
