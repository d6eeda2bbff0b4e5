package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-manager/internal/domain/automation"
	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

type AutomationGormRepository struct {
	db *gorm.DB
}

func NewAutomationGormRepository(db *gorm.DB) *AutomationGormRepository {
	return &AutomationGormRepository{db: db}
}

func (r *AutomationGormRepository) CreateAutomation(ctx context.Context, a *models.Automation) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AutomationGormRepository) GetAutomation(ctx context.Context, id string) (*models.Automation, error) {
	var a models.Automation
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "automation_not_found")
	}
	return &a, nil
}

func (r *AutomationGormRepository) UpdateAutomation(ctx context.Context, a *models.Automation) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AutomationGormRepository) DeleteAutomation(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Automation{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("automation_not_found")
	}
	return nil
}

func (r *AutomationGormRepository) ListAutomations(ctx context.Context, onlyActive bool) ([]models.Automation, error) {
	q := r.db.WithContext(ctx).Model(&models.Automation{})
	if onlyActive {
		q = q.Where("active = ?", true)
	}

	var out []models.Automation
	err := q.Order("name ASC").Find(&out).Error
	return out, err
}

// --------------------------------------------------
// Message log
// --------------------------------------------------

func (r *AutomationGormRepository) CreateMessageLog(ctx context.Context, l *models.MessageLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *AutomationGormRepository) ListMessageLogs(ctx context.Context, automationID string) ([]models.MessageLog, error) {
	var out []models.MessageLog
	err := r.db.WithContext(ctx).
		Where("automation_id = ?", automationID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

var _ domain.Repository = (*AutomationGormRepository)(nil)
