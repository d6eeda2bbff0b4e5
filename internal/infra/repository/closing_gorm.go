package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-manager/internal/domain/closing"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

type ClosingGormRepository struct {
	db *gorm.DB
}

func NewClosingGormRepository(db *gorm.DB) *ClosingGormRepository {
	return &ClosingGormRepository{db: db}
}

func (r *ClosingGormRepository) GetClosing(ctx context.Context, date string) (*models.ClosingRecord, error) {
	var rec models.ClosingRecord
	if err := r.db.WithContext(ctx).First(&rec, "date = ?", date).Error; err != nil {
		return nil, notFound(err, "closing_not_found")
	}
	return &rec, nil
}

func (r *ClosingGormRepository) SaveClosing(ctx context.Context, rec *models.ClosingRecord) error {
	return upsert(r.db.WithContext(ctx), rec)
}

func (r *ClosingGormRepository) ListClosings(ctx context.Context, from, to string) ([]models.ClosingRecord, error) {
	var out []models.ClosingRecord
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date DESC").
		Find(&out).Error
	return out, err
}

var _ domain.Repository = (*ClosingGormRepository)(nil)
