package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-manager/internal/domain/settings"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

type SettingsGormRepository struct {
	db *gorm.DB
}

func NewSettingsGormRepository(db *gorm.DB) *SettingsGormRepository {
	return &SettingsGormRepository{db: db}
}

// GetSnapshot devolve (nil, nil) quando a chave nunca foi gravada.
func (r *SettingsGormRepository) GetSnapshot(ctx context.Context, key string) (*models.SettingsSnapshot, error) {
	var s models.SettingsSnapshot
	err := r.db.WithContext(ctx).Where("key = ?", key).Limit(1).Find(&s).Error
	if err != nil {
		return nil, err
	}
	if s.ID == 0 {
		return nil, nil
	}
	return &s, nil
}

func (r *SettingsGormRepository) SaveSnapshot(ctx context.Context, s *models.SettingsSnapshot) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"version", "payload", "updated_at"}),
	}).Create(s).Error
}

var _ domain.Repository = (*SettingsGormRepository)(nil)
