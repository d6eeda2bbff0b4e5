package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-manager/internal/domain/client"
	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// upsert grava pelo id, sobrescrevendo tudo menos created_at.
func upsert(db *gorm.DB, v any) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(v).Error
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *ClientGormRepository) CreateClient(ctx context.Context, c *models.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientGormRepository) GetClient(ctx context.Context, id string) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "client_not_found")
	}
	return &c, nil
}

func (r *ClientGormRepository) UpdateClient(ctx context.Context, c *models.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// DeleteClient remove só o cliente; histórico de serviços e presenças fica.
func (r *ClientGormRepository) DeleteClient(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Client{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("client_not_found")
	}
	return nil
}

func (r *ClientGormRepository) ListClients(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Client, error) {

	q := r.db.WithContext(ctx).Model(&models.Client{})

	if f.Query != "" {
		like := "%" + strings.ToLower(f.Query) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			like, like, like,
		)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var clients []models.Client
	if err := q.Order("name ASC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *ClientGormRepository) SaveClientService(ctx context.Context, s *models.ClientService) error {
	return upsert(r.db.WithContext(ctx), s)
}

func (r *ClientGormRepository) GetClientService(ctx context.Context, id string) (*models.ClientService, error) {
	var s models.ClientService
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "service_not_found")
	}
	return &s, nil
}

func (r *ClientGormRepository) ListClientServices(ctx context.Context, clientID string) ([]models.ClientService, error) {
	var out []models.ClientService
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date DESC, created_at DESC").
		Find(&out).Error
	return out, err
}

// --------------------------------------------------
// Attendance
// --------------------------------------------------

func (r *ClientGormRepository) SaveAttendance(ctx context.Context, a *models.ClientAttendance) error {
	return upsert(r.db.WithContext(ctx), a)
}

func (r *ClientGormRepository) ListAttendance(ctx context.Context, clientID string) ([]models.ClientAttendance, error) {
	var out []models.ClientAttendance
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date DESC, created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *ClientGormRepository) ListAllAttendance(ctx context.Context) ([]models.ClientAttendance, error) {
	var out []models.ClientAttendance
	err := r.db.WithContext(ctx).Order("date DESC").Find(&out).Error
	return out, err
}

var _ domain.Repository = (*ClientGormRepository)(nil)
