package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *CatalogGormRepository) ListServices(ctx context.Context, onlyActive bool) ([]models.Service, error) {
	q := r.db.WithContext(ctx).Model(&models.Service{})
	if onlyActive {
		q = q.Where("active = ?", true)
	}
	var out []models.Service
	err := q.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *CatalogGormRepository) GetServiceByName(ctx context.Context, name string) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, "name = ?", name).Error; err != nil {
		return nil, notFound(err, "service_not_found")
	}
	return &s, nil
}

// SaveService é idempotente pelo nome; rodar o setup de novo não duplica o catálogo.
func (r *CatalogGormRepository) SaveService(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(s).Error
}

// --------------------------------------------------
// Products
// --------------------------------------------------

func (r *CatalogGormRepository) CreateProduct(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *CatalogGormRepository) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "product_not_found")
	}
	return &p, nil
}

func (r *CatalogGormRepository) UpdateProduct(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *CatalogGormRepository) DeleteProduct(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("product_not_found")
	}
	return nil
}

func (r *CatalogGormRepository) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var out []models.Product
	err := q.Order("name ASC").Find(&out).Error
	return out, err
}

var _ domain.Repository = (*CatalogGormRepository)(nil)
