package catalog

import (
	"context"

	"github.com/BruksfildServices01/salon-manager/internal/models"
)

type Repository interface {
	// -------- Services --------
	ListServices(ctx context.Context, onlyActive bool) ([]models.Service, error)
	GetServiceByName(ctx context.Context, name string) (*models.Service, error)
	SaveService(ctx context.Context, s *models.Service) error

	// -------- Products --------
	CreateProduct(ctx context.Context, p *models.Product) error
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	UpdateProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context, category string) ([]models.Product, error)
}
