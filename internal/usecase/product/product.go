package product

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-manager/internal/audit"
	domain "github.com/BruksfildServices01/salon-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-manager/internal/models"
	"github.com/BruksfildServices01/salon-manager/internal/storage"
)

// ObjectStore é onde ficam as imagens dos produtos (S3 em produção).
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	Delete(ctx context.Context, key string) error
}

type ProductInput struct {
	Name        *string
	Category    *string
	Description *string
	Unit        *string
	Price       *decimal.Decimal
	Cost        *decimal.Decimal
	Stock       *int
	MinStock    *int
	Active      *bool
}

func apply(p *models.Product, in ProductInput) error {
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Unit != nil {
		p.Unit = *in.Unit
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Cost != nil {
		p.Cost = *in.Cost
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.MinStock != nil {
		p.MinStock = *in.MinStock
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	return domain.ValidateProduct(p)
}

// ======================================================
// USE CASE
// ======================================================

type Products struct {
	repo   domain.Repository
	images ObjectStore
	audit  *audit.Dispatcher
}

func NewProducts(repo domain.Repository, images ObjectStore, audit *audit.Dispatcher) *Products {
	return &Products{repo: repo, images: images, audit: audit}
}

// Setup garante o catálogo padrão de serviços; pode ser chamado várias vezes.
func (uc *Products) Setup(ctx context.Context) ([]models.Service, error) {
	for _, s := range domain.DefaultServices {
		s.ID = uuid.NewString()
		if err := uc.repo.SaveService(ctx, &s); err != nil {
			return nil, err
		}
	}
	return uc.repo.ListServices(ctx, false)
}

func (uc *Products) Services(ctx context.Context, onlyActive bool) ([]models.Service, error) {
	return uc.repo.ListServices(ctx, onlyActive)
}

func (uc *Products) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	p := &models.Product{ID: uuid.NewString(), Active: true}
	if err := apply(p, in); err != nil {
		return nil, err
	}
	if err := uc.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "product_created",
		Entity:   "product",
		EntityID: p.ID,
	})
	return p, nil
}

func (uc *Products) Update(ctx context.Context, id string, in ProductInput) (*models.Product, error) {
	p, err := uc.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(p, in); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *Products) Delete(ctx context.Context, id string) error {
	p, err := uc.repo.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	if p.ImageKey != "" && uc.images != nil {
		if err := uc.images.Delete(ctx, p.ImageKey); err != nil {
			log.Printf("[product] delete image %s: %v", p.ImageKey, err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "product_deleted",
		Entity:   "product",
		EntityID: id,
	})
	return nil
}

func (uc *Products) Get(ctx context.Context, id string) (*models.Product, error) {
	return uc.repo.GetProduct(ctx, id)
}

func (uc *Products) List(ctx context.Context, category string) ([]models.Product, error) {
	return uc.repo.ListProducts(ctx, category)
}

func (uc *Products) LowStock(ctx context.Context) ([]models.Product, error) {
	list, err := uc.repo.ListProducts(ctx, "")
	if err != nil {
		return nil, err
	}
	return domain.LowStock(list), nil
}

// AdjustStock aplica um delta ou um valor absoluto ao estoque.
func (uc *Products) AdjustStock(ctx context.Context, id string, ch domain.StockChange) (*models.Product, error) {
	p, err := uc.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.ApplyStock(p, ch); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}

	if p.Active && p.LowStock() {
		log.Printf("[product] %s low on stock (%d/%d)", p.Name, p.Stock, p.MinStock)
	}
	return p, nil
}

// UploadImage converte a imagem para webp e grava em products/<id>.webp.
func (uc *Products) UploadImage(ctx context.Context, id string, raw []byte) (*models.Product, error) {
	p, err := uc.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	body, err := storage.ProductImage(raw)
	if err != nil {
		return nil, err
	}

	key := "products/" + p.ID + ".webp"
	if err := uc.images.Put(ctx, key, body, "image/webp"); err != nil {
		return nil, err
	}

	p.ImageKey = key
	if err := uc.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
