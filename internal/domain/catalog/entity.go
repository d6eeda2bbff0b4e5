package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

// DefaultServices é o catálogo gravado no primeiro setup.
var DefaultServices = []models.Service{
	{Name: "Corte", DurationMin: 45, Price: decimal.NewFromInt(20), Active: true},
	{Name: "Brushing", DurationMin: 30, Price: decimal.NewFromInt(15), Active: true},
	{Name: "Coloração", DurationMin: 90, Price: decimal.NewFromInt(45), Active: true},
	{Name: "Madeixas", DurationMin: 120, Price: decimal.NewFromInt(60), Active: true},
	{Name: "Tratamento capilar", DurationMin: 60, Price: decimal.NewFromInt(30), Active: true},
	{Name: "Manicure", DurationMin: 45, Price: decimal.NewFromInt(12), Active: true},
	{Name: "Pedicure", DurationMin: 60, Price: decimal.NewFromInt(18), Active: true},
	{Name: "Depilação", DurationMin: 30, Price: decimal.NewFromInt(10), Active: true},
}

func ValidateProduct(p *models.Product) error {
	if p.Name == "" {
		return httperr.ErrBusiness("invalid_product")
	}
	if p.Price.IsNegative() || p.Cost.IsNegative() {
		return httperr.ErrBusiness("invalid_amount")
	}
	if p.Stock < 0 || p.MinStock < 0 {
		return httperr.ErrBusiness("invalid_stock")
	}
	if p.Unit == "" {
		p.Unit = "un"
	}
	p.Price = p.Price.Round(2)
	p.Cost = p.Cost.Round(2)
	return nil
}

// StockChange aceita um delta ou um valor absoluto; o estoque nunca fica negativo.
type StockChange struct {
	Delta *int
	Stock *int
}

func ApplyStock(p *models.Product, ch StockChange) error {
	next := p.Stock
	switch {
	case ch.Stock != nil:
		next = *ch.Stock
	case ch.Delta != nil:
		next = p.Stock + *ch.Delta
	default:
		return httperr.ErrBusiness("invalid_stock")
	}
	if next < 0 {
		return httperr.ErrBusiness("invalid_stock")
	}
	p.Stock = next
	return nil
}

func LowStock(products []models.Product) []models.Product {
	out := []models.Product{}
	for _, p := range products {
		if p.Active && p.LowStock() {
			out = append(out, p)
		}
	}
	return out
}
