package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

func intp(v int) *int { return &v }

func TestApplyStock(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		change  StockChange
		want    int
		errCode string
	}{
		{"delta up", 3, StockChange{Delta: intp(2)}, 5, ""},
		{"delta down", 3, StockChange{Delta: intp(-3)}, 0, ""},
		{"below zero", 3, StockChange{Delta: intp(-4)}, 3, "invalid_stock"},
		{"absolute", 3, StockChange{Stock: intp(10)}, 10, ""},
		{"absolute negative", 3, StockChange{Stock: intp(-1)}, 3, "invalid_stock"},
		{"empty", 3, StockChange{}, 3, "invalid_stock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.Product{Stock: tt.start}
			err := ApplyStock(p, tt.change)
			if tt.errCode != "" {
				if !httperr.IsBusiness(err, tt.errCode) {
					t.Fatalf("expected %s, got %v", tt.errCode, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Stock != tt.want {
				t.Errorf("stock = %d, want %d", p.Stock, tt.want)
			}
		})
	}
}

func TestValidateProduct(t *testing.T) {
	p := &models.Product{Name: "Champô", Price: decimal.RequireFromString("9.999")}
	if err := ValidateProduct(p); err != nil {
		t.Fatal(err)
	}
	if p.Unit != "un" || !p.Price.Equal(decimal.RequireFromString("10")) {
		t.Errorf("product not normalised: %+v", p)
	}

	if err := ValidateProduct(&models.Product{Name: "x", Cost: decimal.NewFromInt(-1)}); !httperr.IsBusiness(err, "invalid_amount") {
		t.Errorf("expected invalid_amount, got %v", err)
	}
}

func TestLowStock(t *testing.T) {
	got := LowStock([]models.Product{
		{Name: "a", Stock: 1, MinStock: 2, Active: true},
		{Name: "b", Stock: 5, MinStock: 2, Active: true},
		{Name: "c", Stock: 0, MinStock: 2, Active: false},
	})
	if len(got) != 1 || got[0].Name != "a" {
		t.Errorf("LowStock = %+v", got)
	}
}
