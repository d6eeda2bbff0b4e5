package models

import "time"

// Service é o catálogo fixo de serviços do salão.
type Service struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"size:120;uniqueIndex;not null" json:"name"`
	DurationMin int    `json:"duration_min"`
	Price       Money  `gorm:"type:decimal(10,2);not null" json:"price"`
	Active      bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Product struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"size:120;not null" json:"name"`
	Category    string `gorm:"size:50" json:"category"`
	Description string `gorm:"size:255" json:"description"`
	Unit        string `gorm:"size:20" json:"unit"`

	Price Money `gorm:"type:decimal(10,2);not null" json:"price"`
	Cost  Money `gorm:"type:decimal(10,2);not null" json:"cost"`

	Stock    int `json:"stock"`
	MinStock int `json:"min_stock"`

	ImageKey string `gorm:"size:255" json:"image_key"`
	Active   bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
