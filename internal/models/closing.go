package models

import (
	"time"

	"gorm.io/datatypes"
)

// ClosingRecord guarda o fechamento de caixa de um dia, permitindo retomar
// um fechamento interrompido sem reaplicar etapas já gravadas.
type ClosingRecord struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Date string `gorm:"size:10;uniqueIndex;not null" json:"date"`
	Step string `gorm:"size:20;not null" json:"step"`

	Inputs       datatypes.JSON `json:"inputs"`
	AppliedSteps datatypes.JSON `json:"applied_steps"`

	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type SettingsSnapshot struct {
	ID      uint           `gorm:"primaryKey" json:"id"`
	Key     string         `gorm:"size:50;uniqueIndex;not null" json:"key"`
	Version int            `json:"version"`
	Payload datatypes.JSON `json:"payload"`

	UpdatedAt time.Time `json:"updated_at"`
}
