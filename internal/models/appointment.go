package models

import "time"

type Appointment struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Title string `gorm:"size:255" json:"title"`

	StartTime time.Time `gorm:"index" json:"start"`
	EndTime   time.Time `json:"end"`

	ClientID    string `gorm:"size:36;index;not null" json:"client_id"`
	ClientName  string `gorm:"size:120" json:"client_name"`
	ClientPhone string `gorm:"size:30" json:"client_phone"`

	ServiceID       string `gorm:"size:36" json:"service_id"`
	ServiceName     string `gorm:"size:120" json:"service_name"`
	ServiceDuration int    `json:"service_duration"`

	Status string `gorm:"size:20;not null" json:"status"`
	Color  string `gorm:"size:20" json:"color"`
	Notes  string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
