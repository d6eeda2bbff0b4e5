package models

import "time"

type Client struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name       string `gorm:"size:120;not null" json:"name"`
	Email      string `gorm:"size:120" json:"email"`
	Phone      string `gorm:"size:30;index" json:"phone"`
	Address    string `gorm:"size:255" json:"address"`
	City       string `gorm:"size:100" json:"city"`
	PostalCode string `gorm:"size:20" json:"postal_code"`
	TaxID      string `gorm:"size:30" json:"tax_id"`

	BirthDate *time.Time `gorm:"type:date" json:"birth_date"`
	Notes     string     `gorm:"type:text" json:"notes"`

	Initials string `gorm:"size:2" json:"initials"`
	Status   string `gorm:"size:20;not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Registro de um serviço efetivamente prestado (e cobrado) a um cliente.
type ClientService struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	ClientID string `gorm:"size:36;index;not null" json:"client_id"`

	ServiceName   string  `gorm:"size:120;not null" json:"service_name"`
	Date          string  `gorm:"size:10;index;not null" json:"date"`
	Price         Money   `gorm:"type:decimal(10,2);not null" json:"price"`
	Attended      bool    `json:"attended"`
	PaymentMethod string  `gorm:"size:20" json:"payment_method"`
	Notes         string  `gorm:"type:text" json:"notes"`
	AppointmentID *string `gorm:"size:36;index" json:"appointment_id"`
	TransactionID *string `gorm:"size:36;index" json:"transaction_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ClientAttendance struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	ClientID      string `gorm:"size:36;index;not null" json:"client_id"`
	AppointmentID string `gorm:"size:36;index" json:"appointment_id"`
	Date          string `gorm:"size:10;index;not null" json:"date"`
	Attended      bool   `json:"attended"`
	Reason        string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
