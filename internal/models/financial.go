package models

import "time"

type Transaction struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Type     string `gorm:"size:10;index;not null" json:"type"`
	Category string `gorm:"size:20;not null" json:"category"`
	Amount   Money  `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date     string `gorm:"size:10;index;not null" json:"date"`

	Description   string  `gorm:"size:255" json:"description"`
	AppointmentID *string `gorm:"size:36;index" json:"appointment_id"`
	ClientID      *string `gorm:"size:36;index" json:"client_id"`
	PaymentMethod string  `gorm:"size:20" json:"payment_method"`
	Notes         string  `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DailySummary struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Date string `gorm:"size:10;uniqueIndex;not null" json:"date"`

	TotalIncome      Money `gorm:"type:decimal(12,2);not null" json:"total_income"`
	TotalExpense     Money `gorm:"type:decimal(12,2);not null" json:"total_expense"`
	NetBalance       Money `gorm:"type:decimal(12,2);not null" json:"net_balance"`
	TransactionCount int   `json:"transaction_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DailySummary) TableName() string {
	return "daily_summary"
}
