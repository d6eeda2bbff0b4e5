package models

import "time"

type Automation struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	Name    string `gorm:"size:120;not null" json:"name"`
	Type    string `gorm:"size:20;not null" json:"type"`
	Trigger string `gorm:"size:30;not null" json:"trigger"`

	TimeValue int    `json:"time_value"`
	TimeUnit  string `gorm:"size:10" json:"time_unit"`

	Active    bool       `json:"active"`
	LastRun   *time.Time `json:"last_run"`
	SentCount int        `json:"sent_count"`
	Message   string     `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MessageLog struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	AutomationID string `gorm:"size:36;index" json:"automation_id"`
	ClientID     string `gorm:"size:36;index" json:"client_id"`

	Channel string `gorm:"size:20" json:"channel"`
	Message string `gorm:"type:text" json:"message"`
	Link    string `gorm:"type:text" json:"link"`
	Status  string `gorm:"size:20" json:"status"`
	Error   string `gorm:"type:text" json:"error"`

	CreatedAt time.Time `json:"created_at"`
}
