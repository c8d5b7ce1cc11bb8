package models

import "time"

type CategorySetting struct {
	Category     string    `gorm:"primaryKey;size:32" json:"category"`
	IsClosed     bool      `gorm:"column:is_closed" json:"is_closed"`
	ClosedReason string    `gorm:"column:closed_reason;type:text" json:"closed_reason"`
	ClosedFrom   string    `gorm:"column:closed_from;size:100" json:"closed_from"`
	ClosedTo     string    `gorm:"column:closed_to;size:100" json:"closed_to"`
	UpdatedAt    time.Time `json:"updated_at"`
}
