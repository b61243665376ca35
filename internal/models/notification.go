package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification is a persisted per-recipient message produced by SOW
// transitions, bids, and team changes. Delivery to connected clients goes
// through the SSE hub; this row is the durable record.
type Notification struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"index;not null" json:"user_id"`
	Type      string         `gorm:"size:50;not null" json:"type"` // sow_submitted, sow_approved, sow_declined, sow_completed, bid_placed, team_changed
	Title     string         `gorm:"size:200" json:"title"`
	Body      string         `gorm:"type:text" json:"body"`
	ProjectID *uint          `gorm:"index" json:"project_id"`
	SOWID     *uint          `json:"sow_id"`
	Read      bool           `gorm:"default:false;index" json:"read"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Notification) TableName() string { return "notifications" }
