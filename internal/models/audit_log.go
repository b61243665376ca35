package models

import (
	"time"
)

// AuditLog records write operations performed through protected routes.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Module    string    `gorm:"size:50;index" json:"module"`
	Action    string    `gorm:"size:50" json:"action"`
	Message   string    `gorm:"size:500" json:"message"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	IP        string    `gorm:"size:50" json:"ip"`
	UserAgent string    `gorm:"size:500" json:"user_agent"`
	Extra     string    `gorm:"type:text" json:"extra"` // JSON blob
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }
