package models

import (
	"time"

	"gorm.io/gorm"
)

// Project represents a home-renovation project owned by exactly one user.
// Ownership is derived solely from UserID; the owner never appears in
// team_members.
type Project struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"index;not null" json:"user_id"`
	User        *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	PropertyRef string         `gorm:"size:255" json:"property_ref"`
	Preferences string         `gorm:"type:text" json:"preferences"` // free-form preference blob (JSON)
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Project) TableName() string { return "projects" }
