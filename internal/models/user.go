package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an authenticated identity with an optional profile role.
// Role lives here authoritatively; the session token mirrors it as a
// fast-path claim that may lag behind after a role change.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string         `gorm:"size:255" json:"-"` // bcrypt hash
	Name      string         `gorm:"size:100" json:"name"`
	Role      string         `gorm:"size:50" json:"role"` // resident, coach, service_pro, or empty
	Metadata  string         `gorm:"type:text" json:"-"`  // auth-provider metadata blob (JSON), may carry a role field
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	LastLogin *time.Time     `json:"last_login"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
