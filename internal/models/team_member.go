package models

import (
	"time"

	"gorm.io/gorm"
)

// TeamMember associates a project with a user and a trade role. UserID is
// nullable: a member may be invited by email before they have an account.
// Name and Email capture the identity supplied at invite time and serve as
// display fallbacks when no profile row exists.
type TeamMember struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	ProjectID   uint           `gorm:"index:idx_team_project;not null" json:"project_id"`
	Project     *Project       `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	UserID      *uint          `gorm:"index:idx_team_user" json:"user_id"`
	User        *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role        string         `gorm:"size:50;not null" json:"role"` // designer, plumber, electrician, carpenter, landscaper, coach, team_member
	Name        string         `gorm:"size:100" json:"name"`
	Email       string         `gorm:"size:255" json:"email"`
	InviteToken string         `gorm:"size:64;index" json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (TeamMember) TableName() string { return "team_members" }
