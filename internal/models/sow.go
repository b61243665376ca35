package models

import (
	"time"

	"gorm.io/gorm"
)

// SOW status values. Transitions: draft -> submitted -> approved|declined,
// approved -> completed.
const (
	SOWStatusDraft     = "draft"
	SOWStatusSubmitted = "submitted"
	SOWStatusApproved  = "approved"
	SOWStatusDeclined  = "declined"
	SOWStatusCompleted = "completed"
)

// StatementOfWork is the per-project work document whose status changes
// drive role-targeted notifications between resident and coach.
type StatementOfWork struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ProjectID uint           `gorm:"index;not null" json:"project_id"`
	Project   *Project       `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Title     string         `gorm:"size:200;not null" json:"title"`
	Scope     string         `gorm:"type:text" json:"scope"`
	Status    string         `gorm:"size:20;default:draft;index" json:"status"`
	CreatedBy uint           `json:"created_by"`
	DecidedAt *time.Time     `json:"decided_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (StatementOfWork) TableName() string { return "statements_of_work" }
