package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is a project-scoped message between resident and coach.
type Message struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ProjectID uint           `gorm:"index;not null" json:"project_id"`
	Project   *Project       `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	SenderID  uint           `gorm:"index;not null" json:"sender_id"`
	Sender    *User          `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Message) TableName() string { return "messages" }
