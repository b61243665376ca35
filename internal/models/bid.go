package models

import (
	"time"

	"gorm.io/gorm"
)

// Bid is a service professional's offer on an approved statement of work.
type Bid struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	SOWID     uint             `gorm:"index;not null" json:"sow_id"`
	SOW       *StatementOfWork `gorm:"foreignKey:SOWID" json:"sow,omitempty"`
	BidderID  uint             `gorm:"index;not null" json:"bidder_id"`
	Bidder    *User            `gorm:"foreignKey:BidderID" json:"bidder,omitempty"`
	Amount    float64          `gorm:"not null" json:"amount"`
	Note      string           `gorm:"type:text" json:"note"`
	Accepted  bool             `gorm:"default:false" json:"accepted"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (Bid) TableName() string { return "bids" }
