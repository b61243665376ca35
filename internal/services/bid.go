package services

import (
	"errors"
	"fmt"

	"github.com/renohub/backend/internal/models"
	"github.com/renohub/backend/pkg/response"
	"gorm.io/gorm"
)

// BidService manages service-professional bids on approved SOWs.
type BidService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewBidService(db *gorm.DB, notifier *NotificationService) *BidService {
	return &BidService{db: db, notifier: notifier}
}

type PlaceBidRequest struct {
	SOWID  uint    `json:"sow_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Note   string  `json:"note"`
}

// Place creates a bid on an approved SOW and notifies the project owner.
func (s *BidService) Place(bidderID uint, req *PlaceBidRequest) (*models.Bid, error) {
	var sow models.StatementOfWork
	if err := s.db.First(&sow, req.SOWID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("statement of work not found")
		}
		return nil, err
	}

	if sow.Status != models.SOWStatusApproved {
		return nil, response.NewConflict("bids are only open on approved statements of work")
	}

	var existing int64
	if err := s.db.Model(&models.Bid{}).Where("sow_id = ? AND bidder_id = ?", req.SOWID, bidderID).Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, response.NewConflict("you already placed a bid on this statement of work")
	}

	bid := models.Bid{
		SOWID:    req.SOWID,
		BidderID: bidderID,
		Amount:   req.Amount,
		Note:     req.Note,
	}
	if err := s.db.Create(&bid).Error; err != nil {
		return nil, err
	}

	var project models.Project
	if err := s.db.Select("id", "user_id", "title").First(&project, sow.ProjectID).Error; err == nil {
		s.notifier.Notify(&NotificationTask{
			UserID:    project.UserID,
			Type:      "bid_placed",
			Title:     "New bid received",
			Body:      fmt.Sprintf("A bid of %.2f was placed on %q.", bid.Amount, sow.Title),
			ProjectID: &sow.ProjectID,
			SOWID:     &sow.ID,
		})
	}

	return &bid, nil
}

// Get loads a single bid.
func (s *BidService) Get(bidID uint) (*models.Bid, error) {
	var bid models.Bid
	if err := s.db.First(&bid, bidID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("bid not found")
		}
		return nil, err
	}
	return &bid, nil
}

// ListBySOW returns all bids on a SOW, newest first.
func (s *BidService) ListBySOW(sowID uint) ([]models.Bid, error) {
	var bids []models.Bid
	if err := s.db.Where("sow_id = ?", sowID).Preload("Bidder").Order("created_at DESC").Find(&bids).Error; err != nil {
		return nil, err
	}
	return bids, nil
}

// Accept marks a bid accepted and notifies the bidder. Only one bid per
// SOW can be accepted.
func (s *BidService) Accept(bidID uint) (*models.Bid, error) {
	var bid models.Bid
	if err := s.db.First(&bid, bidID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("bid not found")
		}
		return nil, err
	}

	var accepted int64
	if err := s.db.Model(&models.Bid{}).Where("sow_id = ? AND accepted = ?", bid.SOWID, true).Count(&accepted).Error; err != nil {
		return nil, err
	}
	if accepted > 0 {
		return nil, response.NewConflict("a bid was already accepted for this statement of work")
	}

	if err := s.db.Model(&bid).Update("accepted", true).Error; err != nil {
		return nil, err
	}

	var sow models.StatementOfWork
	if err := s.db.First(&sow, bid.SOWID).Error; err == nil {
		s.notifier.Notify(&NotificationTask{
			UserID:    bid.BidderID,
			Type:      "bid_accepted",
			Title:     "Your bid was accepted",
			Body:      fmt.Sprintf("Your bid on %q was accepted.", sow.Title),
			ProjectID: &sow.ProjectID,
			SOWID:     &sow.ID,
		})
	}

	return &bid, nil
}
