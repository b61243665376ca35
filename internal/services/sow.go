package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/renohub/backend/internal/models"
	"github.com/renohub/backend/internal/roles"
	"github.com/renohub/backend/pkg/response"
	"gorm.io/gorm"
)

// SOWService drives the statement-of-work status machine:
// draft -> submitted -> approved | declined, approved -> completed.
// Every transition emits role-targeted notifications.
type SOWService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewSOWService(db *gorm.DB, notifier *NotificationService) *SOWService {
	return &SOWService{db: db, notifier: notifier}
}

type CreateSOWRequest struct {
	ProjectID uint   `json:"project_id" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Scope     string `json:"scope"`
}

// Create starts a new draft SOW on a project.
func (s *SOWService) Create(byUserID uint, req *CreateSOWRequest) (*models.StatementOfWork, error) {
	var project models.Project
	if err := s.db.Select("id", "user_id").First(&project, req.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}

	sow := models.StatementOfWork{
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Scope:     req.Scope,
		Status:    models.SOWStatusDraft,
		CreatedBy: byUserID,
	}
	if err := s.db.Create(&sow).Error; err != nil {
		return nil, err
	}
	return &sow, nil
}

// Get loads a single SOW.
func (s *SOWService) Get(sowID uint) (*models.StatementOfWork, error) {
	var sow models.StatementOfWork
	if err := s.db.First(&sow, sowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("statement of work not found")
		}
		return nil, err
	}
	return &sow, nil
}

// ListByProject returns all SOWs for a project, newest first.
func (s *SOWService) ListByProject(projectID uint) ([]models.StatementOfWork, error) {
	var sows []models.StatementOfWork
	if err := s.db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&sows).Error; err != nil {
		return nil, err
	}
	return sows, nil
}

// Submit moves a draft SOW to submitted and notifies the resident owner.
func (s *SOWService) Submit(sowID, byUserID uint) (*models.StatementOfWork, error) {
	return s.transition(sowID, byUserID, models.SOWStatusDraft, models.SOWStatusSubmitted, false)
}

// Approve moves a submitted SOW to approved and notifies the project's
// coaches. Approved SOWs are open for bids.
func (s *SOWService) Approve(sowID, byUserID uint) (*models.StatementOfWork, error) {
	return s.transition(sowID, byUserID, models.SOWStatusSubmitted, models.SOWStatusApproved, true)
}

// Decline moves a submitted SOW to declined and notifies the project's
// coaches.
func (s *SOWService) Decline(sowID, byUserID uint) (*models.StatementOfWork, error) {
	return s.transition(sowID, byUserID, models.SOWStatusSubmitted, models.SOWStatusDeclined, true)
}

// Complete moves an approved SOW to completed and notifies both sides.
func (s *SOWService) Complete(sowID, byUserID uint) (*models.StatementOfWork, error) {
	return s.transition(sowID, byUserID, models.SOWStatusApproved, models.SOWStatusCompleted, false)
}

func (s *SOWService) transition(sowID, byUserID uint, from, to string, decided bool) (*models.StatementOfWork, error) {
	sow, err := s.Get(sowID)
	if err != nil {
		return nil, err
	}

	if sow.Status != from {
		return nil, response.NewConflict(fmt.Sprintf("cannot move statement of work from %s to %s", sow.Status, to))
	}

	updates := map[string]interface{}{"status": to}
	if decided {
		now := time.Now()
		updates["decided_at"] = &now
	}
	if err := s.db.Model(sow).Updates(updates).Error; err != nil {
		return nil, err
	}

	s.notifyTransition(sow, to, byUserID)
	return sow, nil
}

// notifyTransition fans notifications out to the roles affected by the
// new status: the resident owner on submission, the coaches on a
// resident's decision, and both sides on completion.
func (s *SOWService) notifyTransition(sow *models.StatementOfWork, status string, byUserID uint) {
	var project models.Project
	if err := s.db.Select("id", "user_id", "title").First(&project, sow.ProjectID).Error; err != nil {
		return
	}

	var recipients []uint
	switch status {
	case models.SOWStatusSubmitted:
		recipients = []uint{project.UserID}
	case models.SOWStatusApproved, models.SOWStatusDeclined:
		recipients = s.coachIDs(sow.ProjectID)
	case models.SOWStatusCompleted:
		recipients = append(s.coachIDs(sow.ProjectID), project.UserID)
	}

	title := fmt.Sprintf("Statement of work %s", status)
	body := fmt.Sprintf("%q on project %q is now %s.", sow.Title, project.Title, status)

	for _, userID := range recipients {
		if userID == byUserID {
			continue
		}
		s.notifier.Notify(&NotificationTask{
			UserID:    userID,
			Type:      "sow_" + status,
			Title:     title,
			Body:      body,
			ProjectID: &sow.ProjectID,
			SOWID:     &sow.ID,
		})
	}
}

// coachIDs returns the user ids of a project's coach members.
func (s *SOWService) coachIDs(projectID uint) []uint {
	var members []models.TeamMember
	if err := s.db.Where("project_id = ? AND role = ? AND user_id IS NOT NULL", projectID, roles.Coach).Find(&members).Error; err != nil {
		return nil
	}

	ids := make([]uint, 0, len(members))
	for _, m := range members {
		if m.UserID != nil {
			ids = append(ids, *m.UserID)
		}
	}
	return ids
}
