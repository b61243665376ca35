package services

import (
	"github.com/renohub/backend/internal/models"
	"github.com/renohub/backend/pkg/response"
	"gorm.io/gorm"
)

// MessageService handles project-scoped messages between residents and
// coaches. Access checks happen at the route layer; this service assumes
// the sender may see the project.
type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

type PostMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// Post appends a message to a project's thread.
func (s *MessageService) Post(projectID, senderID uint, req *PostMessageRequest) (*models.Message, error) {
	if req.Body == "" {
		return nil, response.NewBadRequest("message body is required")
	}

	message := models.Message{
		ProjectID: projectID,
		SenderID:  senderID,
		Body:      req.Body,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// List returns a project's messages, oldest first.
func (s *MessageService) List(projectID uint) ([]models.Message, error) {
	var messages []models.Message
	if err := s.db.Where("project_id = ?", projectID).Preload("Sender").Order("created_at ASC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
