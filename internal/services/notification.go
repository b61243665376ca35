package services

import (
	"context"
	"errors"

	"github.com/renohub/backend/internal/models"
	"github.com/renohub/backend/pkg/logger"
	"github.com/renohub/backend/pkg/response"
	"gorm.io/gorm"
)

// NotificationService persists notifications and fans them out to
// connected clients. Producers hand delivery jobs to the task queue;
// Dispatch is the processor on both the sync and async paths.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Notify enqueues a notification for delivery. Delivery failures are
// logged, not propagated: a notification must never fail the operation
// that produced it.
func (s *NotificationService) Notify(task *NotificationTask) {
	queue := GetTaskQueue()
	if queue == nil {
		logger.Warnf("[Notification] Task queue not initialized, dropping notification type=%s", task.Type)
		return
	}
	if err := queue.Enqueue(task); err != nil {
		logger.Error().Err(err).Str("type", task.Type).Uint("user_id", task.UserID).Msg("failed to enqueue notification")
	}
}

// Dispatch persists the notification row and publishes it to the SSE hub.
func (s *NotificationService) Dispatch(ctx context.Context, task *NotificationTask) error {
	notification := models.Notification{
		UserID:    task.UserID,
		Type:      task.Type,
		Title:     task.Title,
		Body:      task.Body,
		ProjectID: task.ProjectID,
		SOWID:     task.SOWID,
	}

	if err := s.db.WithContext(ctx).Create(&notification).Error; err != nil {
		return err
	}

	GetSSEHub().Publish(NotificationEvent{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Type:      notification.Type,
		Title:     notification.Title,
		Body:      notification.Body,
		ProjectID: notification.ProjectID,
		SOWID:     notification.SOWID,
		CreatedAt: notification.CreatedAt,
	})

	return nil
}

// List returns a user's notifications, newest first.
func (s *NotificationService) List(userID uint, unreadOnly bool) ([]models.Notification, error) {
	query := s.db.Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	var notifications []models.Notification
	if err := query.Order("created_at DESC").Limit(100).Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// UnreadCount returns the number of unread notifications for a user.
func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead marks one notification as read. Only the recipient may do so.
func (s *NotificationService) MarkRead(id, userID uint) error {
	var notification models.Notification
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("notification not found")
		}
		return err
	}

	return s.db.Model(&notification).Update("read", true).Error
}

// MarkAllRead marks every unread notification for a user as read.
func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}
