package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/renohub/backend/internal/middleware"
	"github.com/renohub/backend/internal/services"
	"github.com/renohub/backend/pkg/response"
	"gorm.io/gorm"
)

// NotificationHandler exposes the per-user notification feed.
type NotificationHandler struct {
	notifications *services.NotificationService
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{
		notifications: services.NewNotificationService(db),
	}
}

// List returns the caller's notifications, newest first.
// GET /api/notifications?unread=true
func (h *NotificationHandler) List(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.notifications.List(middleware.GetUserID(c), unreadOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, notifications)
}

// UnreadCount returns the caller's unread notification count.
// GET /api/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.notifications.UnreadCount(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"count": count})
}

// MarkRead marks one notification as read.
// POST /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.notifications.MarkRead(id, middleware.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "marked as read"})
}

// MarkAllRead marks every unread notification as read.
// POST /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notifications.MarkAllRead(middleware.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "all notifications marked as read"})
}
