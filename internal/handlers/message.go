package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/renohub/backend/internal/middleware"
	"github.com/renohub/backend/internal/services"
	"github.com/renohub/backend/pkg/response"
	"gorm.io/gorm"
)

// MessageHandler exposes the per-project message thread.
type MessageHandler struct {
	messages *services.MessageService
	access   *services.AccessService
}

func NewMessageHandler(db *gorm.DB) *MessageHandler {
	return &MessageHandler{
		messages: services.NewMessageService(db),
		access:   services.NewAccessService(db),
	}
}

// Post appends a message to a project's thread.
// POST /api/projects/:id/messages
func (h *MessageHandler) Post(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := requireAccess(c, h.access, projectID); !ok {
		return
	}

	var req services.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	message, err := h.messages.Post(projectID, middleware.GetUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, message)
}

// List returns a project's messages, oldest first.
// GET /api/projects/:id/messages
func (h *MessageHandler) List(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := requireAccess(c, h.access, projectID); !ok {
		return
	}

	messages, err := h.messages.List(projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, messages)
}
