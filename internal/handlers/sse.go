package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/renohub/backend/internal/services"
	"github.com/renohub/backend/internal/utils"
	"github.com/renohub/backend/pkg/logger"
	"github.com/renohub/backend/pkg/response"
)

// SSEHandler handles Server-Sent Events for real-time notifications
type SSEHandler struct {
	hub *services.SSEHub
}

// NewSSEHandler creates a new SSE handler
func NewSSEHandler(hub *services.SSEHub) *SSEHandler {
	return &SSEHandler{hub: hub}
}

// StreamNotifications handles SSE connections for the caller's
// notification feed. The token may arrive as a query parameter because
// EventSource cannot set headers.
// GET /api/events/notifications
func (h *SSEHandler) StreamNotifications(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}

	if token == "" {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	claims, err := utils.ParseToken(token)
	if err != nil {
		response.Unauthorized(c, "Invalid token")
		return
	}

	// Set SSE headers
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Header("Access-Control-Allow-Origin", "*")

	clientID := uuid.New().String()

	events := h.hub.Subscribe(clientID, claims.UserID)
	defer h.hub.Unsubscribe(clientID)

	logger.Info().Str("client_id", clientID).Uint("user_id", claims.UserID).Int("total", h.hub.ClientCount()).Msg("SSE client connected")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			data, err := json.Marshal(event)
			if err != nil {
				logger.Error().Err(err).Msg("SSE marshal error")
				return true
			}
			fmt.Fprintf(w, "data: %s\n\n", data)
			c.Writer.Flush()
			return true
		case <-c.Request.Context().Done():
			logger.Info().Str("client_id", clientID).Msg("SSE client disconnected")
			return false
		}
	})
}
