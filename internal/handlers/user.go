package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/renohub/backend/internal/config"
	"github.com/renohub/backend/internal/services"
	"github.com/renohub/backend/pkg/response"
	"gorm.io/gorm"
)

// UserHandler provides coach-facing account management.
type UserHandler struct {
	authService *services.AuthService
}

func NewUserHandler(db *gorm.DB, cfg *config.Config) *UserHandler {
	return &UserHandler{
		authService: services.NewAuthService(db, &cfg.JWT),
	}
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// List returns all accounts.
// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.authService.ListUsers()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, users)
}

// UpdateRole changes a user's profile role.
// PUT /api/users/:id/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.UpdateUserRole(userID, req.Role)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}
