package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/renohub/backend/internal/services"
	"github.com/renohub/backend/pkg/response"
	"gorm.io/gorm"
)

// TeamMemberHandler exposes the project team directory and membership
// management.
type TeamMemberHandler struct {
	team   *services.TeamService
	access *services.AccessService
}

func NewTeamMemberHandler(db *gorm.DB) *TeamMemberHandler {
	return &TeamMemberHandler{
		team:   services.NewTeamService(db),
		access: services.NewAccessService(db),
	}
}

type InviteMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
	Name  string `json:"name"`
}

// List returns the display-ready team for a project: owner first, then
// members. Anyone with project access may read the directory.
// GET /api/projects/:id/team
func (h *TeamMemberHandler) List(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := requireAccess(c, h.access, projectID); !ok {
		return
	}

	members, err := h.team.ListTeamMembers(projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, members)
}

// Add invites a user or email address onto the team. Owner only.
// POST /api/projects/:id/team
func (h *TeamMemberHandler) Add(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	decision, ok := requireAccess(c, h.access, projectID)
	if !ok {
		return
	}
	if !decision.IsOwner {
		response.Forbidden(c, "only the project owner can invite members")
		return
	}

	var req InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, err := h.team.AddTeamMember(projectID, req.Email, req.Role, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, member)
}

// Remove deletes a membership row. Owner only.
// DELETE /api/projects/:id/team/:memberID
func (h *TeamMemberHandler) Remove(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	decision, ok := requireAccess(c, h.access, projectID)
	if !ok {
		return
	}
	if !decision.IsOwner {
		response.Forbidden(c, "only the project owner can remove members")
		return
	}

	memberID, ok := parseIDParam(c, "memberID")
	if !ok {
		return
	}

	if err := h.team.RemoveTeamMember(memberID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "member removed"})
}
