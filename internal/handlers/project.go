package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/renohub/backend/internal/middleware"
	"github.com/renohub/backend/internal/services"
	"github.com/renohub/backend/pkg/response"
	"gorm.io/gorm"
)

// ProjectHandler provides CRUD endpoints for renovation projects.
type ProjectHandler struct {
	projects *services.ProjectService
	access   *services.AccessService
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{
		projects: services.NewProjectService(db),
		access:   services.NewAccessService(db),
	}
}

// parseIDParam parses a uint route parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// requireAccess resolves the caller's access to a project and writes the
// denial response when they have none. The decision is fail-closed:
// lookup errors deny instead of granting.
func requireAccess(c *gin.Context, access *services.AccessService, projectID uint) (services.AccessDecision, bool) {
	decision, err := access.ResolveAccess(projectID, middleware.GetUserID(c))
	if err != nil {
		response.ServerError(c, "could not verify project access")
		return decision, false
	}
	if !decision.HasAccess {
		response.Forbidden(c, "you do not have access to this project")
		return decision, false
	}
	return decision, true
}

// Create creates a project owned by the caller.
// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projects.Create(middleware.GetUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, project)
}

// List returns every project the caller owns or is a member of.
// GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.ListForUser(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, projects)
}

// Get returns a project along with the caller's resolved access.
// GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	decision, ok := requireAccess(c, h.access, projectID)
	if !ok {
		return
	}

	project, err := h.projects.Get(projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{
		"project": project,
		"access":  decision,
	})
}

// Update modifies a project. Owner only.
// PUT /api/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	decision, ok := requireAccess(c, h.access, projectID)
	if !ok {
		return
	}
	if !decision.IsOwner {
		response.Forbidden(c, "only the project owner can update the project")
		return
	}

	var req services.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projects.Update(projectID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, project)
}
