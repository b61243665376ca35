package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/renohub/backend/internal/middleware"
	"github.com/renohub/backend/internal/models"
	"github.com/renohub/backend/internal/services"
	"github.com/renohub/backend/pkg/response"
	"gorm.io/gorm"
)

// SOWHandler drives the statement-of-work lifecycle. Creation and
// submission are coach operations (enforced by the route group); the
// approve/decline decision belongs to the project owner.
type SOWHandler struct {
	sows   *services.SOWService
	access *services.AccessService
}

func NewSOWHandler(db *gorm.DB, notifier *services.NotificationService) *SOWHandler {
	return &SOWHandler{
		sows:   services.NewSOWService(db, notifier),
		access: services.NewAccessService(db),
	}
}

// Create starts a new draft SOW.
// POST /api/sows
func (h *SOWHandler) Create(c *gin.Context) {
	var req services.CreateSOWRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if _, ok := requireAccess(c, h.access, req.ProjectID); !ok {
		return
	}

	sow, err := h.sows.Create(middleware.GetUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, sow)
}

// Get returns a single SOW.
// GET /api/sows/:id
func (h *SOWHandler) Get(c *gin.Context) {
	sowID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sow, err := h.sows.Get(sowID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if _, ok := requireAccess(c, h.access, sow.ProjectID); !ok {
		return
	}

	response.Success(c, sow)
}

// ListByProject returns all SOWs on a project.
// GET /api/projects/:id/sows
func (h *SOWHandler) ListByProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, ok := requireAccess(c, h.access, projectID); !ok {
		return
	}

	sows, err := h.sows.ListByProject(projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, sows)
}

// Submit moves a draft SOW to submitted.
// POST /api/sows/:id/submit
func (h *SOWHandler) Submit(c *gin.Context) {
	h.transition(c, h.sows.Submit, false)
}

// Approve moves a submitted SOW to approved. Owner only.
// POST /api/sows/:id/approve
func (h *SOWHandler) Approve(c *gin.Context) {
	h.transition(c, h.sows.Approve, true)
}

// Decline moves a submitted SOW to declined. Owner only.
// POST /api/sows/:id/decline
func (h *SOWHandler) Decline(c *gin.Context) {
	h.transition(c, h.sows.Decline, true)
}

// Complete moves an approved SOW to completed.
// POST /api/sows/:id/complete
func (h *SOWHandler) Complete(c *gin.Context) {
	h.transition(c, h.sows.Complete, false)
}

func (h *SOWHandler) transition(c *gin.Context, op func(sowID, byUserID uint) (*models.StatementOfWork, error), ownerOnly bool) {
	sowID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sow, err := h.sows.Get(sowID)
	if err != nil {
		response.Error(c, err)
		return
	}

	decision, ok := requireAccess(c, h.access, sow.ProjectID)
	if !ok {
		return
	}
	if ownerOnly && !decision.IsOwner {
		response.Forbidden(c, "only the project owner can decide on a statement of work")
		return
	}

	updated, err := op(sowID, middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, updated)
}
