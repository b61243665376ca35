package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/renohub/backend/internal/middleware"
	"github.com/renohub/backend/internal/services"
	"github.com/renohub/backend/pkg/response"
	"gorm.io/gorm"
)

// BidHandler manages service-professional bids on approved SOWs.
// Placing a bid is a service-pro operation (enforced by the route
// group); accepting one belongs to the project owner.
type BidHandler struct {
	bids   *services.BidService
	sows   *services.SOWService
	access *services.AccessService
}

func NewBidHandler(db *gorm.DB, notifier *services.NotificationService) *BidHandler {
	return &BidHandler{
		bids:   services.NewBidService(db, notifier),
		sows:   services.NewSOWService(db, notifier),
		access: services.NewAccessService(db),
	}
}

// Place creates a bid on an approved SOW.
// POST /api/bids
func (h *BidHandler) Place(c *gin.Context) {
	var req services.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	bid, err := h.bids.Place(middleware.GetUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, bid)
}

// ListBySOW returns all bids on a SOW. Requires project access.
// GET /api/sows/:id/bids
func (h *BidHandler) ListBySOW(c *gin.Context) {
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

	bids, err := h.bids.ListBySOW(sowID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, bids)
}

// Accept marks a bid accepted. Owner only.
// POST /api/bids/:id/accept
func (h *BidHandler) Accept(c *gin.Context) {
	bidID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	bid, err := h.bids.Get(bidID)
	if err != nil {
		response.Error(c, err)
		return
	}

	sow, err := h.sows.Get(bid.SOWID)
	if err != nil {
		response.Error(c, err)
		return
	}

	decision, ok := requireAccess(c, h.access, sow.ProjectID)
	if !ok {
		return
	}
	if !decision.IsOwner {
		response.Forbidden(c, "only the project owner can accept a bid")
		return
	}

	accepted, err := h.bids.Accept(bidID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, accepted)
}
