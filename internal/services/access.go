package services

import (
	"errors"

	"github.com/renohub/backend/internal/models"
	"github.com/renohub/backend/internal/roles"
	"github.com/renohub/backend/pkg/logger"
	"gorm.io/gorm"
)

// AccessDecision is the per-(project, user) answer to "can this user see
// or act on this project, and in what capacity?". It is computed on
// demand and never cached across calls.
type AccessDecision struct {
	HasAccess bool    `json:"has_access"`
	IsOwner   bool    `json:"is_owner"`
	Role      *string `json:"role"`
}

// AccessService resolves project access from ownership and team
// membership. Ownership always wins: an owner is never evaluated for a
// team role, so a stale membership row can never demote them.
type AccessService struct {
	db *gorm.DB
}

func NewAccessService(db *gorm.DB) *AccessService {
	return &AccessService{db: db}
}

var deniedDecision = AccessDecision{HasAccess: false, IsOwner: false, Role: nil}

// ResolveAccess determines access for a user on a project.
//
// Missing identifiers resolve to denied without touching the database.
// Backend errors also resolve to denied (never fail-open); the returned
// error lets the caller surface a warning, but the decision stands alone.
// A project or membership row that simply does not exist is a normal
// denial, not an error.
func (s *AccessService) ResolveAccess(projectID, userID uint) (AccessDecision, error) {
	if projectID == 0 || userID == 0 {
		return deniedDecision, nil
	}

	var project models.Project
	if err := s.db.Select("id", "user_id").First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return deniedDecision, nil
		}
		logger.Warn().Err(err).Uint("project_id", projectID).Msg("project lookup failed, denying access")
		return deniedDecision, err
	}

	if project.UserID == userID {
		role := roles.Owner
		return AccessDecision{HasAccess: true, IsOwner: true, Role: &role}, nil
	}

	var member models.TeamMember
	err := s.db.Where("project_id = ? AND user_id = ?", projectID, userID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return deniedDecision, nil
		}
		logger.Warn().Err(err).Uint("project_id", projectID).Uint("user_id", userID).Msg("membership lookup failed, denying access")
		return deniedDecision, err
	}

	role := member.Role
	return AccessDecision{HasAccess: true, IsOwner: false, Role: &role}, nil
}
