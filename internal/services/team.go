package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/renohub/backend/internal/models"
	"github.com/renohub/backend/internal/roles"
	"github.com/renohub/backend/internal/utils"
	"github.com/renohub/backend/pkg/logger"
	"github.com/renohub/backend/pkg/response"
	"gorm.io/gorm"
)

// TeamMemberView is a display-ready team member entry with identity
// resolved from the profile table, the invite-time capture, or
// placeholders, in that order.
type TeamMemberView struct {
	ID        uint   `json:"id"`
	UserID    *uint  `json:"user_id"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// TeamService manages project team membership and produces the team
// directory listing.
type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

const (
	placeholderName  = "Unnamed"
	placeholderEmail = "No email"
)

// ListTeamMembers returns the display-ready team for a project: the owner
// first, then membership rows in insertion order. Any fetch failure
// aborts the whole listing; there is no partial rendering.
func (s *TeamService) ListTeamMembers(projectID uint) ([]TeamMemberView, error) {
	var project models.Project
	if err := s.db.Select("id", "user_id").First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}

	var members []models.TeamMember
	if err := s.db.Where("project_id = ?", projectID).Order("id ASC").Find(&members).Error; err != nil {
		return nil, err
	}

	ids := []uint{project.UserID}
	for _, m := range members {
		if m.UserID != nil {
			ids = append(ids, *m.UserID)
		}
	}

	profiles, err := FetchProfiles(s.db, ids)
	if err != nil {
		return nil, err
	}

	views := make([]TeamMemberView, 0, len(members)+1)

	ownerID := project.UserID
	ownerName, ownerEmail := resolveIdentity(profiles, &ownerID, "", "")
	views = append(views, TeamMemberView{
		UserID:    &ownerID,
		Role:      roles.Owner,
		Name:      ownerName,
		Email:     ownerEmail,
		AvatarURL: utils.AvatarURL(ownerEmail),
	})

	for _, m := range members {
		role := m.Role
		// A stale membership row for the owner must never display a
		// subordinate role.
		if m.UserID != nil && *m.UserID == ownerID {
			role = roles.Owner
		}

		name, email := resolveIdentity(profiles, m.UserID, m.Name, m.Email)
		views = append(views, TeamMemberView{
			ID:        m.ID,
			UserID:    m.UserID,
			Role:      role,
			Name:      name,
			Email:     email,
			AvatarURL: utils.AvatarURL(email),
		})
	}

	return views, nil
}

// resolveIdentity picks a member's display name and email: profile row
// first, then the invite-time capture, then placeholders.
func resolveIdentity(profiles map[uint]models.User, userID *uint, capturedName, capturedEmail string) (string, string) {
	name := capturedName
	email := capturedEmail

	if userID != nil {
		if profile, ok := profiles[*userID]; ok {
			if profile.Name != "" {
				name = profile.Name
			}
			if profile.Email != "" {
				email = profile.Email
			}
		}
	}

	if name == "" {
		name = placeholderName
	}
	if email == "" {
		email = placeholderEmail
	}
	return name, email
}

// AddTeamMember invites a user (or a bare email address) onto a project
// team. The project owner is never inserted as a member, and a user holds
// at most one membership row per project; both rules are enforced here
// with pre-insert checks. If the primary create path fails, a direct
// insert is attempted before giving up.
func (s *TeamService) AddTeamMember(projectID uint, email, role, name string) (*models.TeamMember, error) {
	if projectID == 0 || email == "" || role == "" {
		return nil, response.NewBadRequest("project id, email and role are required")
	}

	var project models.Project
	if err := s.db.Select("id", "user_id").First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}

	// Resolve the invitee to an account when one exists.
	var userID *uint
	var invitee models.User
	err := s.db.Where("email = ?", email).First(&invitee).Error
	switch {
	case err == nil:
		if invitee.ID == project.UserID {
			return nil, response.NewConflict("the project owner is already on the team")
		}
		userID = &invitee.ID
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Email-only invite; membership row stays unbound until signup.
	default:
		return nil, err
	}

	// Uniqueness is application-enforced: one membership per user (or
	// pending email) per project.
	var count int64
	dupQuery := s.db.Model(&models.TeamMember{}).Where("project_id = ?", projectID)
	if userID != nil {
		dupQuery = dupQuery.Where("user_id = ? OR email = ?", *userID, email)
	} else {
		dupQuery = dupQuery.Where("email = ?", email)
	}
	if err := dupQuery.Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, response.NewConflict("already a member of this project")
	}

	member := models.TeamMember{
		ProjectID:   projectID,
		UserID:      userID,
		Role:        roles.Normalize(role),
		Name:        name,
		Email:       email,
		InviteToken: uuid.New().String(),
	}

	if err := s.db.Create(&member).Error; err != nil {
		logger.Warn().Err(err).Uint("project_id", projectID).Msg("member create failed, trying direct insert")
		fallbackErr := s.db.Exec(
			"INSERT INTO team_members (project_id, user_id, role, name, email, invite_token, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)",
			projectID, userID, member.Role, name, email, member.InviteToken,
		).Error
		if fallbackErr != nil {
			return nil, fallbackErr
		}
		if err := s.db.Where("project_id = ? AND invite_token = ?", projectID, member.InviteToken).First(&member).Error; err != nil {
			return nil, err
		}
	}

	return &member, nil
}

// RemoveTeamMember deletes a membership row. A missing row is a clean
// not-found failure; if the primary delete fails, a direct soft-delete
// update is attempted.
func (s *TeamService) RemoveTeamMember(memberID uint) error {
	if memberID == 0 {
		return response.NewBadRequest("member id is required")
	}

	var member models.TeamMember
	if err := s.db.First(&member, memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("member not found")
		}
		return err
	}

	if err := s.db.Delete(&member).Error; err != nil {
		logger.Warn().Err(err).Uint("member_id", memberID).Msg("member delete failed, trying direct update")
		fallbackErr := s.db.Exec(
			"UPDATE team_members SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL",
			memberID,
		).Error
		if fallbackErr != nil {
			return fallbackErr
		}
	}

	return nil
}

// ClaimInvites binds pending email-only invites to a newly registered
// user so their memberships resolve on first login.
func (s *TeamService) ClaimInvites(userID uint, email string) error {
	return s.db.Model(&models.TeamMember{}).
		Where("user_id IS NULL AND email = ?", email).
		Update("user_id", userID).Error
}
