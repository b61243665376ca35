package services

import (
	"errors"
	"time"

	"github.com/renohub/backend/internal/config"
	"github.com/renohub/backend/internal/models"
	"github.com/renohub/backend/internal/roles"
	"github.com/renohub/backend/internal/utils"
	"github.com/renohub/backend/pkg/logger"
	"github.com/renohub/backend/pkg/response"
	"gorm.io/gorm"
)

type AuthService struct {
	db     *gorm.DB
	jwtCfg *config.JWTConfig
	team   *TeamService
}

func NewAuthService(db *gorm.DB, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{db: db, jwtCfg: jwtCfg, team: NewTeamService(db)}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// Register creates a new user. Role is optional; when present it must be
// one of the application roles (the service-pro spelling is normalized on
// the way in so only one form is ever stored).
func (s *AuthService) Register(req *RegisterRequest) (*LoginResponse, error) {
	role := roles.Normalize(req.Role)
	if role != "" && role != roles.Resident && role != roles.Coach && role != roles.ServicePro {
		return nil, response.NewBadRequest("invalid role")
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, response.NewConflict("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    req.Email,
		Password: hash,
		Name:     req.Name,
		Role:     role,
		IsActive: true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	// Bind any pending email-only invites to the new account.
	if err := s.team.ClaimInvites(user.ID, user.Email); err != nil {
		logger.Warn().Err(err).Uint("user_id", user.ID).Msg("failed to claim pending invites")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, s.jwtCfg.ExpireHour)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, User: &user}, nil
}

// Login verifies credentials and issues a session token carrying the
// profile role as a fast-path claim.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, response.NewUnauthorized("invalid email or password")
	}

	if !user.IsActive {
		return nil, response.NewUnauthorized("account is disabled")
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		return nil, response.NewUnauthorized("invalid email or password")
	}

	now := time.Now()
	s.db.Model(&user).Update("last_login", &now)

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, s.jwtCfg.ExpireHour)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, User: &user}, nil
}

// GetUserByID loads a user profile.
func (s *AuthService) GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// ChangePassword updates a user's password after verifying the old one.
func (s *AuthService) ChangePassword(userID uint, req *ChangePasswordRequest) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return response.NewNotFound("user not found")
	}

	if !utils.CheckPassword(req.OldPassword, user.Password) {
		return response.NewUnauthorized("old password is incorrect")
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.db.Model(&user).Update("password", hash).Error
}

// ListUsers returns all active accounts.
func (s *AuthService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserRole changes a user's profile role. Tokens issued before the
// change keep the old app_role claim until reissued; the profile row is
// what the gates trust first.
func (s *AuthService) UpdateUserRole(userID uint, role string) (*models.User, error) {
	role = roles.Normalize(role)
	if role != "" && role != roles.Resident && role != roles.Coach && role != roles.ServicePro {
		return nil, response.NewBadRequest("invalid role")
	}

	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(user).Update("role", role).Error; err != nil {
		return nil, err
	}
	user.Role = role
	return user, nil
}

// CreateCoachIfNotExists seeds a default coach account on first boot.
func (s *AuthService) CreateCoachIfNotExists() error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("role = ?", roles.Coach).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword("coach123456")
	if err != nil {
		return err
	}

	coach := models.User{
		Email:    "coach@renohub.local",
		Password: hash,
		Name:     "Default Coach",
		Role:     roles.Coach,
		IsActive: true,
	}
	if err := s.db.Create(&coach).Error; err != nil {
		return err
	}

	logger.Infof("Default coach account created: %s", coach.Email)
	return nil
}
