package services

import (
	"errors"

	"github.com/renohub/backend/internal/models"
	"github.com/renohub/backend/pkg/response"
	"gorm.io/gorm"
)

// ProjectService manages renovation projects. Projects are soft-state
// only: they are never physically deleted here.
type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	PropertyRef string `json:"property_ref"`
	Preferences string `json:"preferences"`
}

type UpdateProjectRequest struct {
	Title       string `json:"title"`
	PropertyRef string `json:"property_ref"`
	Preferences string `json:"preferences"`
}

// Create creates a project owned by the given user.
func (s *ProjectService) Create(ownerID uint, req *CreateProjectRequest) (*models.Project, error) {
	project := models.Project{
		UserID:      ownerID,
		Title:       req.Title,
		PropertyRef: req.PropertyRef,
		Preferences: req.Preferences,
	}
	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListForUser returns every project the user owns or is a member of.
func (s *ProjectService) ListForUser(userID uint) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.
		Where("user_id = ?", userID).
		Or("id IN (?)", s.db.Model(&models.TeamMember{}).Select("project_id").Where("user_id = ?", userID)).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Get loads a single project.
func (s *ProjectService) Get(projectID uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}
	return &project, nil
}

// Update modifies a project's mutable fields.
func (s *ProjectService) Update(projectID uint, req *UpdateProjectRequest) (*models.Project, error) {
	project, err := s.Get(projectID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.PropertyRef != "" {
		updates["property_ref"] = req.PropertyRef
	}
	if req.Preferences != "" {
		updates["preferences"] = req.Preferences
	}

	if len(updates) > 0 {
		if err := s.db.Model(project).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return project, nil
}
