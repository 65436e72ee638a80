package service

import (
	"context"
	"strings"

	"gorm.io/datatypes"

	"github.com/taskdeck/taskdeck/internal/modules/model"
	"github.com/taskdeck/taskdeck/internal/modules/repo"
	"github.com/taskdeck/taskdeck/internal/pkg/apperr"
)

type ProjectService interface {
	List(ctx context.Context) ([]model.ProjectWithStats, error)
	Get(ctx context.Context, id int64) (*model.Project, error)
	Create(ctx context.Context, in CreateProjectInput) (*model.Project, error)
	Update(ctx context.Context, id int64, in UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, id int64) error
}

type projectService struct {
	r repo.ProjectRepo
}

func NewProjectService(r repo.ProjectRepo) ProjectService {
	return &projectService{r: r}
}

type CreateProjectInput struct {
	Title       string
	Description string
	BasePrompt  string
	Settings    map[string]interface{}
	OwnerID     int64
}

// UpdateProjectInput carries partial-update fields: nil means "keep the
// stored value".
type UpdateProjectInput struct {
	Title       *string
	Description *string
	BasePrompt  *string
	Settings    map[string]interface{}
}

func (s *projectService) List(ctx context.Context) ([]model.ProjectWithStats, error) {
	return s.r.ListWithStats(ctx)
}

func (s *projectService) Get(ctx context.Context, id int64) (*model.Project, error) {
	p, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Project not found")
	}
	return p, nil
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Validation("title is required")
	}

	p := &model.Project{
		Title:       in.Title,
		Description: in.Description,
		BasePrompt:  in.BasePrompt,
		Settings:    datatypes.JSONMap(in.Settings),
	}
	if err := s.r.CreateWithOwner(ctx, p, in.OwnerID); err != nil {
		return nil, apperr.Store("Failed to create project", err)
	}
	return p, nil
}

func (s *projectService) Update(ctx context.Context, id int64, in UpdateProjectInput) (*model.Project, error) {
	p, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Project not found")
	}

	// Empty titles are ignored rather than persisted: the non-empty
	// title invariant holds across updates too.
	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.BasePrompt != nil {
		p.BasePrompt = *in.BasePrompt
	}
	if in.Settings != nil {
		p.Settings = datatypes.JSONMap(in.Settings)
	}

	if err := s.r.Save(ctx, p); err != nil {
		return nil, apperr.Store("Failed to update project", err)
	}
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	if _, err := s.r.Get(ctx, id); err != nil {
		return notFoundOr(err, "Project not found")
	}
	if err := s.r.DeleteCascade(ctx, id); err != nil {
		return apperr.Store("Failed to delete project", err)
	}
	return nil
}
