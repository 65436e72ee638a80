package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/taskdeck/taskdeck/internal/modules/model"
	"github.com/taskdeck/taskdeck/internal/modules/repo"
	"github.com/taskdeck/taskdeck/internal/pkg/apperr"
)

type GroupService interface {
	List(ctx context.Context, projectID int64) ([]model.TaskGroupWithStats, error)
	Create(ctx context.Context, projectID int64, in CreateGroupInput) (*model.TaskGroup, error)
	Update(ctx context.Context, projectID, id int64, in UpdateGroupInput) (*model.TaskGroup, error)
	Delete(ctx context.Context, projectID, id int64) error
	AddTasks(ctx context.Context, projectID, groupID int64, taskIDs []int64) error
	RemoveTask(ctx context.Context, groupID, taskID int64) error
}

type groupService struct {
	r repo.GroupRepo
}

func NewGroupService(r repo.GroupRepo) GroupService {
	return &groupService{r: r}
}

type CreateGroupInput struct {
	Title       string
	Description string
}

type UpdateGroupInput struct {
	Title       *string
	Description *string
}

func (s *groupService) List(ctx context.Context, projectID int64) ([]model.TaskGroupWithStats, error) {
	return s.r.ListWithStats(ctx, projectID)
}

func (s *groupService) Create(ctx context.Context, projectID int64, in CreateGroupInput) (*model.TaskGroup, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Validation("title is required")
	}

	g := &model.TaskGroup{
		ProjectID:   projectID,
		Title:       in.Title,
		Description: in.Description,
	}
	if err := s.r.Create(ctx, g); err != nil {
		return nil, apperr.Store("Failed to create group", err)
	}
	return g, nil
}

func (s *groupService) Update(ctx context.Context, projectID, id int64, in UpdateGroupInput) (*model.TaskGroup, error) {
	g, err := s.r.GetInProject(ctx, id, projectID)
	if err != nil {
		return nil, notFoundOr(err, "Group not found for this project")
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		g.Title = *in.Title
	}
	if in.Description != nil {
		g.Description = *in.Description
	}

	if err := s.r.Save(ctx, g); err != nil {
		return nil, apperr.Store("Failed to update group", err)
	}
	return g, nil
}

func (s *groupService) Delete(ctx context.Context, projectID, id int64) error {
	err := s.r.Delete(ctx, id, projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Group not found for this project")
	}
	if err != nil {
		return apperr.Store("Failed to delete group", err)
	}
	return nil
}

func (s *groupService) AddTasks(ctx context.Context, projectID, groupID int64, taskIDs []int64) error {
	if len(taskIDs) == 0 {
		return apperr.Validation("taskIds must be a non-empty array")
	}
	if _, err := s.r.GetInProject(ctx, groupID, projectID); err != nil {
		return notFoundOr(err, "Group not found for this project")
	}
	if err := s.r.AddMembers(ctx, groupID, taskIDs); err != nil {
		return apperr.Store("Failed to assign tasks", err)
	}
	return nil
}

func (s *groupService) RemoveTask(ctx context.Context, groupID, taskID int64) error {
	removed, err := s.r.RemoveMember(ctx, groupID, taskID)
	if err != nil {
		return apperr.Store("Failed to remove task from group", err)
	}
	if !removed {
		return apperr.NotFound("Membership not found for given group/task")
	}
	return nil
}
