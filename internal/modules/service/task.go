package service

import (
	"context"
	"strings"

	"github.com/taskdeck/taskdeck/internal/modules/model"
	"github.com/taskdeck/taskdeck/internal/modules/repo"
	"github.com/taskdeck/taskdeck/internal/pkg/apperr"
)

type TaskService interface {
	List(ctx context.Context, projectID int64) ([]model.TaskWithStats, error)
	Get(ctx context.Context, id int64) (*model.Task, error)
	Create(ctx context.Context, projectID int64, in CreateTaskInput) (*model.Task, error)
	Update(ctx context.Context, id int64, in UpdateTaskInput) (*model.Task, error)
	Delete(ctx context.Context, projectID, id int64) error
}

type taskService struct {
	r repo.TaskRepo
}

func NewTaskService(r repo.TaskRepo) TaskService {
	return &taskService{r: r}
}

type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    *int
	TaskPrompt  string
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *int
	TaskPrompt  *string
}

func (s *taskService) List(ctx context.Context, projectID int64) ([]model.TaskWithStats, error) {
	return s.r.ListWithStats(ctx, projectID)
}

func (s *taskService) Get(ctx context.Context, id int64) (*model.Task, error) {
	t, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Task not found")
	}
	return t, nil
}

func (s *taskService) Create(ctx context.Context, projectID int64, in CreateTaskInput) (*model.Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Validation("title is required")
	}

	t := &model.Task{
		ProjectID:   projectID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		TaskPrompt:  in.TaskPrompt,
	}
	if t.Status == "" {
		t.Status = "idle"
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}

	if err := s.r.Create(ctx, t); err != nil {
		return nil, apperr.Store("Failed to create task", err)
	}
	return t, nil
}

func (s *taskService) Update(ctx context.Context, id int64, in UpdateTaskInput) (*model.Task, error) {
	t, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Task not found")
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Status != nil && *in.Status != "" {
		t.Status = *in.Status
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.TaskPrompt != nil {
		t.TaskPrompt = *in.TaskPrompt
	}

	if err := s.r.Save(ctx, t); err != nil {
		return nil, apperr.Store("Failed to update task", err)
	}
	return t, nil
}

// Delete tears down one task. The project scope check 404s on mismatch
// so task ids are not probeable across projects.
func (s *taskService) Delete(ctx context.Context, projectID, id int64) error {
	if _, err := s.r.GetInProject(ctx, id, projectID); err != nil {
		return notFoundOr(err, "Task not found for this project")
	}
	if err := s.r.DeleteCascade(ctx, id); err != nil {
		return apperr.Store("Failed to delete task", err)
	}
	return nil
}
