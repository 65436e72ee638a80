package service

import (
	"context"
	"time"

	"github.com/taskdeck/taskdeck/internal/modules/model"
	"github.com/taskdeck/taskdeck/internal/modules/repo"
	"github.com/taskdeck/taskdeck/internal/pkg/apperr"
)

type RunService interface {
	List(ctx context.Context, projectID int64, taskID *int64) ([]model.TaskRunWithTask, error)
	Start(ctx context.Context, projectID, taskID int64) (*model.TaskRun, error)
	Update(ctx context.Context, projectID, id int64, in UpdateRunInput) (*model.TaskRun, error)
}

type runService struct {
	runs  repo.RunRepo
	tasks repo.TaskRepo
}

func NewRunService(runs repo.RunRepo, tasks repo.TaskRepo) RunService {
	return &runService{runs: runs, tasks: tasks}
}

type UpdateRunInput struct {
	Status     *string
	RunSummary *string
	FinishedAt *time.Time
}

func (s *runService) List(ctx context.Context, projectID int64, taskID *int64) ([]model.TaskRunWithTask, error) {
	return s.runs.ListByProject(ctx, projectID, taskID)
}

// Start opens a new run for a task. The task must belong to the claimed
// project; a mismatch is NotFound, not Forbidden, so task existence
// does not leak across projects.
func (s *runService) Start(ctx context.Context, projectID, taskID int64) (*model.TaskRun, error) {
	if _, err := s.tasks.GetInProject(ctx, taskID, projectID); err != nil {
		return nil, notFoundOr(err, "Task not found for this project")
	}

	run := &model.TaskRun{
		TaskID: taskID,
		Status: model.RunStatusRunning,
	}
	if err := s.runs.Create(ctx, run); err != nil {
		return nil, apperr.Store("Failed to start run", err)
	}
	return run, nil
}

func (s *runService) Update(ctx context.Context, projectID, id int64, in UpdateRunInput) (*model.TaskRun, error) {
	run, err := s.runs.GetInProject(ctx, id, projectID)
	if err != nil {
		return nil, notFoundOr(err, "Run not found for this project")
	}

	if in.Status != nil && *in.Status != "" {
		run.Status = *in.Status
	}
	if in.RunSummary != nil {
		run.RunSummary = in.RunSummary
	}
	switch {
	case in.FinishedAt != nil:
		run.FinishedAt = in.FinishedAt
	case in.Status != nil && *in.Status == model.RunStatusCompleted && run.FinishedAt == nil:
		// Completion without an explicit finish time is stamped here.
		now := time.Now().UTC()
		run.FinishedAt = &now
	}

	if err := s.runs.Save(ctx, run); err != nil {
		return nil, apperr.Store("Failed to update run", err)
	}
	return run, nil
}
