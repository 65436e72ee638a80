package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/taskdeck/taskdeck/internal/modules/model"
)

type TaskRepo interface {
	ListWithStats(ctx context.Context, projectID int64) ([]model.TaskWithStats, error)
	Get(ctx context.Context, id int64) (*model.Task, error)
	GetInProject(ctx context.Context, id, projectID int64) (*model.Task, error)
	Create(ctx context.Context, t *model.Task) error
	Save(ctx context.Context, t *model.Task) error
	DeleteCascade(ctx context.Context, id int64) error
}

type taskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) TaskRepo {
	return &taskRepo{db: db}
}

func (r *taskRepo) ListWithStats(ctx context.Context, projectID int64) ([]model.TaskWithStats, error) {
	var rows []model.TaskWithStats
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select(`tasks.*,
			(SELECT COUNT(*) FROM task_runs r WHERE r.task_id = tasks.id) AS runs_count`).
		Where("tasks.project_id = ?", projectID).
		Order("tasks.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *taskRepo) Get(ctx context.Context, id int64) (*model.Task, error) {
	var t model.Task
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepo) GetInProject(ctx context.Context, id, projectID int64) (*model.Task, error) {
	var t model.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", id, projectID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepo) Create(ctx context.Context, t *model.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *taskRepo) Save(ctx context.Context, t *model.Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// DeleteCascade removes one task with its runs, messages and group
// memberships, children first, in one transaction.
func (r *taskRepo) DeleteCascade(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var runIDs []int64
		if err := tx.Model(&model.TaskRun{}).Where("task_id = ?", id).Pluck("id", &runIDs).Error; err != nil {
			return fmt.Errorf("collect runs: %w", err)
		}

		if len(runIDs) > 0 {
			if err := tx.Where("task_run_id IN ?", runIDs).Delete(&model.TaskMessage{}).Error; err != nil {
				return fmt.Errorf("delete messages: %w", err)
			}
			if err := tx.Where("id IN ?", runIDs).Delete(&model.TaskRun{}).Error; err != nil {
				return fmt.Errorf("delete runs: %w", err)
			}
		}

		if err := tx.Where("task_id = ?", id).Delete(&model.TaskGroupMembership{}).Error; err != nil {
			return fmt.Errorf("delete memberships: %w", err)
		}

		if err := tx.Delete(&model.Task{}, id).Error; err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		return nil
	})
}
