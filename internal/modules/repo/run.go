package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/taskdeck/taskdeck/internal/modules/model"
)

type RunRepo interface {
	ListByProject(ctx context.Context, projectID int64, taskID *int64) ([]model.TaskRunWithTask, error)
	GetInProject(ctx context.Context, id, projectID int64) (*model.TaskRun, error)
	Get(ctx context.Context, id int64) (*model.TaskRun, error)
	Create(ctx context.Context, run *model.TaskRun) error
	Save(ctx context.Context, run *model.TaskRun) error
}

type runRepo struct{ db *gorm.DB }

func NewRunRepo(db *gorm.DB) RunRepo {
	return &runRepo{db: db}
}

func (r *runRepo) ListByProject(ctx context.Context, projectID int64, taskID *int64) ([]model.TaskRunWithTask, error) {
	q := r.db.WithContext(ctx).Model(&model.TaskRun{}).
		Select("task_runs.*, t.title AS task_title").
		Joins("JOIN tasks t ON t.id = task_runs.task_id").
		Where("t.project_id = ?", projectID)
	if taskID != nil {
		q = q.Where("task_runs.task_id = ?", *taskID)
	}

	var rows []model.TaskRunWithTask
	return rows, q.Order("task_runs.started_at DESC").Scan(&rows).Error
}

// GetInProject resolves a run through its task so cross-project run ids
// come back not-found.
func (r *runRepo) GetInProject(ctx context.Context, id, projectID int64) (*model.TaskRun, error) {
	var run model.TaskRun
	err := r.db.WithContext(ctx).
		Joins("JOIN tasks t ON t.id = task_runs.task_id").
		Where("task_runs.id = ? AND t.project_id = ?", id, projectID).
		First(&run).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *runRepo) Get(ctx context.Context, id int64) (*model.TaskRun, error) {
	var run model.TaskRun
	if err := r.db.WithContext(ctx).First(&run, id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *runRepo) Create(ctx context.Context, run *model.TaskRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *runRepo) Save(ctx context.Context, run *model.TaskRun) error {
	return r.db.WithContext(ctx).Save(run).Error
}
