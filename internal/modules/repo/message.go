package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/taskdeck/taskdeck/internal/modules/model"
)

type MessageRepo interface {
	// ListByRun returns the full transcript, creation time ascending.
	ListByRun(ctx context.Context, runID int64) ([]model.TaskMessage, error)
	Create(ctx context.Context, m *model.TaskMessage) error
}

type messageRepo struct{ db *gorm.DB }

func NewMessageRepo(db *gorm.DB) MessageRepo {
	return &messageRepo{db: db}
}

func (r *messageRepo) ListByRun(ctx context.Context, runID int64) ([]model.TaskMessage, error) {
	var items []model.TaskMessage
	err := r.db.WithContext(ctx).
		Where("task_run_id = ?", runID).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	return items, err
}

func (r *messageRepo) Create(ctx context.Context, m *model.TaskMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}
