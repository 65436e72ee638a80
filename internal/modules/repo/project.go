package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/taskdeck/taskdeck/internal/modules/model"
)

type ProjectRepo interface {
	ListWithStats(ctx context.Context) ([]model.ProjectWithStats, error)
	Get(ctx context.Context, id int64) (*model.Project, error)
	CreateWithOwner(ctx context.Context, p *model.Project, userID int64) error
	Save(ctx context.Context, p *model.Project) error
	DeleteCascade(ctx context.Context, id int64) error
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) ListWithStats(ctx context.Context) ([]model.ProjectWithStats, error) {
	var rows []model.ProjectWithStats
	err := r.db.WithContext(ctx).Model(&model.Project{}).
		Select(`projects.*,
			(SELECT COUNT(*) FROM tasks t WHERE t.project_id = projects.id) AS task_count,
			(SELECT MAX(tr.started_at) FROM task_runs tr JOIN tasks t ON t.id = tr.task_id WHERE t.project_id = projects.id) AS last_run_at`).
		Order("projects.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *projectRepo) Get(ctx context.Context, id int64) (*model.Project, error) {
	var p model.Project
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateWithOwner inserts the project and enrolls the creator as owner
// in one transaction.
func (r *projectRepo) CreateWithOwner(ctx context.Context, p *model.Project, userID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return tx.Create(&model.ProjectRole{
			ProjectID: p.ID,
			UserID:    userID,
			Role:      model.RoleOwner,
		}).Error
	})
}

func (r *projectRepo) Save(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// DeleteCascade removes the project and every transitive dependent,
// children before parents, inside one transaction. A failure at any
// step rolls the whole teardown back.
func (r *projectRepo) DeleteCascade(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taskIDs []int64
		if err := tx.Model(&model.Task{}).Where("project_id = ?", id).Pluck("id", &taskIDs).Error; err != nil {
			return fmt.Errorf("collect tasks: %w", err)
		}

		if len(taskIDs) > 0 {
			var runIDs []int64
			if err := tx.Model(&model.TaskRun{}).Where("task_id IN ?", taskIDs).Pluck("id", &runIDs).Error; err != nil {
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

			if err := tx.Where("task_id IN ?", taskIDs).Delete(&model.TaskGroupMembership{}).Error; err != nil {
				return fmt.Errorf("delete task memberships: %w", err)
			}
			if err := tx.Where("id IN ?", taskIDs).Delete(&model.Task{}).Error; err != nil {
				return fmt.Errorf("delete tasks: %w", err)
			}
		}

		var groupIDs []int64
		if err := tx.Model(&model.TaskGroup{}).Where("project_id = ?", id).Pluck("id", &groupIDs).Error; err != nil {
			return fmt.Errorf("collect groups: %w", err)
		}
		if len(groupIDs) > 0 {
			if err := tx.Where("group_id IN ?", groupIDs).Delete(&model.TaskGroupMembership{}).Error; err != nil {
				return fmt.Errorf("delete group memberships: %w", err)
			}
			if err := tx.Where("id IN ?", groupIDs).Delete(&model.TaskGroup{}).Error; err != nil {
				return fmt.Errorf("delete groups: %w", err)
			}
		}

		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectRole{}).Error; err != nil {
			return fmt.Errorf("delete roles: %w", err)
		}

		if err := tx.Delete(&model.Project{}, id).Error; err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		return nil
	})
}
