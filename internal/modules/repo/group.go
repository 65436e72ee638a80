package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/taskdeck/taskdeck/internal/modules/model"
)

type GroupRepo interface {
	ListWithStats(ctx context.Context, projectID int64) ([]model.TaskGroupWithStats, error)
	GetInProject(ctx context.Context, id, projectID int64) (*model.TaskGroup, error)
	Create(ctx context.Context, g *model.TaskGroup) error
	Save(ctx context.Context, g *model.TaskGroup) error
	Delete(ctx context.Context, id, projectID int64) error
	AddMembers(ctx context.Context, groupID int64, taskIDs []int64) error
	RemoveMember(ctx context.Context, groupID, taskID int64) (bool, error)
}

type groupRepo struct{ db *gorm.DB }

func NewGroupRepo(db *gorm.DB) GroupRepo {
	return &groupRepo{db: db}
}

func (r *groupRepo) ListWithStats(ctx context.Context, projectID int64) ([]model.TaskGroupWithStats, error) {
	var rows []model.TaskGroupWithStats
	err := r.db.WithContext(ctx).Model(&model.TaskGroup{}).
		Select("task_groups.*, COUNT(tgm.task_id) AS task_count").
		Joins("LEFT JOIN task_group_memberships tgm ON tgm.group_id = task_groups.id").
		Where("task_groups.project_id = ?", projectID).
		Group("task_groups.id").
		Order("task_groups.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *groupRepo) GetInProject(ctx context.Context, id, projectID int64) (*model.TaskGroup, error) {
	var g model.TaskGroup
	err := r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", id, projectID).
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *groupRepo) Create(ctx context.Context, g *model.TaskGroup) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *groupRepo) Save(ctx context.Context, g *model.TaskGroup) error {
	return r.db.WithContext(ctx).Save(g).Error
}

// Delete removes the group and its memberships; the group row itself
// only when it belongs to the given project.
func (r *groupRepo) Delete(ctx context.Context, id, projectID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND project_id = ?", id, projectID).Delete(&model.TaskGroup{})
		if res.Error != nil {
			return fmt.Errorf("delete group: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Where("group_id = ?", id).Delete(&model.TaskGroupMembership{}).Error; err != nil {
			return fmt.Errorf("delete memberships: %w", err)
		}
		return nil
	})
}

// AddMembers inserts memberships; existing pairs are skipped, not
// errors.
func (r *groupRepo) AddMembers(ctx context.Context, groupID int64, taskIDs []int64) error {
	rows := make([]model.TaskGroupMembership, 0, len(taskIDs))
	for _, taskID := range taskIDs {
		rows = append(rows, model.TaskGroupMembership{GroupID: groupID, TaskID: taskID})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func (r *groupRepo) RemoveMember(ctx context.Context, groupID, taskID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("group_id = ? AND task_id = ?", groupID, taskID).
		Delete(&model.TaskGroupMembership{})
	return res.RowsAffected > 0, res.Error
}
