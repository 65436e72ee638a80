package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/taskdeck/taskdeck/internal/modules/model"
)

type RoleRepo interface {
	// Get returns nil (not an error) when no row exists for the pair.
	Get(ctx context.Context, projectID, userID int64) (*model.ProjectRole, error)
	Assign(ctx context.Context, pr *model.ProjectRole) error
}

type roleRepo struct{ db *gorm.DB }

func NewRoleRepo(db *gorm.DB) RoleRepo {
	return &roleRepo{db: db}
}

func (r *roleRepo) Get(ctx context.Context, projectID, userID int64) (*model.ProjectRole, error) {
	var pr model.ProjectRole
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&pr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

// Assign upserts the (project_id, user_id) pair; last write wins.
func (r *roleRepo) Assign(ctx context.Context, pr *model.ProjectRole) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role"}),
	}).Create(pr).Error
}
