package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/taskdeck/taskdeck/internal/modules/model"
)

// TaskCodeRepo backs the tasks-as-code reconciliation engine.
type TaskCodeRepo interface {
	Snapshot(ctx context.Context, projectID int64) (*TaskCodeSnapshot, error)
	Apply(ctx context.Context, projectID int64, doc *model.TaskCodeDoc) error
}

// TaskCodeSnapshot is the raw row set the read path is assembled from.
type TaskCodeSnapshot struct {
	Tasks       []model.Task
	Groups      []model.TaskGroup
	Memberships []model.TaskGroupMembership
}

type taskCodeRepo struct{ db *gorm.DB }

func NewTaskCodeRepo(db *gorm.DB) TaskCodeRepo {
	return &taskCodeRepo{db: db}
}

func (r *taskCodeRepo) Snapshot(ctx context.Context, projectID int64) (*TaskCodeSnapshot, error) {
	snap := &TaskCodeSnapshot{}
	d := r.db.WithContext(ctx)

	if err := d.Where("project_id = ?", projectID).Order("created_at DESC").Find(&snap.Tasks).Error; err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	if err := d.Where("project_id = ?", projectID).Order("created_at DESC").Find(&snap.Groups).Error; err != nil {
		return nil, fmt.Errorf("load groups: %w", err)
	}
	err := d.Where("group_id IN (?)",
		d.Model(&model.TaskGroup{}).Select("id").Where("project_id = ?", projectID),
	).Find(&snap.Memberships).Error
	if err != nil {
		return nil, fmt.Errorf("load memberships: %w", err)
	}
	return snap, nil
}

// Apply upserts the document in one transaction. Reconciliation is
// additive: rows and memberships are inserted or updated, never removed.
func (r *taskCodeRepo) Apply(ctx context.Context, projectID int64, doc *model.TaskCodeDoc) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range doc.Groups {
			in := &doc.Groups[i]

			group := model.TaskGroup{
				ProjectID:   projectID,
				Title:       in.Title,
				Description: in.Description,
			}
			if in.ID != nil {
				group.ID = *in.ID
				err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "id"}},
					DoUpdates: clause.AssignmentColumns([]string{"title", "description", "updated_at"}),
				}).Create(&group).Error
				if err != nil {
					return fmt.Errorf("upsert group %d: %w", group.ID, err)
				}
			} else if err := tx.Create(&group).Error; err != nil {
				return fmt.Errorf("insert group: %w", err)
			}

			for j := range in.Tasks {
				taskID, err := upsertTaskCode(tx, projectID, &in.Tasks[j])
				if err != nil {
					return err
				}
				err = tx.Clauses(clause.OnConflict{DoNothing: true}).
					Create(&model.TaskGroupMembership{GroupID: group.ID, TaskID: taskID}).Error
				if err != nil {
					return fmt.Errorf("link task %d to group %d: %w", taskID, group.ID, err)
				}
			}
		}

		// Ungrouped tasks are upserted without membership writes; an
		// omitted membership never detaches an existing one.
		for i := range doc.UngroupedTasks {
			if _, err := upsertTaskCode(tx, projectID, &doc.UngroupedTasks[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertTaskCode(tx *gorm.DB, projectID int64, in *model.TaskCode) (int64, error) {
	status := in.Status
	if status == "" {
		status = "idle"
	}
	task := model.Task{
		ProjectID:   projectID,
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		Priority:    in.Priority,
	}

	if in.ID != nil {
		task.ID = *in.ID
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "description", "status", "priority", "updated_at"}),
		}).Create(&task).Error
		if err != nil {
			return 0, fmt.Errorf("upsert task %d: %w", task.ID, err)
		}
		return task.ID, nil
	}

	if err := tx.Create(&task).Error; err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	return task.ID, nil
}
