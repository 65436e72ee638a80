package model

import "time"

type TaskGroup struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID int64 `gorm:"not null;index:ix_task_groups_project_id" json:"project_id"`

	Title       string `gorm:"type:text;not null" json:"title"`
	Description string `gorm:"type:text;not null;default:''" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TaskGroup) TableName() string { return "task_groups" }

// TaskGroupMembership links a task into a group. The pair is the primary
// key, so re-inserting an existing membership is a no-op upsert.
type TaskGroupMembership struct {
	GroupID int64 `gorm:"primaryKey" json:"group_id"`
	TaskID  int64 `gorm:"primaryKey" json:"task_id"`

	Group *TaskGroup `gorm:"foreignKey:GroupID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Task  *Task      `gorm:"foreignKey:TaskID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (TaskGroupMembership) TableName() string { return "task_group_memberships" }

type TaskGroupWithStats struct {
	TaskGroup `gorm:"embedded"`
	TaskCount int64 `json:"task_count"`
}
