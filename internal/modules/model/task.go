package model

import "time"

type Task struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID int64 `gorm:"not null;index:ix_tasks_project_id" json:"project_id"`

	Title       string `gorm:"type:text;not null" json:"title"`
	Description string `gorm:"type:text;not null;default:''" json:"description"`
	Status      string `gorm:"type:text;not null;default:'idle'" json:"status"`
	Priority    int    `gorm:"not null;default:0" json:"priority"`
	TaskPrompt  string `gorm:"type:text;not null;default:''" json:"task_prompt"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Task <-> TaskRun
	Runs []TaskRun `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"runs,omitempty"`
}

func (Task) TableName() string { return "tasks" }

// TaskWithStats is the list projection with a derived run counter.
type TaskWithStats struct {
	Task      `gorm:"embedded"`
	RunsCount int64 `json:"runs_count"`
}

// TaskCode is the restricted projection exposed by the tasks-as-code
// document; bookkeeping columns stay internal.
type TaskCode struct {
	ID          *int64 `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    int    `json:"priority"`
}
