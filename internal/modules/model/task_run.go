package model

import "time"

// Run statuses are an open vocabulary; these are the two the server
// itself assigns.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
)

type TaskRun struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskID int64 `gorm:"not null;index:ix_task_runs_task_id" json:"task_id"`

	Status     string     `gorm:"type:text;not null;default:'running'" json:"status"`
	StartedAt  time.Time  `gorm:"autoCreateTime" json:"started_at"`
	FinishedAt *time.Time `json:"finished_at"`
	RunSummary *string    `gorm:"type:text" json:"run_summary"`

	// TaskRun <-> TaskMessage
	Messages []TaskMessage `gorm:"foreignKey:TaskRunID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"messages,omitempty"`
}

func (TaskRun) TableName() string { return "task_runs" }

// TaskRunWithTask is the list projection joined with its task title.
type TaskRunWithTask struct {
	TaskRun   `gorm:"embedded"`
	TaskTitle string `json:"task_title"`
}
