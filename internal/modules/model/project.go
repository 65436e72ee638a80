package model

import (
	"time"

	"gorm.io/datatypes"
)

type Project struct {
	ID          int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string            `gorm:"type:text;not null" json:"title"`
	Description string            `gorm:"type:text;not null;default:''" json:"description"`
	BasePrompt  string            `gorm:"type:text;not null;default:''" json:"base_prompt"`
	Settings    datatypes.JSONMap `gorm:"type:jsonb" json:"settings,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Project <-> Task
	Tasks []Task `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"tasks,omitempty"`

	// Project <-> TaskGroup
	Groups []TaskGroup `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"groups,omitempty"`
}

func (Project) TableName() string { return "projects" }

// ProjectWithStats is the list projection: task_count and last_run_at are
// derived per request, never stored.
type ProjectWithStats struct {
	Project   `gorm:"embedded"`
	TaskCount int64      `json:"task_count"`
	LastRunAt *time.Time `json:"last_run_at"`
}
