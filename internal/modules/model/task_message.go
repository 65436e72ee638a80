package model

import "time"

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
	MessageRoleSystem    = "system"
)

type TaskMessage struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskRunID int64 `gorm:"not null;index:ix_task_messages_task_run_id" json:"task_run_id"`

	Role    string `gorm:"type:text;not null" json:"role"`
	Content string `gorm:"type:text;not null" json:"content"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TaskMessage) TableName() string { return "task_messages" }
