package entities

import "time"

// TaskUpdate is an append-only comment on a task
type TaskUpdate struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Comment   string    `json:"comment" gorm:"type:text;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
	TaskID    uint      `json:"task_id" gorm:"not null;index"`
}

// TableName overrides the table name
func (TaskUpdate) TableName() string {
	return "task_updates"
}

// NewTaskUpdate creates an update stamped with the current time
func NewTaskUpdate(taskID uint, comment string) *TaskUpdate {
	return &TaskUpdate{
		Comment:   comment,
		Timestamp: time.Now().UTC(),
		TaskID:    taskID,
	}
}
