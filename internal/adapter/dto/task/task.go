package task

import "time"

// TaskResponse represents a task in responses
type TaskResponse struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
	DueDateStr  string `json:"due_date_str"`
	Status      string `json:"status"`
	IsLocked    bool   `json:"is_locked"`
	MeetingID   uint   `json:"meeting_id"`
	AssigneeID  *uint  `json:"assignee_id"`
}

// AddUpdateRequest appends a comment and optionally changes the status
type AddUpdateRequest struct {
	Comment string `json:"comment" form:"comment" validate:"required,max=4000"`
	Status  string `json:"status,omitempty" form:"status" validate:"omitempty,oneof='To Do' 'In Progress' Done"`
}

// TaskUpdateResponse represents a task update in responses
type TaskUpdateResponse struct {
	ID        uint      `json:"id"`
	TaskID    uint      `json:"task_id"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"timestamp"`
}
