package entities

// TaskStatus is the free-form workflow state of a task
type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "To Do"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusDone       TaskStatus = "Done"
)

// IsValid checks if the status is one of the known values
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// Task is an action item extracted from a meeting.
// DueDate is kept exactly as the model phrased it ("next Friday", "2024-06-01").
type Task struct {
	ID          uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	Description string     `json:"description" gorm:"type:text;not null"`
	DueDate     string     `json:"due_date_str" gorm:"column:due_date_str;type:varchar(255)"`
	Status      TaskStatus `json:"status" gorm:"type:varchar(50);default:'To Do';not null"`
	IsLocked    bool       `json:"is_locked" gorm:"default:false;not null"`
	MeetingID   uint       `json:"meeting_id" gorm:"not null;index"`
	AssigneeID  *uint      `json:"assignee_id" gorm:"index"`

	Updates []TaskUpdate `json:"-" gorm:"foreignKey:TaskID"`
}

// TableName overrides the table name
func (Task) TableName() string {
	return "tasks"
}

// NewTask creates an open, unlocked task
func NewTask(description, dueDate string, assigneeID *uint) *Task {
	return &Task{
		Description: description,
		DueDate:     dueDate,
		Status:      TaskStatusToDo,
		AssigneeID:  assigneeID,
	}
}

// IsAssignedTo checks whether the task belongs to the given user
func (t *Task) IsAssignedTo(userID uint) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}
