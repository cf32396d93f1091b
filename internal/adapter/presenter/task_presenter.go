package presenter

import (
	taskDTO "github.com/johnquangdev/meeting-analyzer/internal/adapter/dto/task"
	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
)

// ToTaskResponse converts a Task entity to TaskResponse DTO
func ToTaskResponse(t *entities.Task) *taskDTO.TaskResponse {
	if t == nil {
		return nil
	}
	return &taskDTO.TaskResponse{
		ID:          t.ID,
		Description: t.Description,
		DueDateStr:  t.DueDate,
		Status:      string(t.Status),
		IsLocked:    t.IsLocked,
		MeetingID:   t.MeetingID,
		AssigneeID:  t.AssigneeID,
	}
}

// ToTaskListResponse converts tasks to DTOs; never returns nil
func ToTaskListResponse(tasks []*entities.Task) []*taskDTO.TaskResponse {
	out := make([]*taskDTO.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, ToTaskResponse(t))
	}
	return out
}

// ToTaskUpdateResponse converts a TaskUpdate entity to its DTO
func ToTaskUpdateResponse(u *entities.TaskUpdate) *taskDTO.TaskUpdateResponse {
	if u == nil {
		return nil
	}
	return &taskDTO.TaskUpdateResponse{
		ID:        u.ID,
		TaskID:    u.TaskID,
		Comment:   u.Comment,
		Timestamp: u.Timestamp,
	}
}

// ToTaskUpdateListResponse converts updates to DTOs; never returns nil
func ToTaskUpdateListResponse(updates []*entities.TaskUpdate) []*taskDTO.TaskUpdateResponse {
	out := make([]*taskDTO.TaskUpdateResponse, 0, len(updates))
	for _, u := range updates {
		out = append(out, ToTaskUpdateResponse(u))
	}
	return out
}
