package presenter

import (
	meetingDTO "github.com/johnquangdev/meeting-analyzer/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
	meetingUC "github.com/johnquangdev/meeting-analyzer/internal/usecase/meeting"
)

// ToMeetingResponse converts a Meeting entity, with any loaded tasks, to its DTO
func ToMeetingResponse(m *entities.Meeting) *meetingDTO.MeetingResponse {
	if m == nil {
		return nil
	}
	resp := &meetingDTO.MeetingResponse{
		ID:        m.ID,
		Filename:  m.Filename,
		Summary:   m.Summary,
		CreatedAt: m.CreatedAt,
	}
	for i := range m.Tasks {
		resp.Tasks = append(resp.Tasks, ToTaskResponse(&m.Tasks[i]))
	}
	return resp
}

// ToMeetingListResponse converts meetings to DTOs; never returns nil
func ToMeetingListResponse(meetings []*entities.Meeting) []*meetingDTO.MeetingResponse {
	out := make([]*meetingDTO.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, ToMeetingResponse(m))
	}
	return out
}

// ToProcessResponse converts an ingestion result to its DTO
func ToProcessResponse(r *meetingUC.ProcessResult) *meetingDTO.ProcessResponse {
	if r == nil {
		return nil
	}
	return &meetingDTO.ProcessResponse{
		MeetingInfo: meetingDTO.MeetingInfo{
			ID:       r.MeetingInfo.ID,
			Filename: r.MeetingInfo.Filename,
		},
		Results: r.Results,
	}
}
