package meeting

import (
	"encoding/json"
	"time"

	taskDTO "github.com/johnquangdev/meeting-analyzer/internal/adapter/dto/task"
)

// MeetingInfo identifies the meeting created by an ingestion
type MeetingInfo struct {
	ID       uint   `json:"id"`
	Filename string `json:"filename"`
}

// ProcessResponse is returned by the audio ingestion endpoints. Results is
// the analysis exactly as the model returned it.
type ProcessResponse struct {
	MeetingInfo MeetingInfo     `json:"meeting_info"`
	Results     json.RawMessage `json:"results" swaggertype:"object"`
}

// MeetingResponse represents a meeting in responses
type MeetingResponse struct {
	ID        uint                    `json:"id"`
	Filename  string                  `json:"filename"`
	Summary   *string                 `json:"summary"`
	CreatedAt time.Time               `json:"created_at"`
	Tasks     []*taskDTO.TaskResponse `json:"tasks,omitempty"`
}
