package entities

import "time"

// Meeting is one audio ingestion: a source file and the minutes produced from it
type Meeting struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Filename  string    `json:"filename" gorm:"type:varchar(512);not null"`
	Summary   *string   `json:"summary" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:MeetingID"`
}

// TableName overrides the table name
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a meeting for an uploaded file
func NewMeeting(filename, summary string) *Meeting {
	m := &Meeting{
		Filename:  filename,
		CreatedAt: time.Now().UTC(),
	}
	if summary != "" {
		m.Summary = &summary
	}
	return m
}

// SummaryText returns the summary or an empty string
func (m *Meeting) SummaryText() string {
	if m.Summary == nil {
		return ""
	}
	return *m.Summary
}
