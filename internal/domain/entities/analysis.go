package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// AnalysisResult represents the structured output of the meeting analysis
type AnalysisResult struct {
	Minutes string          `json:"minutes"`
	Tasks   []ExtractedTask `json:"tasks"`

	// Raw is the JSON object exactly as the model returned it
	Raw json.RawMessage `json:"-"`
}

// ExtractedTask represents an action item as extracted by the model
type ExtractedTask struct {
	Description LooseString `json:"task_description"`
	Assignee    LooseString `json:"assignee"`
	DueDate     LooseString `json:"due_date"`
}

// AssigneeKey returns the normalized form used to match usernames
func (t ExtractedTask) AssigneeKey() string {
	return NormalizeUsername(string(t.Assignee))
}

// NormalizeUsername trims and lowercases a username for matching
func NormalizeUsername(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// LooseString accepts a JSON string, number, bool, or null. Models are not
// consistent about quoting dates or leaving unknown assignees as null.
type LooseString string

// UnmarshalJSON implements json.Unmarshaler
func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = LooseString(str)
		return nil
	}
	if len(data) > 0 && (data[0] == '{' || data[0] == '[') {
		return fmt.Errorf("expected a scalar, got %s", data[:1])
	}
	*s = LooseString(data)
	return nil
}
