package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
)

// AnalysisPrompt asks the model for meeting minutes and action items as JSON
const AnalysisPrompt = `Analyze the following meeting audio. Your tasks are to:
1. Generate a concise "Minutes of Meeting" summary.
2. Extract all action items into a structured list.

Respond with a single, valid JSON object with two keys: "minutes" and "tasks".
Each task object must have keys: "task_description", "assignee", and "due_date".
Use the speaker's first name as "assignee" when it is known and null otherwise.
Keep "due_date" exactly as it was said, or null when none was given.`

// ParseAnalysis decodes the model's reply. The reply must be a JSON object
// with a string "minutes" and an array "tasks"; other keys are ignored.
func ParseAnalysis(content string) (*entities.AnalysisResult, error) {
	raw := []byte(extractJSON(content))

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	minutes, ok := fields["minutes"]
	if !ok || !isJSONKind(minutes, '"') {
		return nil, fmt.Errorf("missing minutes in response")
	}
	tasks, ok := fields["tasks"]
	if !ok || !isJSONKind(tasks, '[') {
		return nil, fmt.Errorf("missing tasks in response")
	}

	var result entities.AnalysisResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	result.Raw = json.RawMessage(raw)

	return &result, nil
}

func isJSONKind(v json.RawMessage, first byte) bool {
	v = bytes.TrimSpace(v)
	return len(v) > 0 && v[0] == first
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	// Check if wrapped in markdown code block
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimPrefix(content, "json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
