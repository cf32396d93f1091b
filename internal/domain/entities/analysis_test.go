package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    LooseString
		wantErr bool
	}{
		{name: "string", input: `"Priya"`, want: "Priya"},
		{name: "null", input: `null`, want: ""},
		{name: "number", input: `20240601`, want: "20240601"},
		{name: "bool", input: `true`, want: "true"},
		{name: "object", input: `{"name":"x"}`, wantErr: true},
		{name: "array", input: `["x"]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got LooseString
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractedTask_AssigneeKey(t *testing.T) {
	var task ExtractedTask
	require.NoError(t, json.Unmarshal([]byte(`{"task_description":"Ship it","assignee":"  Priya ","due_date":null}`), &task))

	assert.Equal(t, "priya", task.AssigneeKey())
	assert.Equal(t, LooseString("Ship it"), task.Description)
	assert.Equal(t, LooseString(""), task.DueDate)
}

func TestNewMeeting_EmptySummaryIsNull(t *testing.T) {
	m := NewMeeting("standup.mp3", "")
	assert.Nil(t, m.Summary)
	assert.Equal(t, "", m.SummaryText())

	m = NewMeeting("standup.mp3", "Discussed launch.")
	require.NotNil(t, m.Summary)
	assert.Equal(t, "Discussed launch.", m.SummaryText())
}

func TestTask_IsAssignedTo(t *testing.T) {
	id := uint(3)
	task := NewTask("Write notes", "Friday", &id)
	assert.True(t, task.IsAssignedTo(3))
	assert.False(t, task.IsAssignedTo(4))
	assert.Equal(t, TaskStatusToDo, task.Status)

	assert.False(t, NewTask("Orphan", "", nil).IsAssignedTo(3))
}
