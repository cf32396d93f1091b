package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalysis(t *testing.T) {
	result, err := ParseAnalysis(`{"minutes":"Discussed Q3.","tasks":[{"task_description":"Send deck","assignee":"Priya","due_date":"Friday"},{"task_description":"Book venue","assignee":null,"due_date":null}]}`)
	require.NoError(t, err)

	assert.Equal(t, "Discussed Q3.", result.Minutes)
	require.Len(t, result.Tasks, 2)
	assert.Equal(t, "Send deck", string(result.Tasks[0].Description))
	assert.Equal(t, "priya", result.Tasks[0].AssigneeKey())
	assert.Equal(t, "Friday", string(result.Tasks[0].DueDate))
	assert.Empty(t, result.Tasks[1].Assignee)
	assert.Contains(t, string(result.Raw), `"Send deck"`)
}

func TestParseAnalysis_Fenced(t *testing.T) {
	result, err := ParseAnalysis("```json\n{\"minutes\":\"m\",\"tasks\":[],\"sentiment\":\"good\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "m", result.Minutes)
	assert.Empty(t, result.Tasks)

	result, err = ParseAnalysis("```\n{\"minutes\":\"m\",\"tasks\":[]}\n```")
	require.NoError(t, err)
	assert.Equal(t, "m", result.Minutes)
}

func TestParseAnalysis_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":         "Sure! Here are your minutes.",
		"array":            `[{"minutes":"m"}]`,
		"missing minutes":  `{"tasks":[]}`,
		"missing tasks":    `{"minutes":"m"}`,
		"minutes not text": `{"minutes":42,"tasks":[]}`,
		"tasks not array":  `{"minutes":"m","tasks":{"task_description":"x"}}`,
		"null tasks":       `{"minutes":"m","tasks":null}`,
		"task not object":  `{"minutes":"m","tasks":["call bob"]}`,
		"empty":            "",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAnalysis(in)
			assert.Error(t, err)
		})
	}
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON("  {\"a\":1}  "))
	assert.Equal(t, `{"a":1}`, extractJSON("```json\n{\"a\":1}\n```"))
}
