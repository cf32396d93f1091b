package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"plain", "standup.mp3", "meetings/7/abc-standup.mp3"},
		{"spaces", "weekly sync.m4a", "meetings/7/abc-weekly_sync.m4a"},
		{"path traversal", "../../etc/passwd", "meetings/7/abc-passwd"},
		{"windows path", `C:\rec\call.wav`, "meetings/7/abc-call.wav"},
		{"nothing usable", "...", "meetings/7/abc-audio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ObjectName(7, tt.filename, "abc"))
		})
	}
}
