package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPublishingStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   PublishingStatus
		terminal bool
	}{
		{StatusQueued, false},
		{StatusInProgress, false},
		{StatusSuccessful, true},
		{StatusFailed, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
		})
	}
}

func TestNewStatusEvent(t *testing.T) {
	beforeCreate := time.Now()
	event := NewStatusEvent("submission.abc", StatusQueued, "book.xyz")

	assert.Equal(t, int64(0), event.ID)
	assert.Equal(t, "submission.abc", event.SubmissionID)
	assert.Equal(t, StatusQueued, event.Status)
	assert.Equal(t, "book.xyz", event.BookID)
	assert.Empty(t, event.Message)
	assert.WithinDuration(t, beforeCreate, event.CreatedAt, 1*time.Second)
}

func TestNewStatusEvent_NoBookID(t *testing.T) {
	event := NewStatusEvent("submission.abc", StatusInProgress, "")

	assert.Equal(t, StatusInProgress, event.Status)
	assert.Empty(t, event.BookID)
}

func TestNewFailedEvent(t *testing.T) {
	event := NewFailedEvent("submission.abc", "book.xyz", "no book found for id: book.xyz")

	assert.Equal(t, StatusFailed, event.Status)
	assert.True(t, event.Status.IsTerminal())
	assert.Equal(t, "book.xyz", event.BookID)
	assert.Equal(t, "no book found for id: book.xyz", event.Message)
}

func TestStatusEvent_TableName(t *testing.T) {
	assert.Equal(t, "bookpress_status_event", StatusEvent{}.TableName())
}
