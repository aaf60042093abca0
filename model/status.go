package model

import "time"

// PublishingStatus represents the lifecycle state of a publish submission.
type PublishingStatus string

const (
	// StatusQueued indicates the submission was accepted and is awaiting a worker.
	StatusQueued PublishingStatus = "QUEUED"

	// StatusInProgress indicates a worker has picked up the submission.
	StatusInProgress PublishingStatus = "IN_PROGRESS"

	// StatusSuccessful indicates the book was written to the catalog.
	StatusSuccessful PublishingStatus = "SUCCESSFUL"

	// StatusFailed indicates formatting or the catalog write failed.
	StatusFailed PublishingStatus = "FAILED"
)

// IsTerminal reports whether the status ends the submission's state machine.
// A submission reaches exactly one terminal status and never leaves it.
func (s PublishingStatus) IsTerminal() bool {
	return s == StatusSuccessful || s == StatusFailed
}

// StatusEvent is one immutable entry in a submission's audit trail.
//
// Events for a submission form a path through the state machine:
//
//	QUEUED → IN_PROGRESS → {SUCCESSFUL | FAILED}
//
// The ledger appends events without validating transitions - that discipline
// belongs to the publish worker. Events are never edited or deleted.
type StatusEvent struct {
	ID           int64            `json:"id"`                                // Surrogate key assigned by storage
	SubmissionID string           `json:"submissionID" db:"submission_id"`   // Submission this event belongs to
	Status       PublishingStatus `json:"status"`                            // State recorded by this event
	BookID       string           `json:"bookID" db:"book_id"`               // Book identity, empty until assigned
	Message      string           `json:"message,omitempty"`                 // Failure description, FAILED only
	CreatedAt    time.Time        `json:"createdAt" db:"created_at"`         // Event creation time
}

// TableName returns the database table name for StatusEvent.
func (e StatusEvent) TableName() string {
	return tablePrefix + "status_event"
}

// NewStatusEvent creates a status event for a submission. bookID may be empty
// when the book identity has not been assigned yet.
func NewStatusEvent(submissionID string, status PublishingStatus, bookID string) StatusEvent {
	return StatusEvent{
		ID:           0,
		SubmissionID: submissionID,
		Status:       status,
		BookID:       bookID,
		CreatedAt:    time.Now(),
	}
}

// NewFailedEvent creates a FAILED status event carrying a human-readable
// description of what went wrong. The message is the only failure signal a
// client ever sees.
func NewFailedEvent(submissionID, bookID, message string) StatusEvent {
	event := NewStatusEvent(submissionID, StatusFailed, bookID)
	event.Message = message
	return event
}
