package model

import "github.com/google/uuid"

// ID prefixes distinguish the two identifier namespaces in logs and status
// records. A submission id tracks one publish request; a book id is the stable
// identity shared by all versions of a catalog entry.
const (
	bookIDPrefix       = "book."
	submissionIDPrefix = "submission."
)

// NewBookID mints a fresh book identifier (e.g. "book.3f2a...").
// Assigned once, on first publish of a new book, and shared by every
// subsequent version.
func NewBookID() string {
	return bookIDPrefix + uuid.NewString()
}

// NewSubmissionID mints a fresh submission identifier (e.g. "submission.9c41...").
// Returned to the client on submit and used to poll the status history.
func NewSubmissionID() string {
	return submissionIDPrefix + uuid.NewString()
}
