package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// PublishSubmission is an in-flight request to publish a new book or update an
// existing one. Submissions are handed from the producer to a publish worker
// through the in-process submission queue and are consumed exactly once; only
// their derived status events are persisted.
type PublishSubmission struct {
	SubmissionID string    `json:"submissionID"` // Unique, minted on submit
	BookID       string    `json:"bookID"`       // Set only when updating an existing book
	Title        string    `json:"title"`        // Raw submitted title
	Author       string    `json:"author"`       // Raw submitted author
	Text         string    `json:"text"`         // Raw submitted content
	Genre        string    `json:"genre"`        // Raw submitted genre
	CreatedAt    time.Time `json:"createdAt"`    // Submission time
}

// NewPublishSubmission creates a submission with a freshly minted submission id.
// Pass an empty bookID to publish a new book.
func NewPublishSubmission(bookID, title, author, text, genre string) PublishSubmission {
	return PublishSubmission{
		SubmissionID: NewSubmissionID(),
		BookID:       bookID,
		Title:        title,
		Author:       author,
		Text:         text,
		Genre:        genre,
		CreatedAt:    time.Now(),
	}
}

// IsUpdate reports whether this submission targets an existing book.
func (s PublishSubmission) IsUpdate() bool {
	return s.BookID != ""
}

// Validate checks that the submission carries the content required for formatting.
func (s PublishSubmission) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.SubmissionID, validation.Required),
		validation.Field(&s.Title, validation.Required),
		validation.Field(&s.Author, validation.Required),
		validation.Field(&s.Text, validation.Required),
	)
}
