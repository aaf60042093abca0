package bookpress

import (
	"context"

	"github.com/coregx/bookpress/model"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SubmitRequest carries the raw content of a publish submission.
// Leave BookID empty to publish a new book; set it to update an existing one.
type SubmitRequest struct {
	BookID string `json:"bookID"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Text   string `json:"text"`
	Genre  string `json:"genre"`
}

// Validate checks that the request carries the fields required for publishing.
func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Author, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Text, validation.Required),
	)
}

// Submitter is the producer surface of the publishing pipeline. It accepts
// publish requests synchronously: it validates them, rejects updates that
// target a nonexistent book, mints a submission id, enqueues the submission
// for a publish worker, and records the initial QUEUED status event.
//
// The returned submission id is the client's handle for polling the status
// ledger; the actual publish outcome arrives only through status events.
type Submitter struct {
	queue   *SubmissionQueue
	catalog *Catalog
	ledger  *StatusLedger
	logger  Logger
}

// NewSubmitter creates a new submitter with the provided options.
//
// Required options:
//   - WithSubmitterQueue: the queue shared with the publish workers
//   - WithSubmitterCatalog: the catalog used to validate update targets
//   - WithSubmitterLedger: the status ledger
//   - WithSubmitterLogger: logger instance
//
// Example:
//
//	submitter, err := bookpress.NewSubmitter(
//	    bookpress.WithSubmitterQueue(queue),
//	    bookpress.WithSubmitterCatalog(catalog),
//	    bookpress.WithSubmitterLedger(ledger),
//	    bookpress.WithSubmitterLogger(logger),
//	)
func NewSubmitter(opts ...SubmitterOption) (*Submitter, error) {
	s := &Submitter{}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, NewErrorWithCause(ErrCodeConfiguration, "failed to apply submitter option", err)
		}
	}

	if s.queue == nil {
		return nil, NewError(ErrCodeConfiguration, "SubmissionQueue is required (use WithSubmitterQueue)")
	}
	if s.catalog == nil {
		return nil, NewError(ErrCodeConfiguration, "Catalog is required (use WithSubmitterCatalog)")
	}
	if s.ledger == nil {
		return nil, NewError(ErrCodeConfiguration, "StatusLedger is required (use WithSubmitterLedger)")
	}
	if s.logger == nil {
		return nil, NewError(ErrCodeConfiguration, "Logger is required (use WithSubmitterLogger)")
	}

	return s, nil
}

// Submit accepts a publish request for asynchronous processing.
//
// Rejections are synchronous and typed: VALIDATION_ERROR for malformed
// requests, NOT_FOUND when an update targets a book that was never published.
// Accepted requests are enqueued and QUEUED is recorded before returning, so
// a client can poll the returned submission id immediately.
func (s *Submitter) Submit(ctx context.Context, req SubmitRequest) (model.PublishSubmission, error) {
	if err := req.Validate(); err != nil {
		return model.PublishSubmission{}, NewErrorWithCause(ErrCodeValidation, "invalid submit request", err)
	}

	if req.BookID != "" {
		exists, err := s.catalog.Exists(ctx, req.BookID)
		if err != nil {
			return model.PublishSubmission{}, err
		}
		if !exists {
			return model.PublishSubmission{}, NewNotFoundError(req.BookID)
		}
	}

	sub := model.NewPublishSubmission(req.BookID, req.Title, req.Author, req.Text, req.Genre)

	// QUEUED must hit the ledger before a worker can see the submission, so
	// the history always starts with QUEUED. A failed append also means
	// nothing was enqueued and the client can simply resubmit.
	if _, err := s.ledger.Record(ctx, sub.SubmissionID, model.StatusQueued, sub.BookID, ""); err != nil {
		return model.PublishSubmission{}, err
	}
	s.queue.Enqueue(sub)

	s.logger.Infof("Accepted submission %s (update=%v, queue depth=%d)",
		sub.SubmissionID, sub.IsUpdate(), s.queue.Len())
	return sub, nil
}
