package bookpress

import (
	"context"

	"github.com/coregx/bookpress/model"
)

// StatusLedger records and serves the per-submission audit trail.
//
// The ledger is append-only and performs no state-machine validation - any
// event it is asked to record is recorded. The publish worker and submitter
// own the transition discipline; the ledger owns durability and ordering.
type StatusLedger struct {
	repo   StatusRepository
	logger Logger
}

// NewStatusLedger creates a status ledger over the given repository.
// A nil logger defaults to NoopLogger.
func NewStatusLedger(repo StatusRepository, logger Logger) (*StatusLedger, error) {
	if repo == nil {
		return nil, NewError(ErrCodeConfiguration, "StatusRepository is required")
	}
	if logger == nil {
		logger = &NoopLogger{}
	}
	return &StatusLedger{repo: repo, logger: logger}, nil
}

// Record appends a status event for a submission. bookID may be empty while
// the book identity is unassigned; message is meaningful for FAILED only.
func (l *StatusLedger) Record(ctx context.Context, submissionID string, status model.PublishingStatus, bookID, message string) (model.StatusEvent, error) {
	event := model.NewStatusEvent(submissionID, status, bookID)
	if message != "" {
		event.Message = message
	}

	saved, err := l.repo.Append(ctx, &event)
	if err != nil {
		return model.StatusEvent{}, err
	}

	l.logger.Debugf("Recorded %s for %s (book=%s)", status, submissionID, bookID)
	return *saved, nil
}

// History returns all status events for a submission in creation order.
// An unknown submission id yields an empty slice, not an error.
func (l *StatusLedger) History(ctx context.Context, submissionID string) ([]model.StatusEvent, error) {
	events, err := l.repo.FindBySubmissionID(ctx, submissionID)
	if err != nil {
		if IsNotFound(err) {
			return []model.StatusEvent{}, nil
		}
		return nil, err
	}
	return events, nil
}
