package bookpress

import (
	"context"
	"time"

	"github.com/coregx/bookpress/model"
)

// PublishWorker drains the submission queue and drives each submission
// through its status state machine:
//
//	QUEUED --(dequeued)--> IN_PROGRESS --(format+write ok)--> SUCCESSFUL
//	                         \--(format or write error)-----> FAILED
//
// Publishing has no synchronous response, so the status ledger is the only
// client-visible signal of outcome. The worker therefore never propagates a
// processing error to its caller: every submission it dequeues ends in
// exactly one terminal status event, with failures carried as a
// human-readable message on the FAILED event. There is no automatic retry.
//
// Thread safety: multiple workers may run ProcessOne concurrently over the
// same queue; each submission is delivered to exactly one of them.
type PublishWorker struct {
	queue         *SubmissionQueue
	catalog       *Catalog
	ledger        *StatusLedger
	formatter     Formatter
	logger        Logger
	notifications NotificationService
}

// NewPublishWorker creates a new publish worker with the provided options.
//
// Required options:
//   - WithQueue: the submission queue to drain
//   - WithCatalog: the catalog service performing the writes
//   - WithLedger: the status ledger recording the audit trail
//   - WithLogger: logger instance
//
// Optional options:
//   - WithFormatter: content formatter (default: StandardFormatter)
//   - WithNotifications: failure/success hooks (default: no notifications)
//
// Example:
//
//	worker, err := bookpress.NewPublishWorker(
//	    bookpress.WithQueue(queue),
//	    bookpress.WithCatalog(catalog),
//	    bookpress.WithLedger(ledger),
//	    bookpress.WithLogger(logger),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewPublishWorker(opts ...Option) (*PublishWorker, error) {
	w := &PublishWorker{
		formatter:     NewStandardFormatter(),
		notifications: &NoOpNotificationService{},
	}

	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, NewErrorWithCause(ErrCodeConfiguration, "failed to apply option", err)
		}
	}

	if w.queue == nil {
		return nil, NewError(ErrCodeConfiguration, "SubmissionQueue is required (use WithQueue)")
	}
	if w.catalog == nil {
		return nil, NewError(ErrCodeConfiguration, "Catalog is required (use WithCatalog)")
	}
	if w.ledger == nil {
		return nil, NewError(ErrCodeConfiguration, "StatusLedger is required (use WithLedger)")
	}
	if w.logger == nil {
		return nil, NewError(ErrCodeConfiguration, "Logger is required (use WithLogger)")
	}

	return w, nil
}

// ProcessOne dequeues and processes a single submission.
//
// An empty queue is the normal idle condition: ProcessOne returns false
// without recording anything. Otherwise it records IN_PROGRESS, runs the
// publish pipeline, records the terminal status, and returns true. Pipeline
// failures are converted into the FAILED event and never returned.
func (w *PublishWorker) ProcessOne(ctx context.Context) bool {
	sub, ok := w.queue.Dequeue()
	if !ok {
		return false
	}

	w.record(ctx, sub.SubmissionID, model.StatusInProgress, sub.BookID, "")

	published, err := w.publish(ctx, sub)
	if err != nil {
		w.logger.Warnf("Publish failed for %s: %v", sub.SubmissionID, err)
		w.record(ctx, sub.SubmissionID, model.StatusFailed, sub.BookID, err.Error())
		if notifyErr := w.notifications.NotifyPublishFailed(ctx, sub, err); notifyErr != nil {
			w.logger.Warnf("Failed to send publish failure notification: %v", notifyErr)
		}
		return true
	}

	w.record(ctx, sub.SubmissionID, model.StatusSuccessful, published.BookID, "")
	if notifyErr := w.notifications.NotifyPublishSucceeded(ctx, published); notifyErr != nil {
		w.logger.Warnf("Failed to send publish success notification: %v", notifyErr)
	}

	w.logger.Infof("Submission %s published as %s v%d", sub.SubmissionID, published.BookID, published.Version)
	return true
}

// publish runs the publish pipeline for one submission. Each step returns a
// tagged failure; the single caller maps any failure into the FAILED event.
func (w *PublishWorker) publish(ctx context.Context, sub model.PublishSubmission) (model.CatalogVersion, error) {
	book, err := w.formatter.Format(sub)
	if err != nil {
		return model.CatalogVersion{}, err
	}

	// An update must target a real book before any write is attempted.
	if sub.IsUpdate() {
		exists, err := w.catalog.Exists(ctx, sub.BookID)
		if err != nil {
			return model.CatalogVersion{}, err
		}
		if !exists {
			return model.CatalogVersion{}, NewNotFoundError(sub.BookID)
		}
	}

	return w.catalog.Publish(ctx, book)
}

// record appends a status event. Append failures are logged, never
// propagated; the submission keeps moving through the pipeline.
func (w *PublishWorker) record(ctx context.Context, submissionID string, status model.PublishingStatus, bookID, message string) {
	if _, err := w.ledger.Record(ctx, submissionID, status, bookID, message); err != nil {
		w.logger.Errorf("Failed to record %s for %s: %v", status, submissionID, err)
	}
}

// Run starts the worker loop, draining the queue at the given interval until
// the context is canceled. This method blocks and is typically run in a
// goroutine; several Run loops may share one queue.
//
// Example:
//
//	ctx := context.Background()
//	go worker.Run(ctx, time.Second)
func (w *PublishWorker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.logger.Info("Publish worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Publish worker stopped")
			return
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

// drain processes submissions until the queue reports empty or the context
// is canceled.
func (w *PublishWorker) drain(ctx context.Context) {
	for w.ProcessOne(ctx) {
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}
