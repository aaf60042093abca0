package bookpress

import (
	"context"

	"github.com/coregx/bookpress/model"
)

// NotificationService defines an optional interface for sending notifications
// about publishing outcomes.
//
// Implementations might send emails, Slack messages, or log to monitoring
// systems. The status ledger remains the authoritative outcome record;
// notifications are purely informational.
type NotificationService interface {
	// NotifyPublishFailed is called when a submission reaches the FAILED state.
	NotifyPublishFailed(ctx context.Context, sub model.PublishSubmission, err error) error

	// NotifyPublishSucceeded is called when a submission reaches the
	// SUCCESSFUL state and its version is in the catalog.
	NotifyPublishSucceeded(ctx context.Context, version model.CatalogVersion) error
}

// NoOpNotificationService is a no-op implementation of NotificationService.
// Use this when notifications are not needed.
type NoOpNotificationService struct{}

// NotifyPublishFailed does nothing.
func (n *NoOpNotificationService) NotifyPublishFailed(_ context.Context, _ model.PublishSubmission, _ error) error {
	return nil
}

// NotifyPublishSucceeded does nothing.
func (n *NoOpNotificationService) NotifyPublishSucceeded(_ context.Context, _ model.CatalogVersion) error {
	return nil
}

// LoggingNotificationService is a simple implementation that logs notifications.
type LoggingNotificationService struct {
	logger Logger
}

// NewLoggingNotificationService creates a new LoggingNotificationService.
func NewLoggingNotificationService(logger Logger) *LoggingNotificationService {
	return &LoggingNotificationService{logger: logger}
}

// NotifyPublishFailed logs the failed submission.
func (n *LoggingNotificationService) NotifyPublishFailed(_ context.Context, sub model.PublishSubmission, err error) error {
	n.logger.Warnf("Publish failed: submission=%s, book=%s, error=%v",
		sub.SubmissionID, sub.BookID, err)
	return nil
}

// NotifyPublishSucceeded logs the published version.
func (n *LoggingNotificationService) NotifyPublishSucceeded(_ context.Context, version model.CatalogVersion) error {
	n.logger.Infof("Publish succeeded: book=%s, version=%d, title=%q",
		version.BookID, version.Version, version.Title)
	return nil
}
