package bookpress

import "fmt"

// Option is a function that configures a PublishWorker.
//
// Example:
//
//	worker, err := bookpress.NewPublishWorker(
//	    bookpress.WithQueue(queue),
//	    bookpress.WithCatalog(catalog),
//	    bookpress.WithLedger(ledger),
//	    bookpress.WithLogger(logger),
//	    bookpress.WithFormatter(customFormatter), // optional
//	)
type Option func(*PublishWorker) error

// WithQueue sets the submission queue the worker drains.
// This is a required option for NewPublishWorker.
func WithQueue(queue *SubmissionQueue) Option {
	return func(w *PublishWorker) error {
		if queue == nil {
			return fmt.Errorf("queue cannot be nil")
		}
		w.queue = queue
		return nil
	}
}

// WithCatalog sets the catalog service the worker publishes into.
// This is a required option for NewPublishWorker.
func WithCatalog(catalog *Catalog) Option {
	return func(w *PublishWorker) error {
		if catalog == nil {
			return fmt.Errorf("catalog cannot be nil")
		}
		w.catalog = catalog
		return nil
	}
}

// WithLedger sets the status ledger the worker records transitions in.
// This is a required option for NewPublishWorker.
func WithLedger(ledger *StatusLedger) Option {
	return func(w *PublishWorker) error {
		if ledger == nil {
			return fmt.Errorf("ledger cannot be nil")
		}
		w.ledger = ledger
		return nil
	}
}

// WithLogger sets the logger instance for the publish worker.
// This is a required option for NewPublishWorker.
//
// Use NoopLogger for silent operation or implement Logger to integrate with
// your logging system.
func WithLogger(logger Logger) Option {
	return func(w *PublishWorker) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		w.logger = logger
		return nil
	}
}

// WithFormatter sets a custom content formatter for the publish worker.
// This is an optional configuration - default is StandardFormatter.
func WithFormatter(formatter Formatter) Option {
	return func(w *PublishWorker) error {
		if formatter == nil {
			return fmt.Errorf("formatter cannot be nil")
		}
		w.formatter = formatter
		return nil
	}
}

// WithNotifications sets an optional notification service for the worker.
// This is an optional configuration - default is NoOpNotificationService.
//
// The notification service receives callbacks for publish failures and
// successes. Use this to integrate with alerting systems.
func WithNotifications(service NotificationService) Option {
	return func(w *PublishWorker) error {
		if service == nil {
			return fmt.Errorf("notification service cannot be nil")
		}
		w.notifications = service
		return nil
	}
}

// SubmitterOption is a function that configures a Submitter.
type SubmitterOption func(*Submitter) error

// WithSubmitterQueue sets the submission queue shared with the workers.
// This is a required option for NewSubmitter.
func WithSubmitterQueue(queue *SubmissionQueue) SubmitterOption {
	return func(s *Submitter) error {
		if queue == nil {
			return fmt.Errorf("queue cannot be nil")
		}
		s.queue = queue
		return nil
	}
}

// WithSubmitterCatalog sets the catalog used to validate update targets.
// This is a required option for NewSubmitter.
func WithSubmitterCatalog(catalog *Catalog) SubmitterOption {
	return func(s *Submitter) error {
		if catalog == nil {
			return fmt.Errorf("catalog cannot be nil")
		}
		s.catalog = catalog
		return nil
	}
}

// WithSubmitterLedger sets the status ledger for QUEUED events.
// This is a required option for NewSubmitter.
func WithSubmitterLedger(ledger *StatusLedger) SubmitterOption {
	return func(s *Submitter) error {
		if ledger == nil {
			return fmt.Errorf("ledger cannot be nil")
		}
		s.ledger = ledger
		return nil
	}
}

// WithSubmitterLogger sets the logger instance for the submitter.
// This is a required option for NewSubmitter.
func WithSubmitterLogger(logger Logger) SubmitterOption {
	return func(s *Submitter) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		s.logger = logger
		return nil
	}
}
