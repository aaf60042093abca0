package bookpress

import (
	"context"

	"github.com/coregx/bookpress/model"
)

// CatalogRepository is the narrow persistence interface over the durable
// catalog store. The store is treated as a key-based record store: a point
// write per version and a single descending-order, limit-1 lookup per book id.
// No cross-record transactions are assumed; single-record writes are atomic.
//
// Implementations must be safe for concurrent use.
type CatalogRepository interface {
	// FindLatestVersion retrieves the highest-numbered version for a book,
	// regardless of its active/inactive state.
	// Returns ErrNotFound if no version exists for the id.
	FindLatestVersion(ctx context.Context, bookID string) (model.CatalogVersion, error)

	// Save creates a new version record (if ID=0) or updates an existing one.
	// Updates are only ever used to flip the soft-delete flag; published
	// content is immutable.
	Save(ctx context.Context, v *model.CatalogVersion) (*model.CatalogVersion, error)

	// FindVersions retrieves all versions for a book, newest first.
	// Returns ErrNotFound if no version exists for the id.
	FindVersions(ctx context.Context, bookID string) ([]model.CatalogVersion, error)
}

// StatusRepository is the persistence interface for the append-oriented
// status ledger. Events are immutable once appended.
//
// Implementations must be safe for concurrent use.
type StatusRepository interface {
	// Append durably stores a new status event.
	// Returns the stored event with populated ID.
	Append(ctx context.Context, e *model.StatusEvent) (*model.StatusEvent, error)

	// FindBySubmissionID retrieves all events for a submission in creation order.
	// Returns ErrNotFound if the submission id is unknown.
	FindBySubmissionID(ctx context.Context, submissionID string) ([]model.StatusEvent, error)
}
