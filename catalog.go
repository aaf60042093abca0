package bookpress

import (
	"context"

	"github.com/coregx/bookpress/model"
)

// Catalog provides versioned, soft-deletable access to the book catalog.
//
// Every book id owns a contiguous sequence of immutable versions starting at 1.
// The "current" version is always the highest-numbered one; a book whose
// current version is inactive is logically absent from the catalog but its
// full history is retained for audit.
//
// Concurrency: version assignment is read-then-write without a conditional
// store guard. Concurrent Publish calls for the same book id can race and
// produce a duplicate version number or a lost update. Callers that need
// stronger guarantees must serialize publishes per book id.
type Catalog struct {
	repo   CatalogRepository
	logger Logger
}

// NewCatalog creates a catalog service over the given repository.
// A nil logger defaults to NoopLogger.
func NewCatalog(repo CatalogRepository, logger Logger) (*Catalog, error) {
	if repo == nil {
		return nil, NewError(ErrCodeConfiguration, "CatalogRepository is required")
	}
	if logger == nil {
		logger = &NoopLogger{}
	}
	return &Catalog{repo: repo, logger: logger}, nil
}

// GetCurrent returns the current version of the book with the given id.
// Returns ErrNotFound if no version exists or the current version has been
// removed from the catalog.
func (c *Catalog) GetCurrent(ctx context.Context, bookID string) (model.CatalogVersion, error) {
	latest, err := c.repo.FindLatestVersion(ctx, bookID)
	if err != nil {
		if IsNotFound(err) {
			return model.CatalogVersion{}, NewNotFoundError(bookID)
		}
		return model.CatalogVersion{}, err
	}
	if latest.Inactive {
		return model.CatalogVersion{}, NewNotFoundError(bookID)
	}
	return latest, nil
}

// Exists reports whether at least one version exists for the book id,
// regardless of active/inactive state. Used to validate update targets
// without exposing soft-deleted content.
func (c *Catalog) Exists(ctx context.Context, bookID string) (bool, error) {
	_, err := c.repo.FindLatestVersion(ctx, bookID)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Publish writes formatted content to the catalog as a new version.
//
// When book.BookID is empty a fresh book id is minted and version 1 is
// written. Otherwise the book must already exist (ErrNotFound if it doesn't)
// and the new version number is currentHighest+1. The previous version stays
// untouched - history is immutable, only SoftDelete ever edits a record.
// Republishing a soft-deleted book makes it visible again.
func (c *Catalog) Publish(ctx context.Context, book model.FormattedBook) (model.CatalogVersion, error) {
	bookID := book.BookID
	versionNumber := 1

	if bookID == "" {
		bookID = model.NewBookID()
	} else {
		latest, err := c.repo.FindLatestVersion(ctx, bookID)
		if err != nil {
			if IsNotFound(err) {
				return model.CatalogVersion{}, NewNotFoundError(bookID)
			}
			return model.CatalogVersion{}, err
		}
		versionNumber = latest.Version + 1
	}

	version := model.NewCatalogVersion(bookID, versionNumber, book)
	if err := version.Validate(); err != nil {
		return model.CatalogVersion{}, NewErrorWithCause(ErrCodeValidation, "invalid catalog version", err)
	}

	saved, err := c.repo.Save(ctx, &version)
	if err != nil {
		return model.CatalogVersion{}, err
	}

	c.logger.Infof("Published %s v%d (%q by %s)", saved.BookID, saved.Version, saved.Title, saved.Author)
	return *saved, nil
}

// SoftDelete removes the book from the catalog by marking its current version
// inactive. The record itself is kept for audit. Returns ErrNotFound if no
// version exists or the book was already removed. Returns the now-inactive
// version.
func (c *Catalog) SoftDelete(ctx context.Context, bookID string) (model.CatalogVersion, error) {
	latest, err := c.repo.FindLatestVersion(ctx, bookID)
	if err != nil {
		if IsNotFound(err) {
			return model.CatalogVersion{}, NewNotFoundError(bookID)
		}
		return model.CatalogVersion{}, err
	}
	if latest.Inactive {
		return model.CatalogVersion{}, NewNotFoundError(bookID)
	}

	latest.MarkInactive()
	saved, err := c.repo.Save(ctx, &latest)
	if err != nil {
		return model.CatalogVersion{}, err
	}

	c.logger.Infof("Removed %s from catalog (v%d marked inactive)", bookID, saved.Version)
	return *saved, nil
}

// Versions returns the full version history for a book, newest first,
// including inactive versions. Returns ErrNotFound if the book id is unknown.
func (c *Catalog) Versions(ctx context.Context, bookID string) ([]model.CatalogVersion, error) {
	versions, err := c.repo.FindVersions(ctx, bookID)
	if err != nil {
		if IsNotFound(err) {
			return nil, NewNotFoundError(bookID)
		}
		return nil, err
	}
	return versions, nil
}
