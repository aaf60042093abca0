package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CatalogVersion represents one immutable version of a published book.
//
// Versions for a book id form a contiguous sequence starting at 1. A version
// is never edited after publication with one exception: removing a book from
// the catalog flips the Inactive flag on its latest version. Updates never
// rewrite history - they append a new version with the next version number.
//
// The "current" version of a book is always the one with the highest version
// number, regardless of the Inactive flag. A book whose current version is
// inactive is logically absent from the catalog but retained for audit.
type CatalogVersion struct {
	ID        int64     `json:"id"`                        // Surrogate key assigned by storage
	BookID    string    `json:"bookID" db:"book_id"`       // Stable book identity
	Version   int       `json:"version"`                   // 1-based, monotonically increasing per book
	Title     string    `json:"title"`                     // Book title
	Author    string    `json:"author"`                    // Book author
	Text      string    `json:"text"`                      // Formatted book content
	Genre     string    `json:"genre"`                     // Book genre
	Inactive  bool      `json:"inactive"`                  // Soft-delete flag on the latest version
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Version publication time
}

// TableName returns the database table name for CatalogVersion.
func (v CatalogVersion) TableName() string {
	return tablePrefix + "catalog_version"
}

// NewCatalogVersion creates a new active catalog version from formatted content.
//
// Parameters:
//   - bookID: The stable book identity this version belongs to
//   - version: The version number (1 for a new book, latest+1 for an update)
//   - book: The formatted content to publish
func NewCatalogVersion(bookID string, version int, book FormattedBook) CatalogVersion {
	return CatalogVersion{
		ID:        0,
		BookID:    bookID,
		Version:   version,
		Title:     book.Title,
		Author:    book.Author,
		Text:      book.Text,
		Genre:     book.Genre,
		Inactive:  false,
		CreatedAt: time.Now(),
	}
}

// MarkInactive soft-deletes this version, removing the book from the catalog
// while keeping the record for audit.
func (v *CatalogVersion) MarkInactive() {
	v.Inactive = true
}

// IsActive reports whether this version is visible in the catalog.
func (v CatalogVersion) IsActive() bool {
	return !v.Inactive
}

// Validate checks that the version is well-formed before persistence.
func (v CatalogVersion) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.BookID, validation.Required),
		validation.Field(&v.Version, validation.Required, validation.Min(1)),
		validation.Field(&v.Title, validation.Required),
		validation.Field(&v.Author, validation.Required),
	)
}

// FormattedBook is the publishable payload produced by the formatting step.
// BookID is empty for a brand-new book and set when updating an existing one.
type FormattedBook struct {
	BookID string `json:"bookID"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Text   string `json:"text"`
	Genre  string `json:"genre"`
}
