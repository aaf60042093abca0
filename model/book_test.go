package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewCatalogVersion(t *testing.T) {
	book := FormattedBook{
		Title:  "Dune",
		Author: "Herbert",
		Text:   "Arrakis...",
		Genre:  "Science Fiction",
	}

	beforeCreate := time.Now()
	version := NewCatalogVersion("book.abc", 1, book)

	assert.Equal(t, int64(0), version.ID)
	assert.Equal(t, "book.abc", version.BookID)
	assert.Equal(t, 1, version.Version)
	assert.Equal(t, "Dune", version.Title)
	assert.Equal(t, "Herbert", version.Author)
	assert.Equal(t, "Arrakis...", version.Text)
	assert.Equal(t, "Science Fiction", version.Genre)
	assert.False(t, version.Inactive)
	assert.True(t, version.IsActive())
	assert.WithinDuration(t, beforeCreate, version.CreatedAt, 1*time.Second)
}

func TestCatalogVersion_MarkInactive(t *testing.T) {
	version := NewCatalogVersion("book.abc", 2, FormattedBook{Title: "Dune", Author: "Herbert"})

	version.MarkInactive()

	assert.True(t, version.Inactive)
	assert.False(t, version.IsActive())
	// Soft delete only flips the flag, the record itself stays intact
	assert.Equal(t, 2, version.Version)
	assert.Equal(t, "Dune", version.Title)
}

func TestCatalogVersion_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CatalogVersion)
		wantErr bool
	}{
		{
			name:    "Valid version",
			mutate:  func(_ *CatalogVersion) {},
			wantErr: false,
		},
		{
			name:    "Missing book id",
			mutate:  func(v *CatalogVersion) { v.BookID = "" },
			wantErr: true,
		},
		{
			name:    "Zero version number",
			mutate:  func(v *CatalogVersion) { v.Version = 0 },
			wantErr: true,
		},
		{
			name:    "Missing title",
			mutate:  func(v *CatalogVersion) { v.Title = "" },
			wantErr: true,
		},
		{
			name:    "Missing author",
			mutate:  func(v *CatalogVersion) { v.Author = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version := NewCatalogVersion("book.abc", 1, FormattedBook{
				Title:  "Dune",
				Author: "Herbert",
				Text:   "Arrakis...",
			})
			tt.mutate(&version)

			err := version.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogVersion_TableName(t *testing.T) {
	assert.Equal(t, "bookpress_catalog_version", CatalogVersion{}.TableName())
}
