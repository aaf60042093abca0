package relica

import (
	"context"
	"database/sql"
	"errors"

	"github.com/coregx/bookpress"
	"github.com/coregx/bookpress/model"
	"github.com/coregx/relica"
)

// CatalogRepository implements bookpress.CatalogRepository using Relica.
type CatalogRepository struct {
	db          *relica.DB
	tablePrefix string
}

// NewCatalogRepository creates a new CatalogRepository with default table prefix.
func NewCatalogRepository(sqlDB *sql.DB, driverName string) *CatalogRepository {
	return &CatalogRepository{db: relica.WrapDB(sqlDB, driverName), tablePrefix: "bookpress_"}
}

// NewCatalogRepositoryWithPrefix creates a new CatalogRepository with custom table prefix.
func NewCatalogRepositoryWithPrefix(sqlDB *sql.DB, driverName, prefix string) *CatalogRepository {
	return &CatalogRepository{db: relica.WrapDB(sqlDB, driverName), tablePrefix: prefix}
}

func (r *CatalogRepository) tableName() string {
	return r.tablePrefix + "catalog_version"
}

// FindLatestVersion retrieves the highest-numbered version for a book.
// The query is a single descending-order, limit-1 lookup keyed by book id.
func (r *CatalogRepository) FindLatestVersion(ctx context.Context, bookID string) (model.CatalogVersion, error) {
	var version model.CatalogVersion

	err := r.db.WithContext(ctx).Select("*").
		From(r.tableName()).
		Where("book_id = ?", bookID).
		OrderBy("version DESC").
		Limit(1).
		One(&version)

	if errors.Is(err, sql.ErrNoRows) {
		return version, bookpress.ErrNotFound
	}
	if err != nil {
		return version, bookpress.NewErrorWithCause(bookpress.ErrCodeDatabase, "failed to find latest version", err)
	}

	return version, nil
}

// Save creates a new version record (if ID=0) or updates an existing one.
func (r *CatalogRepository) Save(ctx context.Context, v *model.CatalogVersion) (*model.CatalogVersion, error) {
	if v.ID == 0 {
		// Insert using Model() API - auto-populates v.ID
		err := r.db.WithContext(ctx).Model(v).Table(r.tableName()).Insert()
		if err != nil {
			return v, bookpress.NewErrorWithCause(bookpress.ErrCodeDatabase, "failed to insert catalog version", err)
		}
		return v, nil
	}

	// Update using Model() API - auto WHERE id = ?
	err := r.db.WithContext(ctx).Model(v).Table(r.tableName()).Update()
	if err != nil {
		return v, bookpress.NewErrorWithCause(bookpress.ErrCodeDatabase, "failed to update catalog version", err)
	}

	return v, nil
}

// FindVersions retrieves all versions for a book, newest first.
func (r *CatalogRepository) FindVersions(ctx context.Context, bookID string) ([]model.CatalogVersion, error) {
	var versions []model.CatalogVersion

	err := r.db.WithContext(ctx).Select("*").
		From(r.tableName()).
		Where("book_id = ?", bookID).
		OrderBy("version DESC").
		All(&versions)

	if err != nil {
		return nil, bookpress.NewErrorWithCause(bookpress.ErrCodeDatabase, "failed to find versions", err)
	}

	if len(versions) == 0 {
		return nil, bookpress.ErrNotFound
	}

	return versions, nil
}
