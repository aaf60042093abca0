package relica

import (
	"database/sql"

	"github.com/coregx/bookpress"
)

// Repositories holds all repository implementations.
type Repositories struct {
	Catalog bookpress.CatalogRepository
	Status  bookpress.StatusRepository
}

// NewRepositories creates all repository implementations using Relica.
//
// The db parameter should be an *sql.DB connected to MySQL, PostgreSQL, or SQLite.
// The driverName should be "mysql", "postgres", or "sqlite3".
// The table prefix defaults to "bookpress_" but can be customized.
func NewRepositories(db *sql.DB, driverName string) *Repositories {
	return &Repositories{
		Catalog: NewCatalogRepository(db, driverName),
		Status:  NewStatusRepository(db, driverName),
	}
}

// NewRepositoriesWithPrefix creates all repository implementations with a custom table prefix.
func NewRepositoriesWithPrefix(db *sql.DB, driverName, prefix string) *Repositories {
	return &Repositories{
		Catalog: NewCatalogRepositoryWithPrefix(db, driverName, prefix),
		Status:  NewStatusRepositoryWithPrefix(db, driverName, prefix),
	}
}
