// Package relica provides repository implementations using Relica query builder.
//
// Relica (github.com/coregx/relica) is a lightweight, type-safe database query
// builder for Go with zero production dependencies.
//
// This package provides production-ready implementations of the bookpress
// repository interfaces:
//   - CatalogRepository
//   - StatusRepository
//
// Example usage:
//
//	import (
//	    "database/sql"
//	    "github.com/coregx/bookpress"
//	    "github.com/coregx/bookpress/adapters/relica"
//	    _ "github.com/mattn/go-sqlite3"
//	)
//
//	// Open database connection
//	db, err := sql.Open("sqlite3", "bookpress.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create repositories (driverName should be "mysql", "postgres", or "sqlite3")
//	repos := relica.NewRepositories(db, "sqlite3")
//
//	// Create services
//	catalog, err := bookpress.NewCatalog(repos.Catalog, logger)
//	ledger, err := bookpress.NewStatusLedger(repos.Status, logger)
package relica
