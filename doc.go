// Package bookpress provides an asynchronous book-publishing pipeline over a
// versioned, soft-deletable catalog, usable as an embedded library or through
// the standalone server in cmd/bookpress-server.
//
// # Overview
//
// Clients submit books for publishing and poll a per-submission status trail
// until the work completes or fails. A submission moves through the state
// machine QUEUED → IN_PROGRESS → {SUCCESSFUL | FAILED}; the status ledger is
// the only channel that reports the outcome of the actual publish work.
//
// The pipeline is built from four components:
//
//   - Catalog: versioned book store with soft delete. Every publish appends an
//     immutable version; "current" is always the highest version number.
//   - StatusLedger: durable, append-only audit trail of status events keyed by
//     submission id.
//   - SubmissionQueue: in-process, concurrency-safe FIFO handoff from the
//     submitter to the publish workers.
//   - PublishWorker: drains the queue, formats content, writes the catalog,
//     and records terminal status events. Worker-side failures never
//     propagate - they become FAILED events with a descriptive message.
//
// The Submitter is the producer surface: it validates requests, records
// QUEUED, and hands submissions to the queue.
//
// # Quick Start
//
// Apply the embedded migrations, then wire the components explicitly:
//
//	db, _ := sql.Open("sqlite3", "bookpress.db")
//
//	repos := relica.NewRepositories(db, "sqlite3")
//	catalog, _ := bookpress.NewCatalog(repos.Catalog, logger)
//	ledger, _ := bookpress.NewStatusLedger(repos.Status, logger)
//	queue := bookpress.NewSubmissionQueue()
//
//	worker, _ := bookpress.NewPublishWorker(
//	    bookpress.WithQueue(queue),
//	    bookpress.WithCatalog(catalog),
//	    bookpress.WithLedger(ledger),
//	    bookpress.WithLogger(logger),
//	)
//	go worker.Run(ctx, time.Second)
//
//	submitter, _ := bookpress.NewSubmitter(
//	    bookpress.WithSubmitterQueue(queue),
//	    bookpress.WithSubmitterCatalog(catalog),
//	    bookpress.WithSubmitterLedger(ledger),
//	    bookpress.WithSubmitterLogger(logger),
//	)
//
//	sub, _ := submitter.Submit(ctx, bookpress.SubmitRequest{
//	    Title: "Dune", Author: "Herbert", Text: "...",
//	})
//	history, _ := ledger.History(ctx, sub.SubmissionID)
//
// # Concurrency
//
// The queue tolerates arbitrarily many concurrent producers and consumers.
// Catalog and ledger rely on the underlying store's per-record atomicity;
// there is no cross-record transaction. Version assignment is read-then-write
// without a conditional store guard, so concurrent publishes to the same book
// id can race - see Catalog for details.
package bookpress
