package bookpress

import (
	"context"
	"strings"
	"testing"

	"github.com/coregx/bookpress/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSubmitter(t *testing.T) (*Submitter, *SubmissionQueue, *Catalog, *StatusLedger, *fakeStatusRepo) {
	t.Helper()
	catalogRepo := newFakeCatalogRepo()
	statusRepo := newFakeStatusRepo()
	queue := NewSubmissionQueue()

	catalog, err := NewCatalog(catalogRepo, &NoopLogger{})
	require.NoError(t, err)
	ledger, err := NewStatusLedger(statusRepo, &NoopLogger{})
	require.NoError(t, err)

	submitter, err := NewSubmitter(
		WithSubmitterQueue(queue),
		WithSubmitterCatalog(catalog),
		WithSubmitterLedger(ledger),
		WithSubmitterLogger(&NoopLogger{}),
	)
	require.NoError(t, err)
	return submitter, queue, catalog, ledger, statusRepo
}

func TestNewSubmitter_RequiredOptions(t *testing.T) {
	_, err := NewSubmitter()
	assert.Error(t, err)
}

func TestSubmitter_Submit_NewBook(t *testing.T) {
	submitter, queue, _, ledger, _ := newTestSubmitter(t)
	ctx := context.Background()

	sub, err := submitter.Submit(ctx, SubmitRequest{
		Title:  "Dune",
		Author: "Herbert",
		Text:   "Arrakis...",
		Genre:  "Science Fiction",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sub.SubmissionID, "submission."))
	assert.False(t, sub.IsUpdate())
	assert.Equal(t, 1, queue.Len())

	history, err := ledger.History(ctx, sub.SubmissionID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, model.StatusQueued, history[0].Status)
}

func TestSubmitter_Submit_InvalidRequest(t *testing.T) {
	submitter, queue, _, _, _ := newTestSubmitter(t)

	_, err := submitter.Submit(context.Background(), SubmitRequest{Title: "Dune"})

	require.Error(t, err)
	var bpErr *Error
	require.ErrorAs(t, err, &bpErr)
	assert.Equal(t, ErrCodeValidation, bpErr.Code)
	assert.Equal(t, 0, queue.Len())
}

func TestSubmitter_Submit_UnknownUpdateTarget(t *testing.T) {
	submitter, queue, _, _, statusRepo := newTestSubmitter(t)
	ctx := context.Background()

	_, err := submitter.Submit(ctx, SubmitRequest{
		BookID: "book.missing",
		Title:  "Dune",
		Author: "Herbert",
		Text:   "...",
	})

	// Rejected synchronously with a typed error; nothing enqueued or recorded
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, 0, queue.Len())
	assert.Empty(t, statusRepo.events)
}

func TestSubmitter_Submit_LedgerAppendFailure(t *testing.T) {
	submitter, queue, _, _, statusRepo := newTestSubmitter(t)
	statusRepo.failWith = NewError(ErrCodeDatabase, "ledger unavailable")

	_, err := submitter.Submit(context.Background(), SubmitRequest{
		Title:  "Dune",
		Author: "Herbert",
		Text:   "...",
	})

	// QUEUED is recorded before enqueueing, so a failed append leaves nothing
	// behind for a worker to pick up
	require.Error(t, err)
	assert.Equal(t, 0, queue.Len())
	assert.Empty(t, statusRepo.events)
}

func TestSubmitter_Submit_UpdateSoftDeletedBook(t *testing.T) {
	submitter, queue, catalog, _, _ := newTestSubmitter(t)
	ctx := context.Background()

	version, err := catalog.Publish(ctx, model.FormattedBook{Title: "Dune", Author: "Herbert", Text: "v1"})
	require.NoError(t, err)
	_, err = catalog.SoftDelete(ctx, version.BookID)
	require.NoError(t, err)

	// A soft-deleted book still exists, so updating it is accepted
	sub, err := submitter.Submit(ctx, SubmitRequest{
		BookID: version.BookID,
		Title:  "Dune",
		Author: "Herbert",
		Text:   "v2",
	})
	require.NoError(t, err)
	assert.True(t, sub.IsUpdate())
	assert.Equal(t, 1, queue.Len())
}

func TestSubmitter_EndToEndStatusTrail(t *testing.T) {
	submitter, queue, catalog, ledger, _ := newTestSubmitter(t)
	ctx := context.Background()

	worker, err := NewPublishWorker(
		WithQueue(queue),
		WithCatalog(catalog),
		WithLedger(ledger),
		WithLogger(&NoopLogger{}),
	)
	require.NoError(t, err)

	sub, err := submitter.Submit(ctx, SubmitRequest{
		Title:  "Dune",
		Author: "Herbert",
		Text:   "Arrakis...",
	})
	require.NoError(t, err)

	require.True(t, worker.ProcessOne(ctx))

	history, err := ledger.History(ctx, sub.SubmissionID)
	require.NoError(t, err)
	require.Equal(t, []model.PublishingStatus{
		model.StatusQueued,
		model.StatusInProgress,
		model.StatusSuccessful,
	}, statusesOf(history))

	current, err := catalog.GetCurrent(ctx, history[2].BookID)
	require.NoError(t, err)
	assert.Equal(t, 1, current.Version)
	assert.Equal(t, "Dune", current.Title)
	assert.Equal(t, "Herbert", current.Author)
}
