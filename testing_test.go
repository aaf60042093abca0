package bookpress

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/coregx/bookpress/model"
)

// fakeCatalogRepo is an in-memory CatalogRepository for tests.
type fakeCatalogRepo struct {
	mu       sync.Mutex
	versions map[string][]model.CatalogVersion
	nextID   int64
	failWith error
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{versions: make(map[string][]model.CatalogVersion)}
}

func (r *fakeCatalogRepo) FindLatestVersion(_ context.Context, bookID string) (model.CatalogVersion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return model.CatalogVersion{}, r.failWith
	}
	versions := r.versions[bookID]
	if len(versions) == 0 {
		return model.CatalogVersion{}, ErrNotFound
	}
	latest := versions[0]
	for _, v := range versions[1:] {
		if v.Version > latest.Version {
			latest = v
		}
	}
	return latest, nil
}

func (r *fakeCatalogRepo) Save(_ context.Context, v *model.CatalogVersion) (*model.CatalogVersion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	if v.ID == 0 {
		r.nextID++
		v.ID = r.nextID
		r.versions[v.BookID] = append(r.versions[v.BookID], *v)
		return v, nil
	}
	for i, existing := range r.versions[v.BookID] {
		if existing.ID == v.ID {
			r.versions[v.BookID][i] = *v
			return v, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeCatalogRepo) FindVersions(_ context.Context, bookID string) ([]model.CatalogVersion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	versions := append([]model.CatalogVersion(nil), r.versions[bookID]...)
	if len(versions) == 0 {
		return nil, ErrNotFound
	}
	sort.Slice(versions, func(i, j int) bool { return versions[i].Version > versions[j].Version })
	return versions, nil
}

// fakeStatusRepo is an in-memory StatusRepository for tests.
type fakeStatusRepo struct {
	mu       sync.Mutex
	events   []model.StatusEvent
	nextID   int64
	failWith error
}

func newFakeStatusRepo() *fakeStatusRepo {
	return &fakeStatusRepo{}
}

func (r *fakeStatusRepo) Append(_ context.Context, e *model.StatusEvent) (*model.StatusEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.nextID++
	e.ID = r.nextID
	r.events = append(r.events, *e)
	return e, nil
}

func (r *fakeStatusRepo) FindBySubmissionID(_ context.Context, submissionID string) ([]model.StatusEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	var events []model.StatusEvent
	for _, e := range r.events {
		if e.SubmissionID == submissionID {
			events = append(events, e)
		}
	}
	if len(events) == 0 {
		return nil, ErrNotFound
	}
	return events, nil
}

// failingFormatter always rejects the submission.
type failingFormatter struct{}

func (f *failingFormatter) Format(_ model.PublishSubmission) (model.FormattedBook, error) {
	return model.FormattedBook{}, NewError(ErrCodeFormat, "content could not be converted")
}

// newTestPipeline wires a catalog, ledger, queue, and worker over in-memory
// repositories for end-to-end worker tests.
func newTestPipeline(t *testing.T) (*fakeCatalogRepo, *fakeStatusRepo, *SubmissionQueue, *Catalog, *StatusLedger, *PublishWorker) {
	t.Helper()
	catalogRepo := newFakeCatalogRepo()
	statusRepo := newFakeStatusRepo()
	queue := NewSubmissionQueue()

	catalog, err := NewCatalog(catalogRepo, &NoopLogger{})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	ledger, err := NewStatusLedger(statusRepo, &NoopLogger{})
	if err != nil {
		t.Fatalf("NewStatusLedger: %v", err)
	}
	worker, err := NewPublishWorker(
		WithQueue(queue),
		WithCatalog(catalog),
		WithLedger(ledger),
		WithLogger(&NoopLogger{}),
	)
	if err != nil {
		t.Fatalf("NewPublishWorker: %v", err)
	}
	return catalogRepo, statusRepo, queue, catalog, ledger, worker
}
