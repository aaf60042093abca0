package relica

import (
	"context"
	"database/sql"

	"github.com/coregx/bookpress"
	"github.com/coregx/bookpress/model"
	"github.com/coregx/relica"
)

// StatusRepository implements bookpress.StatusRepository using Relica.
type StatusRepository struct {
	db          *relica.DB
	tablePrefix string
}

// NewStatusRepository creates a new StatusRepository with default table prefix.
func NewStatusRepository(sqlDB *sql.DB, driverName string) *StatusRepository {
	return &StatusRepository{db: relica.WrapDB(sqlDB, driverName), tablePrefix: "bookpress_"}
}

// NewStatusRepositoryWithPrefix creates a new StatusRepository with custom table prefix.
func NewStatusRepositoryWithPrefix(sqlDB *sql.DB, driverName, prefix string) *StatusRepository {
	return &StatusRepository{db: relica.WrapDB(sqlDB, driverName), tablePrefix: prefix}
}

func (r *StatusRepository) tableName() string {
	return r.tablePrefix + "status_event"
}

// Append durably stores a new status event. Events are insert-only; this
// repository never issues an update or delete against the table.
func (r *StatusRepository) Append(ctx context.Context, e *model.StatusEvent) (*model.StatusEvent, error) {
	err := r.db.WithContext(ctx).Model(e).Table(r.tableName()).Insert()
	if err != nil {
		return e, bookpress.NewErrorWithCause(bookpress.ErrCodeDatabase, "failed to append status event", err)
	}
	return e, nil
}

// FindBySubmissionID retrieves all events for a submission in creation order.
// The surrogate id breaks ties between events created in the same instant.
func (r *StatusRepository) FindBySubmissionID(ctx context.Context, submissionID string) ([]model.StatusEvent, error) {
	var events []model.StatusEvent

	err := r.db.WithContext(ctx).Select("*").
		From(r.tableName()).
		Where("submission_id = ?", submissionID).
		OrderBy("created_at ASC, id ASC").
		All(&events)

	if err != nil {
		return nil, bookpress.NewErrorWithCause(bookpress.ErrCodeDatabase, "failed to find status events", err)
	}

	if len(events) == 0 {
		return nil, bookpress.ErrNotFound
	}

	return events, nil
}
