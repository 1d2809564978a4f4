package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance rows. The resolution engine
// is read-only over this table except for backfill inserts and the
// administrative delete.
type Repository interface {
	// ListByDate retrieves all rows for one civil date joined with the
	// minimal user fields the dashboard needs.
	ListByDate(ctx context.Context, date time.Time, filter RecordFilter) ([]Record, error)

	// Insert creates one synthetic absence row (backfill only).
	Insert(ctx context.Context, record Record) error

	// Delete removes one persisted row by numeric id.
	Delete(ctx context.Context, id int64) error
}

// RecordFilter narrows ListByDate. Zero values mean "no filter".
type RecordFilter struct {
	UserID string
	Role   string
}
