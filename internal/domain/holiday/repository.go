package holiday

import (
	"context"
	"time"
)

// Repository defines data access for holiday records.
type Repository interface {
	// ListActiveByDates retrieves active holidays falling on any of the
	// given dates in one round-trip.
	ListActiveByDates(ctx context.Context, dates []time.Time) ([]Holiday, error)
}
