package exemption

import (
	"context"
	"time"
)

// Repository defines data access for exemption records.
type Repository interface {
	// ListByUsersAndDates retrieves every exemption matching any of the
	// given users on any of the given dates in one round-trip. The index
	// components depend on this being a single batched call; issuing one
	// query per record is a regression.
	ListByUsersAndDates(ctx context.Context, userIDs []string, dates []time.Time) ([]Exemption, error)
}
