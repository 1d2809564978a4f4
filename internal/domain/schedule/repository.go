package schedule

import "context"

// Repository defines data access for recurring schedules and their tap
// events.
type Repository interface {
	// ListSchedules retrieves all schedules joined with owner names.
	ListSchedules(ctx context.Context) ([]Schedule, error)

	// ListClassRecordsBySchedules retrieves every class attendance event
	// referencing any of the given schedule ids in one round-trip.
	ListClassRecordsBySchedules(ctx context.Context, scheduleIDs []string) ([]ClassRecord, error)
}
