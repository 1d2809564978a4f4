package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound    = errors.New("attendance record not found")
	ErrSyntheticRecord   = errors.New("synthetic absence records cannot be deleted")
	ErrRefreshInProgress = errors.New("a dashboard refresh is already running")
	ErrInvalidDate       = errors.New("date must be in YYYY-MM-DD format")
)
