package schedule

import (
	"time"

	"github.com/talentia-hr/attendance-engine/internal/domain/attendance"
)

// Schedule is a recurring class/work assignment. Static reference data.
type Schedule struct {
	ID        string
	UserID    string
	DayOfWeek int // 1=Monday ... 7=Sunday
	StartTime string
	EndTime   string
	Subject   string
	Room      *string

	// Joined user fields
	UserName string
}

// ClassRecord is a tap event tied to one recurring schedule slot. Multiple
// may exist per schedule; only the most recent by date is displayed.
type ClassRecord struct {
	ID         int64
	ScheduleID string
	UserID     string
	AttDate    time.Time
	Status     attendance.Status
	TimeIn     *string
	TimeOut    *string
}

// ScheduleResponse is one schedule row with its derived display status.
type ScheduleResponse struct {
	ID            string            `json:"id"`
	UserID        string            `json:"user_id"`
	UserName      string            `json:"user_name"`
	DayOfWeek     int               `json:"day_of_week"`
	StartTime     string            `json:"start_time"`
	EndTime       string            `json:"end_time"`
	Subject       string            `json:"subject"`
	Room          *string           `json:"room,omitempty"`
	ReferenceDate string            `json:"reference_date"`
	Status        attendance.Status `json:"status"`
}
