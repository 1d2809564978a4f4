package postgresql

import (
	"context"
	"fmt"

	"github.com/talentia-hr/attendance-engine/internal/domain/schedule"
	"github.com/talentia-hr/attendance-engine/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.Repository {
	return &scheduleRepository{db: db}
}

// ListSchedules implements schedule.Repository.
func (s *scheduleRepository) ListSchedules(ctx context.Context) ([]schedule.Schedule, error) {
	query := `
		SELECT s.id, s.user_id, s.day_of_week, s.start_time, s.end_time,
		       s.subject, s.room, u.full_name
		FROM schedules s
		LEFT JOIN users u ON u.id = s.user_id
		ORDER BY s.day_of_week ASC, s.start_time ASC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.Schedule
	for rows.Next() {
		var sc schedule.Schedule
		err := rows.Scan(
			&sc.ID, &sc.UserID, &sc.DayOfWeek, &sc.StartTime, &sc.EndTime,
			&sc.Subject, &sc.Room, &sc.UserName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, sc)
	}

	return schedules, rows.Err()
}

// ListClassRecordsBySchedules implements schedule.Repository. One round-trip
// for the whole schedule set.
func (s *scheduleRepository) ListClassRecordsBySchedules(ctx context.Context, scheduleIDs []string) ([]schedule.ClassRecord, error) {
	if len(scheduleIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, schedule_id, user_id, att_date, status, time_in, time_out
		FROM class_attendance_records
		WHERE schedule_id = ANY($1)
		ORDER BY att_date DESC
	`

	rows, err := s.db.Query(ctx, query, scheduleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query class attendance records: %w", err)
	}
	defer rows.Close()

	var records []schedule.ClassRecord
	for rows.Next() {
		var rec schedule.ClassRecord
		err := rows.Scan(
			&rec.ID, &rec.ScheduleID, &rec.UserID, &rec.AttDate,
			&rec.Status, &rec.TimeIn, &rec.TimeOut,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan class attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
