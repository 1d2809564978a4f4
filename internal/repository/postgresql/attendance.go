package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/talentia-hr/attendance-engine/internal/domain/attendance"
	"github.com/talentia-hr/attendance-engine/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// ListByDate implements attendance.Repository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time, filter attendance.RecordFilter) ([]attendance.Record, error) {
	baseWhere := "r.date = $1"
	args := []interface{}{date}
	argIdx := 2

	if filter.UserID != "" {
		baseWhere += fmt.Sprintf(" AND r.user_id = $%d", argIdx)
		args = append(args, filter.UserID)
		argIdx++
	}
	if filter.Role != "" {
		baseWhere += fmt.Sprintf(" AND u.role = $%d", argIdx)
		args = append(args, filter.Role)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT r.id, r.user_id, r.date, r.time_in, r.time_out,
		       r.present, r.session, r.notes, r.penalty, r.created_at,
		       u.full_name, u.role
		FROM attendance_records r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE %s
		ORDER BY u.full_name ASC, r.created_at ASC
	`, baseWhere)

	rows, err := a.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var (
			rec     attendance.Record
			id      int64
			session *string
		)
		err := rows.Scan(
			&id, &rec.UserID, &rec.Date, &rec.TimeIn, &rec.TimeOut,
			&rec.Present, &session, &rec.Notes, &rec.Penalty, &rec.CreatedAt,
			&rec.UserName, &rec.UserRole,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		rec.ID = attendance.PersistedID(id)
		if session != nil {
			rec.Session = attendance.Session(*session)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Insert implements attendance.Repository. Used only by the backfill job;
// the engine never updates rows in place.
func (a *attendanceRepository) Insert(ctx context.Context, record attendance.Record) error {
	query := `
		INSERT INTO attendance_records (
			user_id, date, time_in, time_out, present, session, notes, penalty, source
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, 'backfill'
		)
	`

	var session *string
	if record.Session != "" {
		s := string(record.Session)
		session = &s
	}

	_, err := a.db.Exec(ctx, query,
		record.UserID,
		record.Date,
		record.TimeIn,
		record.TimeOut,
		record.Present,
		session,
		record.Notes,
		record.Penalty,
	)
	if err != nil {
		return fmt.Errorf("failed to insert absence record: %w", err)
	}

	return nil
}

// Delete implements attendance.Repository.
func (a *attendanceRepository) Delete(ctx context.Context, id int64) error {
	commandTag, err := a.db.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}
