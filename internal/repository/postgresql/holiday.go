package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/talentia-hr/attendance-engine/internal/domain/holiday"
	"github.com/talentia-hr/attendance-engine/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepository{db: db}
}

// ListActiveByDates implements holiday.Repository.
func (h *holidayRepository) ListActiveByDates(ctx context.Context, dates []time.Time) ([]holiday.Holiday, error) {
	if len(dates) == 0 {
		return nil, nil
	}

	query := `
		SELECT date, title, is_active
		FROM holidays
		WHERE is_active = true
		  AND date = ANY($1)
	`

	rows, err := h.db.Query(ctx, query, dates)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var hd holiday.Holiday
		if err := rows.Scan(&hd.Date, &hd.Title, &hd.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, hd)
	}

	return holidays, rows.Err()
}
