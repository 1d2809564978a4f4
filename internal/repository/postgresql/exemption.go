package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/talentia-hr/attendance-engine/internal/domain/exemption"
	"github.com/talentia-hr/attendance-engine/internal/pkg/database"
)

type exemptionRepository struct {
	db *database.DB
}

func NewExemptionRepository(db *database.DB) exemption.Repository {
	return &exemptionRepository{db: db}
}

// ListByUsersAndDates implements exemption.Repository. One round-trip for
// the whole (user, date) set of a resolution pass.
func (e *exemptionRepository) ListByUsersAndDates(ctx context.Context, userIDs []string, dates []time.Time) ([]exemption.Exemption, error) {
	if len(userIDs) == 0 || len(dates) == 0 {
		return nil, nil
	}

	query := `
		SELECT user_id, exemption_date, request_type, start_time, end_time, reason
		FROM exemptions
		WHERE user_id = ANY($1)
		  AND exemption_date = ANY($2)
	`

	rows, err := e.db.Query(ctx, query, userIDs, dates)
	if err != nil {
		return nil, fmt.Errorf("failed to query exemptions: %w", err)
	}
	defer rows.Close()

	var exemptions []exemption.Exemption
	for rows.Next() {
		var ex exemption.Exemption
		err := rows.Scan(&ex.UserID, &ex.Date, &ex.RequestType, &ex.StartTime, &ex.EndTime, &ex.Reason)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exemption: %w", err)
		}
		exemptions = append(exemptions, ex)
	}

	return exemptions, rows.Err()
}
