package postgresql

import (
	"context"
	"fmt"

	"github.com/talentia-hr/attendance-engine/internal/domain/user"
	"github.com/talentia-hr/attendance-engine/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}

// ListByRoles implements user.Repository.
func (u *userRepository) ListByRoles(ctx context.Context, roles []user.Role) ([]user.User, error) {
	if len(roles) == 0 {
		return nil, nil
	}

	roleStrs := make([]string, 0, len(roles))
	for _, r := range roles {
		roleStrs = append(roleStrs, string(r))
	}

	query := `
		SELECT id, full_name, role
		FROM users
		WHERE role = ANY($1)
		ORDER BY full_name ASC
	`

	rows, err := u.db.Query(ctx, query, roleStrs)
	if err != nil {
		return nil, fmt.Errorf("failed to query users by role: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var usr user.User
		if err := rows.Scan(&usr.ID, &usr.FullName, &usr.Role); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, usr)
	}

	return users, rows.Err()
}
