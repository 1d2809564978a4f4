package user

import "context"

// Repository defines roster access. Profiles live in the external store;
// the engine only reads the fields it joins and the role-filtered roster.
type Repository interface {
	// ListByRoles retrieves every user holding one of the given roles.
	ListByRoles(ctx context.Context, roles []Role) ([]User, error)
}
