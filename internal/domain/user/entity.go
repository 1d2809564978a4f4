package user

// Role identifies how a user participates in attendance tracking.
type Role string

const (
	RoleEmployee Role = "employee" // regular staff, tracked
	RoleFaculty  Role = "faculty"  // teaching staff with class schedules, tracked
	RoleHR       Role = "hr"       // administers the dashboard
	RoleAdmin    Role = "admin"    // full access
)

// User is the minimal roster view the engine needs: enough to join names
// onto attendance rows and to enumerate who is subject to backfill.
type User struct {
	ID       string
	FullName string
	Role     Role
}
