package user

// User is an assignable facility-management user from the platform
// directory. Patrol schedules reference users by id; display names are
// looked up best-effort when a submission is assembled.
type User struct {
	ID       int64
	FullName string
	Email    string
}
