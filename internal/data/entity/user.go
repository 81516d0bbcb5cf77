package entity

type UserRole string

const (
	RoleUser       UserRole = "user"
	RoleHallOwner  UserRole = "hall-owner"
	RoleAdmin      UserRole = "admin"
	RoleSuperAdmin UserRole = "super-admin"
)

// IsPrivileged reports whether the role may act on resources it does not own
func (r UserRole) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

type User struct {
	Base
	FirstName    string   `db:"first_name"`
	LastName     string   `db:"last_name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Phone        *string  `db:"phone"`
	Address      *string  `db:"address"`
	Role         UserRole `db:"role"`
}
