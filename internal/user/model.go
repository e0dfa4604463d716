package user

import "time"

type Role string

const (
	RoleBuyer  Role = "BUYER"
	RoleSeller Role = "SELLER"
	RoleAdmin  Role = "ADMIN"
)

// ParseRole maps a raw string onto the closed role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// Identity is the resolved caller of an authorized request. It is always
// passed explicitly into service calls, never read from ambient state.
type Identity struct {
	UserID int
	Role   Role
}

type User struct {
	ID        int
	Name      string
	Email     string
	Password  string
	Role      Role
	Verified  bool
	CreatedAt time.Time
}
