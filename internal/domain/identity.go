package domain

// Role is the account-level role of a user.
type Role string

// List of roles
const (
	RoleSender  Role = "sender"
	RoleCarrier Role = "carrier"
	RoleAdmin   Role = "admin"
)

// Valid checks if the Role is known.
func (r Role) Valid() bool {
	return r == RoleSender || r == RoleCarrier || r == RoleAdmin
}

// Identity is the caller resolved from a bearer credential.
type Identity struct {
	UserID string
	Role   Role
	Active bool
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }
