package model

// Role identifies the access level of a user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
	RoleStudent Role = "student"
)

// ValidRole reports whether s is one of the recognized roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleAdmin, RoleStaff, RoleStudent:
		return true
	}
	return false
}

// UserStatus is the account state toggled from the admin users page.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// User is a dashboard account. Role is immutable once created.
type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	Status    UserStatus `json:"status,omitempty"`
	CreatedAt string     `json:"createdAt,omitempty"`
	Avatar    string     `json:"avatar,omitempty"`
}
