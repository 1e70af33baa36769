package entity

// RoleOwner is the role that grants listing mutation rights. A user registered
// with this role gets an Owner profile provisioned under the same ID.
const RoleOwner = "Owner"

// User is an authenticated account. Profile data for owners lives on the
// correlated Owner entity; the User record itself is never updated by the
// domain services after registration.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	FullName     string `json:"fullName"`
	Photo        string `json:"photo,omitempty"`
	Role         string `json:"role"`
}

// IsOwner reports whether the user holds the Owner role.
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}
