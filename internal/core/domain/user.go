package domain

// RoleAdmin is the role name protected by the admin-protection invariant:
// accounts holding it cannot be deleted or modified through the standard
// user-management paths.
const RoleAdmin = "Admin"

// User represents a staff account in the directory. Username and Email are
// unique across users; PhoneNumber is unique when present.
type User struct {
	ID             string   `json:"id"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	PhoneNumber    *string  `json:"phoneNumber,omitempty"`
	EmailConfirmed bool     `json:"emailConfirmed"`
	Roles          []string `json:"roles"`
}

// Role is an assignable role in the catalog.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
