package dto

import (
	"github.com/dejmenek/pms-backend/internal/core/domain"
	"github.com/dejmenek/pms-backend/internal/utils/pagination"
)

// GetUsersRequest filters and pages the user listing.
type GetUsersRequest struct {
	Search         string              `json:"search" form:"search"`
	EmailConfirmed *bool               `json:"emailConfirmed" form:"emailConfirmed"`
	Page           int                 `json:"page" form:"page" validate:"gt=0"`
	PageSize       pagination.PageSize `json:"pageSize" form:"pageSize" validate:"pagesize"`
}

// UserListItem is a user listing row.
type UserListItem struct {
	ID             string   `json:"id"`
	Email          string   `json:"email"`
	Username       string   `json:"username"`
	PhoneNumber    *string  `json:"phoneNumber,omitempty"`
	EmailConfirmed bool     `json:"emailConfirmed"`
	Roles          []string `json:"roles"`
}

// UserDetails is the full detail projection of a user.
type UserDetails struct {
	ID             string   `json:"id"`
	Email          string   `json:"email"`
	Username       string   `json:"username"`
	PhoneNumber    *string  `json:"phoneNumber,omitempty"`
	EmailConfirmed bool     `json:"emailConfirmed"`
	Roles          []string `json:"roles"`
}

// CreateUserRequest carries the fields for creating a user with a password.
// PhoneNumber is optional; when present it must be a valid international
// number.
type CreateUserRequest struct {
	Username    string  `json:"username" validate:"required,max=256"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8,max=100"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,intlphone"`
}

// UpdateUserRequest carries the identity fields updated through the
// transactional three-field protocol.
type UpdateUserRequest struct {
	ID          string  `json:"id" validate:"required"`
	Username    string  `json:"username" validate:"required,max=256"`
	Email       string  `json:"email" validate:"required,email"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,intlphone"`
}

// UserForUpdate is the read-only projection backing the update form.
type UserForUpdate struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	Username    string  `json:"username"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// RoleOption is one row of the flag-per-role view: every role in the catalog
// with an assigned flag for a given user.
type RoleOption struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Assigned bool   `json:"assigned"`
}

// UpdateUserRolesRequest replaces a user's role assignment with the selected
// set.
type UpdateUserRolesRequest struct {
	SelectedRoles []string `json:"selectedRoles"`
}

// ToUserListItem maps a domain user to its listing row.
func ToUserListItem(u domain.User) UserListItem {
	return UserListItem{
		ID:             u.ID,
		Email:          u.Email,
		Username:       u.Username,
		PhoneNumber:    u.PhoneNumber,
		EmailConfirmed: u.EmailConfirmed,
		Roles:          u.Roles,
	}
}
