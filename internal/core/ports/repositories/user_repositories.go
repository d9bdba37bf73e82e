package repositories

import (
	"context"

	"github.com/dejmenek/pms-backend/internal/core/domain"
	"github.com/dejmenek/pms-backend/internal/dto"
	"github.com/dejmenek/pms-backend/internal/utils/pagination"
)

// UserRepository defines the persistence and identity-management operations
// for users and their roles. Domain failures are signalled with the apperrors
// sentinels (ErrNotFound, ErrDuplicate*, ErrUserUpdateFailed,
// ErrUserCreationFailed) and caught at the service boundary.
type UserRepository interface {
	// GetUsers returns one page of users whose username or email contains the
	// search term, optionally filtered by email-confirmed state. Each row
	// carries the user's role names.
	GetUsers(ctx context.Context, search string, emailConfirmed *bool, page int, pageSize pagination.PageSize) (pagination.Paged[dto.UserListItem], error)

	// GetUserDetails returns the detail projection or ErrNotFound.
	GetUserDetails(ctx context.Context, userID string) (dto.UserDetails, error)

	// IsUserInRole reports whether the user holds the named role
	// (case-insensitive). Returns ErrNotFound for an unknown user.
	IsUserInRole(ctx context.Context, userID string, role string) (bool, error)

	// RemoveUser deletes a single user. Returns ErrNotFound when absent.
	RemoveUser(ctx context.Context, userID string) error

	// RemoveUsers deletes the given ids in one statement.
	RemoveUsers(ctx context.Context, userIDs []string) error

	// UpdateUserIdentity applies the three-field update protocol (username,
	// email, phone) inside one transaction. A field is updated only when it
	// differs case-insensitively from the current value; each update checks
	// uniqueness against other users first. Email changes auto-confirm the
	// new address. Any failure rolls back all three.
	UpdateUserIdentity(ctx context.Context, req dto.UpdateUserRequest) error

	// GetUserForUpdate returns the update-form projection or ErrNotFound.
	GetUserForUpdate(ctx context.Context, userID string) (dto.UserForUpdate, error)

	// GetUserRoles returns the names of the user's assigned roles.
	GetUserRoles(ctx context.Context, userID string) ([]string, error)

	// GetAllRoles returns the full role catalog ordered by name.
	GetAllRoles(ctx context.Context) ([]domain.Role, error)

	// UpdateUserRoles reconciles the user's roles with the selected set:
	// the case-insensitive symmetric difference is applied inside one
	// transaction; an empty difference is a no-op.
	UpdateUserRoles(ctx context.Context, userID string, selectedRoles []string) error

	// CreateUser inserts a new user after three independent uniqueness checks
	// (username, email, phone when present), each signalled by its own
	// duplicate sentinel. The password arrives already hashed.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, passwordHash string) error
}
