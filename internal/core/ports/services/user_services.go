package services

import (
	"context"

	"github.com/dejmenek/pms-backend/internal/dto"
	"github.com/dejmenek/pms-backend/internal/utils/pagination"
)

// UserSvcFacade is the service contract for the staff directory.
type UserSvcFacade interface {
	GetUsers(ctx context.Context, req dto.GetUsersRequest) (pagination.Paged[dto.UserListItem], error)
	GetUserDetails(ctx context.Context, userID string) (dto.UserDetails, error)
	RemoveSingleUser(ctx context.Context, userID string) error
	RemoveUsers(ctx context.Context, userIDs []string) error
	UpdateUser(ctx context.Context, req dto.UpdateUserRequest) error
	GetUserForUpdate(ctx context.Context, userID string) (dto.UserForUpdate, error)
	GetUserRolesForUpdate(ctx context.Context, userID string) ([]dto.RoleOption, error)
	UpdateUserRoles(ctx context.Context, userID string, selectedRoles []string) error
	CreateUser(ctx context.Context, req dto.CreateUserRequest) error
}
