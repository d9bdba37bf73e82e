package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/dejmenek/pms-backend/internal/apperrors"
	"github.com/dejmenek/pms-backend/internal/core/domain"
	portsrepo "github.com/dejmenek/pms-backend/internal/core/ports/repositories"
	portssvc "github.com/dejmenek/pms-backend/internal/core/ports/services"
	"github.com/dejmenek/pms-backend/internal/dto"
	"github.com/dejmenek/pms-backend/internal/platform/cache"
	"github.com/dejmenek/pms-backend/internal/utils/pagination"
	"github.com/dejmenek/pms-backend/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// userServiceImpl orchestrates validation, the admin-protection invariant,
// repository access, and cache coordination for the staff directory.
type userServiceImpl struct {
	BaseService
	userRepo  portsrepo.UserRepository
	validator *validation.Validator
	cache     cache.Store[dto.UserDetails]
}

// NewUserService creates the user service.
func NewUserService(repo portsrepo.UserRepository, validator *validation.Validator, detailsCache cache.Store[dto.UserDetails]) portssvc.UserSvcFacade {
	return &userServiceImpl{
		userRepo:  repo,
		validator: validator,
		cache:     detailsCache,
	}
}

// Ensure userServiceImpl implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userServiceImpl)(nil)

func (s *userServiceImpl) GetUsers(ctx context.Context, req dto.GetUsersRequest) (pagination.Paged[dto.UserListItem], error) {
	s.LogInfo(ctx, "Getting users",
		slog.String("search", req.Search),
		slog.Int("page", req.Page),
		slog.Int("page_size", int(req.PageSize)))

	if verr := s.validator.Validate(&req); verr != nil {
		s.LogWarn(ctx, "Validation failed for GetUsersRequest", slog.String("error", verr.Error()))
		return pagination.Paged[dto.UserListItem]{}, verr
	}

	users, err := s.userRepo.GetUsers(ctx, req.Search, req.EmailConfirmed, req.Page, req.PageSize)
	if err != nil {
		s.LogError(ctx, err, "Error retrieving users", slog.Int("page", req.Page))
		return pagination.Paged[dto.UserListItem]{}, domain.UserErrors.GetUsersFailed
	}

	s.LogInfo(ctx, "Successfully retrieved users", slog.Int("count", len(users.Items)), slog.Int("page", req.Page))
	return users, nil
}

func (s *userServiceImpl) GetUserDetails(ctx context.Context, userID string) (dto.UserDetails, error) {
	s.LogInfo(ctx, "Getting details for user", slog.String("user_id", userID))

	cacheKey := cache.UserDetailsKey(userID)
	if cached, ok := s.cache.Get(cacheKey); ok {
		s.LogInfo(ctx, "User details retrieved from cache", slog.String("user_id", userID))
		return cached, nil
	}

	details, err := s.userRepo.GetUserDetails(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "User not found", slog.String("user_id", userID))
			return dto.UserDetails{}, domain.UserErrors.UserNotFound
		}
		s.LogError(ctx, err, "Error retrieving user details", slog.String("user_id", userID))
		return dto.UserDetails{}, domain.UserErrors.GetUserDetailsFailed
	}

	s.cache.Set(cacheKey, details)
	s.LogInfo(ctx, "Successfully retrieved user details", slog.String("user_id", userID))
	return details, nil
}

func (s *userServiceImpl) RemoveSingleUser(ctx context.Context, userID string) error {
	s.LogInfo(ctx, "Attempting to remove user", slog.String("user_id", userID))

	isAdmin, err := s.userRepo.IsUserInRole(ctx, userID, domain.RoleAdmin)
	if err != nil {
		return s.mapRemovalError(ctx, err, userID, domain.UserErrors.RemoveSingleUserFailed)
	}
	if isAdmin {
		s.LogWarn(ctx, "Attempted to delete admin user", slog.String("user_id", userID))
		return domain.UserErrors.AdminUserDeletionNotAllowed
	}

	if err := s.userRepo.RemoveUser(ctx, userID); err != nil {
		return s.mapRemovalError(ctx, err, userID, domain.UserErrors.RemoveSingleUserFailed)
	}

	s.cache.Delete(cache.UserDetailsKey(userID))
	s.LogInfo(ctx, "Successfully removed user", slog.String("user_id", userID))
	return nil
}

func (s *userServiceImpl) RemoveUsers(ctx context.Context, userIDs []string) error {
	s.LogInfo(ctx, "Attempting to remove users", slog.Int("count", len(userIDs)))

	// Every target is checked before any delete; the first admin found aborts
	// the whole operation, in input order.
	for _, userID := range userIDs {
		isAdmin, err := s.userRepo.IsUserInRole(ctx, userID, domain.RoleAdmin)
		if err != nil {
			return s.mapRemovalError(ctx, err, userID, domain.UserErrors.RemoveUsersFailed)
		}
		if isAdmin {
			s.LogWarn(ctx, "Attempted to delete admin user in bulk operation", slog.String("user_id", userID))
			return domain.UserErrors.AdminUserDeletionNotAllowed
		}
	}

	if err := s.userRepo.RemoveUsers(ctx, userIDs); err != nil {
		s.LogError(ctx, err, "Error removing users")
		return domain.UserErrors.RemoveUsersFailed
	}

	for _, userID := range userIDs {
		s.cache.Delete(cache.UserDetailsKey(userID))
	}
	s.LogInfo(ctx, "Successfully removed users", slog.Int("count", len(userIDs)))
	return nil
}

func (s *userServiceImpl) mapRemovalError(ctx context.Context, err error, userID string, fallback *apperrors.Error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogWarn(ctx, "User not found for removal", slog.String("user_id", userID))
		return domain.UserErrors.UserNotFound
	}
	s.LogError(ctx, err, "Error removing user", slog.String("user_id", userID))
	return fallback
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, req dto.UpdateUserRequest) error {
	s.LogInfo(ctx, "Attempting to update user", slog.String("user_id", req.ID))

	if verr := s.validator.Validate(&req); verr != nil {
		s.LogWarn(ctx, "Validation failed for UpdateUserRequest", slog.String("error", verr.Error()))
		return verr
	}

	isAdmin, err := s.userRepo.IsUserInRole(ctx, req.ID, domain.RoleAdmin)
	if err != nil {
		return s.mapUpdateError(ctx, err, req)
	}
	if isAdmin {
		s.LogWarn(ctx, "Attempted to update admin user", slog.String("user_id", req.ID))
		return domain.UserErrors.AdminUserUpdateNotAllowed
	}

	if err := s.userRepo.UpdateUserIdentity(ctx, req); err != nil {
		return s.mapUpdateError(ctx, err, req)
	}

	s.cache.Delete(cache.UserDetailsKey(req.ID))
	s.LogInfo(ctx, "Successfully updated user", slog.String("user_id", req.ID))
	return nil
}

func (s *userServiceImpl) mapUpdateError(ctx context.Context, err error, req dto.UpdateUserRequest) error {
	switch {
	case errors.Is(err, apperrors.ErrDuplicateUserName):
		s.LogWarn(ctx, "Duplicate username for update", slog.String("username", req.Username))
		return domain.UserErrors.DuplicateUserName
	case errors.Is(err, apperrors.ErrDuplicateEmail):
		s.LogWarn(ctx, "Duplicate email for update", slog.String("email", req.Email))
		return domain.UserErrors.DuplicateEmail
	case errors.Is(err, apperrors.ErrDuplicatePhoneNumber):
		s.LogWarn(ctx, "Duplicate phone number for update", slog.String("user_id", req.ID))
		return domain.UserErrors.DuplicatePhoneNumber
	case errors.Is(err, apperrors.ErrNotFound):
		s.LogWarn(ctx, "User not found for update", slog.String("user_id", req.ID))
		return domain.UserErrors.UserNotFound
	case errors.Is(err, apperrors.ErrUserUpdateFailed):
		s.LogError(ctx, err, "User update failed", slog.String("user_id", req.ID))
		return domain.UserErrors.UserUpdateFailed
	default:
		s.LogError(ctx, err, "Unexpected error updating user", slog.String("user_id", req.ID))
		return domain.UserErrors.UserUpdateError
	}
}

func (s *userServiceImpl) GetUserForUpdate(ctx context.Context, userID string) (dto.UserForUpdate, error) {
	s.LogInfo(ctx, "Getting user for update", slog.String("user_id", userID))

	user, err := s.userRepo.GetUserForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "User not found for update", slog.String("user_id", userID))
			return dto.UserForUpdate{}, domain.UserErrors.UserNotFound
		}
		s.LogError(ctx, err, "Error retrieving user for update", slog.String("user_id", userID))
		return dto.UserForUpdate{}, domain.UserErrors.GetUserForUpdateError
	}

	s.LogInfo(ctx, "Successfully retrieved user for update", slog.String("user_id", userID))
	return user, nil
}

func (s *userServiceImpl) GetUserRolesForUpdate(ctx context.Context, userID string) ([]dto.RoleOption, error) {
	s.LogInfo(ctx, "Getting user roles for update", slog.String("user_id", userID))

	assignedRoles, err := s.userRepo.GetUserRoles(ctx, userID)
	if err != nil {
		return nil, s.mapRolesReadError(ctx, err, userID)
	}
	allRoles, err := s.userRepo.GetAllRoles(ctx)
	if err != nil {
		return nil, s.mapRolesReadError(ctx, err, userID)
	}

	assigned := make(map[string]struct{}, len(assignedRoles))
	for _, name := range assignedRoles {
		assigned[strings.ToLower(name)] = struct{}{}
	}

	options := make([]dto.RoleOption, len(allRoles))
	for i, role := range allRoles {
		_, has := assigned[strings.ToLower(role.Name)]
		options[i] = dto.RoleOption{ID: role.ID, Name: role.Name, Assigned: has}
	}

	s.LogInfo(ctx, "Successfully retrieved roles for user", slog.String("user_id", userID))
	return options, nil
}

func (s *userServiceImpl) mapRolesReadError(ctx context.Context, err error, userID string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogWarn(ctx, "User not found when getting roles for update", slog.String("user_id", userID))
		return domain.UserErrors.UserNotFound
	}
	s.LogError(ctx, err, "Error retrieving user roles for update", slog.String("user_id", userID))
	return domain.UserErrors.GetUserRolesForUpdateFailed
}

func (s *userServiceImpl) UpdateUserRoles(ctx context.Context, userID string, selectedRoles []string) error {
	s.LogInfo(ctx, "Updating roles for user",
		slog.String("user_id", userID),
		slog.Int("selected_count", len(selectedRoles)))

	isAdmin, err := s.userRepo.IsUserInRole(ctx, userID, domain.RoleAdmin)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "User not found when updating roles", slog.String("user_id", userID))
			return domain.UserErrors.UserNotFound
		}
		s.LogError(ctx, err, "Error updating user roles", slog.String("user_id", userID))
		return domain.UserErrors.UpdateUserRolesError
	}
	if isAdmin {
		s.LogWarn(ctx, "Attempted to update admin user", slog.String("user_id", userID))
		return domain.UserErrors.AdminUserUpdateNotAllowed
	}

	if err := s.userRepo.UpdateUserRoles(ctx, userID, selectedRoles); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "User not found when updating roles", slog.String("user_id", userID))
			return domain.UserErrors.UserNotFound
		}
		s.LogError(ctx, err, "Error updating user roles", slog.String("user_id", userID))
		return domain.UserErrors.UpdateUserRolesError
	}

	s.cache.Delete(cache.UserDetailsKey(userID))
	s.LogInfo(ctx, "Successfully updated roles for user", slog.String("user_id", userID))
	return nil
}

func (s *userServiceImpl) CreateUser(ctx context.Context, req dto.CreateUserRequest) error {
	s.LogInfo(ctx, "Attempting to create user", slog.String("username", req.Username))

	if verr := s.validator.Validate(&req); verr != nil {
		s.LogWarn(ctx, "Validation failed for CreateUserRequest", slog.String("error", verr.Error()))
		return verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password", slog.String("username", req.Username))
		return domain.UserErrors.CreateUserError
	}

	if err := s.userRepo.CreateUser(ctx, req, string(hash)); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicateUserName):
			s.LogWarn(ctx, "Duplicate username for creation", slog.String("username", req.Username))
			return domain.UserErrors.DuplicateUserName
		case errors.Is(err, apperrors.ErrDuplicateEmail):
			s.LogWarn(ctx, "Duplicate email for creation", slog.String("email", req.Email))
			return domain.UserErrors.DuplicateEmail
		case errors.Is(err, apperrors.ErrDuplicatePhoneNumber):
			s.LogWarn(ctx, "Duplicate phone number for creation", slog.String("username", req.Username))
			return domain.UserErrors.DuplicatePhoneNumber
		case errors.Is(err, apperrors.ErrUserCreationFailed):
			s.LogError(ctx, err, "User creation failed", slog.String("username", req.Username))
			return domain.UserErrors.CreateUserFailed
		default:
			s.LogError(ctx, err, "Unexpected error creating user", slog.String("username", req.Username))
			return domain.UserErrors.CreateUserError
		}
	}

	s.LogInfo(ctx, "Successfully created user", slog.String("username", req.Username))
	return nil
}
