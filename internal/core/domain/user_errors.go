package domain

import "github.com/dejmenek/pms-backend/internal/apperrors"

// UserErrors is the catalog of stable errors the user service returns.
var UserErrors = struct {
	DuplicateUserName           *apperrors.Error
	DuplicateEmail              *apperrors.Error
	DuplicatePhoneNumber        *apperrors.Error
	UserNotFound                *apperrors.Error
	UserUpdateFailed            *apperrors.Error
	AdminUserUpdateNotAllowed   *apperrors.Error
	GetUsersFailed              *apperrors.Error
	AdminUserDeletionNotAllowed *apperrors.Error
	GetUserDetailsFailed        *apperrors.Error
	RemoveSingleUserFailed      *apperrors.Error
	RemoveUsersFailed           *apperrors.Error
	UserUpdateError             *apperrors.Error
	GetUserForUpdateError       *apperrors.Error
	GetUserRolesForUpdateFailed *apperrors.Error
	UpdateUserRolesError        *apperrors.Error
	CreateUserFailed            *apperrors.Error
	CreateUserError             *apperrors.Error
}{
	DuplicateUserName:           apperrors.NewConflict("UserService.DuplicateUserName", "This username is already taken."),
	DuplicateEmail:              apperrors.NewConflict("UserService.DuplicateEmail", "This email address is already in use."),
	DuplicatePhoneNumber:        apperrors.NewConflict("UserService.DuplicatePhoneNumber", "This phone number is already associated with another user."),
	UserNotFound:                apperrors.NewNotFound("UserService.UserNotFound", "The user could not be found."),
	UserUpdateFailed:            apperrors.NewFailure("UserService.UserUpdateFailed", "Failed to update user. Please try again later."),
	AdminUserUpdateNotAllowed:   apperrors.NewConflict("UserService.AdminUserUpdateNotAllowed", "Updating admin users is not allowed."),
	GetUsersFailed:              apperrors.NewFailure("UserService.GetUsersFailed", "Failed to retrieve users. Please try again later."),
	AdminUserDeletionNotAllowed: apperrors.NewConflict("UserService.AdminUserDeletionNotAllowed", "Deleting admin users is not allowed."),
	GetUserDetailsFailed:        apperrors.NewFailure("UserService.GetUserDetailsFailed", "Failed to retrieve user details. Please try again later."),
	RemoveSingleUserFailed:      apperrors.NewFailure("UserService.RemoveSingleUserFailed", "Failed to remove user. Please try again later."),
	RemoveUsersFailed:           apperrors.NewFailure("UserService.RemoveUsersFailed", "Failed to remove users. Please try again later."),
	UserUpdateError:             apperrors.NewFailure("UserService.UserUpdateError", "An error occurred while updating the user. Please try again later."),
	GetUserForUpdateError:       apperrors.NewFailure("UserService.GetUserForUpdateError", "An error occurred while retrieving user for update. Please try again later."),
	GetUserRolesForUpdateFailed: apperrors.NewFailure("UserService.GetUserRolesForUpdateFailed", "Failed to retrieve user roles for update. Please try again later."),
	UpdateUserRolesError:        apperrors.NewFailure("UserService.UpdateUserRolesError", "Failed to update user roles. Please try again later."),
	CreateUserFailed:            apperrors.NewFailure("UserService.CreateUserFailed", "Failed to create user. Please try again later."),
	CreateUserError:             apperrors.NewFailure("UserService.CreateUserError", "An error occurred while creating the user. Please try again later."),
}
