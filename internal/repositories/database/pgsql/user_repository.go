package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dejmenek/pms-backend/internal/apperrors"
	"github.com/dejmenek/pms-backend/internal/core/domain"
	portsrepo "github.com/dejmenek/pms-backend/internal/core/ports/repositories"
	"github.com/dejmenek/pms-backend/internal/dto"
	"github.com/dejmenek/pms-backend/internal/models"
	"github.com/dejmenek/pms-backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) GetUsers(ctx context.Context, search string, emailConfirmed *bool, page int, pageSize pagination.PageSize) (pagination.Paged[dto.UserListItem], error) {
	pattern := searchPattern(search)

	var totalCount int
	countQuery := `
		SELECT COUNT(*)
		FROM users
		WHERE (username ILIKE $1 OR email ILIKE $1)
		  AND ($2::boolean IS NULL OR email_confirmed = $2);
	`
	if err := r.Pool.QueryRow(ctx, countQuery, pattern, emailConfirmed).Scan(&totalCount); err != nil {
		return pagination.Paged[dto.UserListItem]{}, fmt.Errorf("failed to count users: %w", err)
	}

	query := `
		SELECT u.id, u.username, u.email, u.phone_number, u.email_confirmed,
		       COALESCE(array_agg(r.name ORDER BY r.name) FILTER (WHERE r.name IS NOT NULL), '{}')
		FROM users u
		LEFT JOIN user_roles ur ON ur.user_id = u.id
		LEFT JOIN roles r ON r.id = ur.role_id
		WHERE (u.username ILIKE $1 OR u.email ILIKE $1)
		  AND ($2::boolean IS NULL OR u.email_confirmed = $2)
		GROUP BY u.id
		ORDER BY u.username
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, pattern, emailConfirmed, int(pageSize), pagination.Offset(page, pageSize))
	if err != nil {
		return pagination.Paged[dto.UserListItem]{}, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var items []dto.UserListItem
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.PhoneNumber, &user.EmailConfirmed, &user.Roles); err != nil {
			return pagination.Paged[dto.UserListItem]{}, fmt.Errorf("failed to scan user row: %w", err)
		}
		items = append(items, dto.ToUserListItem(user))
	}
	if err := rows.Err(); err != nil {
		return pagination.Paged[dto.UserListItem]{}, fmt.Errorf("failed to iterate user rows: %w", err)
	}

	return pagination.NewPaged(items, page, pageSize, totalCount), nil
}

func (r *PgxUserRepository) GetUserDetails(ctx context.Context, userID string) (dto.UserDetails, error) {
	query := `
		SELECT u.id, u.username, u.email, u.phone_number, u.email_confirmed,
		       COALESCE(array_agg(r.name ORDER BY r.name) FILTER (WHERE r.name IS NOT NULL), '{}')
		FROM users u
		LEFT JOIN user_roles ur ON ur.user_id = u.id
		LEFT JOIN roles r ON r.id = ur.role_id
		WHERE u.id = $1
		GROUP BY u.id;
	`
	var details dto.UserDetails
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&details.ID, &details.Username, &details.Email, &details.PhoneNumber, &details.EmailConfirmed, &details.Roles,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.UserDetails{}, apperrors.ErrNotFound
		}
		return dto.UserDetails{}, fmt.Errorf("failed to get user details for %s: %w", userID, err)
	}
	return details, nil
}

func (r *PgxUserRepository) IsUserInRole(ctx context.Context, userID string, role string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM users WHERE id = $1),
		       EXISTS (
		           SELECT 1
		           FROM user_roles ur
		           JOIN roles r ON r.id = ur.role_id
		           WHERE ur.user_id = $1 AND LOWER(r.name) = LOWER($2)
		       );
	`
	var exists, inRole bool
	if err := r.Pool.QueryRow(ctx, query, userID, role).Scan(&exists, &inRole); err != nil {
		return false, fmt.Errorf("failed to check role %q for user %s: %w", role, userID, err)
	}
	if !exists {
		return false, apperrors.ErrNotFound
	}
	return inRole, nil
}

func (r *PgxUserRepository) RemoveUser(ctx context.Context, userID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to remove user %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) RemoveUsers(ctx context.Context, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}
	if _, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE id = ANY($1);`, userIDs); err != nil {
		return fmt.Errorf("failed to remove users: %w", err)
	}
	return nil
}

// UpdateUserIdentity applies the three-field update protocol inside one
// transaction: each field is updated only when it differs case-insensitively
// from the stored value, and each update first checks uniqueness against the
// other users. Changing the email also marks it confirmed; the admin entering
// it through the back office stands in for the confirmation flow.
func (r *PgxUserRepository) UpdateUserIdentity(ctx context.Context, req dto.UpdateUserRequest) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var current models.User
	err = tx.QueryRow(ctx, `
		SELECT id, username, email, phone_number
		FROM users
		WHERE id = $1
		FOR UPDATE;
	`, req.ID).Scan(&current.ID, &current.Username, &current.Email, &current.PhoneNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to load user %s for update: %w", req.ID, err)
	}

	changes := identityDiff(current, req)

	if changes.username {
		taken, err := existsOtherUser(ctx, tx, `LOWER(username) = LOWER($1)`, req.Username, req.ID)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrDuplicateUserName
		}
		if _, err := tx.Exec(ctx, `UPDATE users SET username = $2 WHERE id = $1;`, req.ID, req.Username); err != nil {
			return fmt.Errorf("%w: username update for %s: %v", apperrors.ErrUserUpdateFailed, req.ID, err)
		}
	}

	if changes.email {
		taken, err := existsOtherUser(ctx, tx, `LOWER(email) = LOWER($1)`, req.Email, req.ID)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrDuplicateEmail
		}
		if _, err := tx.Exec(ctx, `UPDATE users SET email = $2, email_confirmed = TRUE WHERE id = $1;`, req.ID, req.Email); err != nil {
			return fmt.Errorf("%w: email update for %s: %v", apperrors.ErrUserUpdateFailed, req.ID, err)
		}
	}

	if changes.phone {
		if req.PhoneNumber != nil {
			taken, err := existsOtherUser(ctx, tx, `phone_number = $1`, *req.PhoneNumber, req.ID)
			if err != nil {
				return err
			}
			if taken {
				return apperrors.ErrDuplicatePhoneNumber
			}
		}
		if _, err := tx.Exec(ctx, `UPDATE users SET phone_number = $2 WHERE id = $1;`, req.ID, req.PhoneNumber); err != nil {
			return fmt.Errorf("%w: phone update for %s: %v", apperrors.ErrUserUpdateFailed, req.ID, err)
		}
	}

	return r.Commit(ctx, tx)
}

func existsOtherUser(ctx context.Context, tx pgx.Tx, predicate, value, excludeID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM users WHERE %s AND id <> $2);`, predicate)
	var exists bool
	if err := tx.QueryRow(ctx, query, value, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user uniqueness: %w", err)
	}
	return exists, nil
}

// identityChanges flags which of the three identity fields actually differ
// from the stored row; equal-modulo-case values are not changes.
type identityChanges struct {
	username bool
	email    bool
	phone    bool
}

func identityDiff(current models.User, req dto.UpdateUserRequest) identityChanges {
	return identityChanges{
		username: !strings.EqualFold(current.Username, req.Username),
		email:    !strings.EqualFold(current.Email, req.Email),
		phone:    !phoneEqual(current.PhoneNumber, req.PhoneNumber),
	}
}

func phoneEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (r *PgxUserRepository) GetUserForUpdate(ctx context.Context, userID string) (dto.UserForUpdate, error) {
	var user dto.UserForUpdate
	err := r.Pool.QueryRow(ctx, `
		SELECT id, username, email, phone_number
		FROM users
		WHERE id = $1;
	`, userID).Scan(&user.ID, &user.Username, &user.Email, &user.PhoneNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.UserForUpdate{}, apperrors.ErrNotFound
		}
		return dto.UserForUpdate{}, fmt.Errorf("failed to get user %s for update: %w", userID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) GetUserRoles(ctx context.Context, userID string) ([]string, error) {
	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1);`, userID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check user %s: %w", userID, err)
	}
	if !exists {
		return nil, apperrors.ErrNotFound
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT r.name
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.name;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles for user %s: %w", userID, err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan role row: %w", err)
		}
		roles = append(roles, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate role rows: %w", err)
	}
	return roles, nil
}

func (r *PgxUserRepository) GetAllRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, name FROM roles ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var m models.Role
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan role row: %w", err)
		}
		roles = append(roles, domain.Role{ID: m.ID, Name: m.Name})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate role rows: %w", err)
	}
	return roles, nil
}

// UpdateUserRoles reconciles the user's role assignment with the selected set.
// Only the case-insensitive symmetric difference is written; when the selection
// already matches, nothing is touched.
func (r *PgxUserRepository) UpdateUserRoles(ctx context.Context, userID string, selectedRoles []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var lockedID string
	if err := tx.QueryRow(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE;`, userID).Scan(&lockedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock user %s: %w", userID, err)
	}

	rows, err := tx.Query(ctx, `
		SELECT r.name
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1;
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to query current roles for user %s: %w", userID, err)
	}
	var current []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan role row: %w", err)
		}
		current = append(current, name)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate role rows: %w", err)
	}

	toAdd, toRemove := roleDiff(current, selectedRoles)

	if len(toAdd) == 0 && len(toRemove) == 0 {
		return r.Commit(ctx, tx)
	}

	if len(toRemove) > 0 {
		_, err := tx.Exec(ctx, `
			DELETE FROM user_roles
			WHERE user_id = $1
			  AND role_id IN (SELECT id FROM roles WHERE LOWER(name) = ANY($2));
		`, userID, lowered(toRemove))
		if err != nil {
			return fmt.Errorf("failed to remove roles from user %s: %w", userID, err)
		}
	}

	if len(toAdd) > 0 {
		_, err := tx.Exec(ctx, `
			INSERT INTO user_roles (user_id, role_id)
			SELECT $1, id FROM roles WHERE LOWER(name) = ANY($2)
			ON CONFLICT DO NOTHING;
		`, userID, lowered(toAdd))
		if err != nil {
			return fmt.Errorf("failed to add roles to user %s: %w", userID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// roleDiff computes the case-insensitive symmetric difference between the
// user's current roles and the selected set. Names keep the casing they were
// supplied with; an identical selection yields two empty slices.
func roleDiff(current, selected []string) (toAdd, toRemove []string) {
	currentSet := make(map[string]string, len(current))
	for _, name := range current {
		currentSet[strings.ToLower(name)] = name
	}
	selectedSet := make(map[string]string, len(selected))
	for _, name := range selected {
		selectedSet[strings.ToLower(name)] = name
	}

	for key, name := range selectedSet {
		if _, has := currentSet[key]; !has {
			toAdd = append(toAdd, name)
		}
	}
	for key, name := range currentSet {
		if _, has := selectedSet[key]; !has {
			toRemove = append(toRemove, name)
		}
	}
	return toAdd, toRemove
}

func lowered(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = strings.ToLower(name)
	}
	return out
}

func (r *PgxUserRepository) CreateUser(ctx context.Context, req dto.CreateUserRequest, passwordHash string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var usernameTaken, emailTaken bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(username) = LOWER($1)),
		       EXISTS (SELECT 1 FROM users WHERE LOWER(email) = LOWER($2));
	`, req.Username, req.Email).Scan(&usernameTaken, &emailTaken)
	if err != nil {
		return fmt.Errorf("failed to check user uniqueness: %w", err)
	}
	if usernameTaken {
		return apperrors.ErrDuplicateUserName
	}
	if emailTaken {
		return apperrors.ErrDuplicateEmail
	}

	if req.PhoneNumber != nil {
		var phoneTaken bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE phone_number = $1);`, *req.PhoneNumber).Scan(&phoneTaken); err != nil {
			return fmt.Errorf("failed to check phone uniqueness: %w", err)
		}
		if phoneTaken {
			return apperrors.ErrDuplicatePhoneNumber
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO users (username, email, password_hash, phone_number, email_confirmed)
		VALUES ($1, $2, $3, $4, FALSE);
	`, req.Username, req.Email, passwordHash, req.PhoneNumber)
	if err != nil {
		return fmt.Errorf("%w: insert for %s: %v", apperrors.ErrUserCreationFailed, req.Username, err)
	}

	return r.Commit(ctx, tx)
}
