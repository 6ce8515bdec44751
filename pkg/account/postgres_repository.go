package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/reviewhub/accounts/pkg/utils"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// PostgresAccountRepository implements AccountRepository using PostgreSQL
type PostgresAccountRepository struct {
	db DBTX
}

// NewPostgresAccountRepository creates a new PostgreSQL account repository
func NewPostgresAccountRepository(db DBTX) *PostgresAccountRepository {
	return &PostgresAccountRepository{
		db: db,
	}
}

const userColumns = `id, email, full_name, bio, profile_photo, password, federated_id, role, review_alerts_enabled, created_at, updated_at`

func scanUser(row pgx.Row) (User, error) {
	var user User
	var fullName, bio, profilePhoto, passwordHash, federatedID, role sql.NullString

	err := row.Scan(
		&user.ID,
		&user.Email,
		&fullName,
		&bio,
		&profilePhoto,
		&passwordHash,
		&federatedID,
		&role,
		&user.ReviewAlertsEnabled,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return User{}, err
	}

	user.FullName = fullName.String
	user.Bio = bio.String
	user.ProfilePhoto = profilePhoto.String
	user.PasswordHash = passwordHash.String
	user.FederatedID = federatedID.String
	user.Role = role.String
	return user, nil
}

// CreateUser creates a new user
func (r *PostgresAccountRepository) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	query := `
		INSERT INTO users (email, full_name, bio, profile_photo, password, federated_id, role, review_alerts_enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns

	row := r.db.QueryRow(ctx, query,
		params.Email,
		utils.ToNullString(params.FullName),
		utils.ToNullString(params.Bio),
		utils.ToNullString(params.ProfilePhoto),
		utils.ToNullString(params.PasswordHash),
		utils.ToNullString(params.FederatedID),
		utils.ToNullString(params.Role),
		params.ReviewAlertsEnabled,
	)

	user, err := scanUser(row)
	if err != nil {
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by ID
func (r *PostgresAccountRepository) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateUser applies the non-nil fields of params to the user row. Untouched
// fields are not part of the statement at all.
func (r *PostgresAccountRepository) UpdateUser(ctx context.Context, params UpdateUserParams) (User, error) {
	setClauses := []string{"updated_at = now()"}
	args := []interface{}{params.ID}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.FullName != nil {
		addSet("full_name", utils.ToNullString(*params.FullName))
	}
	if params.Bio != nil {
		addSet("bio", utils.ToNullString(*params.Bio))
	}
	if params.ProfilePhoto != nil {
		addSet("profile_photo", utils.ToNullString(*params.ProfilePhoto))
	}
	if params.PasswordHash != nil {
		addSet("password", utils.ToNullString(*params.PasswordHash))
	}
	if params.ReviewAlertsEnabled != nil {
		addSet("review_alerts_enabled", *params.ReviewAlertsEnabled)
	}

	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(setClauses, ", "),
		userColumns,
	)

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// FindUsers returns all users
func (r *PostgresAccountRepository) FindUsers(ctx context.Context) ([]User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}
