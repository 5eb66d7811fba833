package repository

import (
	"context"
	"errors"
	"fmt"

	"contact_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	CountByUsername(ctx context.Context, username string) (int64, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByToken(ctx context.Context, token string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	SetToken(ctx context.Context, username string, token *string) error
}

type userRepository struct {
	db DBTX
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, password, name, role, token, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Password, &user.Name, &user.Role, &user.Token, &user.CreatedAt)
	return user, err
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (username, password, name, role, created_at)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, sql, user.Username, user.Password, user.Name, user.Role, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to create user %q: %w", user.Username, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// CountByUsername returns how many users carry username (0 or 1)
func (r *userRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	var total int64
	sql := `SELECT COUNT(*) FROM users WHERE username = $1`
	if err := r.db.QueryRow(ctx, sql, username).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count users by username: %w", err)
	}
	return total, nil
}

// FindByUsername retrieves a user by username, nil when absent
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	user, err := scanUser(r.db.QueryRow(ctx, sql, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return user, nil
}

// FindByToken retrieves the user owning a session token, nil when absent
func (r *userRepository) FindByToken(ctx context.Context, token string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE token = $1 LIMIT 1`
	user, err := scanUser(r.db.QueryRow(ctx, sql, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by token: %w", err)
	}
	return user, nil
}

// Update writes the mutable profile fields (name, password)
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	sql := `UPDATE users SET name = $1, password = $2 WHERE username = $3`
	cmdTag, err := r.db.Exec(ctx, sql, user.Name, user.Password, user.Username)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %q not found for update", user.Username)
	}
	return nil
}

// SetToken stores token for username; a nil token logs the user out
func (r *userRepository) SetToken(ctx context.Context, username string, token *string) error {
	sql := `UPDATE users SET token = $1 WHERE username = $2`
	cmdTag, err := r.db.Exec(ctx, sql, token, username)
	if err != nil {
		return fmt.Errorf("failed to set user token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %q not found for token update", username)
	}
	return nil
}
