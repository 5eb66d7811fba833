package repository

import (
	"context"
	"errors"
	"fmt"

	"contact_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// SampleUserRepository backs the basics demo app
type SampleUserRepository interface {
	Save(ctx context.Context, firstName string, lastName *string) (*model.SampleUser, error)
	FindByToken(ctx context.Context, token string) (*model.SampleUser, error)
}

type sampleUserRepository struct {
	db DBTX
}

// NewSampleUserRepository creates a new SampleUserRepository
func NewSampleUserRepository(db DBTX) SampleUserRepository {
	return &sampleUserRepository{db: db}
}

// Save inserts a sample user and returns the stored row
func (r *sampleUserRepository) Save(ctx context.Context, firstName string, lastName *string) (*model.SampleUser, error) {
	u := &model.SampleUser{FirstName: firstName, LastName: lastName}
	sql := `INSERT INTO sample_users (first_name, last_name) VALUES ($1, $2) RETURNING id`
	if err := r.db.QueryRow(ctx, sql, firstName, lastName).Scan(&u.ID); err != nil {
		return nil, fmt.Errorf("failed to save sample user: %w", err)
	}
	return u, nil
}

// FindByToken retrieves the sample user owning token, nil when absent
func (r *sampleUserRepository) FindByToken(ctx context.Context, token string) (*model.SampleUser, error) {
	u := &model.SampleUser{}
	sql := `SELECT id, first_name, last_name, role, token FROM sample_users WHERE token = $1 LIMIT 1`
	err := r.db.QueryRow(ctx, sql, token).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Role, &u.Token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find sample user by token: %w", err)
	}
	return u, nil
}
