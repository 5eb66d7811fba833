package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"contact_manager/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

var userCols = []string{"id", "username", "password", "name", "role", "token", "created_at"}

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	user := &model.User{Username: "test", Password: "hash", Name: "test", Role: model.RoleUser, CreatedAt: time.Now()}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("test", "hash", "test", model.RoleUser, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	err = NewUserRepository(mock).Create(context.Background(), user)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("test", "hash", "test", model.RoleUser, pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	err = NewUserRepository(mock).Create(context.Background(), &model.User{Username: "test", Password: "hash", Name: "test", Role: model.RoleUser})
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CountByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users WHERE username = $1")).
		WithArgs("test").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

	total, err := NewUserRepository(mock).CountByUsername(context.Background(), "test")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("test").
		WillReturnRows(pgxmock.NewRows(userCols).AddRow(int64(1), "test", "hash", "test", model.RoleUser, strPtr("tok"), now))

	user, err := NewUserRepository(mock).FindByUsername(context.Background(), "test")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "test", user.Username)
	assert.Equal(t, "hash", user.Password)
	assert.Equal(t, "tok", *user.Token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	user, err := NewUserRepository(mock).FindByUsername(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_FindByToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE token = $1")).
		WithArgs("test").
		WillReturnRows(pgxmock.NewRows(userCols).AddRow(int64(1), "test", "hash", "test", model.RoleAdmin, strPtr("test"), time.Now()))

	user, err := NewUserRepository(mock).FindByToken(context.Background(), "test")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, model.RoleAdmin, user.Role)
}

func TestUserRepository_FindByToken_DBError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE token = $1")).
		WithArgs("test").
		WillReturnError(errors.New("connection reset"))

	user, err := NewUserRepository(mock).FindByToken(context.Background(), "test")
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET name = $1, password = $2 WHERE username = $3")).
		WithArgs("new", "hash", "test").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = NewUserRepository(mock).Update(context.Background(), &model.User{Username: "test", Name: "new", Password: "hash"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_SetToken_Clear(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET token = $1 WHERE username = $2")).
		WithArgs((*string)(nil), "test").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = NewUserRepository(mock).SetToken(context.Background(), "test", nil)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_SetToken_Missing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET token = $1 WHERE username = $2")).
		WithArgs(strPtr("tok"), "ghost").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = NewUserRepository(mock).SetToken(context.Background(), "ghost", strPtr("tok"))
	assert.Error(t, err)
}
