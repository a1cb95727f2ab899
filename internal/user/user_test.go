package user

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("s3cret", "s3cret"), "plaintext stored value must not match")
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 73), bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = HashPassword(strings.Repeat("a", 72), bcrypt.MinCost)
	assert.NoError(t, err)
}

func TestPGRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("ana@example.com", "hash", "ana").
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "created_at"}).AddRow(int64(7), now))

	u := &User{Email: "ana@example.com", PasswordHash: "hash", UserName: "ana"}
	require.NoError(t, NewPGRepo(mock).Create(context.Background(), u))
	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, now, u.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepo_Create_Duplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("ana@example.com", "hash", "ana").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})

	err = NewPGRepo(mock).Create(context.Background(), &User{Email: "ana@example.com", PasswordHash: "hash", UserName: "ana"})
	assert.ErrorIs(t, err, ErrAlreadyExist)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepo_GetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT user_id, email, password_hash, user_name, created_at").
		WithArgs("ana@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "email", "password_hash", "user_name", "created_at"}).
			AddRow(int64(7), "ana@example.com", "hash", "ana", now))
	mock.ExpectQuery("SELECT user_id, email, password_hash, user_name, created_at").
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("SELECT user_id, email, password_hash, user_name, created_at").
		WithArgs("down@example.com").
		WillReturnError(errors.New("connection refused"))

	repo := NewPGRepo(mock)
	u, err := repo.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ana", u.UserName)
	assert.Equal(t, "hash", u.PasswordHash)

	_, err = repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByEmail(context.Background(), "down@example.com")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
