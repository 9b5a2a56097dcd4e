package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WorldsAreYours/fit-and-easy/internal/model"
)

var userRowColumns = []string{"id", "name", "email", "fitness_level", "goals", "created_at"}

func TestUserRepo_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO users \(name, email, fitness_level, goals\)`).
		WithArgs("John Doe", "john@example.com", "beginner", nil).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \?`).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(7, "John Doe", "john@example.com", "beginner", nil, now))

	u := &model.User{Name: "John Doe", Email: "  John@Example.com "}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.Equal(t, uint64(7), u.ID)
	assert.Equal(t, "john@example.com", u.Email)
	assert.Equal(t, model.LevelBeginner, u.FitnessLevel)
	assert.Nil(t, u.Goals)
	assert.Equal(t, now, u.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'john@example.com'"})

	err := repo.Create(context.Background(), &model.User{Name: "John", Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_OtherErrorIsWrapped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectExec(`INSERT INTO users`).WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &model.User{Name: "John", Email: "john@example.com"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "db down")
}

func TestUserRepo_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \?`).
		WithArgs(uint64(999)).
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_Exists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery(`SELECT 1 FROM users WHERE id = \?`).WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery(`SELECT 1 FROM users WHERE id = \?`).WithArgs(uint64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	ok, err := repo.Exists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, ok)
}
