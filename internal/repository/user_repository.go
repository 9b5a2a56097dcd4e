package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/WorldsAreYours/fit-and-easy/internal/database"
	"github.com/WorldsAreYours/fit-and-easy/internal/model"
)

const userColumns = "id, name, email, fitness_level, goals, created_at"

type UserRepo struct{ db database.DBTX }

func NewUserRepo(db database.DBTX) *UserRepo { return &UserRepo{db: db} }

// NormalizeEmail trims and lower-cases an address before it is stored or
// compared.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create inserts u and refreshes it with the stored row (id, defaults,
// created_at). A duplicate email yields ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	u.Email = NormalizeEmail(u.Email)
	if u.FitnessLevel == "" {
		u.FitnessLevel = model.LevelBeginner
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (name, email, fitness_level, goals) VALUES (?,?,?,?)",
		u.Name, u.Email, string(u.FitnessLevel), nullString(u.Goals))
	if err != nil {
		if database.IsDuplicateKey(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	stored, err := r.GetByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*u = *stored
	return nil
}

// GetByID fetches a user or returns ErrUserNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ? LIMIT 1", id)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

// Exists reports whether a user with id is stored.
func (r *UserRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, "SELECT 1 FROM users WHERE id = ? LIMIT 1", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check user %d: %w", id, err)
	}
	return true, nil
}

func scanUser(s scanner) (*model.User, error) {
	var (
		u     model.User
		level string
		goals sql.NullString
	)
	if err := s.Scan(&u.ID, &u.Name, &u.Email, &level, &goals, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.FitnessLevel = model.FitnessLevel(level)
	u.Goals = stringPtr(goals)
	return &u, nil
}
