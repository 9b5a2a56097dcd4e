package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/WorldsAreYours/fit-and-easy/internal/database"
	"github.com/WorldsAreYours/fit-and-easy/internal/model"
	"github.com/WorldsAreYours/fit-and-easy/internal/repository"
)

type CreateUserInput struct {
	Name         string
	Email        string
	FitnessLevel model.FitnessLevel
	Goals        *string
}

type UserService struct {
	db *sql.DB
}

func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// Create registers a user. The fitness level defaults to beginner and a
// duplicate email fails with repository.ErrEmailExists.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	u := &model.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        in.Email,
		FitnessLevel: in.FitnessLevel,
		Goals:        in.Goals,
	}
	if u.FitnessLevel == "" {
		u.FitnessLevel = model.LevelBeginner
	}
	err := database.WithTx(ctx, s.db, nil, func(ctx context.Context, tx database.DBTX) error {
		return repository.NewUserRepo(tx).Create(ctx, u)
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id uint64) (*model.User, error) {
	var u *model.User
	err := database.WithTx(ctx, s.db, nil, func(ctx context.Context, tx database.DBTX) error {
		var err error
		u, err = repository.NewUserRepo(tx).GetByID(ctx, id)
		return err
	})
	return u, err
}
