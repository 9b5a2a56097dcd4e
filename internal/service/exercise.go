package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/WorldsAreYours/fit-and-easy/internal/database"
	"github.com/WorldsAreYours/fit-and-easy/internal/model"
	"github.com/WorldsAreYours/fit-and-easy/internal/repository"
	"github.com/WorldsAreYours/fit-and-easy/internal/validation"
)

type CreateExerciseInput struct {
	Name               string
	MuscleGroups       string // comma-delimited muscle group names
	Equipment          model.Equipment
	SecondaryEquipment *model.Equipment
	Difficulty         model.Difficulty
	Instructions       string
	Tips               *string
}

type ExerciseService struct {
	db *sql.DB
}

func NewExerciseService(db *sql.DB) *ExerciseService {
	return &ExerciseService{db: db}
}

// ParseMuscleGroupNames splits a comma-delimited list into trimmed,
// lower-cased, de-duplicated names in their original order.
func ParseMuscleGroupNames(raw string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// Create adds an exercise to the catalog. Every muscle group name must
// reference a known muscle group.
func (s *ExerciseService) Create(ctx context.Context, in CreateExerciseInput) (*model.Exercise, error) {
	names := ParseMuscleGroupNames(in.MuscleGroups)
	if len(names) == 0 {
		return nil, validation.Body("muscle_groups", "at least one muscle group is required", "value_error.missing")
	}

	e := &model.Exercise{
		Name:               strings.TrimSpace(in.Name),
		Equipment:          in.Equipment,
		SecondaryEquipment: in.SecondaryEquipment,
		Difficulty:         in.Difficulty,
		Instructions:       strings.TrimSpace(in.Instructions),
		Tips:               in.Tips,
	}
	err := database.WithTx(ctx, s.db, nil, func(ctx context.Context, tx database.DBTX) error {
		groups, err := repository.NewMuscleGroupRepo(tx).GetByNames(ctx, names)
		if err != nil {
			return err
		}
		if missing := missingNames(names, groups); len(missing) > 0 {
			return validation.Body("muscle_groups",
				"unknown muscle groups: "+strings.Join(missing, ", "), "value_error.muscle_group")
		}
		e.MuscleGroups = groups
		return repository.NewExerciseRepo(tx).Create(ctx, e)
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ExerciseService) Get(ctx context.Context, id uint64) (*model.Exercise, error) {
	var e *model.Exercise
	err := database.WithTx(ctx, s.db, nil, func(ctx context.Context, tx database.DBTX) error {
		var err error
		e, err = repository.NewExerciseRepo(tx).GetByID(ctx, id)
		return err
	})
	return e, err
}

// List returns the exercises matching every filter in f.
func (s *ExerciseService) List(ctx context.Context, f repository.ExerciseFilter) ([]model.Exercise, error) {
	var out []model.Exercise
	err := database.WithTx(ctx, s.db, nil, func(ctx context.Context, tx database.DBTX) error {
		var err error
		out, err = repository.NewExerciseRepo(tx).List(ctx, f)
		return err
	})
	return out, err
}

func (s *ExerciseService) MuscleGroups(ctx context.Context, category string) ([]model.MuscleGroup, error) {
	var out []model.MuscleGroup
	err := database.WithTx(ctx, s.db, nil, func(ctx context.Context, tx database.DBTX) error {
		var err error
		out, err = repository.NewMuscleGroupRepo(tx).List(ctx, category)
		return err
	})
	return out, err
}

func (s *ExerciseService) Categories(ctx context.Context) ([]string, error) {
	var out []string
	err := database.WithTx(ctx, s.db, nil, func(ctx context.Context, tx database.DBTX) error {
		var err error
		out, err = repository.NewMuscleGroupRepo(tx).Categories(ctx)
		return err
	})
	return out, err
}

// Equipment returns the equipment enumeration.
func (s *ExerciseService) Equipment() []model.Equipment {
	return append([]model.Equipment(nil), model.EquipmentTypes...)
}

func missingNames(names []string, found []model.MuscleGroup) []string {
	have := make(map[string]bool, len(found))
	for _, mg := range found {
		have[mg.Name] = true
	}
	var missing []string
	for _, n := range names {
		if !have[n] {
			missing = append(missing, n)
		}
	}
	return missing
}
