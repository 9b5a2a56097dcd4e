// Package seed loads the reference muscle groups and the base exercise
// catalog. Running it twice is harmless.
package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/WorldsAreYours/fit-and-easy/internal/database"
	"github.com/WorldsAreYours/fit-and-easy/internal/model"
	"github.com/WorldsAreYours/fit-and-easy/internal/repository"
)

type Result struct {
	MuscleGroupsInserted int64
	ExercisesInserted    int
	ExercisesSkipped     int
}

// Run inserts missing muscle groups and exercises in one transaction.
// Exercises are matched by name; existing ones are left untouched.
func Run(ctx context.Context, db *sql.DB) (Result, error) {
	var res Result
	err := database.WithTx(ctx, db, nil, func(ctx context.Context, tx database.DBTX) error {
		groups := repository.NewMuscleGroupRepo(tx)
		exercises := repository.NewExerciseRepo(tx)

		n, err := groups.InsertIgnore(ctx, MuscleGroups())
		if err != nil {
			return err
		}
		res.MuscleGroupsInserted = n

		for _, s := range exerciseData {
			exists, err := exercises.ExistsByName(ctx, s.name)
			if err != nil {
				return err
			}
			if exists {
				res.ExercisesSkipped++
				continue
			}
			linked, err := groups.GetByNames(ctx, s.muscleGroups)
			if err != nil {
				return err
			}
			if len(linked) != len(s.muscleGroups) {
				return fmt.Errorf("seed exercise %q: unresolved muscle groups %v", s.name, s.muscleGroups)
			}
			e := toExercise(s)
			e.MuscleGroups = linked
			if err := exercises.Create(ctx, &e); err != nil {
				return fmt.Errorf("seed exercise %q: %w", s.name, err)
			}
			res.ExercisesInserted++
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	logrus.WithFields(logrus.Fields{
		"muscle_groups": res.MuscleGroupsInserted,
		"exercises":     res.ExercisesInserted,
		"skipped":       res.ExercisesSkipped,
	}).Info("catalog seeded")
	return res, nil
}

func toExercise(s exerciseSeed) model.Exercise {
	tips := s.tips
	e := model.Exercise{
		Name:         s.name,
		Equipment:    s.equipment,
		Difficulty:   s.difficulty,
		Instructions: s.instructions,
		Tips:         &tips,
	}
	if s.secondary != "" {
		sec := s.secondary
		e.SecondaryEquipment = &sec
	}
	return e
}
