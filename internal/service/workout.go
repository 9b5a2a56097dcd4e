package service

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/WorldsAreYours/fit-and-easy/internal/database"
	"github.com/WorldsAreYours/fit-and-easy/internal/model"
	"github.com/WorldsAreYours/fit-and-easy/internal/queue"
	"github.com/WorldsAreYours/fit-and-easy/internal/repository"
)

type CreateWorkoutInput struct {
	Name  string
	Date  *time.Time // defaults to now
	Notes *string
}

// AddExerciseInput carries optional values; nil means "use the default".
type AddExerciseInput struct {
	ExerciseID uint64
	Sets       *int
	Reps       *int
	Weight     *float64
	RestTime   *int
	Order      *int
}

type WorkoutService struct {
	db     *sql.DB
	events EventPublisher
	now    func() time.Time
}

func NewWorkoutService(db *sql.DB, events EventPublisher) *WorkoutService {
	if events == nil {
		events = queue.NopPublisher{}
	}
	return &WorkoutService{db: db, events: events, now: time.Now}
}

// Create stores a workout for an existing user.
func (s *WorkoutService) Create(ctx context.Context, userID uint64, in CreateWorkoutInput) (*model.Workout, error) {
	w := &model.Workout{
		UserID: userID,
		Name:   strings.TrimSpace(in.Name),
		Notes:  in.Notes,
	}
	if in.Date != nil {
		w.Date = in.Date.UTC()
	} else {
		w.Date = s.now().UTC().Truncate(time.Second)
	}

	err := database.WithTx(ctx, s.db, nil, func(ctx context.Context, tx database.DBTX) error {
		ok, err := repository.NewUserRepo(tx).Exists(ctx, userID)
		if err != nil {
			return err
		}
		if !ok {
			return repository.ErrUserNotFound
		}
		return repository.NewWorkoutRepo(tx).Create(ctx, w)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, queue.NewActivityEvent(queue.EventWorkoutCreated, w.UserID, w.ID, w.Name))
	return w, nil
}

// AddExercise appends a catalog exercise to a workout. The workout and the
// exercise are checked inside the same transaction as the insert.
func (s *WorkoutService) AddExercise(ctx context.Context, workoutID uint64, in AddExerciseInput) (*model.WorkoutExercise, error) {
	we := &model.WorkoutExercise{
		WorkoutID:  workoutID,
		ExerciseID: in.ExerciseID,
		Sets:       intOr(in.Sets, model.DefaultSets),
		Reps:       intOr(in.Reps, model.DefaultReps),
		Weight:     in.Weight,
		RestTime:   intOr(in.RestTime, model.DefaultRestTime),
		Order:      intOr(in.Order, 0),
	}

	var workout *model.Workout
	err := database.WithTx(ctx, s.db, nil, func(ctx context.Context, tx database.DBTX) error {
		var err error
		workouts := repository.NewWorkoutRepo(tx)
		if workout, err = workouts.GetByID(ctx, workoutID); err != nil {
			return err
		}
		exercise, err := repository.NewExerciseRepo(tx).GetByID(ctx, in.ExerciseID)
		if err != nil {
			return err
		}
		if err := workouts.AddExercise(ctx, we); err != nil {
			return err
		}
		we.Exercise = exercise
		return nil
	})
	if err != nil {
		return nil, err
	}

	ev := queue.NewActivityEvent(queue.EventWorkoutExerciseAdded, workout.UserID, workout.ID, workout.Name)
	ev.ExerciseID = we.ExerciseID
	ev.ExerciseName = we.Exercise.Name
	ev.Sets, ev.Reps, ev.Weight = we.Sets, we.Reps, we.Weight
	s.publish(ctx, ev)
	return we, nil
}

// Get returns a workout with every entry expanded with its exercise.
func (s *WorkoutService) Get(ctx context.Context, id uint64) (*model.WorkoutDetail, error) {
	var out *model.WorkoutDetail
	err := database.WithTx(ctx, s.db, nil, func(ctx context.Context, tx database.DBTX) error {
		w, err := repository.NewWorkoutRepo(tx).GetByID(ctx, id)
		if err != nil {
			return err
		}
		details, err := expandWorkouts(ctx, tx, []model.Workout{*w})
		if err != nil {
			return err
		}
		out = &details[0]
		return nil
	})
	return out, err
}

// ListByUser returns the workout headers of a user, newest first.
func (s *WorkoutService) ListByUser(ctx context.Context, userID uint64, limit int) ([]model.Workout, error) {
	var out []model.Workout
	err := database.WithTx(ctx, s.db, nil, func(ctx context.Context, tx database.DBTX) error {
		var err error
		out, err = listUserWorkouts(ctx, tx, userID, limit)
		return err
	})
	return out, err
}

// ListByUserExpanded is ListByUser with each workout's exercises joined in.
func (s *WorkoutService) ListByUserExpanded(ctx context.Context, userID uint64, limit int) ([]model.WorkoutDetail, error) {
	var out []model.WorkoutDetail
	err := database.WithTx(ctx, s.db, nil, func(ctx context.Context, tx database.DBTX) error {
		workouts, err := listUserWorkouts(ctx, tx, userID, limit)
		if err != nil {
			return err
		}
		out, err = expandWorkouts(ctx, tx, workouts)
		return err
	})
	return out, err
}

func (s *WorkoutService) publish(ctx context.Context, ev queue.ActivityEvent) {
	if err := s.events.Publish(ctx, ev); err != nil {
		logrus.WithError(err).WithField("event_id", ev.EventID).Warn("activity event dropped")
	}
}

func listUserWorkouts(ctx context.Context, tx database.DBTX, userID uint64, limit int) ([]model.Workout, error) {
	ok, err := repository.NewUserRepo(tx).Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return repository.NewWorkoutRepo(tx).ListByUser(ctx, userID, limit)
}

// expandWorkouts joins entries and catalog exercises onto workouts with two
// batched queries.
func expandWorkouts(ctx context.Context, tx database.DBTX, workouts []model.Workout) ([]model.WorkoutDetail, error) {
	out := make([]model.WorkoutDetail, len(workouts))
	if len(workouts) == 0 {
		return out, nil
	}
	ids := make([]uint64, len(workouts))
	for i, w := range workouts {
		ids[i] = w.ID
	}
	entries, err := repository.NewWorkoutRepo(tx).ListExercises(ctx, ids)
	if err != nil {
		return nil, err
	}

	var exerciseIDs []uint64
	seen := map[uint64]bool{}
	for _, id := range ids {
		for _, we := range entries[id] {
			if !seen[we.ExerciseID] {
				seen[we.ExerciseID] = true
				exerciseIDs = append(exerciseIDs, we.ExerciseID)
			}
		}
	}
	catalog, err := repository.NewExerciseRepo(tx).ListByIDs(ctx, exerciseIDs)
	if err != nil {
		return nil, err
	}

	for i, w := range workouts {
		list := entries[w.ID]
		items := make([]model.WorkoutExercise, len(list))
		for j, we := range list {
			if ex, ok := catalog[we.ExerciseID]; ok {
				ex := ex
				we.Exercise = &ex
			}
			items[j] = we
		}
		out[i] = model.WorkoutDetail{Workout: w, Exercises: items}
	}
	return out, nil
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
