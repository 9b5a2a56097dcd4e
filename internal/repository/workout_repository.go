package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/WorldsAreYours/fit-and-easy/internal/database"
	"github.com/WorldsAreYours/fit-and-easy/internal/model"
)

const (
	workoutColumns         = "id, user_id, name, date, notes, created_at"
	workoutExerciseColumns = "id, workout_id, exercise_id, sets, reps, weight, rest_time, position"
)

type WorkoutRepo struct{ db database.DBTX }

func NewWorkoutRepo(db database.DBTX) *WorkoutRepo { return &WorkoutRepo{db: db} }

// Create inserts w and refreshes it with the stored row.
func (r *WorkoutRepo) Create(ctx context.Context, w *model.Workout) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO workouts (user_id, name, date, notes) VALUES (?,?,?,?)",
		w.UserID, w.Name, w.Date.UTC(), nullString(w.Notes))
	if err != nil {
		return fmt.Errorf("insert workout: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert workout: %w", err)
	}
	stored, err := r.GetByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*w = *stored
	return nil
}

// GetByID fetches a workout header or returns ErrWorkoutNotFound.
func (r *WorkoutRepo) GetByID(ctx context.Context, id uint64) (*model.Workout, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+workoutColumns+" FROM workouts WHERE id = ? LIMIT 1", id)
	w, err := scanWorkout(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("get workout %d: %w", id, err)
	}
	return w, nil
}

// ListByUser returns a user's workouts, newest date first. limit <= 0 means
// no limit.
func (r *WorkoutRepo) ListByUser(ctx context.Context, userID uint64, limit int) ([]model.Workout, error) {
	query := "SELECT " + workoutColumns + " FROM workouts WHERE user_id = ? ORDER BY date DESC, id DESC"
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	out := []model.Workout{}
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		out = append(out, *w)
	}
	return out, rows.Err()
}

// NextPosition returns the order value that appends to the end of a
// workout's exercise list.
func (r *WorkoutRepo) NextPosition(ctx context.Context, workoutID uint64) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position), 0) + 1 FROM workout_exercises WHERE workout_id = ?", workoutID).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next position: %w", err)
	}
	return next, nil
}

// AddExercise inserts a workout exercise entry. A zero Order is replaced by
// the next free position.
func (r *WorkoutRepo) AddExercise(ctx context.Context, we *model.WorkoutExercise) error {
	if we.Order <= 0 {
		next, err := r.NextPosition(ctx, we.WorkoutID)
		if err != nil {
			return err
		}
		we.Order = next
	}
	var weight sql.NullFloat64
	if we.Weight != nil {
		weight = sql.NullFloat64{Float64: *we.Weight, Valid: true}
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO workout_exercises (workout_id, exercise_id, sets, reps, weight, rest_time, position)
		VALUES (?,?,?,?,?,?,?)`,
		we.WorkoutID, we.ExerciseID, we.Sets, we.Reps, weight, we.RestTime, we.Order)
	if err != nil {
		return fmt.Errorf("insert workout exercise: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert workout exercise: %w", err)
	}
	we.ID = uint64(id)
	return nil
}

// ListExercises returns the entries of each workout ordered by (order, id).
// The Exercise field is left nil; callers join the catalog separately.
func (r *WorkoutRepo) ListExercises(ctx context.Context, workoutIDs []uint64) (map[uint64][]model.WorkoutExercise, error) {
	out := make(map[uint64][]model.WorkoutExercise, len(workoutIDs))
	if len(workoutIDs) == 0 {
		return out, nil
	}
	args := make([]any, len(workoutIDs))
	for i, id := range workoutIDs {
		args[i] = id
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+workoutExerciseColumns+" FROM workout_exercises WHERE workout_id IN ("+
			placeholders(len(workoutIDs))+") ORDER BY workout_id, position, id", args...)
	if err != nil {
		return nil, fmt.Errorf("list workout exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			we     model.WorkoutExercise
			weight sql.NullFloat64
		)
		if err := rows.Scan(&we.ID, &we.WorkoutID, &we.ExerciseID, &we.Sets, &we.Reps, &weight, &we.RestTime, &we.Order); err != nil {
			return nil, fmt.Errorf("scan workout exercise: %w", err)
		}
		if weight.Valid {
			v := weight.Float64
			we.Weight = &v
		}
		out[we.WorkoutID] = append(out[we.WorkoutID], we)
	}
	return out, rows.Err()
}

func scanWorkout(s scanner) (*model.Workout, error) {
	var (
		w     model.Workout
		notes sql.NullString
	)
	if err := s.Scan(&w.ID, &w.UserID, &w.Name, &w.Date, &notes, &w.CreatedAt); err != nil {
		return nil, err
	}
	w.Notes = stringPtr(notes)
	return &w, nil
}
