package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/WorldsAreYours/fit-and-easy/internal/database"
	"github.com/WorldsAreYours/fit-and-easy/internal/model"
)

const muscleGroupColumns = "id, name, category, description"

type MuscleGroupRepo struct{ db database.DBTX }

func NewMuscleGroupRepo(db database.DBTX) *MuscleGroupRepo { return &MuscleGroupRepo{db: db} }

// List returns muscle groups ordered by category then name. An empty category
// returns every group.
func (r *MuscleGroupRepo) List(ctx context.Context, category string) ([]model.MuscleGroup, error) {
	query := "SELECT " + muscleGroupColumns + " FROM muscle_groups"
	var args []any
	if category != "" {
		query += " WHERE category = ?"
		args = append(args, category)
	}
	query += " ORDER BY category, name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list muscle groups: %w", err)
	}
	defer rows.Close()

	out := []model.MuscleGroup{}
	for rows.Next() {
		mg, err := scanMuscleGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan muscle group: %w", err)
		}
		out = append(out, mg)
	}
	return out, rows.Err()
}

// Categories returns the distinct categories in use.
func (r *MuscleGroupRepo) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT DISTINCT category FROM muscle_groups ORDER BY category")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetByNames resolves muscle groups by exact name. The result follows the
// order of names; names without a match are absent from the result.
func (r *MuscleGroupRepo) GetByNames(ctx context.Context, names []string) ([]model.MuscleGroup, error) {
	if len(names) == 0 {
		return nil, nil
	}
	args := make([]any, len(names))
	for i, n := range names {
		args[i] = n
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+muscleGroupColumns+" FROM muscle_groups WHERE name IN ("+placeholders(len(names))+")",
		args...)
	if err != nil {
		return nil, fmt.Errorf("get muscle groups by name: %w", err)
	}
	defer rows.Close()

	byName := make(map[string]model.MuscleGroup, len(names))
	for rows.Next() {
		mg, err := scanMuscleGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan muscle group: %w", err)
		}
		byName[mg.Name] = mg
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]model.MuscleGroup, 0, len(byName))
	for _, n := range names {
		if mg, ok := byName[n]; ok {
			out = append(out, mg)
		}
	}
	return out, nil
}

// InsertIgnore stores groups in one statement, skipping names that already
// exist. It returns the number of rows actually inserted.
func (r *MuscleGroupRepo) InsertIgnore(ctx context.Context, groups []model.MuscleGroup) (int64, error) {
	if len(groups) == 0 {
		return 0, nil
	}
	query := "INSERT IGNORE INTO muscle_groups (name, category, description) VALUES "
	args := make([]any, 0, len(groups)*3)
	for i, mg := range groups {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?)"
		args = append(args, mg.Name, string(mg.Category), nullString(mg.Description))
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert muscle groups: %w", err)
	}
	return res.RowsAffected()
}

// ListByExerciseIDs loads the linked muscle groups of each exercise, keeping
// the link order.
func (r *MuscleGroupRepo) ListByExerciseIDs(ctx context.Context, ids []uint64) (map[uint64][]model.MuscleGroup, error) {
	out := make(map[uint64][]model.MuscleGroup, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := r.db.QueryContext(ctx, `SELECT emg.exercise_id, mg.id, mg.name, mg.category, mg.description
		FROM exercise_muscle_groups emg
		JOIN muscle_groups mg ON mg.id = emg.muscle_group_id
		WHERE emg.exercise_id IN (`+placeholders(len(ids))+`)
		ORDER BY emg.exercise_id, emg.position, mg.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercise muscle groups: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			exerciseID uint64
			mg         model.MuscleGroup
			category   string
			desc       sql.NullString
		)
		if err := rows.Scan(&exerciseID, &mg.ID, &mg.Name, &category, &desc); err != nil {
			return nil, fmt.Errorf("scan exercise muscle group: %w", err)
		}
		mg.Category = model.MuscleCategory(category)
		mg.Description = stringPtr(desc)
		out[exerciseID] = append(out[exerciseID], mg)
	}
	return out, rows.Err()
}

// Link attaches groups to an exercise, preserving their order.
func (r *MuscleGroupRepo) Link(ctx context.Context, exerciseID uint64, groups []model.MuscleGroup) error {
	if len(groups) == 0 {
		return nil
	}
	query := "INSERT INTO exercise_muscle_groups (exercise_id, muscle_group_id, position) VALUES "
	args := make([]any, 0, len(groups)*3)
	for i, mg := range groups {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?)"
		args = append(args, exerciseID, mg.ID, i+1)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("link muscle groups: %w", err)
	}
	return nil
}

func scanMuscleGroup(s scanner) (model.MuscleGroup, error) {
	var (
		mg       model.MuscleGroup
		category string
		desc     sql.NullString
	)
	if err := s.Scan(&mg.ID, &mg.Name, &category, &desc); err != nil {
		return mg, err
	}
	mg.Category = model.MuscleCategory(category)
	mg.Description = stringPtr(desc)
	return mg, nil
}
