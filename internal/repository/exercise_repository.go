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

const exerciseColumns = "e.id, e.name, e.primary_equipment, e.secondary_equipment, e.difficulty, e.instructions, e.tips, e.created_at"

// ExerciseFilter narrows List. Zero values are ignored; set fields are
// combined with AND.
type ExerciseFilter struct {
	MuscleGroup  string             // exact muscle group name
	Category     string             // any linked muscle group in this category
	Equipment    string             // primary or secondary equipment
	Difficulty   string             // exact difficulty
	Difficulties []model.Difficulty // difficulty in set
	Search       string             // substring of name, instructions or tips
}

type ExerciseRepo struct {
	db     database.DBTX
	groups *MuscleGroupRepo
}

func NewExerciseRepo(db database.DBTX) *ExerciseRepo {
	return &ExerciseRepo{db: db, groups: NewMuscleGroupRepo(db)}
}

// Create inserts e with its muscle group links and refreshes it with the
// stored row. e.MuscleGroups must already carry resolved ids.
func (r *ExerciseRepo) Create(ctx context.Context, e *model.Exercise) error {
	if e.Difficulty == "" {
		e.Difficulty = model.DifficultyMedium
	}
	var secondary sql.NullString
	if e.SecondaryEquipment != nil {
		secondary = sql.NullString{String: string(*e.SecondaryEquipment), Valid: true}
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO exercises (name, primary_equipment, secondary_equipment, difficulty, instructions, tips)
		VALUES (?,?,?,?,?,?)`,
		e.Name, string(e.Equipment), secondary, string(e.Difficulty), e.Instructions, nullString(e.Tips))
	if err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}
	if err := r.groups.Link(ctx, uint64(id), e.MuscleGroups); err != nil {
		return err
	}
	stored, err := r.GetByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*e = *stored
	return nil
}

// GetByID fetches one exercise with its muscle groups or returns
// ErrExerciseNotFound.
func (r *ExerciseRepo) GetByID(ctx context.Context, id uint64) (*model.Exercise, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+exerciseColumns+" FROM exercises e WHERE e.id = ? LIMIT 1", id)
	e, err := scanExercise(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("get exercise %d: %w", id, err)
	}
	list := []model.Exercise{*e}
	if err := r.attachMuscleGroups(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

// ExistsByName reports whether an exercise with exactly this name exists.
func (r *ExerciseRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM exercises WHERE name = ?", name).Scan(&n); err != nil {
		return false, fmt.Errorf("count exercises: %w", err)
	}
	return n > 0, nil
}

// List returns the exercises matching every set filter, in id order.
func (r *ExerciseRepo) List(ctx context.Context, f ExerciseFilter) ([]model.Exercise, error) {
	cond, args := exerciseWhere(f)
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+exerciseColumns+" FROM exercises e WHERE "+cond+" ORDER BY e.id", args...)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	out, err := collectExercises(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachMuscleGroups(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByIDs loads the given exercises keyed by id. Missing ids are absent.
func (r *ExerciseRepo) ListByIDs(ctx context.Context, ids []uint64) (map[uint64]model.Exercise, error) {
	out := make(map[uint64]model.Exercise, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+exerciseColumns+" FROM exercises e WHERE e.id IN ("+placeholders(len(ids))+") ORDER BY e.id", args...)
	if err != nil {
		return nil, fmt.Errorf("list exercises by id: %w", err)
	}
	list, err := collectExercises(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachMuscleGroups(ctx, list); err != nil {
		return nil, err
	}
	for _, e := range list {
		out[e.ID] = e
	}
	return out, nil
}

func (r *ExerciseRepo) attachMuscleGroups(ctx context.Context, list []model.Exercise) error {
	if len(list) == 0 {
		return nil
	}
	ids := make([]uint64, len(list))
	for i := range list {
		ids[i] = list[i].ID
	}
	groups, err := r.groups.ListByExerciseIDs(ctx, ids)
	if err != nil {
		return err
	}
	for i := range list {
		list[i].MuscleGroups = groups[list[i].ID]
		if list[i].MuscleGroups == nil {
			list[i].MuscleGroups = []model.MuscleGroup{}
		}
	}
	return nil
}

func exerciseWhere(f ExerciseFilter) (string, []any) {
	where := []string{}
	args := []any{}

	if f.MuscleGroup != "" {
		where = append(where, `EXISTS (SELECT 1 FROM exercise_muscle_groups emg
			JOIN muscle_groups mg ON mg.id = emg.muscle_group_id
			WHERE emg.exercise_id = e.id AND mg.name = ?)`)
		args = append(args, f.MuscleGroup)
	}
	if f.Category != "" {
		where = append(where, `EXISTS (SELECT 1 FROM exercise_muscle_groups emg
			JOIN muscle_groups mg ON mg.id = emg.muscle_group_id
			WHERE emg.exercise_id = e.id AND mg.category = ?)`)
		args = append(args, f.Category)
	}
	if f.Equipment != "" {
		where = append(where, "(e.primary_equipment = ? OR e.secondary_equipment = ?)")
		args = append(args, f.Equipment, f.Equipment)
	}
	if f.Difficulty != "" {
		where = append(where, "e.difficulty = ?")
		args = append(args, f.Difficulty)
	}
	if len(f.Difficulties) > 0 {
		where = append(where, "e.difficulty IN ("+placeholders(len(f.Difficulties))+")")
		for _, d := range f.Difficulties {
			args = append(args, string(d))
		}
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		where = append(where, "(LOWER(e.name) LIKE ? OR LOWER(e.instructions) LIKE ? OR LOWER(COALESCE(e.tips, '')) LIKE ?)")
		args = append(args, like, like, like)
	}

	if len(where) == 0 {
		return "1=1", args
	}
	return strings.Join(where, " AND "), args
}

func collectExercises(rows *sql.Rows) ([]model.Exercise, error) {
	defer rows.Close()
	out := []model.Exercise{}
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanExercise(s scanner) (*model.Exercise, error) {
	var (
		e          model.Exercise
		equipment  string
		secondary  sql.NullString
		difficulty string
		tips       sql.NullString
	)
	if err := s.Scan(&e.ID, &e.Name, &equipment, &secondary, &difficulty, &e.Instructions, &tips, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Equipment = model.Equipment(equipment)
	if secondary.Valid {
		eq := model.Equipment(secondary.String)
		e.SecondaryEquipment = &eq
	}
	e.Difficulty = model.Difficulty(difficulty)
	e.Tips = stringPtr(tips)
	return &e, nil
}
