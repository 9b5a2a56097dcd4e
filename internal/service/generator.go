package service

import (
	"context"
	"database/sql"
	"sort"
	"strings"

	"github.com/WorldsAreYours/fit-and-easy/internal/database"
	"github.com/WorldsAreYours/fit-and-easy/internal/model"
	"github.com/WorldsAreYours/fit-and-easy/internal/repository"
)

// secondsPerRep is the time budget of a single repetition used by the
// duration estimate.
const secondsPerRep = 3

// GeneratorSettings bounds the size of generated workouts.
type GeneratorSettings struct {
	DefaultDurationMinutes int
	MinExercises           int
	MaxExercises           int
}

func DefaultGeneratorSettings() GeneratorSettings {
	return GeneratorSettings{DefaultDurationMinutes: 45, MinExercises: 3, MaxExercises: 8}
}

// GenerateOptions are the optional knobs of a generation request.
type GenerateOptions struct {
	WorkoutType        model.WorkoutType
	TargetMuscleGroups []string
	DurationMinutes    int
	AvailableEquipment []model.Equipment
}

// Generator builds workout previews from the catalog. It never writes.
type Generator struct {
	db       *sql.DB
	settings GeneratorSettings
}

func NewGenerator(db *sql.DB, settings GeneratorSettings) *Generator {
	def := DefaultGeneratorSettings()
	if settings.DefaultDurationMinutes <= 0 {
		settings.DefaultDurationMinutes = def.DefaultDurationMinutes
	}
	if settings.MinExercises <= 0 {
		settings.MinExercises = def.MinExercises
	}
	if settings.MaxExercises < settings.MinExercises {
		settings.MaxExercises = settings.MinExercises
	}
	return &Generator{db: db, settings: settings}
}

// Generate produces a workout for the user's fitness level. A missing user
// fails with repository.ErrUserNotFound.
func (g *Generator) Generate(ctx context.Context, userID uint64, opts GenerateOptions) (*model.GeneratedWorkout, error) {
	var (
		user    *model.User
		catalog []model.Exercise
	)
	err := database.WithTx(ctx, g.db, nil, func(ctx context.Context, tx database.DBTX) error {
		var err error
		if user, err = repository.NewUserRepo(tx).GetByID(ctx, userID); err != nil {
			return err
		}
		catalog, err = repository.NewExerciseRepo(tx).List(ctx, repository.ExerciseFilter{
			Difficulties: EligibleDifficulties(user.FitnessLevel),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return BuildWorkout(user.FitnessLevel, catalog, opts, g.settings), nil
}

// EligibleDifficulties maps a fitness level to the difficulties it may
// train. Each level unlocks a superset of the level below.
func EligibleDifficulties(level model.FitnessLevel) []model.Difficulty {
	switch level {
	case model.LevelAdvanced:
		return []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard}
	case model.LevelIntermediate:
		return []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium}
	default:
		return []model.Difficulty{model.DifficultyEasy}
	}
}

// ExerciseCount is the number of exercises a workout of the given length
// aims for, before capping by the candidates available.
func ExerciseCount(durationMinutes int, s GeneratorSettings) int {
	if durationMinutes <= 0 {
		durationMinutes = s.DefaultDurationMinutes
	}
	n := durationMinutes / 8
	if n < s.MinExercises {
		n = s.MinExercises
	}
	if n > s.MaxExercises {
		n = s.MaxExercises
	}
	return n
}

// EstimateDuration returns whole minutes, rounded up, for the given entries.
func EstimateDuration(entries []model.GeneratedExercise) int {
	total := 0
	for _, e := range entries {
		total += e.Sets * (e.Reps*secondsPerRep + e.RestTime)
	}
	return (total + 59) / 60
}

// BuildWorkout selects exercises deterministically: candidates are walked in
// id order, first taking exercises from body regions not yet represented,
// then exercises adding an uncovered muscle group, then anything left.
func BuildWorkout(level model.FitnessLevel, catalog []model.Exercise, opts GenerateOptions, s GeneratorSettings) *model.GeneratedWorkout {
	if opts.WorkoutType == "" {
		opts.WorkoutType = model.WorkoutBalanced
	}
	candidates := filterCandidates(level, catalog, opts)
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })

	count := ExerciseCount(opts.DurationMinutes, s)
	if count > len(candidates) {
		count = len(candidates)
	}
	picked := selectSpread(candidates, count)

	entries := make([]model.GeneratedExercise, 0, len(picked))
	groups := map[string]bool{}
	for i, ex := range picked {
		entries = append(entries, model.GeneratedExercise{
			ExerciseID: ex.ID,
			Exercise:   ex,
			Sets:       model.DefaultSets,
			Reps:       model.DefaultReps,
			RestTime:   model.DefaultRestTime,
			Order:      i + 1,
		})
		for _, mg := range ex.MuscleGroups {
			groups[mg.Name] = true
		}
	}
	targets := make([]string, 0, len(groups))
	for name := range groups {
		targets = append(targets, name)
	}
	sort.Strings(targets)

	return &model.GeneratedWorkout{
		WorkoutName:        workoutName(opts.WorkoutType),
		WorkoutType:        opts.WorkoutType,
		Exercises:          entries,
		EstimatedDuration:  EstimateDuration(entries),
		TargetMuscleGroups: targets,
		DifficultyLevel:    level,
	}
}

func filterCandidates(level model.FitnessLevel, catalog []model.Exercise, opts GenerateOptions) []model.Exercise {
	eligible := map[model.Difficulty]bool{}
	for _, d := range EligibleDifficulties(level) {
		eligible[d] = true
	}
	categories := workoutCategories(opts.WorkoutType)
	targets := map[string]bool{}
	for _, t := range opts.TargetMuscleGroups {
		targets[strings.ToLower(strings.TrimSpace(t))] = true
	}
	var equipment map[model.Equipment]bool
	if len(opts.AvailableEquipment) > 0 {
		equipment = map[model.Equipment]bool{model.EquipmentBodyweight: true}
		for _, e := range opts.AvailableEquipment {
			equipment[e] = true
		}
	}

	out := make([]model.Exercise, 0, len(catalog))
	for _, ex := range catalog {
		if !eligible[ex.Difficulty] {
			continue
		}
		if categories != nil && !anyGroup(ex, func(mg model.MuscleGroup) bool { return categories[mg.Category] }) {
			continue
		}
		if len(targets) > 0 && !anyGroup(ex, func(mg model.MuscleGroup) bool { return targets[mg.Name] }) {
			continue
		}
		if equipment != nil {
			if !equipment[ex.Equipment] {
				continue
			}
			if ex.SecondaryEquipment != nil && !equipment[*ex.SecondaryEquipment] {
				continue
			}
		}
		out = append(out, ex)
	}
	return out
}

func selectSpread(candidates []model.Exercise, count int) []model.Exercise {
	picked := make([]model.Exercise, 0, count)
	used := map[uint64]bool{}
	regions := map[model.MuscleCategory]bool{}
	covered := map[string]bool{}

	take := func(ex model.Exercise) {
		used[ex.ID] = true
		regions[ex.PrimaryCategory()] = true
		for _, mg := range ex.MuscleGroups {
			covered[mg.Name] = true
		}
		picked = append(picked, ex)
	}

	passes := []func(model.Exercise) bool{
		func(ex model.Exercise) bool { return !regions[ex.PrimaryCategory()] },
		func(ex model.Exercise) bool {
			return anyGroup(ex, func(mg model.MuscleGroup) bool { return !covered[mg.Name] })
		},
		func(model.Exercise) bool { return true },
	}
	for _, accept := range passes {
		for _, ex := range candidates {
			if len(picked) == count {
				return picked
			}
			if !used[ex.ID] && accept(ex) {
				take(ex)
			}
		}
	}
	return picked
}

func workoutCategories(t model.WorkoutType) map[model.MuscleCategory]bool {
	switch t {
	case model.WorkoutUpperBody:
		return map[model.MuscleCategory]bool{model.CategoryUpperBody: true}
	case model.WorkoutLowerBody:
		return map[model.MuscleCategory]bool{model.CategoryLowerBody: true}
	case model.WorkoutCore:
		return map[model.MuscleCategory]bool{model.CategoryCore: true}
	case model.WorkoutCardio:
		return map[model.MuscleCategory]bool{model.CategoryCardio: true, model.CategoryFullBody: true}
	default:
		return nil
	}
}

func workoutName(t model.WorkoutType) string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ") + " Workout"
}

func anyGroup(ex model.Exercise, fn func(model.MuscleGroup) bool) bool {
	for _, mg := range ex.MuscleGroups {
		if fn(mg) {
			return true
		}
	}
	return false
}
