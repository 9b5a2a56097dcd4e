package model

import "time"

// Defaults applied to a workout exercise when the caller omits a value.
const (
	DefaultSets     = 3
	DefaultReps     = 10
	DefaultRestTime = 60
)

// Workout mirrors the `workouts` table.
type Workout struct {
	ID        uint64    `json:"id"`         // workouts.id
	UserID    uint64    `json:"user_id"`    // workouts.user_id
	Name      string    `json:"name"`       // workouts.name
	Date      time.Time `json:"date"`       // workouts.date
	Notes     *string   `json:"notes"`      // workouts.notes (nullable)
	CreatedAt time.Time `json:"created_at"` // workouts.created_at
}

// WorkoutExercise mirrors the `workout_exercises` table. Exercise is the
// catalog entry joined at read time and is nil when not expanded.
type WorkoutExercise struct {
	ID         uint64    `json:"id"`          // workout_exercises.id
	WorkoutID  uint64    `json:"workout_id"`  // workout_exercises.workout_id
	ExerciseID uint64    `json:"exercise_id"` // workout_exercises.exercise_id
	Sets       int       `json:"sets"`        // workout_exercises.sets
	Reps       int       `json:"reps"`        // workout_exercises.reps
	Weight     *float64  `json:"weight"`      // workout_exercises.weight (kg, nullable)
	RestTime   int       `json:"rest_time"`   // workout_exercises.rest_time (seconds)
	Order      int       `json:"order"`       // workout_exercises.position
	Exercise   *Exercise `json:"exercise,omitempty"`
}

// WorkoutDetail is a workout with its ordered exercise entries.
type WorkoutDetail struct {
	Workout
	Exercises []WorkoutExercise `json:"exercises"`
}

// WorkoutType narrows the generator to a body region.
type WorkoutType string

const (
	WorkoutBalanced  WorkoutType = "balanced"
	WorkoutUpperBody WorkoutType = "upper_body"
	WorkoutLowerBody WorkoutType = "lower_body"
	WorkoutCore      WorkoutType = "core"
	WorkoutCardio    WorkoutType = "cardio"
)

var WorkoutTypes = []WorkoutType{WorkoutBalanced, WorkoutUpperBody, WorkoutLowerBody, WorkoutCore, WorkoutCardio}

func (w WorkoutType) Valid() bool {
	for _, v := range WorkoutTypes {
		if w == v {
			return true
		}
	}
	return false
}

// GeneratedExercise is one entry of a generated workout. It has the shape of
// a WorkoutExercise without persistence identifiers.
type GeneratedExercise struct {
	ExerciseID uint64   `json:"exercise_id"`
	Exercise   Exercise `json:"exercise"`
	Sets       int      `json:"sets"`
	Reps       int      `json:"reps"`
	Weight     *float64 `json:"weight"`
	RestTime   int      `json:"rest_time"`
	Order      int      `json:"order"`
}

// GeneratedWorkout is the non-persisted result of the workout generator.
type GeneratedWorkout struct {
	WorkoutName        string              `json:"workout_name"`
	WorkoutType        WorkoutType         `json:"workout_type"`
	Exercises          []GeneratedExercise `json:"exercises"`
	EstimatedDuration  int                 `json:"estimated_duration"` // minutes
	TargetMuscleGroups []string            `json:"target_muscle_groups"`
	DifficultyLevel    FitnessLevel        `json:"difficulty_level"`
}
