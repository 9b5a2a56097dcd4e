// Package queue defines the workout activity events exchanged over RabbitMQ
// together with their publisher and consumer.
package queue

import (
	"time"

	"github.com/google/uuid"
)

// Event types carried by ActivityEvent.Type.
const (
	EventWorkoutCreated       = "workout.created"
	EventWorkoutExerciseAdded = "workout.exercise_added"
)

// ActivityEvent is published after a workout write commits. It carries
// enough context for consumers to log or notify without querying the
// primary database.
type ActivityEvent struct {
	EventID      string   `json:"event_id"`
	Type         string   `json:"type"`
	UserID       uint64   `json:"user_id"`
	WorkoutID    uint64   `json:"workout_id"`
	WorkoutName  string   `json:"workout_name"`
	ExerciseID   uint64   `json:"exercise_id,omitempty"`
	ExerciseName string   `json:"exercise_name,omitempty"`
	Sets         int      `json:"sets,omitempty"`
	Reps         int      `json:"reps,omitempty"`
	Weight       *float64 `json:"weight,omitempty"`
	OccurredAt   string   `json:"occurred_at"`
}

// NewActivityEvent stamps an event with a fresh id and the current UTC time.
func NewActivityEvent(typ string, userID, workoutID uint64, workoutName string) ActivityEvent {
	return ActivityEvent{
		EventID:     uuid.NewString(),
		Type:        typ,
		UserID:      userID,
		WorkoutID:   workoutID,
		WorkoutName: workoutName,
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	}
}
