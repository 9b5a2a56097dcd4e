package model

import "time"

// FitnessLevel is the self-reported training level of a user. It decides
// which exercise difficulties the workout generator may pick.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// FitnessLevels lists every accepted level in ascending order.
var FitnessLevels = []FitnessLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}

// Valid reports whether l is one of the known levels.
func (l FitnessLevel) Valid() bool {
	for _, v := range FitnessLevels {
		if l == v {
			return true
		}
	}
	return false
}

// User represents a row of the `users` table. Users are immutable once
// created; there is no update or delete path.
type User struct {
	ID           uint64       `json:"id"`            // users.id
	Name         string       `json:"name"`          // users.name
	Email        string       `json:"email"`         // users.email (unique, lower-cased)
	FitnessLevel FitnessLevel `json:"fitness_level"` // users.fitness_level
	Goals        *string      `json:"goals"`         // users.goals (nullable)
	CreatedAt    time.Time    `json:"created_at"`    // users.created_at
}
