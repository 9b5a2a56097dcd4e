package model

import "time"

// Difficulty grades how demanding an exercise is.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every difficulty from easiest to hardest.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) Valid() bool {
	for _, v := range Difficulties {
		if d == v {
			return true
		}
	}
	return false
}

// Equipment is the standardized name of a piece of training equipment.
type Equipment string

const (
	EquipmentBodyweight      Equipment = "bodyweight"
	EquipmentDumbbells       Equipment = "dumbbells"
	EquipmentBarbell         Equipment = "barbell"
	EquipmentKettlebell      Equipment = "kettlebell"
	EquipmentResistanceBands Equipment = "resistance_bands"
	EquipmentCableMachine    Equipment = "cable_machine"
	EquipmentSmithMachine    Equipment = "smith_machine"
	EquipmentLegPress        Equipment = "leg_press"
	EquipmentLatPulldown     Equipment = "lat_pulldown"
	EquipmentRowingMachine   Equipment = "rowing_machine"
	EquipmentPullUpBar       Equipment = "pull_up_bar"
	EquipmentBench           Equipment = "bench"
	EquipmentInclineBench    Equipment = "incline_bench"
	EquipmentDeclineBench    Equipment = "decline_bench"
	EquipmentStabilityBall   Equipment = "stability_ball"
	EquipmentMedicineBall    Equipment = "medicine_ball"
	EquipmentFoamRoller      Equipment = "foam_roller"
	EquipmentYogaMat         Equipment = "yoga_mat"
	EquipmentCardioMachine   Equipment = "cardio_machine"
)

// EquipmentTypes is the full equipment enumeration in display order.
var EquipmentTypes = []Equipment{
	EquipmentBodyweight, EquipmentDumbbells, EquipmentBarbell, EquipmentKettlebell,
	EquipmentResistanceBands, EquipmentCableMachine, EquipmentSmithMachine, EquipmentLegPress,
	EquipmentLatPulldown, EquipmentRowingMachine, EquipmentPullUpBar, EquipmentBench,
	EquipmentInclineBench, EquipmentDeclineBench, EquipmentStabilityBall, EquipmentMedicineBall,
	EquipmentFoamRoller, EquipmentYogaMat, EquipmentCardioMachine,
}

func (e Equipment) Valid() bool {
	for _, v := range EquipmentTypes {
		if e == v {
			return true
		}
	}
	return false
}

// MuscleCategory groups muscle groups into broad body regions.
type MuscleCategory string

const (
	CategoryUpperBody MuscleCategory = "upper_body"
	CategoryLowerBody MuscleCategory = "lower_body"
	CategoryCore      MuscleCategory = "core"
	CategoryFullBody  MuscleCategory = "full_body"
	CategoryCardio    MuscleCategory = "cardio"
)

var MuscleCategories = []MuscleCategory{
	CategoryUpperBody, CategoryLowerBody, CategoryCore, CategoryFullBody, CategoryCardio,
}

func (m MuscleCategory) Valid() bool {
	for _, v := range MuscleCategories {
		if m == v {
			return true
		}
	}
	return false
}

// MuscleGroup mirrors the `muscle_groups` table. Rows are seeded and
// read-only over HTTP.
type MuscleGroup struct {
	ID          uint64         `json:"id"`          // muscle_groups.id
	Name        string         `json:"name"`        // muscle_groups.name (unique)
	Category    MuscleCategory `json:"category"`    // muscle_groups.category
	Description *string        `json:"description"` // muscle_groups.description (nullable)
}

// Exercise mirrors the `exercises` table together with the muscle groups
// linked through `exercise_muscle_groups`.
type Exercise struct {
	ID                 uint64        `json:"id"`                  // exercises.id
	Name               string        `json:"name"`                // exercises.name
	MuscleGroups       []MuscleGroup `json:"muscle_groups"`       // via exercise_muscle_groups
	Equipment          Equipment     `json:"equipment"`           // exercises.primary_equipment
	SecondaryEquipment *Equipment    `json:"secondary_equipment"` // exercises.secondary_equipment (nullable)
	Difficulty         Difficulty    `json:"difficulty"`          // exercises.difficulty
	Instructions       string        `json:"instructions"`        // exercises.instructions
	Tips               *string       `json:"tips"`                // exercises.tips (nullable)
	CreatedAt          time.Time     `json:"created_at"`          // exercises.created_at
}

// MuscleGroupNames returns the names of the linked muscle groups in their
// stored order.
func (e Exercise) MuscleGroupNames() []string {
	out := make([]string, 0, len(e.MuscleGroups))
	for _, mg := range e.MuscleGroups {
		out = append(out, mg.Name)
	}
	return out
}

// PrimaryCategory is the category of the first linked muscle group, or an
// empty category when the exercise has none.
func (e Exercise) PrimaryCategory() MuscleCategory {
	if len(e.MuscleGroups) == 0 {
		return ""
	}
	return e.MuscleGroups[0].Category
}
