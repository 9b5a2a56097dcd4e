package seed

import "github.com/WorldsAreYours/fit-and-easy/internal/model"

type muscleGroupSeed struct {
	name        string
	category    model.MuscleCategory
	description string
}

var muscleGroupData = []muscleGroupSeed{
	{"chest", model.CategoryUpperBody, "Pectoral muscles"},
	{"upper_chest", model.CategoryUpperBody, "Upper portion of pectoral muscles"},
	{"lower_chest", model.CategoryUpperBody, "Lower portion of pectoral muscles"},

	{"back", model.CategoryUpperBody, "General back muscles"},
	{"lats", model.CategoryUpperBody, "Latissimus dorsi"},
	{"rhomboids", model.CategoryUpperBody, "Rhomboid muscles"},
	{"traps", model.CategoryUpperBody, "Trapezius muscles"},
	{"rear_delts", model.CategoryUpperBody, "Posterior deltoids"},
	{"lower_back", model.CategoryUpperBody, "Erector spinae and lower back"},

	{"shoulders", model.CategoryUpperBody, "General deltoid muscles"},
	{"front_delts", model.CategoryUpperBody, "Anterior deltoids"},
	{"side_delts", model.CategoryUpperBody, "Lateral deltoids"},

	{"biceps", model.CategoryUpperBody, "Bicep muscles"},
	{"triceps", model.CategoryUpperBody, "Tricep muscles"},
	{"forearms", model.CategoryUpperBody, "Forearm muscles"},

	{"quads", model.CategoryLowerBody, "Quadriceps muscles"},
	{"hamstrings", model.CategoryLowerBody, "Hamstring muscles"},
	{"glutes", model.CategoryLowerBody, "Gluteal muscles"},
	{"calves", model.CategoryLowerBody, "Calf muscles"},
	{"hip_flexors", model.CategoryLowerBody, "Hip flexor muscles"},
	{"adductors", model.CategoryLowerBody, "Inner thigh muscles"},
	{"abductors", model.CategoryLowerBody, "Outer thigh and glute muscles"},

	{"abs", model.CategoryCore, "Abdominal muscles"},
	{"obliques", model.CategoryCore, "Side abdominal muscles"},
	{"core", model.CategoryCore, "General core stabilizers"},

	{"full_body", model.CategoryFullBody, "Multiple muscle groups"},
	{"cardio", model.CategoryCardio, "Cardiovascular system"},
}

type exerciseSeed struct {
	name         string
	equipment    model.Equipment
	secondary    model.Equipment // empty when the exercise needs one piece of kit
	difficulty   model.Difficulty
	muscleGroups []string // first entry decides the primary category
	instructions string
	tips         string
}

var exerciseData = []exerciseSeed{
	// chest
	{
		name: "Push-ups", equipment: model.EquipmentBodyweight, difficulty: model.DifficultyEasy,
		muscleGroups: []string{"chest", "triceps", "front_delts", "core"},
		instructions: "Start in plank position, lower body until chest nearly touches floor, push back up.",
		tips:         "Keep core tight and body in straight line. Modify on knees if needed.",
	},
	{
		name: "Bench Press", equipment: model.EquipmentBarbell, secondary: model.EquipmentBench, difficulty: model.DifficultyMedium,
		muscleGroups: []string{"chest", "triceps", "front_delts"},
		instructions: "Lie on bench, grip bar wider than shoulders, lower to chest, press up.",
		tips:         "Keep feet planted and shoulder blades pulled back. Control the movement.",
	},
	{
		name: "Dumbbell Flyes", equipment: model.EquipmentDumbbells, secondary: model.EquipmentBench, difficulty: model.DifficultyMedium,
		muscleGroups: []string{"chest", "front_delts"},
		instructions: "Lie on bench, arms extended with slight bend, lower weights to sides, squeeze chest to bring weights together.",
		tips:         "Focus on stretching the chest at bottom, don't lower too far to avoid shoulder strain.",
	},

	// back
	{
		name: "Pull-ups", equipment: model.EquipmentPullUpBar, difficulty: model.DifficultyHard,
		muscleGroups: []string{"lats", "rhomboids", "biceps", "rear_delts"},
		instructions: "Hang from bar, pull body up until chin clears bar, lower with control.",
		tips:         "Engage core, avoid swinging, use assistance if needed.",
	},
	{
		name: "Bent-over Rows", equipment: model.EquipmentBarbell, difficulty: model.DifficultyMedium,
		muscleGroups: []string{"lats", "rhomboids", "traps", "biceps"},
		instructions: "Hinge at hips, keep back straight, pull bar to lower chest, squeeze shoulder blades.",
		tips:         "Keep core tight, don't round the back, pull elbows back.",
	},
	{
		name: "Lat Pulldowns", equipment: model.EquipmentLatPulldown, difficulty: model.DifficultyEasy,
		muscleGroups: []string{"lats", "rhomboids", "biceps"},
		instructions: "Sit at machine, pull bar down to upper chest, squeeze shoulder blades together.",
		tips:         "Lean slightly back, don't pull behind neck, control the weight up.",
	},

	// legs
	{
		name: "Squats", equipment: model.EquipmentBodyweight, difficulty: model.DifficultyEasy,
		muscleGroups: []string{"quads", "glutes", "core"},
		instructions: "Stand with feet shoulder-width apart, lower hips back and down, drive through heels to stand.",
		tips:         "Keep chest up, knees track over toes, full range of motion.",
	},
	{
		name: "Barbell Squats", equipment: model.EquipmentBarbell, difficulty: model.DifficultyMedium,
		muscleGroups: []string{"quads", "glutes", "core", "hamstrings"},
		instructions: "Bar on upper back, squat down keeping knees aligned with toes, drive up through heels.",
		tips:         "Keep core tight, chest up, don't let knees cave inward.",
	},
	{
		name: "Lunges", equipment: model.EquipmentBodyweight, difficulty: model.DifficultyEasy,
		muscleGroups: []string{"quads", "glutes", "hamstrings", "core"},
		instructions: "Step forward, lower back knee toward ground, push off front foot to return.",
		tips:         "Keep torso upright with the front knee over the ankle.",
	},
	{
		name: "Romanian Deadlifts", equipment: model.EquipmentDumbbells, difficulty: model.DifficultyMedium,
		muscleGroups: []string{"hamstrings", "glutes", "lower_back"},
		instructions: "Hold weights, hinge at hips keeping legs slightly bent, lower weights toward floor, return to standing.",
		tips:         "Feel stretch in hamstrings, keep weights close to legs, don't round back.",
	},

	// shoulders
	{
		name: "Overhead Press", equipment: model.EquipmentBarbell, difficulty: model.DifficultyMedium,
		muscleGroups: []string{"shoulders", "triceps", "core"},
		instructions: "Stand with bar at shoulder level, press straight up overhead, lower with control.",
		tips:         "Keep core tight and avoid arching the back.",
	},
	{
		name: "Lateral Raises", equipment: model.EquipmentDumbbells, difficulty: model.DifficultyEasy,
		muscleGroups: []string{"side_delts"},
		instructions: "Hold weights at sides, raise arms to sides until parallel to floor, lower slowly.",
		tips:         "Slight bend in elbows, don't swing weights, control the negative.",
	},

	// core
	{
		name: "Plank", equipment: model.EquipmentBodyweight, difficulty: model.DifficultyEasy,
		muscleGroups: []string{"core", "abs", "shoulders"},
		instructions: "Hold push-up position, keep body straight from head to heels.",
		tips:         "Don't let hips sag or pike up. Start with shorter holds.",
	},
	{
		name: "Russian Twists", equipment: model.EquipmentBodyweight, difficulty: model.DifficultyEasy,
		muscleGroups: []string{"obliques", "abs", "core"},
		instructions: "Sit with knees bent, lean back slightly, rotate torso side to side.",
		tips:         "Keep chest up and control the movement. Add weight to progress.",
	},

	// full body
	{
		name: "Burpees", equipment: model.EquipmentBodyweight, difficulty: model.DifficultyHard,
		muscleGroups: []string{"full_body", "cardio", "chest", "quads", "core"},
		instructions: "Squat down, jump feet back to plank, do push-up, jump feet forward, jump up.",
		tips:         "Move smoothly between positions. Drop the push-up or jump to make it easier.",
	},
}

// MuscleGroups returns the reference muscle groups.
func MuscleGroups() []model.MuscleGroup {
	out := make([]model.MuscleGroup, len(muscleGroupData))
	for i, s := range muscleGroupData {
		desc := s.description
		out[i] = model.MuscleGroup{Name: s.name, Category: s.category, Description: &desc}
	}
	return out
}
