package config

// GeneratorConfig sizes generated workouts.
type GeneratorConfig struct {
	DefaultDurationMinutes int
	MinExercises           int
	MaxExercises           int
}

func LoadGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		DefaultDurationMinutes: envInt("GENERATOR_DEFAULT_DURATION", 45),
		MinExercises:           envInt("GENERATOR_MIN_EXERCISES", 3),
		MaxExercises:           envInt("GENERATOR_MAX_EXERCISES", 8),
	}
}
