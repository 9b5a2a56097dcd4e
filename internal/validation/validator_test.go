package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userBody struct {
	Name         string `json:"name" validate:"required,notblank,max=100"`
	Email        string `json:"email" validate:"required,email"`
	FitnessLevel string `json:"fitness_level" validate:"omitempty,fitness_level"`
}

type listQuery struct {
	Difficulty string   `query:"difficulty" validate:"omitempty,difficulty"`
	Equipment  []string `query:"available_equipment" validate:"omitempty,dive,equipment"`
	Duration   int      `query:"duration_minutes" validate:"omitempty,gte=15,lte=120"`
}

func TestValidate_Passes(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(&userBody{Name: "John", Email: "john@example.com"}))
	assert.NoError(t, v.Validate(&userBody{Name: "John", Email: "john@example.com", FitnessLevel: "advanced"}))
}

func TestValidate_BodyErrors(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&userBody{Email: "not-an-email", FitnessLevel: "elite"})

	var verrs Errors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 3)

	byField := map[string]FieldError{}
	for _, fe := range verrs {
		byField[fe.Location[1]] = fe
	}
	assert.Equal(t, []string{"body", "name"}, byField["name"].Location)
	assert.Equal(t, "value_error.missing", byField["name"].Type)
	assert.Equal(t, "value_error.email", byField["email"].Type)
	assert.Equal(t, "type_error.enum", byField["fitness_level"].Type)
	assert.Contains(t, byField["fitness_level"].Message, "'beginner', 'intermediate', 'advanced'")
}

func TestValidate_BlankName(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&userBody{Name: " \t ", Email: "john@example.com"})

	var verrs Errors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, []string{"body", "name"}, verrs[0].Location)
	assert.Equal(t, "value_error.missing", verrs[0].Type)
}

func TestValidate_QueryErrors(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&listQuery{Difficulty: "extreme", Equipment: []string{"barbell", "jetpack"}, Duration: 200})

	var verrs Errors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 3)
	for _, fe := range verrs {
		assert.Equal(t, "query", fe.Location[0])
	}
	types := []string{verrs[0].Type, verrs[1].Type, verrs[2].Type}
	assert.Contains(t, types, "value_error.number.not_le")
}

func TestErrors_Error(t *testing.T) {
	err := Body("muscle_groups", "unknown muscle groups: wings", "value_error.muscle_group")
	assert.Equal(t, "validation failed: body.muscle_groups: unknown muscle groups: wings", err.Error())
}
