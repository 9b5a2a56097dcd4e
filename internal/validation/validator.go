package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/WorldsAreYours/fit-and-easy/internal/model"
)

// Validator adapts go-playground/validator to echo.Validator and reports
// failures as Errors.
type Validator struct {
	v *validator.Validate
}

var enumValues = map[string][]string{
	"fitness_level":   stringsOf(model.FitnessLevels),
	"difficulty":      stringsOf(model.Difficulties),
	"equipment":       stringsOf(model.EquipmentTypes),
	"workout_type":    stringsOf(model.WorkoutTypes),
	"muscle_category": stringsOf(model.MuscleCategories),
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Field names carry their source so the location can be rebuilt:
	// "body.email", "query.difficulty".
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := tagName(f.Tag.Get("json")); name != "" {
			return "body." + name
		}
		if name := tagName(f.Tag.Get("query")); name != "" {
			return "query." + name
		}
		if name := tagName(f.Tag.Get("param")); name != "" {
			return "path." + name
		}
		return f.Name
	})

	_ = v.RegisterValidation("notblank", validators.NotBlank)

	for tag, allowed := range enumValues {
		allowed := allowed
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			for _, a := range allowed {
				if s == a {
					return true
				}
			}
			return false
		})
	}
	return &Validator{v: v}
}

// Validate implements echo.Validator.
func (cv *Validator) Validate(i any) error {
	err := cv.v.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fromFieldError(fe))
	}
	return out
}

func fromFieldError(fe validator.FieldError) FieldError {
	loc := []string{"body", fe.Field()}
	if src, name, ok := strings.Cut(fe.Field(), "."); ok {
		loc = []string{src, name}
	}
	msg, typ := describe(fe)
	return FieldError{Location: loc, Message: msg, Type: typ}
}

func describe(fe validator.FieldError) (string, string) {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required", "notblank":
		return "field required", "value_error.missing"
	case "email":
		return "value is not a valid email address", "value_error.email"
	case "min":
		if isString {
			return fmt.Sprintf("ensure this value has at least %s characters", fe.Param()), "value_error.any_str.min_length"
		}
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param()), "value_error.number.not_ge"
	case "max":
		if isString {
			return fmt.Sprintf("ensure this value has at most %s characters", fe.Param()), "value_error.any_str.max_length"
		}
		return fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param()), "value_error.number.not_le"
	case "gte":
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param()), "value_error.number.not_ge"
	case "lte":
		return fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param()), "value_error.number.not_le"
	}
	if allowed, ok := enumValues[fe.Tag()]; ok {
		return "value is not a valid enumeration member; permitted: '" + strings.Join(allowed, "', '") + "'", "type_error.enum"
	}
	return fmt.Sprintf("failed on the '%s' rule", fe.Tag()), "value_error." + fe.Tag()
}

func tagName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}

func stringsOf[T ~string](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}
