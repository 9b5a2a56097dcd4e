package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/WorldsAreYours/fit-and-easy/internal/metrics"
	"github.com/WorldsAreYours/fit-and-easy/internal/model"
	"github.com/WorldsAreYours/fit-and-easy/internal/service"
)

const defaultWorkoutListLimit = 50

type userService interface {
	Create(ctx context.Context, in service.CreateUserInput) (*model.User, error)
	Get(ctx context.Context, id uint64) (*model.User, error)
}

type userWorkoutLister interface {
	ListByUser(ctx context.Context, userID uint64, limit int) ([]model.Workout, error)
	ListByUserExpanded(ctx context.Context, userID uint64, limit int) ([]model.WorkoutDetail, error)
}

type workoutGenerator interface {
	Generate(ctx context.Context, userID uint64, opts service.GenerateOptions) (*model.GeneratedWorkout, error)
}

// UserHandler serves user registration, lookup and the per-user workout
// endpoints (history and generation).
type UserHandler struct {
	Users     userService
	Workouts  userWorkoutLister
	Generator workoutGenerator
	Metrics   *metrics.Manager
}

func NewUserHandler(users userService, workouts userWorkoutLister, gen workoutGenerator, m *metrics.Manager) *UserHandler {
	if users == nil || workouts == nil || gen == nil || m == nil {
		panic("nil dependency passed to NewUserHandler")
	}
	return &UserHandler{Users: users, Workouts: workouts, Generator: gen, Metrics: m}
}

type createUserRequest struct {
	Name         string  `json:"name" validate:"required,notblank,max=100"`
	Email        string  `json:"email" validate:"required,email,max=255"`
	FitnessLevel string  `json:"fitness_level" validate:"omitempty,fitness_level"`
	Goals        *string `json:"goals" validate:"omitnil,max=2000"`
}

// Create handles POST /users. It returns 201 with the stored user, 409 when
// the email is taken.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}
	u, err := h.Users.Create(c.Request().Context(), service.CreateUserInput{
		Name:         req.Name,
		Email:        req.Email,
		FitnessLevel: model.FitnessLevel(req.FitnessLevel),
		Goals:        req.Goals,
	})
	if err != nil {
		return respondError(c, err)
	}
	h.Metrics.CounterUsersCreated.Inc()
	return c.JSON(http.StatusCreated, u)
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	u, err := h.Users.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

type listUserWorkoutsQuery struct {
	Expand string `query:"expand" validate:"omitempty,oneof=exercises"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=200"`
}

// ListWorkouts handles GET /users/:id/workouts. Entries are only expanded
// with their exercises when ?expand=exercises is given.
func (h *UserHandler) ListWorkouts(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var q listUserWorkoutsQuery
	if err := echo.QueryParamsBinder(c).
		String("expand", &q.Expand).
		Int("limit", &q.Limit).
		BindError(); err != nil {
		return respondError(c, queryError(err))
	}
	if err := c.Validate(&q); err != nil {
		return respondError(c, err)
	}
	if q.Limit == 0 {
		q.Limit = defaultWorkoutListLimit
	}

	ctx := c.Request().Context()
	if q.Expand == "exercises" {
		out, err := h.Workouts.ListByUserExpanded(ctx, id, q.Limit)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, out)
	}
	out, err := h.Workouts.ListByUser(ctx, id, q.Limit)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		out = []model.Workout{}
	}
	return c.JSON(http.StatusOK, out)
}

type generateWorkoutQuery struct {
	WorkoutType        string   `query:"workout_type" validate:"omitempty,workout_type"`
	TargetMuscleGroups []string `query:"target_muscle_groups"`
	DurationMinutes    int      `query:"duration_minutes" validate:"omitempty,min=15,max=120"`
	AvailableEquipment []string `query:"available_equipment" validate:"omitempty,dive,equipment"`
}

// GenerateWorkout handles POST /users/:id/generate-workout. The result is
// a preview and nothing is stored.
func (h *UserHandler) GenerateWorkout(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var q generateWorkoutQuery
	if err := echo.QueryParamsBinder(c).
		String("workout_type", &q.WorkoutType).
		Strings("target_muscle_groups", &q.TargetMuscleGroups).
		Int("duration_minutes", &q.DurationMinutes).
		Strings("available_equipment", &q.AvailableEquipment).
		BindError(); err != nil {
		return respondError(c, queryError(err))
	}
	q.TargetMuscleGroups = splitList(q.TargetMuscleGroups)
	q.AvailableEquipment = splitList(q.AvailableEquipment)
	if err := c.Validate(&q); err != nil {
		return respondError(c, err)
	}

	opts := service.GenerateOptions{
		WorkoutType:        model.WorkoutType(q.WorkoutType),
		TargetMuscleGroups: q.TargetMuscleGroups,
		DurationMinutes:    q.DurationMinutes,
	}
	for _, eq := range q.AvailableEquipment {
		opts.AvailableEquipment = append(opts.AvailableEquipment, model.Equipment(eq))
	}

	out, err := h.Generator.Generate(c.Request().Context(), id, opts)
	if err != nil {
		return respondError(c, err)
	}
	h.Metrics.CounterWorkoutsGenerated.WithLabelValues(string(out.DifficultyLevel)).Inc()
	return c.JSON(http.StatusOK, out)
}

// splitList accepts both repeated parameters and comma-separated values,
// lower-cased and trimmed.
func splitList(vals []string) []string {
	var out []string
	for _, v := range vals {
		for _, p := range strings.Split(v, ",") {
			if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
