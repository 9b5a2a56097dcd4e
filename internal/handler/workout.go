package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/WorldsAreYours/fit-and-easy/internal/metrics"
	"github.com/WorldsAreYours/fit-and-easy/internal/model"
	"github.com/WorldsAreYours/fit-and-easy/internal/service"
	"github.com/WorldsAreYours/fit-and-easy/internal/validation"
)

type workoutService interface {
	Create(ctx context.Context, userID uint64, in service.CreateWorkoutInput) (*model.Workout, error)
	AddExercise(ctx context.Context, workoutID uint64, in service.AddExerciseInput) (*model.WorkoutExercise, error)
	Get(ctx context.Context, id uint64) (*model.WorkoutDetail, error)
}

// WorkoutHandler serves workout logging.
type WorkoutHandler struct {
	Workouts workoutService
	Metrics  *metrics.Manager
}

func NewWorkoutHandler(workouts workoutService, m *metrics.Manager) *WorkoutHandler {
	if workouts == nil || m == nil {
		panic("nil dependency passed to NewWorkoutHandler")
	}
	return &WorkoutHandler{Workouts: workouts, Metrics: m}
}

type createWorkoutRequest struct {
	Name  string       `json:"name" validate:"required,notblank,max=100"`
	Date  *requestTime `json:"date"`
	Notes *string      `json:"notes" validate:"omitnil,max=2000"`
}

// Create handles POST /workouts?user_id=. The owner must exist.
func (h *WorkoutHandler) Create(c echo.Context) error {
	var userID uint64
	if err := echo.QueryParamsBinder(c).Uint64("user_id", &userID).BindError(); err != nil {
		return respondError(c, queryError(err))
	}
	if userID == 0 {
		return respondError(c, validation.Query("user_id", "field required", "value_error.missing"))
	}

	var req createWorkoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}
	w, err := h.Workouts.Create(c.Request().Context(), userID, service.CreateWorkoutInput{
		Name:  req.Name,
		Date:  req.Date.timePtr(),
		Notes: req.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	h.Metrics.CounterWorkoutsCreated.Inc()
	return c.JSON(http.StatusCreated, w)
}

type addWorkoutExerciseRequest struct {
	ExerciseID uint64   `json:"exercise_id" validate:"required"`
	Sets       *int     `json:"sets" validate:"omitnil,min=1,max=20"`
	Reps       *int     `json:"reps" validate:"omitnil,min=1,max=100"`
	Weight     *float64 `json:"weight" validate:"omitnil,gte=0"`
	RestTime   *int     `json:"rest_time" validate:"omitnil,min=0,max=600"`
	Order      *int     `json:"order" validate:"omitnil,min=1"`
}

// AddExercise handles POST /workouts/:id/exercises. Omitted sets, reps and
// rest time take their defaults; an omitted order appends.
func (h *WorkoutHandler) AddExercise(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req addWorkoutExerciseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}
	we, err := h.Workouts.AddExercise(c.Request().Context(), id, service.AddExerciseInput{
		ExerciseID: req.ExerciseID,
		Sets:       req.Sets,
		Reps:       req.Reps,
		Weight:     req.Weight,
		RestTime:   req.RestTime,
		Order:      req.Order,
	})
	if err != nil {
		return respondError(c, err)
	}
	h.Metrics.CounterExercisesLogged.Inc()
	return c.JSON(http.StatusCreated, we)
}

// Get handles GET /workouts/:id with every entry expanded.
func (h *WorkoutHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	w, err := h.Workouts.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, w)
}
