package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/WorldsAreYours/fit-and-easy/internal/model"
	"github.com/WorldsAreYours/fit-and-easy/internal/repository"
	"github.com/WorldsAreYours/fit-and-easy/internal/service"
)

type exerciseService interface {
	Create(ctx context.Context, in service.CreateExerciseInput) (*model.Exercise, error)
	Get(ctx context.Context, id uint64) (*model.Exercise, error)
	List(ctx context.Context, f repository.ExerciseFilter) ([]model.Exercise, error)
	MuscleGroups(ctx context.Context, category string) ([]model.MuscleGroup, error)
	Categories(ctx context.Context) ([]string, error)
	Equipment() []model.Equipment
}

// ExerciseHandler serves the exercise catalog and its reference lists.
type ExerciseHandler struct {
	Exercises exerciseService
}

func NewExerciseHandler(exercises exerciseService) *ExerciseHandler {
	if exercises == nil {
		panic("nil service passed to NewExerciseHandler")
	}
	return &ExerciseHandler{Exercises: exercises}
}

type createExerciseRequest struct {
	Name               string  `json:"name" validate:"required,notblank,max=100"`
	MuscleGroups       string  `json:"muscle_groups" validate:"required,notblank,max=500"`
	Equipment          string  `json:"equipment" validate:"required,equipment"`
	SecondaryEquipment *string `json:"secondary_equipment" validate:"omitnil,equipment"`
	Difficulty         string  `json:"difficulty" validate:"omitempty,difficulty"`
	Instructions       string  `json:"instructions" validate:"required,notblank"`
	Tips               *string `json:"tips"`
}

// Create handles POST /exercises. Muscle groups arrive as a comma-separated
// list of names and must all exist.
func (h *ExerciseHandler) Create(c echo.Context) error {
	var req createExerciseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}
	in := service.CreateExerciseInput{
		Name:         req.Name,
		MuscleGroups: req.MuscleGroups,
		Equipment:    model.Equipment(req.Equipment),
		Difficulty:   model.Difficulty(req.Difficulty),
		Instructions: req.Instructions,
		Tips:         req.Tips,
	}
	if in.Difficulty == "" {
		in.Difficulty = model.DifficultyMedium
	}
	if req.SecondaryEquipment != nil {
		eq := model.Equipment(*req.SecondaryEquipment)
		in.SecondaryEquipment = &eq
	}

	ex, err := h.Exercises.Create(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, ex)
}

type listExercisesQuery struct {
	MuscleGroup string `query:"muscle_group"`
	Equipment   string `query:"equipment" validate:"omitempty,equipment"`
	Difficulty  string `query:"difficulty" validate:"omitempty,difficulty"`
	Category    string `query:"category" validate:"omitempty,muscle_category"`
	Search      string `query:"q" validate:"omitempty,max=100"`
}

// List handles GET /exercises. Filters combine with AND; no filters return
// the whole catalog.
func (h *ExerciseHandler) List(c echo.Context) error {
	var q listExercisesQuery
	if err := echo.QueryParamsBinder(c).
		String("muscle_group", &q.MuscleGroup).
		String("equipment", &q.Equipment).
		String("difficulty", &q.Difficulty).
		String("category", &q.Category).
		String("q", &q.Search).
		BindError(); err != nil {
		return respondError(c, queryError(err))
	}
	if err := c.Validate(&q); err != nil {
		return respondError(c, err)
	}
	return h.list(c, repository.ExerciseFilter{
		MuscleGroup: strings.ToLower(strings.TrimSpace(q.MuscleGroup)),
		Equipment:   q.Equipment,
		Difficulty:  q.Difficulty,
		Category:    q.Category,
		Search:      strings.TrimSpace(q.Search),
	})
}

type searchExercisesQuery struct {
	Search string `query:"q" validate:"required,min=1,max=100"`
}

// Search handles GET /exercises/search?q=.
func (h *ExerciseHandler) Search(c echo.Context) error {
	q := searchExercisesQuery{Search: strings.TrimSpace(c.QueryParam("q"))}
	if err := c.Validate(&q); err != nil {
		return respondError(c, err)
	}
	return h.list(c, repository.ExerciseFilter{Search: q.Search})
}

func (h *ExerciseHandler) list(c echo.Context, f repository.ExerciseFilter) error {
	out, err := h.Exercises.List(c.Request().Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		out = []model.Exercise{}
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /exercises/:id.
func (h *ExerciseHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	ex, err := h.Exercises.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, ex)
}

type muscleGroupsQuery struct {
	Category string `query:"category" validate:"omitempty,muscle_category"`
}

// MuscleGroups handles GET /muscle-groups, optionally filtered by category.
func (h *ExerciseHandler) MuscleGroups(c echo.Context) error {
	q := muscleGroupsQuery{Category: c.QueryParam("category")}
	if err := c.Validate(&q); err != nil {
		return respondError(c, err)
	}
	out, err := h.Exercises.MuscleGroups(c.Request().Context(), q.Category)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		out = []model.MuscleGroup{}
	}
	return c.JSON(http.StatusOK, out)
}

// Categories handles GET /muscle-groups/categories.
func (h *ExerciseHandler) Categories(c echo.Context) error {
	out, err := h.Exercises.Categories(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		out = []string{}
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": out})
}

// Equipment handles GET /equipment.
func (h *ExerciseHandler) Equipment(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"equipment": h.Exercises.Equipment()})
}
