package handler

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/WorldsAreYours/fit-and-easy/internal/metrics"
	"github.com/WorldsAreYours/fit-and-easy/internal/model"
	"github.com/WorldsAreYours/fit-and-easy/internal/repository"
	"github.com/WorldsAreYours/fit-and-easy/internal/service"
)

type userFixture struct {
	e        *echo.Echo
	users    *userServiceMock
	workouts *workoutServiceMock
	gen      *generatorMock
	metrics  *metrics.Manager
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()
	f := &userFixture{
		e:        newTestEcho(),
		users:    &userServiceMock{},
		workouts: &workoutServiceMock{},
		gen:      &generatorMock{},
		metrics:  metrics.NewTestManager(),
	}
	h := NewUserHandler(f.users, f.workouts, f.gen, f.metrics)
	f.e.POST("/users", h.Create)
	f.e.GET("/users/:id", h.Get)
	f.e.GET("/users/:id/workouts", h.ListWorkouts)
	f.e.POST("/users/:id/generate-workout", h.GenerateWorkout)
	t.Cleanup(func() {
		f.users.AssertExpectations(t)
		f.workouts.AssertExpectations(t)
		f.gen.AssertExpectations(t)
	})
	return f
}

func TestUserHandler_Create(t *testing.T) {
	f := newUserFixture(t)
	f.users.On("Create", mock.Anything, service.CreateUserInput{
		Name:  "John Doe",
		Email: "john@example.com",
	}).Return(&model.User{ID: 1, Name: "John Doe", Email: "john@example.com", FitnessLevel: model.LevelBeginner}, nil).Once()

	rec := serve(f.e, http.MethodPost, "/users", `{"name":"John Doe","email":"john@example.com"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fitness_level":"beginner"`)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CounterUsersCreated))
}

func TestUserHandler_CreateDuplicateEmail(t *testing.T) {
	f := newUserFixture(t)
	f.users.On("Create", mock.Anything, mock.Anything).Return(nil, repository.ErrEmailExists).Once()

	rec := serve(f.e, http.MethodPost, "/users", `{"name":"John Doe","email":"john@example.com"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"email already registered"}`, rec.Body.String())
	assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.CounterUsersCreated))
}

func TestUserHandler_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantLoc []string
		wantTyp string
	}{
		{"missing name", `{"email":"john@example.com"}`, []string{"body", "name"}, "value_error.missing"},
		{"blank name", `{"name":"   ","email":"john@example.com"}`, []string{"body", "name"}, "value_error.missing"},
		{"bad email", `{"name":"John","email":"nope"}`, []string{"body", "email"}, "value_error.email"},
		{"bad level", `{"name":"John","email":"john@example.com","fitness_level":"elite"}`, []string{"body", "fitness_level"}, "type_error.enum"},
		{"extra field", `{"name":"John","email":"john@example.com","age":30}`, []string{"body", "age"}, "value_error.extra"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture(t)
			rec := serve(f.e, http.MethodPost, "/users", tt.body)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			detail := decodeDetail(t, rec)
			assert.Equal(t, tt.wantLoc, detail[0].Location)
			assert.Equal(t, tt.wantTyp, detail[0].Type)
		})
	}
}

func TestUserHandler_Get(t *testing.T) {
	f := newUserFixture(t)
	f.users.On("Get", mock.Anything, uint64(7)).Return(&model.User{ID: 7, Name: "Ann"}, nil).Once()
	f.users.On("Get", mock.Anything, uint64(8)).Return(nil, repository.ErrUserNotFound).Once()

	rec := serve(f.e, http.MethodGet, "/users/7", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Ann"`)

	rec = serve(f.e, http.MethodGet, "/users/8", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"user not found"}`, rec.Body.String())

	rec = serve(f.e, http.MethodGet, "/users/abc", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, []string{"path", "id"}, decodeDetail(t, rec)[0].Location)
}

func TestUserHandler_ListWorkouts(t *testing.T) {
	f := newUserFixture(t)
	f.workouts.On("ListByUser", mock.Anything, uint64(1), 50).
		Return([]model.Workout{{ID: 2, UserID: 1, Name: "Leg day"}}, nil).Once()
	f.workouts.On("ListByUserExpanded", mock.Anything, uint64(1), 5).
		Return([]model.WorkoutDetail{{Workout: model.Workout{ID: 2, UserID: 1}, Exercises: []model.WorkoutExercise{}}}, nil).Once()
	f.workouts.On("ListByUser", mock.Anything, uint64(9), 50).Return(nil, repository.ErrUserNotFound).Once()

	rec := serve(f.e, http.MethodGet, "/users/1/workouts", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"exercises"`)

	rec = serve(f.e, http.MethodGet, "/users/1/workouts?expand=exercises&limit=5", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"exercises":[]`)

	rec = serve(f.e, http.MethodGet, "/users/9/workouts", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(f.e, http.MethodGet, "/users/1/workouts?limit=ten", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, []string{"query", "limit"}, decodeDetail(t, rec)[0].Location)
}

func TestUserHandler_GenerateWorkout(t *testing.T) {
	f := newUserFixture(t)
	want := service.GenerateOptions{
		WorkoutType:        model.WorkoutUpperBody,
		TargetMuscleGroups: []string{"chest", "triceps"},
		DurationMinutes:    30,
		AvailableEquipment: []model.Equipment{model.EquipmentDumbbells},
	}
	f.gen.On("Generate", mock.Anything, uint64(3), want).Return(&model.GeneratedWorkout{
		WorkoutName:     "Upper Body Workout",
		WorkoutType:     model.WorkoutUpperBody,
		Exercises:       []model.GeneratedExercise{},
		DifficultyLevel: model.LevelIntermediate,
	}, nil).Once()

	rec := serve(f.e, http.MethodPost,
		"/users/3/generate-workout?workout_type=upper_body&target_muscle_groups=Chest,%20triceps&duration_minutes=30&available_equipment=dumbbells", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"workout_name":"Upper Body Workout"`)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CounterWorkoutsGenerated.WithLabelValues("intermediate")))
}

func TestUserHandler_GenerateWorkoutValidation(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantLoc []string
	}{
		{"duration too short", "duration_minutes=10", []string{"query", "duration_minutes"}},
		{"duration not a number", "duration_minutes=long", []string{"query", "duration_minutes"}},
		{"unknown type", "workout_type=yoga", []string{"query", "workout_type"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserFixture(t)
			rec := serve(f.e, http.MethodPost, "/users/3/generate-workout?"+tt.query, "")
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Equal(t, tt.wantLoc, decodeDetail(t, rec)[0].Location)
		})
	}
}

func TestUserHandler_GenerateWorkoutUnknownUser(t *testing.T) {
	f := newUserFixture(t)
	f.gen.On("Generate", mock.Anything, uint64(99), service.GenerateOptions{}).Return(nil, repository.ErrUserNotFound).Once()

	rec := serve(f.e, http.MethodPost, "/users/99/generate-workout", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
