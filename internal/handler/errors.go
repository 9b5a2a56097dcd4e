package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/WorldsAreYours/fit-and-easy/internal/repository"
	"github.com/WorldsAreYours/fit-and-easy/internal/validation"
)

// respondError translates a service error into the HTTP response. Unknown
// errors are logged and answered with a generic 500.
func respondError(c echo.Context, err error) error {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"detail": verrs})
	}

	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	case errors.Is(err, repository.ErrExerciseNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "exercise not found"})
	case errors.Is(err, repository.ErrWorkoutNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "workout not found"})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, repository.ErrEmailExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": "conflict"})
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return c.JSON(he.Code, echo.Map{"error": he.Message})
	}

	logrus.WithFields(logrus.Fields{
		"path":       c.Request().URL.Path,
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	}).WithError(err).Error("request failed")
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}

// bindAndValidate decodes the body into req and runs the registered
// validator over it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

// queryError converts a failed echo value binding into a query error.
func queryError(err error) error {
	var be *echo.BindingError
	if errors.As(err, &be) {
		return validation.Query(be.Field, "value is not a valid integer", "type_error.integer")
	}
	return validation.New([]string{"query"}, err.Error(), "type_error")
}

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, validation.Path(name, "value is not a valid integer", "type_error.integer")
	}
	return id, nil
}
