package handler

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/WorldsAreYours/fit-and-easy/internal/validation"
)

// StrictBinder decodes JSON request bodies and rejects fields the target
// type does not declare. Decode failures are reported as validation.Errors.
type StrictBinder struct{}

func (StrictBinder) Bind(i any, c echo.Context) error {
	req := c.Request()
	if req.Body == nil || req.ContentLength == 0 {
		return nil
	}
	dec := json.NewDecoder(req.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(i); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return decodeError(err)
	}
	// exactly one JSON value per body
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return validation.New([]string{"body"}, "unexpected data after JSON body", "value_error.jsondecode")
	}
	return nil
}

func decodeError(err error) error {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return verrs
	}
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)
	switch {
	case errors.As(err, &typeErr):
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		return validation.New(loc, "value is not a valid "+typeErr.Type.String(), "type_error")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return validation.New([]string{"body"}, "invalid JSON body", "value_error.jsondecode")
	}
	// encoding/json reports unknown fields only through the message text.
	if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		return validation.Body(strings.Trim(field, `"`), "extra fields not permitted", "value_error.extra")
	}
	return validation.New([]string{"body"}, err.Error(), "value_error.jsondecode")
}
