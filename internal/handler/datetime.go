package handler

import (
	"encoding/json"
	"time"

	"github.com/WorldsAreYours/fit-and-easy/internal/validation"
)

// requestTime accepts RFC 3339 timestamps, zone-less ISO timestamps and
// plain dates. Values without a zone are taken as UTC.
type requestTime struct {
	time.Time
}

var requestTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

func (t *requestTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return validation.Body("date", "invalid datetime format", "value_error.datetime")
	}
	for _, layout := range requestTimeLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return validation.Body("date", "invalid datetime format", "value_error.datetime")
}

func (t *requestTime) timePtr() *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}
