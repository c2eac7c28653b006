package utils

import (
	"time"
)

const _jsonTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Time renders as a UTC timestamp with millisecond precision.
type Time struct {
	time.Time
}

func (t Time) MarshalJSON() ([]byte, error) {
	formatted := t.UTC().Format(_jsonTimeLayout)
	return []byte(`"` + formatted + `"`), nil
}

// NewTimePtr wraps an optional time for JSON rendering.
func NewTimePtr(t *time.Time) *Time {
	if t == nil {
		return nil
	}
	return &Time{Time: *t}
}
