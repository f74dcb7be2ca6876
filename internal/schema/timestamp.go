package schema

import (
	"fmt"
	"strings"
	"time"
)

// utcSuffix is normalized to an explicit offset before parsing.
const utcSuffix = "Z"

// timestampLayouts are the ISO-8601 shapes accepted for startDate and endDate.
// Go accepts a fractional second after the seconds field without a layout entry.
var timestampLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// TimestampError explains why a date field did not parse.
type TimestampError struct {
	Field  string
	Value  any
	Reason string
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("%s %v: %s", e.Field, e.Value, e.Reason)
}

// Timestamp is the outcome of parsing one date field: Time is valid only when Err is nil.
type Timestamp struct {
	Time time.Time
	Err  *TimestampError
}

// ParseTimestamp parses a date field value. Timestamps without a zone are read as UTC.
func ParseTimestamp(field string, value any) Timestamp {
	raw, ok := value.(string)
	if !ok {
		return Timestamp{Err: &TimestampError{
			Field:  field,
			Value:  value,
			Reason: fmt.Sprintf("expected a string, got %T", value),
		}}
	}

	normalized := strings.TrimSpace(raw)
	if strings.HasSuffix(normalized, utcSuffix) {
		normalized = strings.TrimSuffix(normalized, utcSuffix) + "+00:00"
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return Timestamp{Time: t}
		}
	}

	return Timestamp{Err: &TimestampError{
		Field:  field,
		Value:  fmt.Sprintf("%q", raw),
		Reason: "not an ISO-8601 timestamp",
	}}
}
