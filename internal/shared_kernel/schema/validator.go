package schema

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"green-link/internal/shared_kernel/domain"

	"github.com/araddon/dateparse"
	"github.com/spf13/cast"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Validate checks a full candidate record for a create. Unknown keys are
// ignored and every failing field is reported.
func (s Schema) Validate(input map[string]any) (Record, error) {
	return s.validate(input, false)
}

// ValidatePatch checks only the supplied keys. A supplied but empty optional
// field is kept as a cleared (nil) value.
func (s Schema) ValidatePatch(input map[string]any) (Record, error) {
	return s.validate(input, true)
}

func (s Schema) validate(input map[string]any, partial bool) (Record, error) {
	verr := domain.NewValidationError(s.Kind)
	record := make(Record, len(s.Fields))

	for _, field := range s.Fields {
		raw, supplied := input[field.Name]
		if partial && !supplied {
			continue
		}

		if isAbsent(raw) {
			if field.Required {
				verr.Add(field.Name, fmt.Sprintf("%s is required", field.Label))
				continue
			}
			if supplied {
				record[field.Name] = nil
			}
			continue
		}

		value, msg := normalize(field, raw)
		if msg != "" {
			verr.Add(field.Name, msg)
			continue
		}
		record[field.Name] = value
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return record, nil
}

func isAbsent(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	default:
		return false
	}
}

func normalize(field Field, raw any) (any, string) {
	switch field.Type {
	case FieldTypeNumber:
		return normalizeNumber(field, raw)
	case FieldTypeInteger:
		value, msg := normalizeNumber(field, raw)
		if msg != "" {
			return nil, msg
		}
		f := value.(float64)
		if f != math.Trunc(f) {
			return nil, fmt.Sprintf("%s must be a whole number", field.Label)
		}
		if f > math.MaxInt32 || f < math.MinInt32 {
			return nil, fmt.Sprintf("%s is out of range", field.Label)
		}
		return int(f), ""
	case FieldTypeDate:
		return normalizeDate(field, raw)
	case FieldTypePhone:
		s, err := cast.ToStringE(raw)
		if err != nil || !phonePattern.MatchString(strings.TrimSpace(s)) {
			return nil, fmt.Sprintf("%s must be a 10-digit number", field.Label)
		}
		return strings.TrimSpace(s), ""
	default:
		return normalizeText(field, raw)
	}
}

func normalizeText(field Field, raw any) (any, string) {
	switch raw.(type) {
	case map[string]any, []any:
		return nil, fmt.Sprintf("%s must be text", field.Label)
	}

	s, err := cast.ToStringE(raw)
	if err != nil {
		return nil, fmt.Sprintf("%s must be text", field.Label)
	}
	return strings.TrimSpace(s), ""
}

func normalizeNumber(field Field, raw any) (any, string) {
	if _, isBool := raw.(bool); isBool {
		return nil, fmt.Sprintf("%s must be a number", field.Label)
	}
	if s, isString := raw.(string); isString {
		raw = strings.TrimSpace(s)
	}

	f, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Sprintf("%s must be a number", field.Label)
	}
	if field.NonNegative && f < 0 {
		return nil, fmt.Sprintf("%s must not be negative", field.Label)
	}
	return f, ""
}

func normalizeDate(field Field, raw any) (any, string) {
	switch v := raw.(type) {
	case time.Time:
		return v.UTC(), ""
	case string:
		t, err := dateparse.ParseIn(strings.TrimSpace(v), time.UTC)
		if err != nil {
			return nil, fmt.Sprintf("%s must be a valid date", field.Label)
		}
		return t.UTC(), ""
	default:
		return nil, fmt.Sprintf("%s must be a valid date", field.Label)
	}
}
