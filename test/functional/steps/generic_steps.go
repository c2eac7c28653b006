package steps

import (
	"strings"

	"github.com/cucumber/godog"
	"github.com/spf13/cast"
)

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.Equal(code, fc.response.StatusCode(), "unexpected status code, body: %s", fc.response.String())
	return nil
}

func (fc *FeatureContext) theResponseFieldShouldBe(path, expected string) error {
	value := fc.body.Get(path)
	fc.require.True(value.Exists(), "field %s missing in %s", path, fc.body.Raw)
	fc.require.Equal(expected, fc.unscoped(value.String()))
	return nil
}

func (fc *FeatureContext) theResponseShouldReportErrorsFor(fields string) error {
	reported := make(map[string]bool)
	for _, field := range fc.body.Get("errors.#.field").Array() {
		reported[field.String()] = true
	}

	for _, field := range strings.Split(fields, ",") {
		field = strings.TrimSpace(field)
		fc.require.True(reported[field], "no error reported for %s in %s", field, fc.body.Raw)
	}
	return nil
}

// tableFields turns a two column | field | value | table into a request body.
// Values that look like numbers are sent as numbers.
func tableFields(table *godog.Table) map[string]any {
	fields := make(map[string]any, len(table.Rows))
	for _, row := range table.Rows {
		if len(row.Cells) < 2 {
			continue
		}
		key, raw := row.Cells[0].Value, row.Cells[1].Value
		if number, err := cast.ToFloat64E(raw); err == nil && !strings.HasPrefix(raw, "0") {
			fields[key] = number
			continue
		}
		fields[key] = raw
	}
	return fields
}
