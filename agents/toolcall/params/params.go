/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package params

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
)

// Extract returns the required argument name as a T.
func Extract[T any](args map[string]any, name string) (T, error) {
	var zero T
	value, ok := args[name]
	if !ok {
		return zero, fmt.Errorf("%s parameter is required", name)
	}
	return convert[T](name, value)
}

// ExtractOptional returns the argument name as a T, or defaultValue when absent.
func ExtractOptional[T any](args map[string]any, name string, defaultValue T) (T, error) {
	value, ok := args[name]
	if !ok || value == nil {
		return defaultValue, nil
	}
	return convert[T](name, value)
}

func convert[T any](name string, value any) (T, error) {
	var zero T
	if v, ok := value.(T); ok {
		return v, nil
	}
	if v, ok := convertNumeric[T](value); ok {
		return v, nil
	}
	return zero, fmt.Errorf("%s parameter must be of type %T, got %T", name, zero, value)
}

// convertNumeric turns JSON numbers into integer types. Fractional values
// are not integers and are rejected.
func convertNumeric[T any](value any) (T, bool) {
	var zero T

	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return zero, false
		}
		f = parsed
	default:
		return zero, false
	}

	switch any(zero).(type) {
	case float64:
		return any(f).(T), true
	}
	if f != math.Trunc(f) {
		return zero, false
	}
	switch any(zero).(type) {
	case int:
		return any(int(f)).(T), true
	case int32:
		if f < math.MinInt32 || f > math.MaxInt32 {
			return zero, false
		}
		return any(int32(f)).(T), true
	case int64:
		return any(int64(f)).(T), true
	}
	return zero, false
}

// Error is the payload returned to the model when a call cannot be served.
func Error(format string, args ...any) map[string]any {
	return map[string]any{"error": fmt.Sprintf(format, args...)}
}

// ErrorWithContext is Error with extra fields describing the failed request.
func ErrorWithContext(err error, context map[string]any) map[string]any {
	response := map[string]any{"error": err.Error()}
	maps.Copy(response, context)
	return response
}
