package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// RenderDefault renders a schema "default" value for display in a comment.
//
// Null, booleans, and numbers render as in JSON, strings are double-quoted,
// arrays render as "[a, b]", and objects as "{key: value, ...}" in source
// order.
func RenderDefault(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(val)
	case string:
		return strconv.Quote(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return formatFloat(val)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, RenderDefault(item))
		}

		return "[" + strings.Join(parts, ", ") + "]"

	case yaml.MapSlice, map[string]any:
		members := entries(val)

		parts := make([]string, 0, len(members))
		for _, item := range members {
			parts = append(parts, keyString(item.Key)+": "+RenderDefault(item.Value))
		}

		return "{" + strings.Join(parts, ", ") + "}"
	}

	return fmt.Sprint(v)
}

// formatFloat renders f the way JSON encoders do: plain decimal notation,
// switching to an exponent only for very large or very small magnitudes.
func formatFloat(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}
