package schema

import (
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
)

// field returns the value stored under key in an object node.
func field(node any, key string) (any, bool) {
	switch n := node.(type) {
	case yaml.MapSlice:
		for _, item := range n {
			if keyString(item.Key) == key {
				return item.Value, true
			}
		}

	case map[string]any:
		v, ok := n[key]

		return v, ok
	}

	return nil, false
}

// stringField returns the value under key when it is a string.
func stringField(node any, key string) string {
	v, ok := field(node, key)
	if !ok {
		return ""
	}

	s, _ := v.(string)

	return s
}

// isObject reports whether node is an object node.
func isObject(node any) bool {
	switch node.(type) {
	case yaml.MapSlice, map[string]any:
		return true
	}

	return false
}

// entries returns the members of an object node in a stable order: source
// order for [yaml.MapSlice], sorted by key for plain maps.
func entries(node any) yaml.MapSlice {
	switch n := node.(type) {
	case yaml.MapSlice:
		return n

	case map[string]any:
		out := make(yaml.MapSlice, 0, len(n))
		for _, k := range slices.Sorted(maps.Keys(n)) {
			out = append(out, yaml.MapItem{Key: k, Value: n[k]})
		}

		return out
	}

	return nil
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}

	return fmt.Sprint(k)
}
