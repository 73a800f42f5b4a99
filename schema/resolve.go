package schema

import (
	"log/slog"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

const refKey = "$ref"

// Resolve returns a copy of tree in which every local reference node (an
// object with a "$ref" string starting with "#") is replaced by a copy of the
// subtree the reference points to in the original tree.
//
// Any other keys on a reference node are kept and take precedence over the
// referenced content. Referenced content is resolved as well. A reference
// that would re-enter a pointer already being expanded on the current chain
// is left as-is, as are external references and pointers that resolve to
// nothing.
//
// Object nodes in the result are always [yaml.MapSlice]; the input tree is
// never modified.
func Resolve(tree any) any {
	r := &resolver{root: tree}

	return r.resolve(tree, nil)
}

type resolver struct {
	root any
}

func (r *resolver) resolve(node any, chain []string) any {
	switch n := node.(type) {
	case yaml.MapSlice, map[string]any:
		return r.resolveObject(entries(n), chain)

	case []any:
		out := make([]any, len(n))
		for i, v := range n {
			out[i] = r.resolve(v, chain)
		}

		return out
	}

	return node
}

func (r *resolver) resolveObject(obj yaml.MapSlice, chain []string) any {
	ref := stringField(obj, refKey)
	if !strings.HasPrefix(ref, "#") {
		return r.copyObject(obj, chain)
	}

	if slices.Contains(chain, ref) {
		slog.Warn("reference cycle, leaving reference unresolved",
			slog.String("ref", ref),
			slog.String("chain", strings.Join(chain, " -> ")),
		)

		return r.copyObject(obj, chain)
	}

	target, ok := lookupPointer(r.root, ref)
	if !ok {
		slog.Debug("unresolved reference", slog.String("ref", ref))

		return r.copyObject(obj, chain)
	}

	next := append(slices.Clone(chain), ref)
	resolved := r.resolve(target, next)

	resolvedObj, ok := resolved.(yaml.MapSlice)
	if !ok {
		return resolved
	}

	for _, item := range obj {
		key := keyString(item.Key)
		if key == refKey {
			continue
		}

		resolvedObj = setField(resolvedObj, key, r.resolve(item.Value, chain))
	}

	return resolvedObj
}

func (r *resolver) copyObject(obj yaml.MapSlice, chain []string) yaml.MapSlice {
	out := make(yaml.MapSlice, 0, len(obj))
	for _, item := range obj {
		out = append(out, yaml.MapItem{Key: item.Key, Value: r.resolve(item.Value, chain)})
	}

	return out
}

// setField replaces the value under key, or appends it when absent.
func setField(obj yaml.MapSlice, key string, value any) yaml.MapSlice {
	for i, item := range obj {
		if keyString(item.Key) == key {
			obj[i].Value = value

			return obj
		}
	}

	return append(obj, yaml.MapItem{Key: key, Value: value})
}

// lookupPointer evaluates a local JSON Pointer reference ("#/a/b") against
// root. Segments are percent-decoded and then unescaped per RFC 6901.
func lookupPointer(root any, ref string) (any, bool) {
	frag := strings.TrimPrefix(ref, "#")
	if unescaped, err := url.PathUnescape(frag); err == nil {
		frag = unescaped
	}

	if frag == "" {
		return root, true
	}

	if !strings.HasPrefix(frag, "/") {
		return nil, false
	}

	cur := root

	for tok := range strings.SplitSeq(frag[1:], "/") {
		tok = strings.ReplaceAll(strings.ReplaceAll(tok, "~1", "/"), "~0", "~")

		switch n := cur.(type) {
		case []any:
			idx, err := strconv.Atoi(tok)
			if err != nil || idx < 0 || idx >= len(n) {
				return nil, false
			}

			cur = n[idx]

		default:
			v, ok := field(n, tok)
			if !ok {
				return nil, false
			}

			cur = v
		}
	}

	return cur, true
}
