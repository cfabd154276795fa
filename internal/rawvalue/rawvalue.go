// Package rawvalue implements helpers over the generic raw value model: the
// untyped tree of scalars, []any sequences, and map[string]any mappings that
// construction consumes.
package rawvalue

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Normalize converts a decoded document into the canonical raw value model.
// YAML decoding yields map[string]any for string-keyed mappings but
// map[any]any otherwise, plus native int/float64 scalars; both are folded
// into the JSON value model here. Non-string mapping keys are an error.
func Normalize(v any) (any, error) {
	switch t := v.(type) {
	case nil, string, bool, json.Number, float64:
		return t, nil
	case int:
		return json.Number(strconv.Itoa(t)), nil
	case int64:
		return json.Number(strconv.FormatInt(t, 10)), nil
	case uint64:
		return json.Number(strconv.FormatUint(t, 10)), nil
	case []any:
		out := make([]any, len(t))
		for i := range t {
			nv, err := Normalize(t[i])
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			nv, err := Normalize(vv)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("rawvalue: non-string mapping key %v (%T)", k, k)
			}
			nv, err := Normalize(vv)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("rawvalue: unsupported value type %T", v)
	}
}

// DeepCopy returns a structurally independent copy of a raw value tree.
// Scalars are returned as-is.
func DeepCopy(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = DeepCopy(t[i])
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = DeepCopy(vv)
		}
		return out
	default:
		return t
	}
}

// Equal compares two raw value trees. Numbers compare by numeric value, so
// json.Number("3"), int(3) and float64(3) are all equal.
func Equal(a, b any) bool {
	if an, aok := numberOf(a); aok {
		bn, bok := numberOf(b)
		return bok && an == bn
	}
	switch at := a.(type) {
	case nil:
		return b == nil
	case string:
		bt, ok := b.(string)
		return ok && at == bt
	case bool:
		bt, ok := b.(bool)
		return ok && at == bt
	case []any:
		bt, ok := b.([]any)
		if !ok || len(at) != len(bt) {
			return false
		}
		for i := range at {
			if !Equal(at[i], bt[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bt, ok := b.(map[string]any)
		if !ok || len(at) != len(bt) {
			return false
		}
		for k, av := range at {
			bv, ok := bt[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func numberOf(v any) (float64, bool) {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}
