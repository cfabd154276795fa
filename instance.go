package typedparams

import (
	"github.com/NHSDigital/typed-params/internal/rawvalue"
)

// Instance is a fully-typed materialization of one raw mapping against a
// SchemaType. Field values are scalars, []any sequences, map[string]any
// mappings, or nested *Instance objects. An Instance is only ever observable
// in a complete state: Construct returns it exclusively when the whole
// subtree validated.
type Instance struct {
	schema *SchemaType
	values map[string]any
}

// Schema returns the SchemaType this instance was constructed against.
func (in *Instance) Schema() *SchemaType { return in.schema }

// Get returns the coerced value of a declared field. The second result is
// false when the field was declared optional and absent from the raw input.
func (in *Instance) Get(name string) (any, bool) {
	v, ok := in.values[name]
	return v, ok
}

// String returns the value of a string-typed field, or "" when absent.
func (in *Instance) String(name string) string {
	s, _ := in.values[name].(string)
	return s
}

// Nested returns the child instance of a nested-schema field, or nil.
func (in *Instance) Nested(name string) *Instance {
	c, _ := in.values[name].(*Instance)
	return c
}

// Sequence returns the coerced elements of a sequence field, or nil.
func (in *Instance) Sequence(name string) []any {
	s, _ := in.values[name].([]any)
	return s
}

// Mapping returns the coerced entries of a mapping field, or nil.
func (in *Instance) Mapping(name string) map[string]any {
	m, _ := in.values[name].(map[string]any)
	return m
}

// Raw converts the instance back into the generic raw value model, deeply
// copied so callers cannot alias the instance's internals. Re-constructing
// from the result yields an equal instance.
func (in *Instance) Raw() any {
	out := make(map[string]any, len(in.values))
	for _, f := range in.schema.fields {
		v, ok := in.values[f.Name]
		if !ok {
			continue
		}
		out[f.Name] = rawOf(v)
	}
	return out
}

func rawOf(v any) any {
	switch t := v.(type) {
	case *Instance:
		return t.Raw()
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = rawOf(t[i])
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = rawOf(vv)
		}
		return out
	default:
		return rawvalue.DeepCopy(v)
	}
}

// Equal reports whether two instances were built against the same schema
// type and are attribute-wise equal, recursively. Numbers compare by value
// regardless of representation.
func (in *Instance) Equal(other *Instance) bool {
	if in == nil || other == nil {
		return in == other
	}
	if in.schema != other.schema {
		return false
	}
	return rawvalue.Equal(in.Raw(), other.Raw())
}
