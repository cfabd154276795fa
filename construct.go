package typedparams

import (
	"context"
	"fmt"
	"sort"

	"github.com/NHSDigital/typed-params/i18n"
)

// Construct walks the schema type and the raw value tree in lock-step and
// returns a fully-typed Instance, or an aggregated error set naming every
// independent problem found in a single pass. It never returns a partially
// populated instance: success and failure are the only observable outcomes.
func Construct(ctx context.Context, st *SchemaType, raw any, opts ...ConstructOpt) (*Instance, error) {
	if st == nil {
		return nil, Issues{{Path: "/", Code: CodeSchemaInvalid, Message: "nil schema type"}}
	}
	w := walker{opt: normalizeOpt(opts)}
	inst, iss := w.buildSchema(ctx, st, raw, "", 0)
	if len(iss) > 0 {
		return nil, iss
	}
	return inst, nil
}

type walker struct {
	opt ConstructOpt
}

func pathOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

// buildSchema coerces a raw mapping against every declared field of st,
// merging child values and issues. Iteration follows declaration order so
// error ordering is deterministic.
func (w *walker) buildSchema(ctx context.Context, st *SchemaType, v any, path string, depth int) (*Instance, Issues) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, Issues{{
			Path:    pathOrRoot(path),
			Code:    CodeInvalidType,
			Message: i18n.T(CodeInvalidType, nil),
			Hint:    "expected mapping for schema " + st.name,
			Params:  map[string]any{"expected": st.name, "got": typeName(v)},
		}}
	}
	vals := make(map[string]any, len(st.fields))
	var iss Issues
	for _, f := range st.fields {
		fp := ChildPath(path, f.Name)
		raw, exists := src[f.Name]
		if !exists {
			if f.Type.isOptional() {
				continue
			}
			iss = AppendIssues(iss, Issue{
				Path:    fp,
				Code:    CodeRequired,
				Message: i18n.T(CodeRequired, nil),
				Hint:    "expected " + f.Type.String(),
			})
			if w.opt.FailFast {
				return nil, iss
			}
			continue
		}
		cv, ci := w.coerce(ctx, f.Type, raw, fp, depth+1)
		if len(ci) > 0 {
			iss = AppendIssues(iss, ci...)
			if w.opt.FailFast {
				return nil, iss
			}
			continue
		}
		if cv != absent {
			vals[f.Name] = cv
		}
	}
	if w.opt.Unknown == UnknownStrict {
		iss = AppendIssues(iss, w.collectUnknown(st, src, path)...)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return &Instance{schema: st, values: vals}, nil
}

// collectUnknown reports undeclared keys in key-sorted order for stable
// output.
func (w *walker) collectUnknown(st *SchemaType, src map[string]any, path string) Issues {
	uks := make([]string, 0, len(src))
	for k := range src {
		if _, known := st.index[k]; !known {
			uks = append(uks, k)
		}
	}
	sort.Strings(uks)
	var iss Issues
	for _, k := range uks {
		iss = AppendIssues(iss, Issue{Path: ChildPath(path, k), Code: CodeUnknownKey, Message: i18n.T(CodeUnknownKey, nil)})
	}
	return iss
}

// absent marks an optional value that was explicitly null or missing; it is
// never stored in an instance.
type absentMarker struct{}

var absent any = absentMarker{}

// coerce dispatches exhaustively over the descriptor variant. Ordinary
// mismatches come back as issues, never as a fatal error, so the caller can
// keep walking sibling fields and collect the full picture.
func (w *walker) coerce(ctx context.Context, d *Descriptor, v any, path string, depth int) (any, Issues) {
	if d == nil {
		return nil, Issues{{Path: path, Code: CodeSchemaInvalid, Message: "field lacks a type descriptor"}}
	}
	if depth > w.opt.MaxDepth {
		return nil, Issues{{
			Path:    path,
			Code:    CodeMaxDepth,
			Message: i18n.T(CodeMaxDepth, nil),
			Params:  map[string]any{"max": w.opt.MaxDepth},
		}}
	}
	switch d.Kind {
	case KindPrimitive:
		return w.coercePrimitive(d, v, path)
	case KindSchema:
		inst, iss := w.buildSchema(ctx, d.Schema, v, path, depth)
		if len(iss) > 0 {
			return nil, iss
		}
		return inst, nil
	case KindSequence:
		return w.coerceSequence(ctx, d, v, path, depth)
	case KindMapping:
		return w.coerceMapping(ctx, d, v, path, depth)
	case KindOptional:
		if v == nil {
			return absent, nil
		}
		return w.coerce(ctx, d.Elem, v, path, depth)
	case KindUnion:
		return w.coerceUnion(ctx, d, v, path, depth)
	default:
		// Closed variant: anything else is a configuration defect, not a
		// data defect, and must be reported rather than silently passed.
		return nil, Issues{{
			Path:    path,
			Code:    CodeUnsupportedType,
			Message: i18n.T(CodeUnsupportedType, nil),
			Params:  map[string]any{"kind": fmt.Sprintf("%d", int(d.Kind))},
		}}
	}
}

// coercePrimitive checks the raw value's structural type against the declared
// kind. Matching is strict by shape: no string/number conversions. Numbers
// accept every representation of the raw value model (json.Number, float64,
// and the integer forms YAML sources produce).
func (w *walker) coercePrimitive(d *Descriptor, v any, path string) (any, Issues) {
	switch d.Prim {
	case PrimitiveString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case PrimitiveNumber:
		switch v.(type) {
		case jsonNumber, float64, int, int64:
			return v, nil
		}
	case PrimitiveBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	}
	return nil, Issues{{
		Path:    path,
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, nil),
		Hint:    "expected " + d.String(),
		Params:  map[string]any{"expected": d.String(), "got": typeName(v)},
	}}
}

func (w *walker) coerceSequence(ctx context.Context, d *Descriptor, v any, path string, depth int) (any, Issues) {
	src, ok := v.([]any)
	if !ok {
		return nil, Issues{{
			Path:    path,
			Code:    CodeInvalidType,
			Message: i18n.T(CodeInvalidType, nil),
			Hint:    "expected " + d.String(),
			Params:  map[string]any{"expected": d.String(), "got": typeName(v)},
		}}
	}
	out := make([]any, 0, len(src))
	var iss Issues
	for i := range src {
		ev, ei := w.coerce(ctx, d.Elem, src[i], IndexPath(path, i), depth+1)
		if len(ei) > 0 {
			iss = AppendIssues(iss, ei...)
			if w.opt.FailFast {
				return nil, iss
			}
			continue
		}
		if ev == absent {
			ev = nil // optional element, explicit null
		}
		out = append(out, ev)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// coerceMapping validates each key against the key descriptor and each value
// against the value descriptor. Paths carry the raw key, not the coerced one.
// Keys iterate in sorted order for deterministic issue ordering.
func (w *walker) coerceMapping(ctx context.Context, d *Descriptor, v any, path string, depth int) (any, Issues) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, Issues{{
			Path:    path,
			Code:    CodeInvalidType,
			Message: i18n.T(CodeInvalidType, nil),
			Hint:    "expected " + d.String(),
			Params:  map[string]any{"expected": d.String(), "got": typeName(v)},
		}}
	}
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(map[string]any, len(src))
	var iss Issues
	for _, k := range keys {
		kp := ChildPath(path, k)
		if _, ki := w.coerce(ctx, d.Key, k, kp, depth+1); len(ki) > 0 {
			iss = AppendIssues(iss, ki...)
			if w.opt.FailFast {
				return nil, iss
			}
			continue
		}
		vv, vi := w.coerce(ctx, d.Value, src[k], kp, depth+1)
		if len(vi) > 0 {
			iss = AppendIssues(iss, vi...)
			if w.opt.FailFast {
				return nil, iss
			}
			continue
		}
		if vv == absent {
			vv = nil // optional value, explicit null
		}
		out[k] = vv
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// coerceUnion tries each alternative in declared order; the first that
// coerces with zero issues wins. When none succeed, the issues of every
// rejected alternative are attached at this path, tagged with the
// alternative index, so the report shows each rejected interpretation.
func (w *walker) coerceUnion(ctx context.Context, d *Descriptor, v any, path string, depth int) (any, Issues) {
	var all Issues
	for i, alt := range d.Alts {
		av, ai := w.coerce(ctx, alt, v, path, depth)
		if len(ai) == 0 {
			return av, nil
		}
		for _, it := range ai {
			if it.Params == nil {
				it.Params = map[string]any{}
			}
			it.Params["alternative"] = i
			all = AppendIssues(all, it)
		}
	}
	head := Issues{{
		Path:    path,
		Code:    CodeUnionNoMatch,
		Message: i18n.T(CodeUnionNoMatch, nil),
		Hint:    "expected " + d.String(),
		Params:  map[string]any{"got": typeName(v)},
	}}
	return nil, append(head, all...)
}

// typeName renders a raw value's runtime type for error reporting.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case jsonNumber, float64, int, int64:
		return "number"
	case []any:
		return "sequence"
	case map[string]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}
