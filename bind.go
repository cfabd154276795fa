package typedparams

import (
	"context"
	"reflect"
)

// Validator is an optional hook on bound parameter structs, run after a
// successful construction. It is the place for checks the schema itself
// cannot express; returned Issues are surfaced as the aggregated error.
type Validator interface {
	Validate(ctx context.Context) error
}

// ConstructAs constructs raw against st and binds the result into a value of
// struct type T, so callers address params.RowNames.TotalRow instead of
// chasing string keys. When T implements Validator the hook runs last; its
// failure leaves no observable partial value, same as any other failure.
func ConstructAs[T any](ctx context.Context, st *SchemaType, raw any, opts ...ConstructOpt) (T, error) {
	var zero T
	inst, err := Construct(ctx, st, raw, opts...)
	if err != nil {
		return zero, err
	}
	var out T
	if err := bindInstance(inst, reflect.ValueOf(&out).Elem()); err != nil {
		return zero, err
	}
	if v, ok := any(out).(Validator); ok {
		if err := v.Validate(ctx); err != nil {
			if iss, ok := AsIssues(err); ok {
				return zero, iss
			}
			return zero, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
		}
	}
	return out, nil
}

// bindInstance copies a constructed instance into a struct value, resolving
// destination fields with ResolveStructKey. The instance has already been
// validated, so a non-assignable destination here is a declaration/struct
// mismatch and reported as schema_invalid. Child issues are rebased under
// the field key so the report names the full location.
func bindInstance(in *Instance, rv reflect.Value) error {
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return Issues{{Path: "/", Code: CodeSchemaInvalid, Message: "bind target must be a struct, got " + rv.Type().String()}}
	}
	idxByName := make(map[string]int, rv.NumField())
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := ResolveStructKey(sf)
		if name == "-" || name == "" {
			continue
		}
		idxByName[name] = i
	}
	for _, f := range in.schema.fields {
		val, ok := in.values[f.Name]
		if !ok {
			continue // optional, absent: leave the zero value
		}
		idx, ok := idxByName[f.Name]
		if !ok {
			continue // declared but not bound by this struct
		}
		fv := rv.Field(idx)
		if !fv.CanSet() {
			continue
		}
		if err := bindValue(val, fv); err != nil {
			if iss, ok := AsIssues(err); ok {
				return RebaseIssues(ChildPath("", f.Name), iss)
			}
			return err
		}
	}
	return nil
}

func bindValue(val any, fv reflect.Value) error {
	if val == nil {
		fv.Set(reflect.Zero(fv.Type()))
		return nil
	}
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		return bindValue(val, fv.Elem())
	}
	switch t := val.(type) {
	case *Instance:
		return bindInstance(t, fv)
	case []any:
		if fv.Kind() != reflect.Slice {
			return bindMismatch(fv, "sequence")
		}
		out := reflect.MakeSlice(fv.Type(), len(t), len(t))
		for i := range t {
			if err := bindValue(t[i], out.Index(i)); err != nil {
				if iss, ok := AsIssues(err); ok {
					return RebaseIssues(IndexPath("", i), iss)
				}
				return err
			}
		}
		fv.Set(out)
		return nil
	case map[string]any:
		if fv.Kind() != reflect.Map || fv.Type().Key().Kind() != reflect.String {
			return bindMismatch(fv, "mapping")
		}
		out := reflect.MakeMapWithSize(fv.Type(), len(t))
		for k, vv := range t {
			ev := reflect.New(fv.Type().Elem()).Elem()
			if err := bindValue(vv, ev); err != nil {
				if iss, ok := AsIssues(err); ok {
					return RebaseIssues(ChildPath("", k), iss)
				}
				return err
			}
			out.SetMapIndex(reflect.ValueOf(k).Convert(fv.Type().Key()), ev)
		}
		fv.Set(out)
		return nil
	case jsonNumber:
		return bindNumber(t, fv)
	default:
		vv := reflect.ValueOf(val)
		if vv.Type().AssignableTo(fv.Type()) {
			fv.Set(vv)
			return nil
		}
		if vv.Type().ConvertibleTo(fv.Type()) && compatibleKinds(vv.Kind(), fv.Kind()) {
			fv.Set(vv.Convert(fv.Type()))
			return nil
		}
		return bindMismatch(fv, typeName(val))
	}
}

// bindNumber narrows a json.Number into the destination's numeric kind.
func bindNumber(n jsonNumber, fv reflect.Value) error {
	switch fv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := n.Int64()
		if err != nil {
			return bindMismatch(fv, "number "+n.String())
		}
		fv.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := n.Int64()
		if err != nil || i < 0 {
			return bindMismatch(fv, "number "+n.String())
		}
		fv.SetUint(uint64(i))
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := n.Float64()
		if err != nil {
			return bindMismatch(fv, "number "+n.String())
		}
		fv.SetFloat(f)
		return nil
	case reflect.String:
		// json.Number destination keeps the textual representation
		if fv.Type() == reflect.TypeOf(jsonNumber("")) {
			fv.Set(reflect.ValueOf(n))
			return nil
		}
		return bindMismatch(fv, "number "+n.String())
	default:
		return bindMismatch(fv, "number "+n.String())
	}
}

func bindMismatch(fv reflect.Value, got string) error {
	return Issues{{
		Path:    "/",
		Code:    CodeSchemaInvalid,
		Message: "cannot bind " + got + " into " + fv.Type().String(),
		Hint:    "struct field type does not match the schema declaration",
	}}
}

// compatibleKinds restricts reflect conversion to same-family kinds so a
// number never silently lands in a string field.
func compatibleKinds(a, b reflect.Kind) bool {
	family := func(k reflect.Kind) int {
		switch k {
		case reflect.String:
			return 1
		case reflect.Bool:
			return 2
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return 3
		default:
			return 0
		}
	}
	fa, fb := family(a), family(b)
	return fa != 0 && fa == fb
}
