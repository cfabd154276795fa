package typedparams

import (
	"reflect"
	"sync"
)

// structSchemas caches the SchemaType (or the authoring defect) derived for
// each struct type. Schema declarations are immutable, so introspection runs
// once per type and every later use shares the result, including the failure:
// a malformed declaration fails on first use, not intermittently.
var structSchemas sync.Map // reflect.Type -> structSchemaEntry

type structSchemaEntry struct {
	st  *SchemaType
	err error
}

// FromStruct derives a SchemaType from the exported fields of struct type T,
// replacing the original reflection-over-type-hints discovery with a one-time
// registration step. Field keys follow ResolveStructKey; descriptors are
// derived from the Go field types:
//
//	string                 -> string primitive
//	integer/float kinds    -> number primitive
//	bool                   -> bool primitive
//	struct                 -> nested schema (recursively derived)
//	slice                  -> sequence of the element descriptor
//	map[string]V           -> mapping of string to the value descriptor
//	pointer                -> optional of the pointed-to descriptor
//
// Anything else (interfaces, channels, self-referential structs) is a
// schema-authoring defect reported as schema_invalid.
func FromStruct[T any]() (*SchemaType, error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	return schemaTypeOf(rt)
}

// MustFromStruct is like FromStruct but panics on authoring defects.
func MustFromStruct[T any]() *SchemaType {
	st, err := FromStruct[T]()
	if err != nil {
		panic(err)
	}
	return st
}

func schemaTypeOf(rt reflect.Type) (*SchemaType, error) {
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil, Issues{{Path: "/", Code: CodeSchemaInvalid, Message: "FromStruct requires a struct type, got " + rt.String()}}
	}
	if e, ok := structSchemas.Load(rt); ok {
		ent := e.(structSchemaEntry)
		return ent.st, ent.err
	}
	st, err := deriveSchemaType(rt, map[reflect.Type]bool{})
	structSchemas.Store(rt, structSchemaEntry{st: st, err: err})
	return st, err
}

func deriveSchemaType(rt reflect.Type, visiting map[reflect.Type]bool) (*SchemaType, error) {
	if visiting[rt] {
		return nil, Issues{{Path: "/", Code: CodeSchemaInvalid, Message: "cyclic struct reference: " + rt.String(), Hint: "schema nesting must be acyclic"}}
	}
	visiting[rt] = true
	defer delete(visiting, rt)

	fields := make([]Field, 0, rt.NumField())
	var iss Issues
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := ResolveStructKey(sf)
		if name == "-" || name == "" {
			continue
		}
		d, err := descriptorOf(sf.Type, visiting)
		if err != nil {
			if i2, ok := AsIssues(err); ok {
				iss = AppendIssues(iss, RebaseIssues(ChildPath("", name), i2)...)
			} else {
				iss = AppendIssues(iss, Issue{Path: ChildPath("", name), Code: CodeSchemaInvalid, Message: err.Error(), Cause: err})
			}
			continue
		}
		fields = append(fields, Field{Name: name, Type: d})
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return NewSchemaType(rt.Name(), fields)
}

func descriptorOf(rt reflect.Type, visiting map[reflect.Type]bool) (*Descriptor, error) {
	switch rt.Kind() {
	case reflect.String:
		// json.Number has string kind but carries a numeric value
		if rt == reflect.TypeOf(jsonNumber("")) {
			return &Descriptor{Kind: KindPrimitive, Prim: PrimitiveNumber}, nil
		}
		return &Descriptor{Kind: KindPrimitive, Prim: PrimitiveString}, nil
	case reflect.Bool:
		return &Descriptor{Kind: KindPrimitive, Prim: PrimitiveBool}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return &Descriptor{Kind: KindPrimitive, Prim: PrimitiveNumber}, nil
	case reflect.Struct:
		st, err := deriveSchemaType(rt, visiting)
		if err != nil {
			return nil, err
		}
		return &Descriptor{Kind: KindSchema, Schema: st}, nil
	case reflect.Slice, reflect.Array:
		elem, err := descriptorOf(rt.Elem(), visiting)
		if err != nil {
			return nil, err
		}
		return &Descriptor{Kind: KindSequence, Elem: elem}, nil
	case reflect.Map:
		if rt.Key().Kind() != reflect.String {
			return nil, Issues{{Path: "/", Code: CodeSchemaInvalid, Message: "mapping keys must be strings, got " + rt.Key().String()}}
		}
		val, err := descriptorOf(rt.Elem(), visiting)
		if err != nil {
			return nil, err
		}
		return &Descriptor{
			Kind:  KindMapping,
			Key:   &Descriptor{Kind: KindPrimitive, Prim: PrimitiveString},
			Value: val,
		}, nil
	case reflect.Pointer:
		inner, err := descriptorOf(rt.Elem(), visiting)
		if err != nil {
			return nil, err
		}
		return &Descriptor{Kind: KindOptional, Elem: inner}, nil
	default:
		return nil, Issues{{Path: "/", Code: CodeSchemaInvalid, Message: "no descriptor for Go type " + rt.String()}}
	}
}
