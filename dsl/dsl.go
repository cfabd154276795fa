// Package dsl is the declaration surface for schema types: a small builder
// over named, ordered fields plus combinators for every descriptor variant.
//
//	rowNames := dsl.Schema("RowNames").
//		Field("TOTAL_ROW", dsl.String()).
//		Field("QUESTION_ROW", dsl.String()).
//		MustBuild()
//
//	params := dsl.Schema("Params").
//		Field("ROW_NAMES", dsl.Ref(rowNames)).
//		Field("PUBLICATION_ROW_ORDER", dsl.SequenceOf(dsl.String())).
//		Field("NOTES", dsl.String()).Optional().
//		MustBuild()
//
// Fields are required unless marked Optional. Build reports every authoring
// defect (missing descriptors, duplicates, cycles, empty unions) as
// schema_invalid issues; defects never wait for instance data.
package dsl

import (
	tp "github.com/NHSDigital/typed-params"
)

// String declares a string primitive descriptor.
func String() *tp.Descriptor { return &tp.Descriptor{Kind: tp.KindPrimitive, Prim: tp.PrimitiveString} }

// Number declares a number primitive descriptor.
func Number() *tp.Descriptor { return &tp.Descriptor{Kind: tp.KindPrimitive, Prim: tp.PrimitiveNumber} }

// Bool declares a bool primitive descriptor.
func Bool() *tp.Descriptor { return &tp.Descriptor{Kind: tp.KindPrimitive, Prim: tp.PrimitiveBool} }

// Ref declares a nested schema descriptor.
func Ref(st *tp.SchemaType) *tp.Descriptor { return &tp.Descriptor{Kind: tp.KindSchema, Schema: st} }

// SequenceOf declares an ordered sequence of elem.
func SequenceOf(elem *tp.Descriptor) *tp.Descriptor {
	return &tp.Descriptor{Kind: tp.KindSequence, Elem: elem}
}

// MappingOf declares a mapping from key to value. key is normally String().
func MappingOf(key, value *tp.Descriptor) *tp.Descriptor {
	return &tp.Descriptor{Kind: tp.KindMapping, Key: key, Value: value}
}

// OptionalOf declares a descriptor that tolerates absence and explicit null.
func OptionalOf(inner *tp.Descriptor) *tp.Descriptor {
	return &tp.Descriptor{Kind: tp.KindOptional, Elem: inner}
}

// UnionOf declares an ordered union; alternatives are tried in the given
// order and the first that matches wins.
func UnionOf(alts ...*tp.Descriptor) *tp.Descriptor {
	return &tp.Descriptor{Kind: tp.KindUnion, Alts: alts}
}

type schemaBuilder struct {
	name   string
	fields []tp.Field
}

type fieldStep struct {
	b *schemaBuilder
}

// Schema starts a builder for a named schema type.
func Schema(name string) *schemaBuilder {
	return &schemaBuilder{name: name}
}

// Field appends a declared field. Declaration order is preserved and drives
// construction and error ordering.
func (b *schemaBuilder) Field(name string, d *tp.Descriptor) *fieldStep {
	b.fields = append(b.fields, tp.Field{Name: name, Type: d})
	return &fieldStep{b: b}
}

// Optional marks the field just declared as optional and returns the builder.
func (f *fieldStep) Optional() *schemaBuilder {
	last := &f.b.fields[len(f.b.fields)-1]
	if last.Type != nil && last.Type.Kind != tp.KindOptional {
		last.Type = OptionalOf(last.Type)
	}
	return f.b
}

// Required marks the field just declared as required (the default) and
// returns the builder.
func (f *fieldStep) Required() *schemaBuilder { return f.b }

func (f *fieldStep) Field(name string, d *tp.Descriptor) *fieldStep { return f.b.Field(name, d) }
func (f *fieldStep) Build() (*tp.SchemaType, error)                 { return f.b.Build() }
func (f *fieldStep) MustBuild() *tp.SchemaType                      { return f.b.MustBuild() }

// Build validates the declaration and returns the immutable SchemaType.
func (b *schemaBuilder) Build() (*tp.SchemaType, error) {
	return tp.NewSchemaType(b.name, b.fields)
}

// MustBuild is like Build but panics on authoring defects.
func (b *schemaBuilder) MustBuild() *tp.SchemaType {
	st, err := b.Build()
	if err != nil {
		panic(err)
	}
	return st
}
