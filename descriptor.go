package typedparams

import "strings"

// PrimitiveKind enumerates scalar shapes of the raw value model.
type PrimitiveKind int

const (
	PrimitiveString PrimitiveKind = iota
	PrimitiveNumber
	PrimitiveBool
)

func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveString:
		return "string"
	case PrimitiveNumber:
		return "number"
	case PrimitiveBool:
		return "bool"
	default:
		return "primitive(?)"
	}
}

// DescriptorKind tags the variants of Descriptor. The set is closed: the
// matcher switches exhaustively and reports unsupported_type for anything
// else.
type DescriptorKind int

const (
	KindPrimitive DescriptorKind = iota
	KindSchema
	KindSequence
	KindMapping
	KindOptional
	KindUnion
)

// Descriptor declares the expected shape of one value. It is a closed tagged
// variant; exactly the fields relevant to Kind are set. Descriptors are
// immutable once built.
type Descriptor struct {
	Kind      DescriptorKind
	Prim      PrimitiveKind // KindPrimitive
	Schema    *SchemaType   // KindSchema
	Elem      *Descriptor   // KindSequence, KindOptional
	Key       *Descriptor   // KindMapping
	Value     *Descriptor   // KindMapping
	Alts      []*Descriptor // KindUnion, tried in declared order
}

// String renders a short type name for error reporting.
func (d *Descriptor) String() string {
	if d == nil {
		return "<nil>"
	}
	switch d.Kind {
	case KindPrimitive:
		return d.Prim.String()
	case KindSchema:
		if d.Schema == nil {
			return "schema(<nil>)"
		}
		return d.Schema.Name()
	case KindSequence:
		return "sequence(" + d.Elem.String() + ")"
	case KindMapping:
		return "mapping(" + d.Key.String() + ", " + d.Value.String() + ")"
	case KindOptional:
		return "optional(" + d.Elem.String() + ")"
	case KindUnion:
		parts := make([]string, 0, len(d.Alts))
		for _, a := range d.Alts {
			parts = append(parts, a.String())
		}
		return "union(" + strings.Join(parts, " | ") + ")"
	default:
		return "descriptor(?)"
	}
}

// isOptional reports whether the descriptor tolerates an absent raw value.
func (d *Descriptor) isOptional() bool {
	return d != nil && d.Kind == KindOptional
}
