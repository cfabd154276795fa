package typedparams

// Field is one declared (name, descriptor) pair of a SchemaType.
type Field struct {
	Name string
	Type *Descriptor
}

// SchemaType is an immutable, named declaration of fields in declaration
// order. Instances are created once at schema-definition time (via the dsl
// builder or FromStruct) and never mutated; field iteration order drives
// error ordering during construction.
type SchemaType struct {
	name   string
	fields []Field
	index  map[string]int
}

// NewSchemaType assembles a SchemaType from ordered fields. It fails with
// schema_invalid issues for authoring defects: empty names, duplicate or
// unnamed fields, missing descriptors anywhere in the declared tree, empty
// unions, and direct or indirect schema-reference cycles. Defects surface
// here, at declaration time, never during construction.
func NewSchemaType(name string, fields []Field) (*SchemaType, error) {
	st := &SchemaType{name: name, fields: fields, index: make(map[string]int, len(fields))}
	var iss Issues
	if name == "" {
		iss = AppendIssues(iss, Issue{Path: "/", Code: CodeSchemaInvalid, Message: "schema name must not be empty"})
	}
	for i, f := range fields {
		if f.Name == "" {
			iss = AppendIssues(iss, Issue{Path: IndexPath("", i), Code: CodeSchemaInvalid, Message: "field name must not be empty"})
			continue
		}
		if _, dup := st.index[f.Name]; dup {
			iss = AppendIssues(iss, Issue{Path: ChildPath("", f.Name), Code: CodeSchemaInvalid, Message: "duplicate field declaration"})
			continue
		}
		st.index[f.Name] = i
		iss = AppendIssues(iss, checkDescriptor(f.Type, ChildPath("", f.Name), map[*SchemaType]bool{st: true})...)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return st, nil
}

// MustSchemaType is like NewSchemaType but panics on authoring defects.
func MustSchemaType(name string, fields []Field) *SchemaType {
	st, err := NewSchemaType(name, fields)
	if err != nil {
		panic(err)
	}
	return st
}

// Name returns the declared schema name.
func (st *SchemaType) Name() string { return st.name }

// Fields returns the declared fields in declaration order. Callers must not
// mutate the returned slice.
func (st *SchemaType) Fields() []Field { return st.fields }

// Lookup returns the descriptor declared for name.
func (st *SchemaType) Lookup(name string) (*Descriptor, bool) {
	i, ok := st.index[name]
	if !ok {
		return nil, false
	}
	return st.fields[i].Type, true
}

// checkDescriptor walks one descriptor tree collecting authoring defects.
// visiting carries the schema types on the current reference chain so that a
// schema containing itself as a direct or indirect field type is rejected:
// such a declaration would make construction non-terminating.
func checkDescriptor(d *Descriptor, path string, visiting map[*SchemaType]bool) Issues {
	if d == nil {
		return Issues{{Path: path, Code: CodeSchemaInvalid, Message: "field lacks a type descriptor"}}
	}
	var iss Issues
	switch d.Kind {
	case KindPrimitive:
		// nothing nested
	case KindSchema:
		if d.Schema == nil {
			return Issues{{Path: path, Code: CodeSchemaInvalid, Message: "nested schema reference is nil"}}
		}
		if visiting[d.Schema] {
			return Issues{{Path: path, Code: CodeSchemaInvalid, Message: "cyclic schema reference: " + d.Schema.name, Hint: "schema nesting must be acyclic"}}
		}
		visiting[d.Schema] = true
		for _, f := range d.Schema.fields {
			iss = AppendIssues(iss, checkDescriptor(f.Type, ChildPath(path, f.Name), visiting)...)
		}
		delete(visiting, d.Schema)
	case KindSequence, KindOptional:
		iss = AppendIssues(iss, checkDescriptor(d.Elem, path, visiting)...)
	case KindMapping:
		iss = AppendIssues(iss, checkDescriptor(d.Key, path, visiting)...)
		iss = AppendIssues(iss, checkDescriptor(d.Value, path, visiting)...)
	case KindUnion:
		if len(d.Alts) == 0 {
			return Issues{{Path: path, Code: CodeSchemaInvalid, Message: "union declares no alternatives"}}
		}
		for _, a := range d.Alts {
			iss = AppendIssues(iss, checkDescriptor(a, path, visiting)...)
		}
	default:
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeUnsupportedType, Message: "unrecognized descriptor kind"})
	}
	return iss
}
