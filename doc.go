// Package typedparams converts untyped, generically-parsed configuration
// trees into statically-shaped, attribute-accessible parameter objects,
// guided entirely by a declared schema.
//
//   - Construct walks a SchemaType and a raw value tree in lock-step and
//     returns a fully-typed Instance or the complete, path-qualified set of
//     validation Issues (never a partial result, never just the first error)
//   - ConstructAs binds the result into a user struct so code addresses
//     params.RowNames.TotalRow instead of raw["ROW_NAMES"]["TOTAL_ROW"]
//   - Container holds the current parameters for one schema type and swaps
//     them atomically on reconfiguration
//
// Design policy:
//   - Declarations live in dsl/ (builder + combinators) or come from
//     FromStruct reflection; both are one-time registration steps.
//   - Text parsing lives in source/ (JSON, YAML); the core only consumes
//     already-parsed trees.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	st := dsl.Schema("Params").
//		Field("ROW_NAMES", dsl.Ref(rowNames)).
//		MustBuild()
//	raw, err := source.JSONFile("params/2024.json")
//	inst, err := typedparams.Construct(ctx, st, raw)
package typedparams
