package typedparams

import "encoding/json"

// jsonNumber is the number representation produced by the source drivers.
// goccy/go-json aliases encoding/json.Number, so one name covers both.
type jsonNumber = json.Number

// UnknownPolicy controls how raw mapping keys not declared by the schema are
// handled.
type UnknownPolicy int

const (
	UnknownIgnore UnknownPolicy = iota // Skip undeclared keys (default).
	UnknownStrict                      // Reject undeclared keys with an error.
)

// DefaultMaxDepth bounds recursion over the raw value tree when no explicit
// limit is configured. Depth is otherwise input-controlled.
const DefaultMaxDepth = 128

// ConstructOpt bundles construction options.
type ConstructOpt struct {
	// MaxDepth caps nesting depth of the raw value tree; zero selects
	// DefaultMaxDepth.
	MaxDepth int
	// Unknown selects the policy for undeclared raw mapping keys.
	Unknown UnknownPolicy
	// FailFast stops the walk at the first issue instead of aggregating the
	// full set.
	FailFast bool
}

func normalizeOpt(opts []ConstructOpt) ConstructOpt {
	var opt ConstructOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.MaxDepth <= 0 {
		opt.MaxDepth = DefaultMaxDepth
	}
	return opt
}
