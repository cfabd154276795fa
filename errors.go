package typedparams

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType  = "invalid_type"   // raw value's shape does not satisfy the descriptor
	CodeRequired     = "required"       // declared non-optional field absent from the raw mapping
	CodeUnknownKey   = "unknown_key"    // raw key not declared by the schema (UnknownStrict only)
	CodeUnionNoMatch = "union_no_match" // no union alternative accepted the raw value
	CodeMaxDepth     = "max_depth"      // raw value tree exceeds the configured nesting bound
	CodeParseError   = "parse_error"    // source text could not be decoded into the raw value model
	// Schema-authoring defects (independent of any instance data)
	CodeSchemaInvalid   = "schema_invalid"   // malformed schema declaration
	CodeUnsupportedType = "unsupported_type" // descriptor variant the matcher does not recognize
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /ROW_NAMES/TOTAL_ROW).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: expected descriptor, remediation hints, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected":"string", "got":"bool"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
// An empty set means success; construction never surfaces a partial
// instance alongside a non-empty set.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IsSchemaDefect reports whether any issue in the set describes a defect in
// the schema declaration itself rather than in the instance data.
func IsSchemaDefect(err error) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == CodeSchemaInvalid || it.Code == CodeUnsupportedType {
			return true
		}
	}
	return false
}
