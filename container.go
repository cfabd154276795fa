package typedparams

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/NHSDigital/typed-params/source"
)

// Container holds the "current" typed parameters for one schema type and
// exposes atomic replacement, the process-wide reconfiguration point for
// per-epoch configuration. Readers see either the fully-old or fully-new
// value, never a mix; a failed Replace leaves the container untouched.
//
// Current returns nil until the first successful Replace; initialize before
// the first read.
type Container[T any] struct {
	schema *SchemaType
	opt    ConstructOpt

	mu  sync.Mutex // serializes writers
	cur atomic.Pointer[T]
}

// NewContainer creates an empty container bound to the given schema type.
// The same schema is used for the initial construction and for every later
// Replace.
func NewContainer[T any](st *SchemaType, opts ...ConstructOpt) *Container[T] {
	return &Container[T]{schema: st, opt: normalizeOpt(opts)}
}

// NewContainerFor derives the schema from struct type T via FromStruct.
func NewContainerFor[T any](opts ...ConstructOpt) (*Container[T], error) {
	st, err := FromStruct[T]()
	if err != nil {
		return nil, err
	}
	return NewContainer[T](st, opts...), nil
}

// Replace constructs raw against the container's schema type and atomically
// swaps the held value on success. On failure the previous value stays
// observable and the aggregated error is returned. Replace calls are
// serialized relative to each other; reads never block.
func (c *Container[T]) Replace(ctx context.Context, raw any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, err := ConstructAs[T](ctx, c.schema, raw, c.opt)
	if err != nil {
		return err
	}
	c.cur.Store(&v)
	return nil
}

// ReplaceFromFile reads a JSON document from path and replaces the held
// value with its constructed result, with the same atomicity as Replace.
func (c *Container[T]) ReplaceFromFile(ctx context.Context, path string) error {
	raw, err := source.JSONFile(path)
	if err != nil {
		return Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return c.Replace(ctx, raw)
}

// Current returns the held value, or nil before the first successful
// Replace. The result must be treated as read-only: it may be shared with
// concurrent readers.
func (c *Container[T]) Current() *T {
	return c.cur.Load()
}

// Schema returns the schema type the container constructs against.
func (c *Container[T]) Schema() *SchemaType { return c.schema }
