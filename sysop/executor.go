package sysop

import (
	"errors"
	"fmt"

	"github.com/snrg-network/gsnrg/common"
	"github.com/snrg-network/gsnrg/core/state"
)

// ErrUnknownKind is returned when no registered handler accepts an
// operation kind.
var ErrUnknownKind = errors.New("unknown operation kind")

// Context carries information available to an operation handler. Now is
// read once per operation from the processor clock and never re-read,
// so every time check within one operation sees the same instant.
// Invoke, when set by the processor, runs a matured proposal payload
// against its target; a nil Invoke leaves proposal execution as a
// mark-and-emit record.
type Context struct {
	From    common.Address
	Now     int64
	StateDB state.StateDB
	Invoke  func(db state.StateDB, target common.Address, payload []byte, now int64) error
}

// Handler is implemented by the engine packages.
type Handler interface {
	CanHandle(kind Kind) bool
	Handle(ctx *Context, op *Op) error
}

// Registry holds registered handlers.
type Registry struct{ handlers []Handler }

// DefaultRegistry is the process-wide handler registry. Engine packages
// register themselves from init(), so importing an engine package is
// what enables its operation kinds.
var DefaultRegistry = &Registry{}

// Register adds a handler to the registry.
func (r *Registry) Register(h Handler) { r.handlers = append(r.handlers, h) }

// Dispatch routes op to the first handler accepting its kind.
func (r *Registry) Dispatch(ctx *Context, op *Op) error {
	for _, h := range r.handlers {
		if h.CanHandle(op.Kind) {
			return h.Handle(ctx, op)
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, op.Kind)
}

// Dispatch routes op through the default registry.
func Dispatch(ctx *Context, op *Op) error {
	return DefaultRegistry.Dispatch(ctx, op)
}

// Execute decodes raw bytes and dispatches through the default registry.
func Execute(ctx *Context, data []byte) error {
	op, err := Decode(data)
	if err != nil {
		return err
	}
	return Dispatch(ctx, op)
}
