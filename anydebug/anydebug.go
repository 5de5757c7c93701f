// Package anydebug stores heterogeneous values behind a single
// dynamic-dispatch handle while keeping them debug-printable and recoverable.
//
// Erase wraps any value at the erasure boundary; the handle reports the true
// concrete type of its payload (never the wrapper's own type, no matter how
// many layers of indirection sit in between) and Downcast recovers the
// payload when, and only when, the candidate type matches.
package anydebug

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"github.com/purpleposeidon/ezty"
)

var ErrTypeMismatch = errors.New("downcast type does not match the value's type")

// AnyDebug is the erased-value capability: debug formatting, true concrete
// type reporting, and payload access for downcasting. Value is the standard
// implementation; any type whose payload survives these three operations may
// implement it.
type AnyDebug interface {
	fmt.Formatter

	// TypeName returns the prettified name of the payload's concrete type.
	TypeName() string

	// Ty returns the identity handle of the payload's concrete type, not of
	// whatever wrapper is holding it.
	Ty() ezty.Ty

	// Interface returns the payload as a bare any.
	Interface() any
}

// Value is an erased value: the payload plus the identity captured at the
// erasure boundary. Every concrete type qualifies, there is no registration
// step; values shared across goroutines must be race-free on their own, the
// handle adds no locking.
type Value struct {
	v  any
	ty ezty.Ty
}

// Erase wraps v in an erased handle. Erasing a handle again (or a pointer to
// one, or any other AnyDebug implementation) unwraps it first, so the
// resulting handle still reports the innermost payload's type rather than the
// wrapper's.
func Erase[T any](v T) Value {
	if ad, ok := any(v).(AnyDebug); ok {
		if inner, ok := ad.(Value); ok {
			return inner
		}

		return Value{v: ad.Interface(), ty: ad.Ty()}
	}

	return Value{v: v, ty: ezty.Of[T]()}
}

// TypeName returns the prettified name of the payload's concrete type.
func (v Value) TypeName() string { return v.ty.Name() }

// Ty returns the identity handle of the payload's concrete type.
func (v Value) Ty() ezty.Ty { return v.ty }

// Interface returns the payload.
func (v Value) Interface() any { return v.v }

// Format implements fmt.Formatter by forwarding every verb and flag to the
// payload, so formatting the handle prints exactly what formatting the
// payload would.
func (v Value) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), v.v)
}

// Dump returns a deep multi-line dump of the payload, pointer chasing and
// unexported fields included.
func (v Value) Dump() string {
	return spew.Sdump(v.v)
}

// Downcast recovers the concrete payload of h as a T. It succeeds iff the
// handle's identity equals Of[T](); a wrong guess reports ErrTypeMismatch and
// leaves the payload untouched. A nil handle never matches.
func Downcast[T any](h AnyDebug) (T, error) {
	var zero T

	want := ezty.Of[T]()
	if h == nil {
		return zero, fmt.Errorf("%w: have nil handle, want %s", ErrTypeMismatch, want.Name())
	}

	if h.Ty() != want {
		return zero, fmt.Errorf("%w: have %s, want %s", ErrTypeMismatch, h.TypeName(), want.Name())
	}

	out, ok := h.Interface().(T)
	if !ok {
		// Identity said yes but the payload disagrees: a foreign AnyDebug
		// implementation is reporting a Ty it does not hold.
		return zero, fmt.Errorf("%w: handle reports %s but holds %T", ErrTypeMismatch, h.TypeName(), h.Interface())
	}

	return out, nil
}
