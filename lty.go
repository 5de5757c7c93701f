package ezty

import "reflect"

// Layout records a type's static memory footprint.
type Layout struct {
	Size  uintptr
	Align int
}

// LTy is a Ty that also carries the type's Layout.
//
// Equality is structural over both the identity and the layout, mirroring the
// derived behavior of the handle it wraps. Layout is a pure function of the
// type, so two handles for the same type built by the same constructor can
// never disagree on it.
type LTy struct {
	ty     Ty
	layout Layout
}

// LTyOf returns the layout-aware handle for T backed by the canonical
// identity.
func LTyOf[T any]() LTy {
	return LTy{ty: Of[T](), layout: layoutOf[T]()}
}

// LTyOfEvery returns the layout-aware handle for T backed by the
// process-local identity.
func LTyOfEvery[T any]() LTy {
	return LTy{ty: OfEvery[T](), layout: layoutOf[T]()}
}

func layoutOf[T any]() Layout {
	t := reflect.TypeOf((*T)(nil)).Elem()

	return Layout{Size: t.Size(), Align: t.Align()}
}

// Ty returns the identity handle without layout.
func (l LTy) Ty() Ty { return l.ty }

// ID returns the wrapped identity.
func (l LTy) ID() TypeID { return l.ty.ID() }

// Name returns the prettified type name.
func (l LTy) Name() string { return l.ty.Name() }

// Layout returns the recorded size and alignment.
func (l LTy) Layout() Layout { return l.layout }

// String implements fmt.Stringer; like Ty, the debug form is the pretty name.
func (l LTy) String() string { return l.ty.Name() }

// Compare orders by identity first, then by size and alignment, so the order
// stays consistent with structural equality.
func (l LTy) Compare(other LTy) int {
	if c := l.ty.Compare(other.ty); c != 0 {
		return c
	}

	if l.layout.Size != other.layout.Size {
		if l.layout.Size < other.layout.Size {
			return -1
		}

		return 1
	}

	switch {
	default:
		return 0
	case l.layout.Align < other.layout.Align:
		return -1
	case l.layout.Align > other.layout.Align:
		return 1
	}
}
