// Package collections holds small generic containers used as sample types by
// the default pretty rules, the tests, and the tydump demo.
package collections

// Vec is a growable slice-backed container.
type Vec[T any] struct {
	items []T
}

// NewVec builds a Vec from the given items.
func NewVec[T any](items ...T) Vec[T] {
	return Vec[T]{items: items}
}

// Push appends an item.
func (v *Vec[T]) Push(item T) {
	v.items = append(v.items, item)
}

// Len returns the number of items.
func (v Vec[T]) Len() int { return len(v.items) }

// At returns the item at index i.
func (v Vec[T]) At(i int) T { return v.items[i] }

// Items returns the backing slice.
func (v Vec[T]) Items() []T { return v.items }
