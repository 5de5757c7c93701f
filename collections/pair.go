package collections

// Pair holds two values of independent types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair builds a Pair.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns both values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}
