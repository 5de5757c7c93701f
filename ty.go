package ezty

import "github.com/purpleposeidon/ezty/pretty"

// Ty is a comparable, map-key-safe handle for the type of a value.
//
// Equality, ordering, and hashing depend only on the wrapped identity; the
// display name is derived lazily and never participates in comparison, so two
// handles for the same type built by the same constructor are always
// identical no matter how or whether their names were computed.
//
// Note that Of[T]() != OfEvery[T](): the two constructors draw from disjoint
// identity spaces.
type Ty struct {
	id TypeID
}

// Of returns the handle for T backed by the canonical identity.
func Of[T any]() Ty {
	return Ty{id: IdentityOf[T]()}
}

// OfEvery returns the handle for T backed by the process-local identity.
func OfEvery[T any]() Ty {
	return Ty{id: IdentityOfEvery[T]()}
}

// ID returns the wrapped identity.
func (t Ty) ID() TypeID { return t.id }

// Name returns the prettified type name, computed on demand.
func (t Ty) Name() string {
	return namer.Apply(t.id.rawName())
}

// String implements fmt.Stringer; the debug form of a Ty is its pretty name.
func (t Ty) String() string { return t.Name() }

// Compare gives a total order over handles, delegating to the identity.
func (t Ty) Compare(other Ty) int {
	return t.id.Compare(other.id)
}

// namer holds the injected prettifier. Names never affect identity, so
// swapping the table only changes display output.
var namer = pretty.Default()

// SetPrettifier injects a custom name-shortening table. Call it once during
// program initialization, before any Name or String call; it is not
// synchronized against concurrent readers.
func SetPrettifier(p *pretty.Prettifier) {
	namer = p
}
