package ezty

import (
	"cmp"
	"reflect"

	"github.com/purpleposeidon/ezty/internal/typereg"
)

//go:generate go tool stringer -type=VariantEnum -output=variant_string.go

type VariantEnum int

const (
	_ VariantEnum = iota // skip zero value, use it as a default (invalid) value for VariantEnum

	VariantStd
	VariantRuntime

	// VariantTotal is a constant that represents the total number of variants defined
	VariantTotal = int(iota)
)

// RuntimeID is a process-local identity assigned the first time a type passes
// through IdentityOfEvery. Ids are unique and stable within a single process
// run only; they are not preserved across runs, builds, or plugin boundaries.
type RuntimeID uint64

// TypeID is a tagged union of two disjoint identity spaces:
//
//   - VariantStd wraps the canonical reflect.Type identity. Stable for the
//     whole process lifetime and guaranteed collision-free, safe as a
//     long-lived cache or map key.
//   - VariantRuntime wraps a RuntimeID from the intern table.
//
// Identities from different variants are never equal, even when built for the
// same concrete type. The zero TypeID is invalid.
type TypeID struct {
	variant VariantEnum
	std     reflect.Type
	run     RuntimeID
}

// IdentityOf returns the canonical (VariantStd) identity of T.
func IdentityOf[T any]() TypeID {
	return TypeID{variant: VariantStd, std: reflect.TypeOf((*T)(nil)).Elem()}
}

// IdentityOfEvery returns the process-local (VariantRuntime) identity of T.
// Two calls for the same T in the same run always agree; nothing else is
// promised.
func IdentityOfEvery[T any]() TypeID {
	e := typereg.Intern(reflect.TypeOf((*T)(nil)).Elem())

	return TypeID{variant: VariantRuntime, run: RuntimeID(e.ID)}
}

// Variant reports which identity space the id belongs to.
func (id TypeID) Variant() VariantEnum { return id.variant }

// Std returns the reflect.Type payload, or ok == false for any other variant.
func (id TypeID) Std() (reflect.Type, bool) {
	if id.variant != VariantStd {
		return nil, false
	}

	return id.std, true
}

// Runtime returns the RuntimeID payload, or ok == false for any other variant.
func (id TypeID) Runtime() (RuntimeID, bool) {
	if id.variant != VariantRuntime {
		return 0, false
	}

	return id.run, true
}

// Compare gives a total order over identities, consistent with equality:
// variants order first, then payloads within a variant. Std payloads order by
// their intern id, which is deterministic within a run but otherwise
// arbitrary, like the identities themselves.
func (id TypeID) Compare(other TypeID) int {
	if c := cmp.Compare(id.variant, other.variant); c != 0 {
		return c
	}

	switch id.variant {
	default:
		return 0

	case VariantStd:
		return cmp.Compare(typereg.Intern(id.std).ID, typereg.Intern(other.std).ID)

	case VariantRuntime:
		return cmp.Compare(id.run, other.run)
	}
}

// rawName resolves the identity back to its raw fully-qualified type name.
func (id TypeID) rawName() string {
	switch id.variant {
	default:
		return "<invalid TypeID>"

	case VariantStd:
		return typereg.RawName(id.std)

	case VariantRuntime:
		name, ok := typereg.Name(uint64(id.run))
		if !ok {
			return "<unknown RuntimeID>"
		}

		return name
	}
}
