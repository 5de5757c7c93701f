// Package ezty provides lightweight runtime type-identity handles.
//
// The interesting pieces:
//   - Ty: a comparable, map-key-safe, human-readable handle for "the type of
//     a value", built from either the canonical identity (Of) or a
//     process-local one (OfEvery)
//   - TypeID: the two-variant identity union behind Ty; the variants are
//     disjoint identity spaces and never compare equal
//   - LTy: Ty plus the type's size and alignment
//
// Dynamic erasure and safe downcasting live in the anydebug subpackage, name
// shortening in the pretty subpackage.
package ezty
