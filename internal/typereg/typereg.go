// Package typereg derives raw type names from reflect.Type and maintains the
// process-local runtime-identity intern table.
//
// Interned ids are assigned monotonically the first time a type is seen and are
// memoized for the rest of the process run. They are NOT stable across runs or
// builds; callers needing a persistent key must use the reflect.Type identity
// instead.
package typereg

import (
	"reflect"
	"sync"
)

// Entry is a single interned type: its runtime-assigned id and raw name.
type Entry struct {
	ID   uint64
	Name string
}

var (
	mu      sync.RWMutex
	next    uint64
	entries = map[reflect.Type]Entry{}
	names   = map[uint64]string{}
)

// Intern returns the entry for t, assigning a fresh id on first sight.
func Intern(t reflect.Type) Entry {
	mu.RLock()
	e, ok := entries[t]
	mu.RUnlock()

	if ok {
		return e
	}

	mu.Lock()
	defer mu.Unlock()

	if e, ok = entries[t]; ok {
		return e
	}

	next++
	e = Entry{ID: next, Name: RawName(t)}
	entries[t] = e
	names[e.ID] = e.Name

	return e
}

// Name returns the raw name recorded for an interned id.
func Name(id uint64) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	name, ok := names[id]

	return name, ok
}

// RawName returns the fully-qualified name of t: "pkg/import/path.Name" for
// named types (generic instantiations keep full paths inside the brackets,
// which is what reflect.Type.Name reports), and the reflect string form for
// builtins and unnamed composites, which is already short.
func RawName(t reflect.Type) string {
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}

	return t.String()
}
