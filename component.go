package ecs

import (
	"reflect"
	"sync"
)

// ComponentID is the dense, process-wide stable identifier assigned to a
// registered component type, in order of first registration.
type ComponentID int32

// ComponentType carries the registry-issued identity of a component class
// along with the element layout needed to allocate and index a Chunk
// column for it.
type ComponentType struct {
	id          ComponentID
	name        string
	goType      reflect.Type
	size        uintptr
	align       uintptr
	isZeroSized bool
}

// ID returns the dense id assigned to this component type.
func (c ComponentType) ID() ComponentID { return c.id }

// Size returns the in-memory size, in bytes, of one element.
func (c ComponentType) Size() uintptr { return c.size }

// Align returns the required alignment, in bytes, of one element.
func (c ComponentType) Align() uintptr { return c.align }

// IsZeroSized reports whether this component carries no data, allowing
// callers to skip column allocation entirely.
func (c ComponentType) IsZeroSized() bool { return c.isZeroSized }

// String returns the component's underlying Go type name.
func (c ComponentType) String() string { return c.name }

// componentRegistry is the process-wide, append-only ComponentType
// registry described in spec §4.1. Every registration and lookup takes mu,
// so concurrent calls do not corrupt it, but which type receives which id
// depends on call order; the hot path never writes to it.
type componentRegistry struct {
	mu     sync.Mutex
	byType map[reflect.Type]ComponentType
	byID   []ComponentType
}

var globalRegistry = &componentRegistry{
	byType: make(map[reflect.Type]ComponentType),
}

// registerComponent returns the cached ComponentType for T, assigning the
// next dense id and recording size/align on first registration.
func registerComponent[T any]() ComponentType {
	var zero T
	t := reflect.TypeOf(zero)

	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()

	if ct, ok := globalRegistry.byType[t]; ok {
		return ct
	}

	var size, align uintptr
	if t != nil {
		size = t.Size()
		align = uintptr(t.Align())
	}
	if align == 0 {
		align = 1
	}

	ct := ComponentType{
		id:          ComponentID(len(globalRegistry.byID)),
		name:        typeName(t),
		goType:      t,
		size:        size,
		align:       align,
		isZeroSized: size == 0,
	}
	globalRegistry.byType[t] = ct
	globalRegistry.byID = append(globalRegistry.byID, ct)
	return ct
}

// typeName returns a stable short name for the registered component type,
// used by ComponentsAsString and error messages.
func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// componentTypeByID looks up a previously registered ComponentType by id.
// It panics if the id was never assigned; ids only ever come from a prior
// registerComponent call, so an unknown id is a programming error.
func componentTypeByID(id ComponentID) ComponentType {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	return globalRegistry.byID[id]
}
