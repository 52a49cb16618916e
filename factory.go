package ecs

// factory mirrors the teacher's Factory pattern (factory.go): a single
// discoverable entry point for constructing the package's top-level
// objects, rather than scattering `New*` constructors across the API.
type factory struct{}

// Factory is the global factory instance.
var Factory factory

// NewWorld constructs an empty World.
func (f factory) NewWorld() *World {
	return NewWorld()
}

// NewQueryDescription constructs an empty QueryDescription.
func (f factory) NewQueryDescription() *QueryDescription {
	return NewQueryDescription()
}

// RegisterComponent registers (or retrieves, if already registered) the
// process-wide ComponentType for T and returns a typed accessor bound to
// it — the teacher's FactoryNewComponent[T], generalized from a
// table.Accessor to this package's Chunk-column accessor.
func RegisterComponent[T any]() AccessibleComponent[T] {
	return AccessibleComponent[T]{ComponentType: registerComponent[T]()}
}
