package ecs

// Config holds global, process-wide tunables for the engine. Like the
// component registry, it is meant to be set once during single-threaded
// initialization, before any World starts creating entities; it is not
// guarded against concurrent mutation.
var Config config = config{
	ChunkBytesBudget:            16384,
	EmptySignatureChunkCapacity: 4096,
}

type config struct {
	// ChunkBytesBudget is the default byte budget a new Archetype divides
	// by its row stride to pick a Chunk capacity (spec §4.5).
	ChunkBytesBudget uintptr

	// EmptySignatureChunkCapacity is the Chunk capacity used when an
	// Archetype's row stride is zero (an all-zero-sized-component or
	// componentless Signature), where ChunkBytesBudget/stride is
	// undefined. Not specified by spec §4.5; this package defaults it to
	// 4096.
	EmptySignatureChunkCapacity int

	// Hooks are invoked at the four lifecycle points named in spec §6.
	Hooks HookTable
}

// SetHooks installs the engine-wide hook table.
func (c *config) SetHooks(h HookTable) {
	c.Hooks = h
}

// chunkCapacityFor picks the Chunk capacity for a Signature with the
// given row stride: ChunkBytesBudget / stride, floored at 1 row, per
// spec §4.5 ("default 16384 bytes ÷ row stride, minimum 1").
func chunkCapacityFor(stride uintptr) int {
	if stride == 0 {
		return Config.EmptySignatureChunkCapacity
	}
	capacity := int(Config.ChunkBytesBudget / stride)
	if capacity < 1 {
		capacity = 1
	}
	return capacity
}
