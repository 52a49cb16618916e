/*
Package ecs provides the storage and query core of an archetype-based
Entity-Component-System data engine.

The engine groups entities that share an identical set of component types
(a Signature) into an Archetype, and stores each Archetype's component
data as a Structure-of-Arrays inside fixed-capacity Chunks. This keeps the
iteration hot path cache-friendly and makes structural changes (creating
an entity, adding or removing a component, destroying an entity) O(1)
swap-with-last operations instead of shifts.

Core Concepts:

  - Entity: an opaque id+version handle.
  - ComponentType: a registry-issued identity for a component's Go type.
  - Signature: the sorted, deduplicated component-type set that identifies
    an Archetype.
  - Archetype: the set of entities sharing a Signature, storing its rows
    across one or more Chunks.
  - Query: a compiled, cached match-set of archetypes, built from a
    declarative QueryDescription (all/any/none/exclusive).

Basic Usage:

	world := ecs.Factory.NewWorld()

	position := ecs.RegisterComponent[Position]()
	velocity := ecs.RegisterComponent[Velocity]()

	entity, _ := world.CreateEntity(position.ComponentType, velocity.ComponentType)

	desc := ecs.Factory.NewQueryDescription().WithAll(position.ComponentType, velocity.ComponentType)
	query, _ := world.CompileQuery(desc)

	for view := range query.Entities() {
		pos := position.GetFromChunk(view.Chunk, view.Row)
		vel := velocity.GetFromChunk(view.Chunk, view.Row)
		pos.X += vel.X
		pos.Y += vel.Y
	}

This package is the storage/query core only. Ergonomic variadic
component-arity wrappers, event/hook dispatch, world serialization,
multi-threaded job scheduling, and command buffering are layered on top
by external collaborators; see HookTable (hooks.go), installed through
Config.Hooks, for the seam those layers attach to.
*/
package ecs
