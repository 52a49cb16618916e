package ecs

// HookTable holds the no-op-by-default callbacks the core invokes at the
// four lifecycle points named in spec §6: entity create, component set,
// component remove, and entity destroy. The core defines no handlers of
// its own; wiring these up is left to event/hook-dispatch layers built on
// top of this package (explicitly out of scope per spec §1).
type HookTable struct {
	OnEntityCreate    func(Entity)
	OnComponentSet    func(Entity, ComponentType)
	OnComponentRemove func(Entity, ComponentType)
	OnEntityDestroy   func(Entity)
}

func (h HookTable) fireEntityCreate(e Entity) {
	if h.OnEntityCreate != nil {
		h.OnEntityCreate(e)
	}
}

func (h HookTable) fireComponentSet(e Entity, t ComponentType) {
	if h.OnComponentSet != nil {
		h.OnComponentSet(e, t)
	}
}

func (h HookTable) fireComponentRemove(e Entity, t ComponentType) {
	if h.OnComponentRemove != nil {
		h.OnComponentRemove(e, t)
	}
}

func (h HookTable) fireEntityDestroy(e Entity) {
	if h.OnEntityDestroy != nil {
		h.OnEntityDestroy(e)
	}
}
