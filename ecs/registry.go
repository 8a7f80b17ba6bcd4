package ecs

import "reflect"

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage instance has its own ComponentRegistry, allowing multiple
// independent ECS systems to coexist without interference.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentStore
	order     []reflect.Type
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentStore),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be used.
// Registering the same type twice is a no-op.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	if _, ok := r.factories[t]; ok {
		return
	}
	r.factories[t] = func() componentStore {
		return NewStore[T]()
	}
	r.order = append(r.order, t)
}

// getFactory returns the factory function for a given component type.
// Returns nil if the type is not registered.
func (r *ComponentRegistry) getFactory(t reflect.Type) func() componentStore {
	return r.factories[t]
}

// Types returns the registered component types in registration order.
func (r *ComponentRegistry) Types() []reflect.Type {
	return r.order
}
