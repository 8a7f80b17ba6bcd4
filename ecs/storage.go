package ecs

import (
	"iter"
	"reflect"
	"sort"
	"unsafe"
)

type singletonEntry struct {
	dataPtr unsafe.Pointer
	value   any
}

// Storage owns the entity id sequence, one Store per registered component
// type and the singleton components.
type Storage struct {
	registry   *ComponentRegistry
	stores     map[reflect.Type]componentStore
	singletons map[reflect.Type]*singletonEntry
	nextEntity EntityId
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		stores:     make(map[reflect.Type]componentStore),
		singletons: make(map[reflect.Type]*singletonEntry),
		nextEntity: 1,
	}
}

// NewEntity allocates a fresh entity id with no components.
func (s *Storage) NewEntity() EntityId {
	id := s.nextEntity
	s.nextEntity++
	return id
}

// Spawn allocates an entity and inserts the provided components
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	id := s.NewEntity()
	for _, comp := range components {
		s.Insert(id, comp)
	}
	return id
}

// Insert adds or replaces a component on an entity. Components may be passed
// by value or by pointer; the value is copied into the store either way.
func (s *Storage) Insert(id EntityId, component any) {
	compType := componentTypeOf(component)
	if !s.storeFor(compType).setAny(id, component) {
		panic("component value does not match store type " + compType.String())
	}
}

// Despawn removes every component of the entity. The id is not reused.
func (s *Storage) Despawn(id EntityId) {
	for _, store := range s.stores {
		store.remove(id)
	}
}

// RemoveComponent removes a single component from an entity.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) bool {
	store, ok := s.stores[compType]
	if !ok {
		return false
	}
	return store.remove(id)
}

// GetComponent returns a pointer to the component for the given entity ID
// and component type, or nil.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	store, ok := s.stores[compType]
	if !ok {
		return nil
	}
	return store.getAny(id)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	store, ok := s.stores[compType]
	if !ok {
		return false
	}
	return store.has(id)
}

// ComponentsOf returns pointers to every component of the entity, ordered by
// component registration.
func (s *Storage) ComponentsOf(id EntityId) []any {
	var out []any
	for _, t := range s.registry.Types() {
		if store, ok := s.stores[t]; ok {
			if comp := store.getAny(id); comp != nil {
				out = append(out, comp)
			}
		}
	}
	return out
}

// Entities iterates over every entity that has at least one component, in id
// order.
func (s *Storage) Entities() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for id := EntityId(1); id < s.nextEntity; id++ {
			for _, store := range s.stores {
				if store.has(id) {
					if !yield(id) {
						return
					}
					break
				}
			}
		}
	}
}

// StoreOf returns the store for component type T, creating it on first use.
func StoreOf[T any](s *Storage) *Store[T] {
	return s.storeFor(reflect.TypeFor[T]()).(*Store[T])
}

func (s *Storage) storeFor(t reflect.Type) componentStore {
	if store, ok := s.stores[t]; ok {
		return store
	}

	factory := s.registry.getFactory(t)
	if factory == nil {
		panic("component type " + t.String() + " not registered")
	}
	store := factory()
	s.stores[t] = store
	return store
}

// AddSingleton stores a component that is not attached to any entity.
// Passing a pointer keeps that pointer as the singleton; passing a value
// stores a copy. An existing singleton of the same type is replaced.
func (s *Storage) AddSingleton(value any) {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		s.singletons[rv.Type().Elem()] = &singletonEntry{
			dataPtr: rv.UnsafePointer(),
			value:   value,
		}
		return
	}

	ptr := reflect.New(rv.Type())
	ptr.Elem().Set(rv)
	s.singletons[rv.Type()] = &singletonEntry{
		dataPtr: ptr.UnsafePointer(),
		value:   ptr.Interface(),
	}
}

// ReadSingleton fills out, which must be a **T, with the singleton of type T.
// It reports whether the singleton exists.
func (s *Storage) ReadSingleton(out any) bool {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton expects a pointer to a pointer")
	}

	entry := s.getSingletonEntry(rv.Elem().Type().Elem())
	if entry == nil {
		return false
	}
	rv.Elem().Set(reflect.ValueOf(entry.value))
	return true
}

// RemoveSingleton deletes the singleton of the given type.
func (s *Storage) RemoveSingleton(t reflect.Type) {
	delete(s.singletons, t)
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// StorageStats summarises what a Storage currently holds.
type StorageStats struct {
	TotalEntityCount int
	StoreCount       int
	SingletonCount   int
	StoreBreakdown   []StoreStats
	SingletonTypes   []string
}

// StoreStats describes one component store.
type StoreStats struct {
	ComponentType string
	Count         int
}

// CollectStats gathers entity, store and singleton counts.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		StoreCount:     len(s.stores),
		SingletonCount: len(s.singletons),
	}

	for range s.Entities() {
		stats.TotalEntityCount++
	}

	for _, t := range s.registry.Types() {
		if store, ok := s.stores[t]; ok {
			stats.StoreBreakdown = append(stats.StoreBreakdown, StoreStats{
				ComponentType: t.String(),
				Count:         store.Len(),
			})
		}
	}

	for t := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}

// componentTypeOf returns the component type of a value passed by value or
// by pointer.
func componentTypeOf(component any) reflect.Type {
	compType := reflect.TypeOf(component)
	if compType == nil {
		panic("component cannot be nil")
	}

	// If it's a pointer, get the underlying type
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}

	// Components can be structs or primitives (int, string, etc.)
	// But not pointers, maps, channels, or functions (those aren't value types)
	if compType.Kind() == reflect.Ptr || compType.Kind() == reflect.Map ||
		compType.Kind() == reflect.Chan || compType.Kind() == reflect.Func {
		panic("components cannot be pointers, maps, channels, or functions")
	}

	return compType
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the typed component of an entity, or nil.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	ptr, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return ptr
}
