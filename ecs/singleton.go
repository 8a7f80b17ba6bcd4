package ecs

import (
	"reflect"
	"unsafe"
)

// Singleton gives systems direct access to one component instance that is
// not attached to any entity: input snapshots, the active camera, session
// flags.
type Singleton[T any] struct {
	storage       *Storage
	componentPtr  unsafe.Pointer
	componentType reflect.Type
}

// NewSingleton returns an accessor for the singleton of type T, creating it
// from initializer (or the zero value) when storage does not hold one yet.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	componentType := reflect.TypeFor[T]()

	entry := storage.getSingletonEntry(componentType)
	if entry == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
		entry = storage.getSingletonEntry(componentType)
	}

	return &Singleton[T]{
		storage:       storage,
		componentPtr:  entry.dataPtr,
		componentType: componentType,
	}
}

// Init binds the accessor to a storage.
// This is called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.componentType = reflect.TypeFor[T]()
	s.updateCache()
}

// Get returns a pointer to the singleton component, or nil if it has not
// been added to storage.
func (s *Singleton[T]) Get() *T {
	if s.componentPtr == nil {
		s.updateCache()
	}
	if s.componentPtr == nil {
		return nil
	}
	return (*T)(s.componentPtr)
}

// Set replaces the singleton value, adding it to storage if needed.
func (s *Singleton[T]) Set(value T) {
	if ptr := s.Get(); ptr != nil {
		*ptr = value
		return
	}
	s.storage.AddSingleton(value)
	s.updateCache()
}

func (s *Singleton[T]) updateCache() {
	if s.storage == nil {
		return
	}
	if entry := s.storage.getSingletonEntry(s.componentType); entry != nil {
		s.componentPtr = entry.dataPtr
	} else {
		s.componentPtr = nil
	}
}

// Exists returns true if the singleton component has been added to storage
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}
