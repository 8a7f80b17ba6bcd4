package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View joins several component stores. The type T should be a struct with
// embedded pointer fields for each component type. Named fields can be
// marked as optional using the `ecs:"optional"` struct tag.
type View[T any] struct {
	storage     *Storage
	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr

	// index of the first required field; its store drives iteration
	driver int
}

// NewView creates a new view for the given struct type.
// Embedded fields are always required. At least one field must be required.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()

	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	types := make([]reflect.Type, 0, structType.NumField())
	optional := make([]bool, 0, structType.NumField())
	fieldOffset := make([]uintptr, 0, structType.NumField())
	driver := -1

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldType := field.Type

		if fieldType.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		types = append(types, fieldType.Elem())
		fieldOffset = append(fieldOffset, field.Offset)

		isOptional := false
		if !field.Anonymous {
			tag := field.Tag.Get("ecs")
			if tag != "" {
				if tag == "optional" {
					isOptional = true
				} else {
					panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
			}
		}
		optional = append(optional, isOptional)

		if !isOptional && driver == -1 {
			driver = i
		}
	}

	if driver == -1 {
		panic("View needs at least one required component")
	}

	return &View[T]{
		storage:     storage,
		types:       types,
		optional:    optional,
		fieldOffset: fieldOffset,
		driver:      driver,
	}
}

// Fill populates the provided struct pointer with component data for the given entity.
// Returns false if the entity is missing any required components.
// Optional components are set to nil if not present.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	structPtr := unsafe.Pointer(ptr)

	for i, componentType := range v.types {
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i])

		var component unsafe.Pointer
		if store, ok := v.storage.stores[componentType]; ok {
			component = store.pointer(id)
		}

		if component == nil && !v.optional[i] {
			return false
		}
		*(*unsafe.Pointer)(fieldPtr) = component
	}

	return true
}

// Get returns a populated view struct for the given entity, or nil if the entity
// doesn't have all the required components
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// Iter returns an iterator over all entities that have the required components.
// Optional components are set to nil if not present.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		store, ok := v.storage.stores[v.types[v.driver]]
		if !ok {
			return
		}

		var result T
		for id := range store.ids() {
			if !v.Fill(id, &result) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Values returns an iterator over just the view structs (without entity IDs)
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Spawn creates a new entity with components copied out of the view struct.
// Nil optional fields are skipped; a nil required field panics.
func (v *View[T]) Spawn(data T) EntityId {
	structPtr := unsafe.Pointer(&data)

	for i := range v.types {
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i])
		if *(*unsafe.Pointer)(fieldPtr) == nil && !v.optional[i] {
			panic("required component is nil in View.Spawn")
		}
	}

	id := v.storage.NewEntity()
	for i, componentType := range v.types {
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i])
		componentPtr := *(*unsafe.Pointer)(fieldPtr)
		if componentPtr == nil {
			continue
		}
		v.storage.storeFor(componentType).setFrom(id, componentPtr)
	}
	return id
}
