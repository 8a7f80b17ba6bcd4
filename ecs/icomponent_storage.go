package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// componentStore is the type-erased view of a Store[T] used by Storage,
// View and the Scheduler.
type componentStore interface {
	componentType() reflect.Type
	setAny(id EntityId, item any) bool
	setFrom(id EntityId, ptr unsafe.Pointer)
	pointer(id EntityId) unsafe.Pointer
	getAny(id EntityId) any
	has(id EntityId) bool
	remove(id EntityId) bool
	ids() iter.Seq[EntityId]
	Len() int
}
