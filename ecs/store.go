package ecs

import (
	"fmt"
	"iter"
	"reflect"
	"unsafe"

	"github.com/kamstrup/intmap"
)

const (
	storeBlockSize = 64
)

// Store is a sparse map from entity id to one component kind.
//
// Components live in fixed-size blocks so pointers returned by Get stay valid
// until the entity's component is removed. Iteration follows slot order, which
// is insertion order until removed slots are reused.
type Store[T any] struct {
	slots     *intmap.Map[EntityId, int]
	blocks    []*[storeBlockSize]T
	owners    []EntityId
	freeSlots []int
	nextIndex int
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		slots: intmap.New[EntityId, int](64),
	}
}

func (s *Store[T]) at(index int) *T {
	return &s.blocks[index/storeBlockSize][index%storeBlockSize]
}

// Set inserts or overwrites the component for id and returns a pointer to
// the stored value.
func (s *Store[T]) Set(id EntityId, value T) *T {
	if index, ok := s.slots.Get(id); ok {
		ptr := s.at(index)
		*ptr = value
		return ptr
	}

	var index int
	if len(s.freeSlots) > 0 {
		index = s.freeSlots[len(s.freeSlots)-1]
		s.freeSlots = s.freeSlots[:len(s.freeSlots)-1]
	} else {
		index = s.nextIndex
		s.nextIndex++
		if index/storeBlockSize >= len(s.blocks) {
			s.blocks = append(s.blocks, new([storeBlockSize]T))
		}
		s.owners = append(s.owners, InvalidEntity)
	}

	s.slots.Put(id, index)
	s.owners[index] = id
	ptr := s.at(index)
	*ptr = value
	return ptr
}

// Get returns the component for id, or nil if the entity has none.
func (s *Store[T]) Get(id EntityId) *T {
	index, ok := s.slots.Get(id)
	if !ok {
		return nil
	}
	return s.at(index)
}

// MustGet is Get for callers whose contract guarantees the component exists.
// It panics when the component is missing.
func (s *Store[T]) MustGet(id EntityId) *T {
	ptr := s.Get(id)
	if ptr == nil {
		panic(fmt.Sprintf("ecs: entity %d has no %s component", id, reflect.TypeFor[T]()))
	}
	return ptr
}

// Has reports whether id has a component in this store.
func (s *Store[T]) Has(id EntityId) bool {
	return s.slots.Has(id)
}

// Remove deletes the component for id. It reports whether one existed.
func (s *Store[T]) Remove(id EntityId) bool {
	index, ok := s.slots.Get(id)
	if !ok {
		return false
	}

	s.slots.Del(id)
	var zero T
	*s.at(index) = zero
	s.owners[index] = InvalidEntity
	s.freeSlots = append(s.freeSlots, index)
	return true
}

// Len returns the number of components in the store.
func (s *Store[T]) Len() int {
	return s.slots.Len()
}

// All iterates over every (entity, component) pair.
func (s *Store[T]) All() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		for i := 0; i < s.nextIndex; i++ {
			owner := s.owners[i]
			if owner == InvalidEntity {
				continue
			}
			if !yield(owner, s.at(i)) {
				return
			}
		}
	}
}

// Ids iterates over the entities that have a component in this store.
func (s *Store[T]) Ids() iter.Seq[EntityId] {
	return s.ids()
}

func (s *Store[T]) ids() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for i := 0; i < s.nextIndex; i++ {
			if owner := s.owners[i]; owner != InvalidEntity {
				if !yield(owner) {
					return
				}
			}
		}
	}
}

func (*Store[T]) componentType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (s *Store[T]) setAny(id EntityId, item any) bool {
	switch v := item.(type) {
	case T:
		s.Set(id, v)
	case *T:
		s.Set(id, *v)
	default:
		return false
	}
	return true
}

func (s *Store[T]) setFrom(id EntityId, ptr unsafe.Pointer) {
	s.Set(id, *(*T)(ptr))
}

func (s *Store[T]) pointer(id EntityId) unsafe.Pointer {
	return unsafe.Pointer(s.Get(id))
}

func (s *Store[T]) getAny(id EntityId) any {
	ptr := s.Get(id)
	if ptr == nil {
		return nil
	}
	return ptr
}

func (s *Store[T]) has(id EntityId) bool {
	return s.Has(id)
}

func (s *Store[T]) remove(id EntityId) bool {
	return s.Remove(id)
}
