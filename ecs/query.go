package ecs

import "iter"

// Query wraps a View and snapshots its matches once per frame.
// The Scheduler calls Execute before running the system that owns the query,
// so components inserted by an earlier system in the same frame are visible.
type Query[T any] struct {
	view    *View[T]
	storage *Storage

	cachedEntities   []EntityId
	cachedComponents []T
	cacheValid       bool
}

// NewQuery creates a new Query over storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	return &Query[T]{
		view:    NewView[T](storage),
		storage: storage,
	}
}

// Init initializes or re-initializes the Query with a storage.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.cacheValid = false
}

// Execute builds the entity and component caches for this frame.
func (q *Query[T]) Execute() {
	q.cachedEntities = q.cachedEntities[:0]
	q.cachedComponents = q.cachedComponents[:0]

	for id, item := range q.view.Iter() {
		q.cachedEntities = append(q.cachedEntities, id)
		q.cachedComponents = append(q.cachedComponents, item)
	}

	q.cacheValid = true
}

// Len returns the number of matches captured by the last Execute.
func (q *Query[T]) Len() int {
	return len(q.cachedEntities)
}

// Iter returns an iterator over entity IDs and component data.
// Panics if Execute() has not been called this frame.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	if !q.cacheValid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(EntityId, T) bool) {
		for i := range q.cachedEntities {
			if !yield(q.cachedEntities[i], q.cachedComponents[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over component data only.
// Panics if Execute() has not been called this frame.
func (q *Query[T]) Values() iter.Seq[T] {
	if !q.cacheValid {
		panic("Query.Values() called before Query.Execute()")
	}

	return func(yield func(T) bool) {
		for i := range q.cachedComponents {
			if !yield(q.cachedComponents[i]) {
				return
			}
		}
	}
}
