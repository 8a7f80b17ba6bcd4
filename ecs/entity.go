package ecs

// EntityId is an opaque entity identifier. Ids are assigned in increasing
// order starting at 1 and are never reused by a Storage.
type EntityId uint32

// InvalidEntity is never returned by NewEntity.
const InvalidEntity EntityId = 0

// Valid reports whether the id could have been issued by a Storage.
func (e EntityId) Valid() bool {
	return e != InvalidEntity
}
