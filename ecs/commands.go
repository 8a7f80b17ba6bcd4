package ecs

import "reflect"

// Commands provides a buffer for deferred ECS operations that are executed at the end of a frame.
// This prevents structural changes to the ECS storage during system execution.
type Commands struct {
	spawns   []spawnCommand
	inserts  []insertCommand
	removes  []removeComponentCommand
	despawns []EntityId
	defers   []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	components []any
	done       func(EntityId)
}

type insertCommand struct {
	entity    EntityId
	component any
}

type removeComponentCommand struct {
	entity   EntityId
	compType reflect.Type
}

// Defer queues a function to run after every other queued operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues an entity spawn operation with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// SpawnThen queues a spawn and reports the new id to done once flushed.
func (c *Commands) SpawnThen(done func(EntityId), components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components, done: done})
}

// Insert queues a component insertion or replacement.
func (c *Commands) Insert(entity EntityId, component any) {
	c.inserts = append(c.inserts, insertCommand{entity: entity, component: component})
}

// RemoveComponent queues a component removal operation.
func (c *Commands) RemoveComponent(entity EntityId, compType reflect.Type) {
	c.removes = append(c.removes, removeComponentCommand{entity: entity, compType: compType})
}

// Despawn queues removal of every component of an entity.
func (c *Commands) Despawn(entity EntityId) {
	c.despawns = append(c.despawns, entity)
}

// Flush applies all queued commands to storage and resets the buffer.
func (c *Commands) Flush(storage *Storage) {
	despawned := make(map[EntityId]bool, len(c.despawns))

	for _, id := range c.despawns {
		storage.Despawn(id)
		despawned[id] = true
	}

	for _, cmd := range c.removes {
		if !despawned[cmd.entity] {
			storage.RemoveComponent(cmd.entity, cmd.compType)
		}
	}

	for _, cmd := range c.inserts {
		if !despawned[cmd.entity] {
			storage.Insert(cmd.entity, cmd.component)
		}
	}

	for _, cmd := range c.spawns {
		id := storage.Spawn(cmd.components...)
		if cmd.done != nil {
			cmd.done(id)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.inserts = c.inserts[:0]
	c.removes = c.removes[:0]
	c.despawns = c.despawns[:0]
	c.defers = c.defers[:0]
}
