package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/grotto/ecs"
	"github.com/stretchr/testify/assert"
)

type commandSystem struct {
	run func(frame *ecs.UpdateFrame)
}

func (s *commandSystem) Execute(frame *ecs.UpdateFrame) {
	s.run(frame)
}

func TestCommands(t *testing.T) {
	registry := newTestRegistry()

	t.Run("operations apply after the frame", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		keep := storage.Spawn(Position{X: 1})
		drop := storage.Spawn(Position{X: 2}, Health{Current: 1})

		var spawned ecs.EntityId
		var order []string
		scheduler.Register(&commandSystem{run: func(frame *ecs.UpdateFrame) {
			frame.Commands.Defer(func() { order = append(order, "defer") })
			frame.Commands.Insert(keep, Tag("kept"))
			frame.Commands.RemoveComponent(keep, reflect.TypeFor[Position]())
			frame.Commands.Despawn(drop)
			frame.Commands.Insert(drop, Tag("ignored"))
			frame.Commands.SpawnThen(func(id ecs.EntityId) {
				spawned = id
				order = append(order, "spawn")
			}, Name{Value: "new"})

			assert.NotNil(t, ecs.ReadComponent[Position](frame.Storage, keep), "nothing applied mid-frame")
		}})

		scheduler.Once(0)

		assert.Nil(t, ecs.ReadComponent[Position](storage, keep))
		assert.Equal(t, Tag("kept"), *ecs.ReadComponent[Tag](storage, keep))
		assert.Nil(t, ecs.ReadComponent[Health](storage, drop))
		assert.Nil(t, ecs.ReadComponent[Tag](storage, drop))
		assert.Equal(t, "new", ecs.ReadComponent[Name](storage, spawned).Value)
		assert.Equal(t, []string{"spawn", "defer"}, order)
	})
}
