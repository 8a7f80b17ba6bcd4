package ecs_test

import (
	"testing"

	"github.com/plus3/grotto/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSetGet(t *testing.T) {
	store := ecs.NewStore[Position]()

	ptr := store.Set(7, Position{X: 1, Y: 2})
	require.NotNil(t, ptr)
	assert.Equal(t, Position{X: 1, Y: 2}, *store.Get(7))
	assert.True(t, store.Has(7))
	assert.False(t, store.Has(8))
	assert.Nil(t, store.Get(8))
	assert.Equal(t, 1, store.Len())

	// Overwrite keeps the same slot.
	again := store.Set(7, Position{X: 3})
	assert.Same(t, ptr, again)
	assert.Equal(t, float32(3), store.Get(7).X)
	assert.Equal(t, 1, store.Len())
}

func TestStoreMutateInPlace(t *testing.T) {
	store := ecs.NewStore[Position]()
	store.Set(1, Position{})

	store.Get(1).X += 5
	assert.Equal(t, float32(5), store.Get(1).X)
}

func TestStorePointerStability(t *testing.T) {
	store := ecs.NewStore[Position]()
	first := store.Set(1, Position{X: 42})

	// Grow well past a single block.
	for i := ecs.EntityId(2); i < 500; i++ {
		store.Set(i, Position{X: float32(i)})
	}

	assert.Same(t, first, store.Get(1))
	assert.Equal(t, float32(42), first.X)
	assert.Equal(t, float32(499), store.Get(499).X)
}

func TestStoreRemove(t *testing.T) {
	store := ecs.NewStore[Health]()
	store.Set(1, Health{Current: 10})
	store.Set(2, Health{Current: 20})

	assert.True(t, store.Remove(1))
	assert.False(t, store.Remove(1))
	assert.False(t, store.Has(1))
	assert.Equal(t, 1, store.Len())

	// The freed slot is reused without disturbing entity 2.
	store.Set(3, Health{Current: 30})
	assert.Equal(t, 20, store.Get(2).Current)
	assert.Equal(t, 30, store.Get(3).Current)
	assert.Equal(t, 2, store.Len())
}

func TestStoreMustGet(t *testing.T) {
	store := ecs.NewStore[Position]()
	store.Set(1, Position{X: 1})

	assert.NotPanics(t, func() { store.MustGet(1) })
	assert.PanicsWithValue(t, "ecs: entity 9 has no ecs_test.Position component", func() {
		store.MustGet(9)
	})
}

func TestStoreIteration(t *testing.T) {
	store := ecs.NewStore[Score]()
	for i := ecs.EntityId(1); i <= 5; i++ {
		store.Set(i, Score(i*10))
	}
	store.Remove(3)

	var ids []ecs.EntityId
	var total Score
	for id, score := range store.All() {
		ids = append(ids, id)
		total += *score
	}
	assert.Equal(t, []ecs.EntityId{1, 2, 4, 5}, ids)
	assert.Equal(t, Score(120), total)

	ids = ids[:0]
	for id := range store.Ids() {
		ids = append(ids, id)
		if len(ids) == 2 {
			break
		}
	}
	assert.Equal(t, []ecs.EntityId{1, 2}, ids)
}
