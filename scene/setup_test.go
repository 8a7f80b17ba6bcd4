package scene_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/plus3/grotto/ecs"
	"github.com/plus3/grotto/linalg"
	"github.com/plus3/grotto/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupDemoLayout(t *testing.T) {
	storage := newSceneStorage()
	var logs bytes.Buffer

	camera := scene.Setup(storage, scene.DemoLayout(4, 5), log.New(&logs, "", 0))

	stats := storage.CollectStats()
	assert.Equal(t, 2, stats.TotalEntityCount)

	active := ecs.NewSingleton[scene.ActiveCamera](storage).Get()
	require.NotNil(t, active)
	assert.Equal(t, camera, active.Entity)

	camTransform := ecs.ReadComponent[scene.Transform](storage, camera)
	require.NotNil(t, camTransform)
	assert.Equal(t, linalg.Vec3{0, 0, 1}, camTransform.Position)
	assert.NotNil(t, ecs.ReadComponent[scene.Camera](storage, camera))
	assert.Nil(t, ecs.ReadComponent[scene.Physics](storage, camera))

	drawables := ecs.NewView[struct {
		*scene.Transform
		*scene.Physics
		*scene.Render
	}](storage)
	count := 0
	for _, item := range drawables.Iter() {
		count++
		assert.Equal(t, linalg.Vec3{3, 0, 0.25}, item.Transform.Position)
		assert.Equal(t, linalg.Vec3{0, 0, 10}, item.Physics.EulerVelocity)
		assert.Equal(t, scene.Render{Mesh: 4, Material: 5}, *item.Render)
	}
	assert.Equal(t, 1, count)

	assert.Contains(t, logs.String(), "[APP] made cube entity")
	assert.Contains(t, logs.String(), "[APP] made camera entity")
}
