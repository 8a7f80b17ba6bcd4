package scene_test

import (
	"testing"

	"github.com/plus3/grotto/ecs"
	"github.com/plus3/grotto/linalg"
	"github.com/plus3/grotto/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBasis(t *testing.T) {
	t.Run("identity orientation", func(t *testing.T) {
		basis := scene.ComputeBasis(linalg.Vec3{})
		assert.True(t, basis.Forwards.ApproxEqual(linalg.Vec3{1, 0, 0}))
		assert.True(t, basis.Right.ApproxEqual(linalg.Vec3{0, -1, 0}))
		assert.True(t, basis.Up.ApproxEqual(linalg.Vec3{0, 0, 1}))
	})

	t.Run("orthonormal within pitch limits", func(t *testing.T) {
		for yaw := float32(0); yaw < 360; yaw += 17 {
			for pitch := float32(-89); pitch <= 89; pitch += 11 {
				b := scene.ComputeBasis(linalg.Vec3{0, pitch, yaw})
				assert.InDelta(t, 1, linalg.Length(b.Forwards), 1e-5)
				assert.InDelta(t, 1, linalg.Length(b.Right), 1e-5)
				assert.InDelta(t, 1, linalg.Length(b.Up), 1e-5)
				assert.InDelta(t, 0, linalg.Dot(b.Forwards, b.Right), 1e-5)
				assert.InDelta(t, 0, linalg.Dot(b.Forwards, b.Up), 1e-5)
				assert.InDelta(t, 0, linalg.Dot(b.Right, b.Up), 1e-5)
			}
		}
	})
}

func TestApplyLook(t *testing.T) {
	e := scene.ApplyLook(linalg.Vec3{0, 80, 10}, 0, 50, 89)
	assert.Equal(t, float32(89), e[1])

	e = scene.ApplyLook(linalg.Vec3{0, -80, 10}, 0, -50, 89)
	assert.Equal(t, float32(-89), e[1])

	e = scene.ApplyLook(linalg.Vec3{0, 0, 355}, 10, 0, 89)
	assert.InDelta(t, 5, e[2], 1e-4)

	e = scene.ApplyLook(linalg.Vec3{0, 0, 5}, -10, 0, 89)
	assert.InDelta(t, 355, e[2], 1e-4)

	e = scene.ApplyLook(linalg.Vec3{0, 0, 350}, 10, 0, 89)
	assert.Equal(t, float32(0), e[2])

	e = scene.ApplyLook(linalg.Vec3{0, 0, 0}, -1e-6, 0, 89)
	assert.GreaterOrEqual(t, e[2], float32(0))
	assert.Less(t, e[2], float32(360))
}

// capturedCamera returns a camera system that has already been toggled off
// and on again, so it is capturing and anchored at the origin.
func capturedCamera(t *testing.T, transforms *ecs.Store[scene.Transform], id ecs.EntityId) *scene.CameraSystem {
	t.Helper()
	sys := scene.NewCameraSystem(scene.DefaultControlConfig(), nil)
	var cam scene.Camera
	sys.Update(transforms, id, &cam, snapshot(0, 0, scene.KeyCaptureToggle), 0)
	sys.Update(transforms, id, &cam, snapshot(0, 0), 0)
	sys.Update(transforms, id, &cam, snapshot(0, 0, scene.KeyCaptureToggle), 0)
	require.True(t, sys.FreeLook.Captured)
	require.NotNil(t, sys.FreeLook.Anchor)
	return sys
}

func TestCameraUpdate(t *testing.T) {
	t.Run("pitch stays pinned under repeated look", func(t *testing.T) {
		transforms := ecs.NewStore[scene.Transform]()
		transforms.Set(1, scene.Transform{})
		sys := capturedCamera(t, transforms, 1)

		var cam scene.Camera
		y := 0.0
		for range 20 {
			y -= 1000
			sys.Update(transforms, 1, &cam, snapshot(0, y), 0)
			assert.LessOrEqual(t, transforms.Get(1).Eulers[1], float32(89))
		}
		assert.Equal(t, float32(89), transforms.Get(1).Eulers[1])

		for range 20 {
			y += 1000
			sys.Update(transforms, 1, &cam, snapshot(0, y), 0)
		}
		assert.Equal(t, float32(-89), transforms.Get(1).Eulers[1])
	})

	t.Run("yaw stays in [0, 360)", func(t *testing.T) {
		transforms := ecs.NewStore[scene.Transform]()
		transforms.Set(1, scene.Transform{})
		sys := capturedCamera(t, transforms, 1)

		var cam scene.Camera
		x := 0.0
		for i := range 200 {
			if i < 100 {
				x += 733
			} else {
				x -= 911
			}
			sys.Update(transforms, 1, &cam, snapshot(x, 0), 0)
			yaw := transforms.Get(1).Eulers[2]
			assert.GreaterOrEqual(t, yaw, float32(0))
			assert.Less(t, yaw, float32(360))
		}
	})

	t.Run("yaw just below zero wraps inside [0, 360)", func(t *testing.T) {
		transforms := ecs.NewStore[scene.Transform]()
		transforms.Set(1, scene.Transform{})
		sys := capturedCamera(t, transforms, 1)
		transforms.Get(1).Eulers[2] = 0.05

		var cam scene.Camera
		sys.Update(transforms, 1, &cam, snapshot(1.0000002, 0), 0)
		yaw := transforms.Get(1).Eulers[2]
		assert.GreaterOrEqual(t, yaw, float32(0))
		assert.Less(t, yaw, float32(360))
	})

	t.Run("no look before capture is toggled on again", func(t *testing.T) {
		transforms := ecs.NewStore[scene.Transform]()
		transforms.Set(1, scene.Transform{Eulers: linalg.Vec3{0, 10, 20}})
		sys := scene.NewCameraSystem(scene.DefaultControlConfig(), nil)

		var cam scene.Camera
		for i := range 5 {
			sys.Update(transforms, 1, &cam, snapshot(float64(i*100), float64(i*50)), 0)
		}
		assert.Equal(t, linalg.Vec3{0, 10, 20}, transforms.Get(1).Eulers)
	})

	t.Run("basis and view come from the start of the tick", func(t *testing.T) {
		transforms := ecs.NewStore[scene.Transform]()
		start := scene.Transform{Position: linalg.Vec3{0, 0, 1}}
		transforms.Set(1, start)
		sys := scene.NewCameraSystem(scene.DefaultControlConfig(), nil)

		var cam scene.Camera
		sys.Update(transforms, 1, &cam, snapshot(0, 0, scene.KeyForward), 0.1)

		assert.Equal(t, scene.ViewMatrix(start.Position, scene.ComputeBasis(start.Eulers)), sys.View)
		assert.True(t, transforms.Get(1).Position.ApproxEqual(linalg.Vec3{0.05, 0, 1}))
	})

	t.Run("strafe and vertical follow the basis", func(t *testing.T) {
		transforms := ecs.NewStore[scene.Transform]()
		transforms.Set(1, scene.Transform{})
		sys := scene.NewCameraSystem(scene.DefaultControlConfig(), nil)

		var cam scene.Camera
		sys.Update(transforms, 1, &cam, snapshot(0, 0, scene.KeyStrafeRight), 0)
		assert.True(t, transforms.Get(1).Position.ApproxEqual(linalg.Vec3{0, -0.05, 0}))

		transforms.Set(1, scene.Transform{})
		sys.Update(transforms, 1, &cam, snapshot(0, 0, scene.KeyUp), 0)
		assert.True(t, transforms.Get(1).Position.ApproxEqual(linalg.Vec3{0, 0, 0.05}))
	})

	t.Run("quit returns before look and capture", func(t *testing.T) {
		transforms := ecs.NewStore[scene.Transform]()
		transforms.Set(1, scene.Transform{})
		in := &scriptedInput{}
		sys := scene.NewCameraSystem(scene.DefaultControlConfig(), in)

		var cam scene.Camera
		quit := sys.Update(transforms, 1, &cam, snapshot(500, 500, scene.KeyQuit, scene.KeyCaptureToggle), 0)

		assert.True(t, quit)
		assert.Empty(t, in.captures)
		assert.True(t, sys.FreeLook.Captured)
		assert.Equal(t, linalg.Vec3{}, transforms.Get(1).Eulers)
	})

	t.Run("capture changes reach the cursor", func(t *testing.T) {
		transforms := ecs.NewStore[scene.Transform]()
		transforms.Set(1, scene.Transform{})
		in := &scriptedInput{}
		sys := scene.NewCameraSystem(scene.DefaultControlConfig(), in)

		var cam scene.Camera
		sys.Update(transforms, 1, &cam, snapshot(0, 0, scene.KeyCaptureToggle), 0)
		sys.Update(transforms, 1, &cam, snapshot(0, 0, scene.KeyCaptureToggle), 0)
		sys.Update(transforms, 1, &cam, snapshot(0, 0), 0)
		sys.Update(transforms, 1, &cam, snapshot(0, 0, scene.KeyCaptureToggle), 0)

		assert.Equal(t, []bool{false, true}, in.captures)
	})

	t.Run("missing camera transform panics", func(t *testing.T) {
		transforms := ecs.NewStore[scene.Transform]()
		sys := scene.NewCameraSystem(scene.DefaultControlConfig(), nil)
		var cam scene.Camera
		assert.Panics(t, func() { sys.Update(transforms, 9, &cam, scene.InputSnapshot{}, 0) })
	})
}
