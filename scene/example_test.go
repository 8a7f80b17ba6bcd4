package scene_test

import (
	"fmt"
	"io"
	"log"

	"github.com/plus3/grotto/ecs"
	"github.com/plus3/grotto/scene"
)

func ExampleDriver() {
	registry := ecs.NewComponentRegistry()
	scene.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	logger := log.New(io.Discard, "", 0)
	camera := scene.Setup(storage, scene.DemoLayout(0, 0), logger)

	input := &scriptedInput{}
	input.press(scene.KeyForward)
	driver := scene.NewDriver(storage, input, scene.NopRenderer{}, scene.DefaultConfig(), logger)

	for range 20 {
		driver.Tick()
	}

	pos := ecs.ReadComponent[scene.Transform](storage, camera).Position
	fmt.Printf("camera at (%.2f, %.2f, %.2f) after %d ticks\n", pos[0], pos[1], pos[2], driver.Session().Ticks)
	// Output: camera at (1.00, 0.00, 1.00) after 20 ticks
}
