package ebiten_test

import (
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/grotto/debugui"
	debugui_ebiten "github.com/plus3/grotto/debugui/ebiten"
	"github.com/plus3/grotto/ecs"
	"github.com/plus3/grotto/scene"
)

// Game ticks the driver inside an ImGui frame and draws the overlay last.
type Game struct {
	driver  *scene.Driver
	backend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	return g.backend.Frame(func() error {
		if !g.driver.Tick() {
			return ebiten.Termination
		}
		return nil
	})
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	g.driver.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

type noInput struct{}

func (noInput) KeyDown(scene.Key) bool             { return false }
func (noInput) CursorPosition() (float64, float64) { return 0, 0 }

func Example() {
	backend := debugui_ebiten.NewImguiBackend("grotto debug", 1280, 720)

	registry := ecs.NewComponentRegistry()
	scene.RegisterComponents(registry)
	debugui.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	logger := log.New(io.Discard, "", 0)
	scene.Setup(storage, scene.DemoLayout(0, 0), logger)
	driver := scene.NewDriver(storage, noInput{}, nil, scene.DefaultConfig(), logger)
	debugui.Spawn(driver)

	if err := ebiten.RunGame(&Game{driver: driver, backend: backend}); err != nil {
		log.Fatal(err)
	}
}
