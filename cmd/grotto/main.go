package main

import (
	"flag"
	"fmt"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/plus3/grotto/assets"
	"github.com/plus3/grotto/debugui"
	debugui_ebiten "github.com/plus3/grotto/debugui/ebiten"
	"github.com/plus3/grotto/ecs"
	"github.com/plus3/grotto/linalg"
	"github.com/plus3/grotto/scene"
	"github.com/plus3/grotto/wireframe"
)

const title = "grotto"

func main() {
	width := flag.Int("width", 640, "Window width.")
	height := flag.Int("height", 480, "Window height.")
	sensitivity := flag.Float64("sensitivity", 0.05, "Degrees of look per cursor pixel.")
	moveStep := flag.Float64("move-step", 0.05, "Distance moved per tick while a direction key is held.")
	assetRoot := flag.String("assets", "", "Directory holding res/ and shaders/ (default: next to the executable).")
	texture := flag.String("texture", "textures/brick.jpg", "Cube texture, relative to res/.")
	debug := flag.Bool("debug", false, "Show the debug overlay.")
	logPath := flag.String("log", "", "Write logs to this file instead of stderr.")
	flag.Parse()

	logger, closeLog, err := openLog(*logPath)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	resolver, err := resolveAssets(*assetRoot)
	if err != nil {
		logger.Fatalf("[APP] %v", err)
	}

	registry := ecs.NewComponentRegistry()
	scene.RegisterComponents(registry)
	debugui.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	meshes := wireframe.NewLibrary()
	materials := wireframe.NewPalette()
	cube := meshes.Add("cube", wireframe.Cube(linalg.Vec3{0.25, 0.25, 0.25}))
	brick := materials.Add(textureColor(resolver, *texture, logger))

	scene.Setup(storage, scene.DemoLayout(cube, brick), logger)

	cfg := scene.DefaultConfig()
	cfg.Controls.Sensitivity = float32(*sensitivity)
	cfg.Controls.MoveStep = float32(*moveStep)

	input := &windowInput{}
	frame := wireframe.NewFrame(meshes, materials)
	driver := scene.NewDriver(storage, input, frame, cfg, logger)

	game := &Game{driver: driver, frame: frame}

	if *debug {
		game.overlay = debugui_ebiten.NewImguiBackend(title, *width, *height)
		debugui.Spawn(driver)
		imguiState := ecs.NewSingleton[debugui.ImguiInputState](storage)
		input.blocked = func() bool {
			state := imguiState.Get()
			return state != nil && state.WantCaptureKeyboard
		}
	} else {
		ebiten.SetWindowSize(*width, *height)
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)
	input.SetCursorCaptured(true)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatalf("[APP] %v", err)
	}
	logger.Printf("[APP] exited after %d ticks", driver.Session().Ticks)
}

func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(os.Stderr, "", log.LstdFlags), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return log.New(f, "", log.LstdFlags), func() { f.Close() }, nil
}

func resolveAssets(root string) (*assets.Resolver, error) {
	if root != "" {
		return assets.NewResolver(root), nil
	}
	return assets.FromExecutable()
}

// textureColor flattens the texture to its average colour. A missing
// texture is logged and the default line colour is used.
func textureColor(resolver *assets.Resolver, rel string, logger *log.Logger) color.RGBA {
	_, img, err := ebitenutil.NewImageFromFile(resolver.AssetPath(rel))
	if err != nil {
		logger.Printf("[APP] Failed to load texture %s, ensure the path is valid: %v", rel, err)
		return wireframe.DefaultColor
	}
	return wireframe.AverageColor(img)
}
