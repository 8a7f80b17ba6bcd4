package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/grotto/ecs"
	"github.com/plus3/grotto/linalg"
	"github.com/plus3/grotto/scene"
	"github.com/plus3/grotto/wireframe"
)

func main() {
	hold := flag.Duration("hold", 150*time.Millisecond, "How long a key counts as held after its last key event.")
	sensitivity := flag.Float64("sensitivity", 2, "Degrees of look per mouse cell.")
	moveStep := flag.Float64("move-step", 0.05, "Distance moved per tick while a direction key is held.")
	logPath := flag.String("log", "", "Write logs to this file; logging is off otherwise.")
	flag.Parse()

	// The terminal is the display, so logs go to a file or nowhere.
	logger := log.New(io.Discard, "", log.LstdFlags)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	cfg := scene.DefaultConfig()
	cfg.Controls.Sensitivity = float32(*sensitivity)
	cfg.Controls.MoveStep = float32(*moveStep)

	app := newApp(screen, cfg, *hold, logger)
	if err := app.run(context.Background()); err != nil {
		logger.Printf("[APP] %v", err)
	}
}

type app struct {
	screen tcell.Screen
	input  *terminalInput
	frame  *wireframe.Frame
	driver *scene.Driver
	cfg    scene.Config
	logger *log.Logger
}

func newApp(screen tcell.Screen, cfg scene.Config, hold time.Duration, logger *log.Logger) *app {
	registry := ecs.NewComponentRegistry()
	scene.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	meshes := wireframe.NewLibrary()
	materials := wireframe.NewPalette()
	cube := meshes.Add("cube", wireframe.Cube(linalg.Vec3{0.25, 0.25, 0.25}))
	brick := materials.Add(brickColor)
	scene.Setup(storage, scene.DemoLayout(cube, brick), logger)

	input := newTerminalInput(screen, hold)
	frame := wireframe.NewFrame(meshes, materials)
	driver := scene.NewDriver(storage, input, frame, cfg, logger)

	a := &app{
		screen: screen,
		input:  input,
		frame:  frame,
		driver: driver,
		cfg:    cfg,
		logger: logger,
	}
	a.resize()
	input.SetCursorCaptured(true)
	screen.EnableFocus()
	return a
}

func (a *app) resize() {
	w, h := frameSize(a.screen.Size())
	a.frame.SetSize(w, h)
	a.driver.Resize(w, h)
}

// handle applies one tcell event.
func (a *app) handle(ev tcell.Event) {
	if a.input.HandleEvent(ev) {
		return
	}
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	case *tcell.EventFocus:
		a.driver.SetActive(ev.Focused)
	}
}

// step runs one tick and redraws. It returns false once the session ends.
func (a *app) step() bool {
	a.frame.Reset()
	if !a.driver.Tick() {
		return false
	}
	drawFrame(a.screen, a.frame)
	a.screen.Show()
	a.driver.Backoff()
	return true
}

func (a *app) run(ctx context.Context) error {
	ticker := time.NewTicker(a.cfg.FixedDelta)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			a.handle(ev)
		case <-ticker.C:
			if !a.step() {
				a.logger.Printf("[APP] exited after %d ticks", a.driver.Session().Ticks)
				return nil
			}
		}
	}
}
