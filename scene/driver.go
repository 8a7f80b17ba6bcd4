package scene

import (
	"context"
	"log"
	"time"

	"github.com/plus3/grotto/ecs"
	"github.com/plus3/grotto/linalg"
)

// Config holds the driver's timing and projection settings.
type Config struct {
	// FixedDelta is the simulated duration of one tick.
	FixedDelta time.Duration
	// IdleBackoff is slept after each tick while the window is inactive.
	IdleBackoff time.Duration

	FieldOfView float32 // vertical, degrees
	Near, Far   float32

	Controls ControlConfig
}

func DefaultConfig() Config {
	return Config{
		FixedDelta:  16670 * time.Microsecond,
		IdleBackoff: 50 * time.Millisecond,
		FieldOfView: 45,
		Near:        0.1,
		Far:         100,
		Controls:    DefaultControlConfig(),
	}
}

// Driver runs the tick pipeline: motion, then camera, then render hand-off,
// at a fixed delta. It owns the storage for the whole session.
type Driver struct {
	cfg       Config
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	input     Input
	renderer  Renderer
	camera    *CameraSystem
	session   *ecs.Singleton[Session]
	snapshot  *ecs.Singleton[InputSnapshot]
	logger    *log.Logger
	active    bool
}

// NewDriver wires the systems over storage. The storage must already hold
// the scene (see Setup). The input's CursorCapturer, if implemented, is
// notified of capture changes. A nil logger logs to log.Default().
func NewDriver(storage *ecs.Storage, input Input, renderer Renderer, cfg Config, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.Default()
	}
	if renderer == nil {
		renderer = NopRenderer{}
	}

	capturer, _ := input.(CursorCapturer)
	camera := NewCameraSystem(cfg.Controls, capturer)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&MotionSystem{})
	scheduler.Register(camera)
	scheduler.Register(&RenderSystem{Renderer: renderer})

	return &Driver{
		cfg:       cfg,
		storage:   storage,
		scheduler: scheduler,
		input:     input,
		renderer:  renderer,
		camera:    camera,
		session:   ecs.NewSingleton[Session](storage),
		snapshot:  ecs.NewSingleton[InputSnapshot](storage),
		logger:    logger,
		active:    true,
	}
}

func (d *Driver) Storage() *ecs.Storage     { return d.storage }
func (d *Driver) Scheduler() *ecs.Scheduler { return d.scheduler }
func (d *Driver) Camera() *CameraSystem     { return d.camera }
func (d *Driver) Config() Config            { return d.cfg }

// Session returns the live session state.
func (d *Driver) Session() *Session {
	return d.session.Get()
}

// Tick samples input and runs one fixed step. It returns false once the
// session should end; later calls keep returning false.
func (d *Driver) Tick() bool {
	session := d.session.Get()
	if session.QuitRequested {
		return false
	}

	d.snapshot.Set(Sample(d.input))
	d.scheduler.Once(d.cfg.FixedDelta.Seconds())
	session.Ticks++

	if session.QuitRequested {
		d.logger.Printf("[APP] quit requested after %d ticks", session.Ticks)
		return false
	}
	return true
}

// Run ticks at the fixed rate until quit is requested (nil) or ctx is
// cancelled (ctx.Err()).
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.cfg.FixedDelta)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !d.Tick() {
				return nil
			}
			d.Backoff()
		}
	}
}

// SetActive records window focus.
func (d *Driver) SetActive(active bool) {
	d.active = active
}

// Backoff sleeps for IdleBackoff while the window is inactive. Run calls it
// after every tick; front-ends with their own loop call it themselves.
func (d *Driver) Backoff() {
	if !d.active {
		time.Sleep(d.cfg.IdleBackoff)
	}
}

// Resize uploads a projection for a framebuffer of w by h. Non-positive
// sizes are ignored.
func (d *Driver) Resize(w, h int) {
	if h <= 0 {
		return
	}
	projection, err := linalg.CheckedPerspective(d.cfg.FieldOfView, float32(w)/float32(h), d.cfg.Near, d.cfg.Far)
	if err != nil {
		d.logger.Printf("[APP] resize %dx%d: %v", w, h, err)
		return
	}
	d.renderer.SetProjection(projection)
}
