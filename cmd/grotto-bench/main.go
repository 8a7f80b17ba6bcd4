package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/grotto/ecs"
	"github.com/plus3/grotto/linalg"
	"github.com/plus3/grotto/scene"
	"github.com/plus3/grotto/wireframe"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "How long to tick the scene for.")
	props := flag.Int("entities", 1000, "Number of extra spinning cubes to add to the demo scene.")
	profileMode := flag.String("profile", "", "Write a profile to the working directory: cpu, mem or trace.")
	seed := flag.Uint64("seed", 1, "Seed for prop placement.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Include GC pause metrics in the report.")
	verbose := flag.Bool("v", false, "Log scene setup.")
	flag.Parse()

	logger := log.New(io.Discard, "", log.LstdFlags)
	if *verbose {
		logger.SetOutput(os.Stderr)
	}

	if err := bench(*profileMode, *gcPauseMetrics, *duration, *props, *seed, logger); err != nil {
		log.Fatal(err)
	}
}

// bench owns the profile lifetime so it is flushed before main exits, on
// failure as well as success.
func bench(profileMode string, gcPauseMetrics bool, duration time.Duration, props int, seed uint64, logger *log.Logger) error {
	p, err := startProfile(profileMode)
	if err != nil {
		return err
	}
	if p != nil {
		defer p.Stop()
	}

	report, err := run(duration, props, seed, logger)
	if err != nil {
		return fmt.Errorf("headless run failed: %w", err)
	}
	report.Profile = profileMode
	report.GCPauseMetrics = gcPauseMetrics

	if err := report.Generate(os.Stdout); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	return nil
}

func startProfile(mode string) (interface{ Stop() }, error) {
	opts := []func(*profile.Profile){profile.ProfilePath("."), profile.NoShutdownHook}
	switch mode {
	case "":
		return nil, nil
	case "cpu":
		opts = append(opts, profile.CPUProfile)
	case "mem":
		opts = append(opts, profile.MemProfileAllocs)
	case "trace":
		opts = append(opts, profile.TraceProfile)
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
	return profile.Start(opts...), nil
}

// populate adds count cubes scattered in front of the camera.
func populate(layout *scene.Layout, count int, seed uint64, cube scene.MeshHandle, material scene.MaterialHandle) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range count {
		layout.Props = append(layout.Props, scene.Prop{
			Label: scene.Label(fmt.Sprintf("prop-%d", i)),
			Transform: scene.Transform{
				Position: linalg.Vec3{4 + rng.Float32()*40, rng.Float32()*40 - 20, rng.Float32()*4 - 2},
				Eulers:   linalg.Vec3{0, 0, rng.Float32() * 360},
			},
			Physics: scene.Physics{EulerVelocity: linalg.Vec3{0, 0, rng.Float32()*60 - 30}},
			Render:  scene.Render{Mesh: cube, Material: material},
		})
	}
}

func run(duration time.Duration, props int, seed uint64, logger *log.Logger) (*Report, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %s", duration)
	}

	registry := ecs.NewComponentRegistry()
	scene.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	meshes := wireframe.NewLibrary()
	materials := wireframe.NewPalette()
	cube := meshes.Add("cube", wireframe.Cube(linalg.Vec3{0.25, 0.25, 0.25}))
	brick := materials.Add(wireframe.DefaultColor)

	layout := scene.DemoLayout(cube, brick)
	populate(&layout, props, seed, cube, brick)
	camera := scene.Setup(storage, layout, logger)

	frame := wireframe.NewFrame(meshes, materials)
	frame.SetSize(640, 480)

	input := &flythrough{}
	driver := scene.NewDriver(storage, input, frame, scene.DefaultConfig(), logger)
	driver.Resize(640, 480)

	report := &Report{
		Duration: duration,
		Props:    props,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	start := time.Now()
Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			frame.Reset()
			tickStart := time.Now()
			alive := driver.Tick()
			report.TickTime.Add(time.Since(tickStart))
			input.Advance()
			if !alive {
				break Loop
			}
		}
	}

	report.TotalTime = time.Since(start)
	report.TotalTicks = driver.Session().Ticks
	report.TickTime.Finalize()
	report.Segments = len(frame.Lines)
	report.Systems = driver.Scheduler().GetStats().Systems
	if t := ecs.ReadComponent[scene.Transform](storage, camera); t != nil {
		report.CameraPosition = fmt.Sprintf("(%.2f, %.2f, %.2f)", t.Position[0], t.Position[1], t.Position[2])
	}
	runtime.ReadMemStats(&report.MemStatsEnd)

	return report, nil
}
