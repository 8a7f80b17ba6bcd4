package main

import (
	"bytes"
	"io"
	"log"
	"testing"
	"time"

	"github.com/plus3/grotto/ecs"
	"github.com/plus3/grotto/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	var s Stats
	for _, d := range []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond} {
		s.Add(d)
	}
	s.Finalize()
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestFlythroughGrabsCursorThenFlies(t *testing.T) {
	in := &flythrough{}
	sys := scene.NewCameraSystem(scene.DefaultControlConfig(), nil)

	for range 4 {
		sys.FreeLook, _ = sys.FreeLook.Step(scene.Sample(in), sys.Config)
		in.Advance()
	}
	assert.True(t, sys.FreeLook.Captured)
	assert.NotNil(t, sys.FreeLook.Anchor)
	assert.True(t, in.KeyDown(scene.KeyForward))
	assert.False(t, in.KeyDown(scene.KeyQuit))
}

func TestRun(t *testing.T) {
	report, err := run(100*time.Millisecond, 25, 7, log.New(io.Discard, "", 0))
	require.NoError(t, err)

	assert.Positive(t, report.TotalTicks)
	assert.Equal(t, int(report.TotalTicks), report.TickTime.Count)
	assert.NotEmpty(t, report.CameraPosition)
	require.Len(t, report.Systems, 3)
	assert.Equal(t, "MotionSystem", report.Systems[0].Name)

	_, err = run(0, 0, 1, log.New(io.Discard, "", 0))
	assert.Error(t, err)
}

func TestStartProfile(t *testing.T) {
	p, err := startProfile("")
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = startProfile("heap")
	assert.ErrorContains(t, err, `unknown profile mode "heap"`)
}

func TestBenchRejectsBadInput(t *testing.T) {
	logger := log.New(io.Discard, "", 0)
	assert.Error(t, bench("bogus", false, time.Second, 0, 1, logger))
	assert.ErrorContains(t, bench("", false, 0, 0, 1, logger), "headless run failed")
}

func TestReportGenerate(t *testing.T) {
	report := &Report{
		Duration:       time.Second,
		Props:          10,
		TotalTicks:     60,
		Segments:       132,
		CameraPosition: "(1.00, 0.00, 1.00)",
		Systems:        []ecs.SystemStats{{Name: "MotionSystem", ExecutionCount: 60}},
		GCPauseMetrics: true,
	}
	report.TickTime.Add(time.Millisecond)
	report.TickTime.Finalize()

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Total Ticks:** 60")
	assert.Contains(t, out, "| MotionSystem | 60 |")
	assert.Contains(t, out, "**Segments in last frame:** 132")
	assert.Contains(t, out, "## GC Pause Durations")
}
