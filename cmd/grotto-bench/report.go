package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/grotto/ecs"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Props    int
	Profile  string

	// Results
	TotalTicks     uint64
	TotalTime      time.Duration
	TickTime       Stats
	Segments       int
	CameraPosition string
	Systems        []ecs.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Stats accumulates tick durations without keeping the samples, so a long
// run does not grow the heap it is measuring.
type Stats struct {
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Count int

	total time.Duration
}

func (s *Stats) Add(sample time.Duration) {
	if s.Count == 0 || sample < s.Min {
		s.Min = sample
	}
	if sample > s.Max {
		s.Max = sample
	}
	s.total += sample
	s.Count++
}

func (s *Stats) Finalize() {
	if s.Count == 0 {
		return
	}
	s.Avg = s.total / time.Duration(s.Count)
}

const reportTemplate = `
# grotto Headless Run

## Configuration
- **Run Duration:** {{.Duration}}
- **Props:** {{.Props}}
- **Profile:** {{.Profile}}

## Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}
- **Segments in last frame:** {{.Segments}}
- **Final camera position:** {{.CameraPosition}}

## Systems
| System | Runs | Avg | Max |
|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}`

var reportFuncs = template.FuncMap{
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}
	return tmpl.Execute(w, r)
}
