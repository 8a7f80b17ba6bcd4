package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/grotto/ecs"
)

// StatsWindow shows frame times, store sizes and per-system timings.
type StatsWindow struct {
	scheduler    *ecs.Scheduler
	timer        *FrameTimer
	frameHistory []float32
	frameIndex   int
}

func NewStatsWindow(scheduler *ecs.Scheduler, historyFrames int) *StatsWindow {
	if historyFrames <= 0 {
		historyFrames = 120
	}
	return &StatsWindow{
		scheduler:    scheduler,
		timer:        NewFrameTimer(),
		frameHistory: make([]float32, historyFrames),
	}
}

// Record stores a frame time in milliseconds.
func (sw *StatsWindow) Record(ms float32) {
	sw.frameHistory[sw.frameIndex] = ms
	sw.frameIndex = (sw.frameIndex + 1) % len(sw.frameHistory)
}

// AverageFrameTime is the mean of the recorded history in milliseconds.
func (sw *StatsWindow) AverageFrameTime() float32 {
	var total float32
	for _, ft := range sw.frameHistory {
		total += ft
	}
	return total / float32(len(sw.frameHistory))
}

func (sw *StatsWindow) Render() {
	sw.Record(sw.timer.GetDeltaTime() * 1000)

	if !imgui.BeginV("Scheduler", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	storageStats := sw.scheduler.Storage().CollectStats()
	imgui.Text(fmt.Sprintf("Total Entities: %d", storageStats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Stores: %d", storageStats.StoreCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", storageStats.SingletonCount))

	avg := sw.AverageFrameTime()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}
	imgui.PlotLinesFloatPtr("##frametime", &sw.frameHistory[0], int32(len(sw.frameHistory)))

	imgui.Separator()
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Last")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, system := range sw.scheduler.GetStats().Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(system.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", system.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(system.LastDuration.String())
			imgui.TableNextColumn()
			imgui.Text(system.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(system.MaxDuration.String())
		}
		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Stores") {
		for _, store := range storageStats.StoreBreakdown {
			imgui.BulletText(fmt.Sprintf("%s: %d", store.ComponentType, store.Count))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singletons") {
		for _, singletonType := range storageStats.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
