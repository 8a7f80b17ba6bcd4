package ecs

import (
	"context"
	"reflect"
	"strings"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// queryExecutor is satisfied by every *Query[T].
type queryExecutor interface {
	Execute()
}

type registeredSystem struct {
	system  System
	queries []queryExecutor
	stats   *systemStatsInternal
}

// Scheduler manages and executes systems in registration order.
type Scheduler struct {
	storage *Storage
	systems []*registeredSystem
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{
		storage: storage,
	}
}

// Storage returns the storage the scheduler's systems operate on.
func (s *Scheduler) Storage() *Storage {
	return s.storage
}

// Register adds a system to the scheduler and binds its Query, Singleton
// and *Store fields.
func (s *Scheduler) Register(system System) {
	entry := &registeredSystem{
		system: system,
		stats: &systemStatsInternal{
			name:        systemName(system),
			minDuration: time.Duration(1<<63 - 1),
		},
	}
	entry.queries = s.bindFields(system)
	s.systems = append(s.systems, entry)
}

func systemName(system System) string {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	return systemType.Name()
}

func (s *Scheduler) bindFields(system System) []queryExecutor {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}

	if systemValue.Kind() != reflect.Struct {
		return nil
	}

	systemType := systemValue.Type()
	var queries []queryExecutor

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		fieldType := systemType.Field(i)

		if !field.CanSet() {
			continue
		}

		// *Store[T] fields receive the storage's store for T
		if field.Kind() == reflect.Ptr {
			if binder, ok := field.Interface().(componentStore); ok {
				field.Set(reflect.ValueOf(s.storage.storeFor(binder.componentType())))
			}
			continue
		}

		if field.Kind() != reflect.Struct {
			continue
		}

		typeName := field.Type().Name()

		if strings.HasPrefix(typeName, "Query[") || strings.HasPrefix(typeName, "Singleton[") {
			initMethod := field.Addr().MethodByName("Init")
			if !initMethod.IsValid() {
				panic("Init method not found on field: " + fieldType.Name)
			}
			initMethod.Call([]reflect.Value{reflect.ValueOf(s.storage)})

			if executor, ok := field.Addr().Interface().(queryExecutor); ok {
				queries = append(queries, executor)
			}
		}
	}

	return queries
}

// Once executes all registered systems once with the given delta time.
// Each system's queries are refreshed immediately before it runs.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.storage)

	for _, entry := range s.systems {
		start := time.Now()
		for _, q := range entry.queries {
			q.Execute()
		}
		entry.system.Execute(frame)
		duration := time.Since(start)

		stats := entry.stats
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.Commands.Flush(s.storage)
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
// The delta passed to systems is the measured wall-clock time between ticks.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systems)),
	}

	var totalExecs int64
	for i, entry := range s.systems {
		internal := entry.stats
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
