package ecs_test

import (
	"testing"

	"github.com/plus3/tavernbrawl/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Turn struct {
	Number int
}

type turnSystem struct {
	Turn         ecs.Singleton[Turn]
	ExecuteCount int
}

func (s *turnSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	s.Turn.Get().Number++
}

type agingSystem struct {
	TotalAged float64
}

func (s *agingSystem) Execute(frame *ecs.UpdateFrame) {
	for id, life := range ecs.Each[Lifetime](frame.Storage) {
		life.Remaining -= frame.DeltaTime
		s.TotalAged += frame.DeltaTime
		if life.Remaining <= 0 {
			frame.Commands.Delete(id)
		}
	}
}

type orderSystem struct {
	name string
	log  *[]string
}

func (s *orderSystem) Execute(frame *ecs.UpdateFrame) {
	*s.log = append(*s.log, s.name)
}

func TestSchedulerInitializesSingletonFields(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	ecs.NewSingleton[Turn](storage, Turn{Number: 10})

	scheduler := ecs.NewScheduler(storage)
	assert.Same(t, storage, scheduler.Storage())
	turns := &turnSystem{}
	scheduler.Register(turns)

	scheduler.Once(0)
	scheduler.Once(0)

	assert.Equal(t, 2, turns.ExecuteCount)
	assert.Equal(t, 12, turns.Turn.Get().Number)
}

func TestSchedulerSingletonAddedAfterRegistration(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)
	turns := &turnSystem{}
	scheduler.Register(turns)

	assert.False(t, turns.Turn.Exists())

	ecs.NewSingleton[Turn](storage)
	scheduler.Once(0)

	assert.Equal(t, 1, turns.Turn.Get().Number)
}

func TestSchedulerRunsSystemsInOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	var log []string
	scheduler.Register(&orderSystem{name: "input", log: &log})
	scheduler.Register(&orderSystem{name: "combat", log: &log})
	scheduler.Register(&orderSystem{name: "render", log: &log})

	scheduler.Once(0)

	assert.Equal(t, []string{"input", "combat", "render"}, log)
}

func TestSchedulerFlushesCommandsAfterFrame(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)
	aging := &agingSystem{}
	scheduler.Register(aging)

	short := storage.Spawn(Lifetime{Remaining: 0.5})
	long := storage.Spawn(Lifetime{Remaining: 2})

	scheduler.Once(1)

	assert.False(t, storage.Alive(short))
	assert.True(t, storage.Alive(long))
	assert.Equal(t, 2.0, aging.TotalAged)
}

func TestSchedulerStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	ecs.NewSingleton[Turn](storage)
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&turnSystem{})
	scheduler.Register(&agingSystem{})

	stats := scheduler.GetStats()
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, int64(0), stats.TotalExecutions)
	assert.Equal(t, "turnSystem", stats.Systems[0].Name)
	assert.Zero(t, stats.Systems[0].MinDuration)

	for range 3 {
		scheduler.Once(0.1)
	}

	stats = scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(6), stats.TotalExecutions)
	assert.Equal(t, "agingSystem", stats.Systems[1].Name)
	for _, system := range stats.Systems {
		assert.Equal(t, int64(3), system.ExecutionCount)
		assert.LessOrEqual(t, system.MinDuration, system.MaxDuration)
	}
}
