package ecs_test

import (
	"testing"

	"github.com/plus3/tavernbrawl/ecs"
	"github.com/stretchr/testify/assert"
)

type spawnSystem struct{}

func (s *spawnSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Spawn(Name("popup"), Lifetime{Remaining: 1})
	if ecs.Count[Name](frame.Storage) != 0 {
		panic("spawn applied before flush")
	}
}

func TestCommandsSpawnDeferredUntilFlush(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&spawnSystem{})

	scheduler.Once(0)

	assert.Equal(t, 1, ecs.Count[Name](storage))
	assert.Equal(t, 1, ecs.Count[Lifetime](storage))
}

func TestCommandsFlushOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	victim := storage.Spawn(Name("victim"))

	var order []string
	var aliveDuringDefer bool
	var spawnedDuringDefer int

	cmds := &ecs.Commands{}
	cmds.Defer(func() {
		order = append(order, "defer")
		aliveDuringDefer = storage.Alive(victim)
		spawnedDuringDefer = ecs.Count[Position](storage)
	})
	cmds.Spawn(Position{X: 1})
	cmds.Delete(victim)
	assert.Equal(t, 3, cmds.Pending())

	cmds.Flush(storage)

	assert.Equal(t, []string{"defer"}, order)
	assert.False(t, aliveDuringDefer)
	assert.Equal(t, 1, spawnedDuringDefer)
	assert.Equal(t, 0, cmds.Pending())
}

func TestCommandsDeleteUnknownEntity(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	cmds := &ecs.Commands{}
	cmds.Delete(ecs.EntityId(42))

	assert.NotPanics(t, func() { cmds.Flush(storage) })
}
