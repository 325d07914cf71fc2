package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/tavernbrawl/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnEntity(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(&Position{X: 1, Y: 2}, Health{Current: 10, Max: 10})
	assert.True(t, id.Valid())
	assert.True(t, storage.Alive(id))
	assert.Equal(t, 1, storage.Len())
}

func TestGetComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 3, Y: 4}, Name("goblin"))

	pos := ecs.ReadComponent[Position](storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, float32(3), pos.X)
	assert.Equal(t, float32(4), pos.Y)

	name := ecs.ReadComponent[Name](storage, id)
	require.NotNil(t, name)
	assert.Equal(t, Name("goblin"), *name)

	assert.Nil(t, ecs.ReadComponent[Health](storage, id))
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Position]()))
	assert.False(t, storage.HasComponent(id, reflect.TypeFor[Health]()))
}

func TestComponentMutationThroughPointer(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Health{Current: 10, Max: 10})
	ecs.ReadComponent[Health](storage, id).Current -= 4

	assert.Equal(t, 6, ecs.ReadComponent[Health](storage, id).Current)
}

func TestDeleteEntity(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1, Y: 1}, Health{Current: 100, Max: 100})
	storage.Delete(id)

	assert.False(t, storage.Alive(id))
	assert.Nil(t, ecs.ReadComponent[Position](storage, id))
	assert.Equal(t, 0, storage.Len())
	assert.Equal(t, 0, ecs.Count[Health](storage))

	assert.NotPanics(t, func() { storage.Delete(id) })
}

func TestIdsAreNotReused(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := storage.Spawn(Name("a"))
	storage.Delete(first)
	second := storage.Spawn(Name("b"))

	assert.NotEqual(t, first, second)
}

func TestEachIteratesInSpawnOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Name("a"), Position{})
	storage.Spawn(Position{})
	c := storage.Spawn(Name("c"))

	var ids []ecs.EntityId
	var names []Name
	for id, name := range ecs.Each[Name](storage) {
		ids = append(ids, id)
		names = append(names, *name)
	}

	assert.Equal(t, []ecs.EntityId{a, c}, ids)
	assert.Equal(t, []Name{"a", "c"}, names)
	assert.Equal(t, 2, ecs.Count[Name](storage))
	assert.Equal(t, 2, ecs.Count[Position](storage))
}

func TestEachEarlyBreak(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	for range 5 {
		storage.Spawn(Lifetime{Remaining: 1})
	}

	seen := 0
	for range ecs.Each[Lifetime](storage) {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestEachUnregisteredTypeIsEmpty(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Name("a"))

	for range ecs.Each[Health](storage) {
		t.Fatal("no entity has a Health component")
	}
}

func TestClearKeepsSingletons(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Name("a"))
	storage.Spawn(Name("b"))
	ecs.NewSingleton[Health](storage, Health{Current: 3, Max: 5})

	storage.Clear()

	assert.Equal(t, 0, storage.Len())
	var health *Health
	require.True(t, storage.ReadSingleton(&health))
	assert.Equal(t, 3, health.Current)
}

func TestSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() }, "no components")
	assert.Panics(t, func() { storage.Spawn(struct{ Unknown int }{}) }, "unregistered type")
	assert.Panics(t, func() { storage.Spawn(Name("a"), Name("b")) }, "duplicate type")
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) }, "map component")
}
