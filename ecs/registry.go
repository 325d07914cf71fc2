package ecs

import (
	"reflect"

	"github.com/kamstrup/intmap"
)

// ComponentRegistry manages component type registration for a Storage.
// Each Storage has its own registry, so independent worlds (one per test,
// one per simulated game) never interfere with each other.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentStore
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentStore),
	}
}

// RegisterComponent registers a component type with the given registry.
// This must be called for each component type before it can be spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	r.factories[t] = func() componentStore {
		return &typedStore[T]{
			items: intmap.New[EntityId, *T](32),
		}
	}
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() componentStore {
	return r.factories[t]
}

// componentStore is a type-erased per-component table keyed by entity.
type componentStore interface {
	put(id EntityId, component any) bool
	get(id EntityId) any
	del(id EntityId)
	len() int
}

type typedStore[T any] struct {
	items *intmap.Map[EntityId, *T]
}

func (s *typedStore[T]) put(id EntityId, component any) bool {
	var value T
	switch c := component.(type) {
	case *T:
		value = *c
	case T:
		value = c
	default:
		return false
	}
	s.items.Put(id, &value)
	return true
}

func (s *typedStore[T]) get(id EntityId) any {
	ptr, ok := s.items.Get(id)
	if !ok {
		return nil
	}
	return ptr
}

func (s *typedStore[T]) lookup(id EntityId) *T {
	ptr, ok := s.items.Get(id)
	if !ok {
		return nil
	}
	return ptr
}

func (s *typedStore[T]) del(id EntityId) {
	s.items.Del(id)
}

func (s *typedStore[T]) len() int {
	return s.items.Len()
}
