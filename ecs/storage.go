package ecs

import (
	"iter"
	"reflect"
	"slices"

	"github.com/kamstrup/intmap"
)

// Storage holds entities, their components, and singleton components.
type Storage struct {
	registry   *ComponentRegistry
	stores     map[reflect.Type]componentStore
	components *intmap.Map[EntityId, []reflect.Type]
	order      []EntityId
	nextId     EntityId
	singletons map[reflect.Type]any
}

// NewStorage creates a new storage with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		stores:     make(map[reflect.Type]componentStore),
		components: intmap.New[EntityId, []reflect.Type](64),
		singletons: make(map[reflect.Type]any),
	}
}

// Spawn creates a new entity with the provided components.
// Components may be passed by value or by pointer; the storage keeps its own copy.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	s.nextId++
	id := s.nextId

	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		compType := componentType(comp)
		if slices.Contains(types, compType) {
			panic("duplicate component type " + compType.String())
		}
		s.storeFor(compType).put(id, comp)
		types = append(types, compType)
	}

	s.components.Put(id, types)
	s.order = append(s.order, id)
	return id
}

// Delete removes all data related to the entity ID. Deleting an unknown or
// already deleted entity is a no-op. Use Commands.Delete while iterating.
func (s *Storage) Delete(id EntityId) {
	types, ok := s.components.Get(id)
	if !ok {
		return
	}

	for _, typ := range types {
		s.stores[typ].del(id)
	}
	s.components.Del(id)

	if idx := slices.Index(s.order, id); idx >= 0 {
		s.order = slices.Delete(s.order, idx, idx+1)
	}
}

// Alive reports whether the entity exists.
func (s *Storage) Alive(id EntityId) bool {
	return s.components.Has(id)
}

// Len returns the number of live entities.
func (s *Storage) Len() int {
	return len(s.order)
}

// GetComponent returns a pointer to the component of the given type, or nil.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	store, ok := s.stores[compType]
	if !ok {
		return nil
	}
	return store.get(id)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	return s.GetComponent(id, compType) != nil
}

// Clear deletes every entity. Singletons are kept.
func (s *Storage) Clear() {
	for _, id := range slices.Clone(s.order) {
		s.Delete(id)
	}
}

func (s *Storage) storeFor(t reflect.Type) componentStore {
	if store, ok := s.stores[t]; ok {
		return store
	}

	factory := s.registry.getFactory(t)
	if factory == nil {
		panic("component type " + t.String() + " not registered")
	}
	store := factory()
	s.stores[t] = store
	return store
}

func componentType(comp any) reflect.Type {
	compType := reflect.TypeOf(comp)
	if compType == nil {
		panic("component cannot be nil")
	}
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}

	switch compType.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
		panic("components cannot be pointers, maps, channels, or functions")
	}
	return compType
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's component of type T, or nil.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}

// Each iterates, in spawn order, over every entity that has a T component.
func Each[T any](s *Storage) iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		store, ok := s.stores[reflect.TypeFor[T]()].(*typedStore[T])
		if !ok || store.len() == 0 {
			return
		}

		for _, id := range s.order {
			comp := store.lookup(id)
			if comp == nil {
				continue
			}
			if !yield(id, comp) {
				return
			}
		}
	}
}

// Count returns the number of entities with a T component.
func Count[T any](s *Storage) int {
	store, ok := s.stores[reflect.TypeFor[T]()]
	if !ok {
		return 0
	}
	return store.len()
}
