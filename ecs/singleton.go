package ecs

import "reflect"

// Singleton provides access to a single component instance that is not
// associated with any entity. Use this for session state, the active battle,
// input for the current frame, and similar global data.
type Singleton[T any] struct {
	storage *Storage
	ptr     *T
}

// NewSingleton creates a new Singleton accessor for the given storage.
// If the singleton doesn't exist yet it is created from the initializer, or
// from the zero value when none is given. The singleton exists in storage
// after the call.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	if _, ok := storage.singletons[reflect.TypeFor[T]()]; !ok {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
	}

	s := &Singleton[T]{}
	s.Init(storage)
	return s
}

// Init binds the Singleton to a storage.
// This is called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.ptr = nil
	s.updateCache()
}

// Get returns a pointer to the singleton component, or nil if it has not
// been added to storage.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil {
		s.updateCache()
	}
	return s.ptr
}

// Exists returns true if the singleton component has been added to storage
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) updateCache() {
	if s.storage == nil {
		return
	}
	if ptr, ok := s.storage.singletons[reflect.TypeFor[T]()]; ok {
		s.ptr = ptr.(*T)
	}
}

// AddSingleton stores a copy of value as the singleton of its type,
// replacing the previous contents if one already exists. Accessors created
// earlier keep seeing the same instance.
func (s *Storage) AddSingleton(value any) {
	t := componentType(value)
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}

	if existing, ok := s.singletons[t]; ok {
		reflect.ValueOf(existing).Elem().Set(rv)
		return
	}

	ptr := reflect.New(t)
	ptr.Elem().Set(rv)
	s.singletons[t] = ptr.Interface()
}

// ReadSingleton fills target, which must be a pointer to a pointer
// (var cfg *Config; storage.ReadSingleton(&cfg)). Returns false if the
// singleton does not exist.
func (s *Storage) ReadSingleton(target any) bool {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	ptr, ok := s.singletons[rv.Elem().Type().Elem()]
	if !ok {
		return false
	}
	rv.Elem().Set(reflect.ValueOf(ptr))
	return true
}
