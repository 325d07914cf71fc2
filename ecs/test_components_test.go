package ecs_test

import "github.com/plus3/tavernbrawl/ecs"

// Common test component types
type Position struct {
	X, Y float32
}

type Health struct {
	Current int
	Max     int
}

type Name string

type Lifetime struct {
	Remaining float64
}

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Name](registry)
	ecs.RegisterComponent[Lifetime](registry)
	return registry
}
