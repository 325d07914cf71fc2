package ecs_test

import (
	"fmt"

	"github.com/plus3/tavernbrawl/ecs"
)

type Session struct {
	Stage   int
	Gold    int
	Visited []string
}

// ExampleNewSingleton demonstrates creating and accessing singleton components.
func ExampleNewSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())

	session := ecs.NewSingleton[Session](storage, Session{Stage: 1})
	fmt.Printf("Stage %d\n", session.Get().Stage)

	session.Get().Stage = 3

	// A second accessor sees the same instance.
	again := ecs.NewSingleton[Session](storage)
	fmt.Printf("Stage %d\n", again.Get().Stage)

	// Output:
	// Stage 1
	// Stage 3
}

// ExampleStorage_ReadSingleton reads singletons outside of systems.
func ExampleStorage_ReadSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	ecs.NewSingleton[Session](storage, Session{Gold: 12})

	var session *Session
	if storage.ReadSingleton(&session) {
		fmt.Printf("Gold: %d\n", session.Gold)
	}

	var turn *Turn
	if !storage.ReadSingleton(&turn) {
		fmt.Println("Turn not found")
	}

	// Output:
	// Gold: 12
	// Turn not found
}

// ExampleStorage_AddSingleton shows replacement keeping existing accessors valid.
func ExampleStorage_AddSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	session := ecs.NewSingleton[Session](storage, Session{Stage: 4})

	storage.AddSingleton(Session{Stage: 1, Visited: []string{"tavern"}})
	fmt.Println(session.Get().Stage, session.Get().Visited)

	// Output:
	// 1 [tavern]
}
