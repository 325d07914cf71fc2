package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tavernbrawl/ecs"
)

// ScreenID names one of the game's screens.
type ScreenID int

const (
	ScreenStart ScreenID = iota
	ScreenTavern
	ScreenBattle
	ScreenResult
)

func (id ScreenID) String() string {
	switch id {
	case ScreenStart:
		return "starting area"
	case ScreenTavern:
		return "tavern"
	case ScreenBattle:
		return "gameplay"
	case ScreenResult:
		return "result"
	}
	return "unknown"
}

// Screen is one page of the game: the systems that run while it is
// current, a hook run when it becomes current, and its renderer.
type Screen struct {
	ID        ScreenID
	Scheduler *ecs.Scheduler
	Enter     func() error
	Draw      func(dst *ebiten.Image)
}

// StartSystem handles the starting area: F fights, T opens the tavern and
// Esc quits.
type StartSystem struct {
	Keys   ecs.Singleton[Keys]
	Router ecs.Singleton[Router]
}

func (s *StartSystem) Execute(frame *ecs.UpdateFrame) {
	keys := s.Keys.Get()
	router := s.Router.Get()

	switch {
	case keys.Has(ebiten.KeyF):
		router.Go(frame, ScreenBattle)
	case keys.Has(ebiten.KeyT):
		router.Go(frame, ScreenTavern)
	case keys.Has(ebiten.KeyEscape):
		router.Quit = true
	}
}

// ResultSystem returns to the starting area on Enter.
type ResultSystem struct {
	Keys   ecs.Singleton[Keys]
	Router ecs.Singleton[Router]
}

func (s *ResultSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Keys.Get().Has(ebiten.KeyEnter) {
		s.Router.Get().Go(frame, ScreenStart)
	}
}
