package game

import (
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tavernbrawl/battle"
	"github.com/plus3/tavernbrawl/card"
	"github.com/plus3/tavernbrawl/deck"
	"github.com/plus3/tavernbrawl/ecs"
)

// Keys holds the keys that went down this frame.
type Keys struct {
	Pressed []ebiten.Key
}

// Has reports whether key went down this frame.
func (k *Keys) Has(key ebiten.Key) bool {
	return slices.Contains(k.Pressed, key)
}

// Router tracks the active screen. Systems never write Current directly;
// they call Go, which defers the change to the end of the frame.
type Router struct {
	Current ScreenID
	Quit    bool
}

// Go switches to screen id once every system of the frame has run.
func (r *Router) Go(frame *ecs.UpdateFrame, id ScreenID) {
	frame.Commands.Defer(func() {
		r.Current = id
	})
}

// Session is the state that survives between screens.
type Session struct {
	Deck      []card.Card
	Wins      int
	Losses    int
	Retreats  int
	BestStage int
}

// BattleState holds the run in progress on the gameplay screen.
type BattleState struct {
	Battle   *battle.Battle
	Message  string
	Finished bool
}

// TavernState holds the deck editor of the tavern screen.
type TavernState struct {
	Editor *deck.Editor
}

// Result describes how the last run ended.
type Result struct {
	Outcome battle.Outcome
	Stage   int
	Turns   int
	Enemy   string
}

// Popup is a floating combat number.
type Popup struct {
	Text  string
	X, Y  float64
	Color color.RGBA
}

// Lifetime removes its entity once Remaining drops to zero.
type Lifetime struct {
	Remaining float64
}

func registerComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Popup](registry)
	ecs.RegisterComponent[Lifetime](registry)
}
