package game

import (
	"log"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tavernbrawl/card"
	"github.com/plus3/tavernbrawl/deck"
	"github.com/plus3/tavernbrawl/ecs"
)

// TavernSystem edits the deck. Up/Down pick a hand card, Left/Right browse
// the tavern, Enter swaps and E saves and leaves.
type TavernSystem struct {
	Keys    ecs.Singleton[Keys]
	Router  ecs.Singleton[Router]
	Tavern  ecs.Singleton[TavernState]
	Session ecs.Singleton[Session]

	Store  *deck.Store
	Logger *log.Logger
}

func (s *TavernSystem) Execute(frame *ecs.UpdateFrame) {
	editor := s.Tavern.Get().Editor
	if editor == nil {
		return
	}

	for _, key := range s.Keys.Get().Pressed {
		switch key {
		case ebiten.KeyUp:
			editor.MoveHand(-1)
		case ebiten.KeyDown:
			editor.MoveHand(1)
		case ebiten.KeyLeft:
			editor.MovePool(-1)
		case ebiten.KeyRight:
			editor.MovePool(1)
		case ebiten.KeyEnter:
			editor.Swap()
		case ebiten.KeyE:
			s.leave(frame, editor)
			return
		}
	}
}

func (s *TavernSystem) leave(frame *ecs.UpdateFrame, editor *deck.Editor) {
	hand := slices.Clone(editor.Hand)
	if err := s.Store.Save(hand); err != nil {
		s.Logger.Printf("warning: %v", err)
	}
	s.Session.Get().Deck = hand
	s.Router.Get().Go(frame, ScreenStart)
}

// enterTavern reads the save file and resets the editor.
func enterTavern(storage *ecs.Storage, store *deck.Store) {
	var tavern *TavernState
	storage.ReadSingleton(&tavern)
	tavern.Editor = deck.NewEditor(store.Load(), card.Predefined())
}
