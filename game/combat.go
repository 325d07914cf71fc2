package game

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tavernbrawl/battle"
	"github.com/plus3/tavernbrawl/ecs"
	"github.com/plus3/tavernbrawl/ecs/debugui"
	"github.com/plus3/tavernbrawl/enemy"
)

const popupSeconds = 1.2

// Player sprite placement on the gameplay screen.
const (
	playerX = 150
	playerY = 300
	playerW = 200
	playerH = 270
)

var cardKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

var (
	damageColor = color.RGBA{R: 230, G: 60, B: 60, A: 255}
	healColor   = color.RGBA{R: 80, G: 220, B: 100, A: 255}
	shieldColor = color.RGBA{R: 90, G: 170, B: 255, A: 255}
	noticeColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// CombatSystem turns key presses into battle actions: A attacks and 1-4
// play the matching card. Esc retreats to the starting area.
type CombatSystem struct {
	Keys       ecs.Singleton[Keys]
	Router     ecs.Singleton[Router]
	State      ecs.Singleton[BattleState]
	Session    ecs.Singleton[Session]
	ImguiInput ecs.Singleton[debugui.ImguiInputState]
}

func (s *CombatSystem) Execute(frame *ecs.UpdateFrame) {
	state := s.State.Get()
	if state.Battle == nil || state.Finished {
		return
	}
	if input := s.ImguiInput.Get(); input != nil && input.WantCaptureKeyboard {
		return
	}

	keys := s.Keys.Get()
	if keys.Has(ebiten.KeyEscape) {
		s.Session.Get().Retreats++
		state.Finished = true
		s.Router.Get().Go(frame, ScreenStart)
		return
	}

	var (
		events []battle.Event
		err    error
		acted  bool
	)
	if keys.Has(ebiten.KeyA) {
		events, err = state.Battle.Attack()
		acted = true
	} else {
		for i, key := range cardKeys {
			if keys.Has(key) {
				events, err = state.Battle.PlayCard(i)
				acted = true
				break
			}
		}
	}
	if !acted {
		return
	}

	switch {
	case errors.Is(err, battle.ErrCardSpent):
		state.Message = "That card is spent until the next enemy"
	case errors.Is(err, battle.ErrNoCard):
		state.Message = "No card in that slot"
	case err != nil:
		state.Message = err.Error()
	default:
		state.Message = events[len(events)-1].Message
		spawnPopups(frame, state.Battle.Enemy, events)
	}
}

func spawnPopups(frame *ecs.UpdateFrame, foe *enemy.Enemy, events []battle.Event) {
	var enemyOffset, playerOffset float64
	for _, ev := range events {
		popup, ok := popupFor(ev)
		if !ok {
			continue
		}

		if ev.Side == battle.SideEnemy {
			popup.X = foe.X + float64(foe.Kind.Size.W)/2
			popup.Y = foe.Y - 20 - enemyOffset
			enemyOffset += 18
		} else {
			popup.X = playerX + playerW/2
			popup.Y = playerY - 20 - playerOffset
			playerOffset += 18
		}
		frame.Commands.Spawn(popup, Lifetime{Remaining: popupSeconds})
	}
}

func popupFor(ev battle.Event) (Popup, bool) {
	switch ev.Kind {
	case battle.EventDamage:
		return Popup{Text: fmt.Sprintf("-%d", ev.Amount), Color: damageColor}, true
	case battle.EventHeal:
		return Popup{Text: fmt.Sprintf("+%d HP", ev.Amount), Color: healColor}, true
	case battle.EventShield:
		return Popup{Text: fmt.Sprintf("+%d shield", ev.Amount), Color: shieldColor}, true
	case battle.EventBlocked:
		return Popup{Text: fmt.Sprintf("blocked %d", ev.Amount), Color: shieldColor}, true
	case battle.EventStage:
		return Popup{Text: fmt.Sprintf("Stage %d", ev.Amount), Color: noticeColor}, true
	}
	return Popup{}, false
}

// OutcomeSystem records a finished run in the session and shows the
// result screen.
type OutcomeSystem struct {
	Router  ecs.Singleton[Router]
	State   ecs.Singleton[BattleState]
	Session ecs.Singleton[Session]
	Result  ecs.Singleton[Result]
}

func (s *OutcomeSystem) Execute(frame *ecs.UpdateFrame) {
	state := s.State.Get()
	if state.Battle == nil || state.Finished || state.Battle.Outcome == battle.Ongoing {
		return
	}
	state.Finished = true

	b := state.Battle
	session := s.Session.Get()
	switch b.Outcome {
	case battle.Victory:
		session.Wins++
	case battle.Defeat:
		session.Losses++
	}
	session.BestStage = max(session.BestStage, b.Stage)

	*s.Result.Get() = Result{
		Outcome: b.Outcome,
		Stage:   b.Stage,
		Turns:   b.Turn,
		Enemy:   b.Enemy.Name(),
	}
	s.Router.Get().Go(frame, ScreenResult)
}

// PopupSystem floats popups upward and removes them when they expire.
type PopupSystem struct{}

func (s *PopupSystem) Execute(frame *ecs.UpdateFrame) {
	for id, life := range ecs.Each[Lifetime](frame.Storage) {
		life.Remaining -= frame.DeltaTime
		if life.Remaining <= 0 {
			frame.Commands.Delete(id)
			continue
		}
		if popup := ecs.ReadComponent[Popup](frame.Storage, id); popup != nil {
			popup.Y -= 40 * frame.DeltaTime
		}
	}
}

// enterBattle starts a new run with the session deck and clears leftover
// popups.
func enterBattle(storage *ecs.Storage, start func() (*battle.Battle, error)) error {
	var stale []ecs.EntityId
	for id := range ecs.Each[Popup](storage) {
		stale = append(stale, id)
	}
	for _, id := range stale {
		storage.Delete(id)
	}

	var state *BattleState
	storage.ReadSingleton(&state)

	b, err := start()
	if err != nil {
		return err
	}
	*state = BattleState{Battle: b, Message: fmt.Sprintf("Stage 1: %s appears", b.Enemy.Name())}
	return nil
}
