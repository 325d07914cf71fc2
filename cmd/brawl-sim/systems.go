package main

import (
	"github.com/plus3/tavernbrawl/battle"
	"github.com/plus3/tavernbrawl/card"
	"github.com/plus3/tavernbrawl/ecs"
)

// Match is the run currently being played.
type Match struct {
	Battle *battle.Battle
}

// Tally accumulates finished runs.
type Tally struct {
	Target  int
	Played  int
	Wins    int
	Losses  int
	Stages  []int
	Turns   []int
	Actions int
}

// Done reports whether every requested run has been played.
func (t *Tally) Done() bool {
	return t.Played >= t.Target
}

// StartSystem begins a new run when none is in progress.
type StartSystem struct {
	Match ecs.Singleton[Match]
	Tally ecs.Singleton[Tally]

	Start func() (*battle.Battle, error)
	Err   error
}

func (s *StartSystem) Execute(frame *ecs.UpdateFrame) {
	match := s.Match.Get()
	if match.Battle != nil || s.Tally.Get().Done() || s.Err != nil {
		return
	}
	match.Battle, s.Err = s.Start()
}

// StrategySystem takes one action in the current run.
type StrategySystem struct {
	Match ecs.Singleton[Match]
	Tally ecs.Singleton[Tally]

	Strategy Strategy
}

func (s *StrategySystem) Execute(frame *ecs.UpdateFrame) {
	b := s.Match.Get().Battle
	if b == nil || b.Outcome != battle.Ongoing {
		return
	}

	var err error
	if i, ok := s.Strategy(b); ok {
		_, err = b.PlayCard(i)
	} else {
		_, err = b.Attack()
	}
	if err != nil {
		panic(err)
	}
	s.Tally.Get().Actions++
}

// TallySystem records finished runs and clears the match.
type TallySystem struct {
	Match ecs.Singleton[Match]
	Tally ecs.Singleton[Tally]
}

func (s *TallySystem) Execute(frame *ecs.UpdateFrame) {
	match := s.Match.Get()
	b := match.Battle
	if b == nil || b.Outcome == battle.Ongoing {
		return
	}

	tally := s.Tally.Get()
	tally.Played++
	if b.Outcome == battle.Victory {
		tally.Wins++
	} else {
		tally.Losses++
	}
	tally.Stages = append(tally.Stages, b.Stage)
	tally.Turns = append(tally.Turns, b.Turn)
	match.Battle = nil
}

// Strategy picks the card to play, or reports false to melee instead.
type Strategy func(b *battle.Battle) (int, bool)

var strategies = map[string]Strategy{
	"melee":  meleeOnly,
	"greedy": greedy,
}

func meleeOnly(*battle.Battle) (int, bool) {
	return 0, false
}

// greedy heals when the next hit could be lethal, raises a shield when it
// has none, and otherwise plays its strongest attack card.
func greedy(b *battle.Battle) (int, bool) {
	playable := b.Playable()
	best := func(kind card.Kind) (int, bool) {
		pick, value := -1, 0
		for _, i := range playable {
			if c := b.Hand[i]; c.Kind() == kind && c.Value() > value {
				pick, value = i, c.Value()
			}
		}
		return pick, pick >= 0
	}

	if b.Player.Health <= b.Enemy.Attack*2 && b.Player.Health < b.Player.MaxHealth {
		if i, ok := best(card.KindHeal); ok {
			return i, true
		}
	}
	if b.Player.Shield == 0 {
		if i, ok := best(card.KindShield); ok {
			return i, true
		}
	}
	return best(card.KindAttack)
}
