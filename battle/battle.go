// Package battle runs a turn-based fight through a sequence of stages,
// each against one enemy, ending with a boss.
package battle

import (
	"errors"
	"fmt"

	"github.com/plus3/tavernbrawl/card"
	"github.com/plus3/tavernbrawl/enemy"
)

var (
	ErrOver      = errors.New("battle is over")
	ErrNoCard    = errors.New("no card at that position")
	ErrCardSpent = errors.New("card already played this encounter")
)

// Dice is the source of randomness. *rand.Rand from math/rand/v2 satisfies it.
type Dice interface {
	IntN(n int) int
}

// Config holds the tunable rules of a run.
type Config struct {
	// FinalStage is the stage the boss appears on.
	FinalStage   int
	PlayerHealth int
	MinMelee     int
	MaxMelee     int
	EnemyX       float64
	EnemyY       float64
}

// DefaultConfig returns the standard rules.
func DefaultConfig() Config {
	return Config{
		FinalStage:   5,
		PlayerHealth: 30,
		MinMelee:     2,
		MaxMelee:     4,
		EnemyX:       700,
		EnemyY:       300,
	}
}

// Battle is one run from stage 1 to the boss.
type Battle struct {
	Config  Config
	Player  *Player
	Enemy   *enemy.Enemy
	Hand    []card.Card
	Stage   int
	Turn    int
	Outcome Outcome
	Log     []Event

	spent   []bool
	enemies *enemy.Factory
	dice    Dice
}

// New starts a run at stage 1 with the given hand.
func New(cfg Config, hand []card.Card, enemies *enemy.Factory, dice Dice) (*Battle, error) {
	if cfg.FinalStage < 1 {
		return nil, fmt.Errorf("final stage must be at least 1, got %d", cfg.FinalStage)
	}
	if cfg.MinMelee < 0 || cfg.MaxMelee < cfg.MinMelee {
		return nil, fmt.Errorf("invalid melee range [%d, %d]", cfg.MinMelee, cfg.MaxMelee)
	}
	if len(enemies.RegularCodes()) == 0 && len(enemies.BossCodes()) == 0 {
		return nil, errors.New("enemy factory has no kinds")
	}

	b := &Battle{
		Config:  cfg,
		Player:  NewPlayer(cfg.PlayerHealth),
		Hand:    hand,
		Stage:   1,
		spent:   make([]bool, len(hand)),
		enemies: enemies,
		dice:    dice,
	}
	if err := b.spawnEnemy(); err != nil {
		return nil, err
	}
	return b, nil
}

// Spent reports whether the card at i was already played against the
// current enemy.
func (b *Battle) Spent(i int) bool {
	return i >= 0 && i < len(b.spent) && b.spent[i]
}

// Playable returns the indices of cards that can still be played.
func (b *Battle) Playable() []int {
	var out []int
	for i := range b.Hand {
		if !b.spent[i] {
			out = append(out, i)
		}
	}
	return out
}

// IsBossStage reports whether the current enemy is the boss.
func (b *Battle) IsBossStage() bool {
	return b.Enemy != nil && b.Enemy.Kind.Boss
}

// Attack performs a melee attack, then lets the enemy respond.
func (b *Battle) Attack() ([]Event, error) {
	if b.Outcome != Ongoing {
		return nil, ErrOver
	}

	damage := b.Config.MinMelee + b.dice.IntN(b.Config.MaxMelee-b.Config.MinMelee+1)
	b.Enemy.TakeDamage(damage)

	events := []Event{{
		Kind:    EventDamage,
		Side:    SideEnemy,
		Amount:  damage,
		Message: fmt.Sprintf("You hit %s for %d", b.Enemy.Name(), damage),
	}}
	return b.finishTurn(events), nil
}

// PlayCard uses the card at index i. Attack cards target the enemy; heal
// and shield cards target the player. Each card may be played once per
// enemy. A card of any other kind is rejected without taking a turn.
func (b *Battle) PlayCard(i int) ([]Event, error) {
	if b.Outcome != Ongoing {
		return nil, ErrOver
	}
	if i < 0 || i >= len(b.Hand) {
		return nil, fmt.Errorf("%w: %d", ErrNoCard, i)
	}
	if b.spent[i] {
		return nil, fmt.Errorf("%w: %s", ErrCardSpent, b.Hand[i].Name())
	}

	c := b.Hand[i]
	switch c.Kind() {
	case card.KindAttack, card.KindShield, card.KindHeal:
	default:
		return nil, fmt.Errorf("%s: %w: %q", c.Name(), card.ErrUnknownKind, c.Kind())
	}
	b.spent[i] = true

	var events []Event
	switch c.Kind() {
	case card.KindAttack:
		before := b.Enemy.Health
		c.Use(b.Enemy)
		events = append(events, Event{
			Kind:    EventDamage,
			Side:    SideEnemy,
			Amount:  before - b.Enemy.Health,
			Message: fmt.Sprintf("%s hits %s for %d", c.Name(), b.Enemy.Name(), before-b.Enemy.Health),
		})
	case card.KindShield:
		before := b.Player.Shield
		c.Use(b.Player)
		events = append(events, Event{
			Kind:    EventShield,
			Side:    SidePlayer,
			Amount:  b.Player.Shield - before,
			Message: fmt.Sprintf("%s raises your shield by %d", c.Name(), b.Player.Shield-before),
		})
	case card.KindHeal:
		before := b.Player.Health
		c.Use(b.Player)
		events = append(events, Event{
			Kind:    EventHeal,
			Side:    SidePlayer,
			Amount:  b.Player.Health - before,
			Message: fmt.Sprintf("%s heals you for %d", c.Name(), b.Player.Health-before),
		})
	}

	return b.finishTurn(events), nil
}

// finishTurn resolves the enemy's death or its counterattack.
func (b *Battle) finishTurn(events []Event) []Event {
	b.Turn++

	if b.Enemy.Slain() {
		events = append(events, b.enemySlain()...)
	} else {
		events = append(events, b.enemyStrikes()...)
	}

	b.Log = append(b.Log, events...)
	return events
}

func (b *Battle) enemySlain() []Event {
	events := []Event{{
		Kind:    EventSlain,
		Side:    SideEnemy,
		Message: fmt.Sprintf("%s is defeated", b.Enemy.Name()),
	}}

	if b.IsBossStage() {
		b.Outcome = Victory
		return append(events, Event{Kind: EventVictory, Message: "The boss has fallen"})
	}

	b.Stage++
	if err := b.spawnEnemy(); err != nil {
		// codes come from the factory itself
		panic(err)
	}
	clear(b.spent)

	return append(events, Event{
		Kind:    EventStage,
		Amount:  b.Stage,
		Message: fmt.Sprintf("Stage %d: %s appears", b.Stage, b.Enemy.Name()),
	})
}

func (b *Battle) enemyStrikes() []Event {
	blocked := b.Player.absorb(b.Enemy.Attack)
	dealt := b.Enemy.Attack - blocked

	var events []Event
	if blocked > 0 {
		events = append(events, Event{
			Kind:    EventBlocked,
			Side:    SidePlayer,
			Amount:  blocked,
			Message: fmt.Sprintf("Your shield blocks %d", blocked),
		})
	}
	events = append(events, Event{
		Kind:    EventDamage,
		Side:    SidePlayer,
		Amount:  dealt,
		Message: fmt.Sprintf("%s hits you for %d", b.Enemy.Name(), dealt),
	})

	if b.Player.Dead() {
		b.Outcome = Defeat
		events = append(events, Event{Kind: EventDefeat, Side: SidePlayer, Message: "You have fallen"})
	}
	return events
}

func (b *Battle) spawnEnemy() error {
	codes := b.enemies.RegularCodes()
	if b.Stage >= b.Config.FinalStage || len(codes) == 0 {
		if bosses := b.enemies.BossCodes(); len(bosses) > 0 {
			codes = bosses
		}
	}

	code := codes[b.dice.IntN(len(codes))]
	e, err := b.enemies.Create(code, b.Config.EnemyX, b.Config.EnemyY, 0)
	if err != nil {
		return fmt.Errorf("spawn stage %d enemy: %w", b.Stage, err)
	}
	b.Enemy = e
	return nil
}
