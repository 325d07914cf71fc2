// Package card defines the effect cards a player carries into battle and
// the factory that builds them from their saved form.
package card

import (
	"fmt"
	"strings"
)

// Kind names a card type. It is also the "type" field of a saved card.
type Kind string

const (
	KindAttack Kind = "attack"
	KindHeal   Kind = "heal"
	KindShield Kind = "shield"
)

// Target is anything a card can be used on.
type Target interface {
	// TakeDamage reduces health and reports whether the target was slain.
	TakeDamage(amount int) bool
	Heal(amount int)
	AbsorbDamage(amount int)
}

// Card is a single effect card.
type Card interface {
	Name() string
	Value() int
	Kind() Kind
	Use(target Target)
	String() string
}

type base struct {
	name  string
	value int
}

func (b base) Name() string { return b.name }
func (b base) Value() int   { return b.value }

// AttackCard deals its value as damage.
type AttackCard struct{ base }

func NewAttack(name string, value int) *AttackCard {
	return &AttackCard{base{name: name, value: value}}
}

func (c *AttackCard) Kind() Kind { return KindAttack }

func (c *AttackCard) Use(target Target) {
	target.TakeDamage(c.value)
}

func (c *AttackCard) String() string { return describe(c) }

// HealCard restores its value in health.
type HealCard struct{ base }

func NewHeal(name string, value int) *HealCard {
	return &HealCard{base{name: name, value: value}}
}

func (c *HealCard) Kind() Kind { return KindHeal }

func (c *HealCard) Use(target Target) {
	target.Heal(c.value)
}

func (c *HealCard) String() string { return describe(c) }

// ShieldCard grants its value as damage absorption.
type ShieldCard struct{ base }

func NewShield(name string, value int) *ShieldCard {
	return &ShieldCard{base{name: name, value: value}}
}

func (c *ShieldCard) Kind() Kind { return KindShield }

func (c *ShieldCard) Use(target Target) {
	target.AbsorbDamage(c.value)
}

func (c *ShieldCard) String() string { return describe(c) }

func describe(c Card) string {
	title := string(c.Kind())
	if title != "" {
		title = strings.ToUpper(title[:1]) + title[1:]
	}
	return fmt.Sprintf("%sCard: %s (Value: %d)", title, c.Name(), c.Value())
}

// ArtworkFile returns the artwork file name for a card name:
// lowercased with spaces replaced by underscores.
func ArtworkFile(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_") + ".png"
}
