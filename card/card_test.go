package card_test

import (
	"testing"

	"github.com/plus3/tavernbrawl/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTarget struct {
	damage, healed, absorbed int
}

func (r *recordingTarget) TakeDamage(amount int) bool {
	r.damage += amount
	return false
}

func (r *recordingTarget) Heal(amount int)         { r.healed += amount }
func (r *recordingTarget) AbsorbDamage(amount int) { r.absorbed += amount }

func TestCardEffects(t *testing.T) {
	target := &recordingTarget{}

	card.NewAttack("Sword", 6).Use(target)
	card.NewHeal("Kebab", 2).Use(target)
	card.NewShield("Iron Shield", 4).Use(target)

	assert.Equal(t, 6, target.damage)
	assert.Equal(t, 2, target.healed)
	assert.Equal(t, 4, target.absorbed)
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "AttackCard: Fireball (Value: 5)", card.NewAttack("Fireball", 5).String())
	assert.Equal(t, "HealCard: Health Potion (Value: 3)", card.NewHeal("Health Potion", 3).String())
	assert.Equal(t, "ShieldCard: Wooden Shield (Value: 2)", card.NewShield("Wooden Shield", 2).String())
}

func TestArtworkFile(t *testing.T) {
	assert.Equal(t, "health_potion.png", card.ArtworkFile("Health Potion"))
	assert.Equal(t, "fireball.png", card.ArtworkFile("Fireball"))
	assert.Equal(t, "iron_shield.png", card.ArtworkFile("Iron Shield"))
}

func TestPredefined(t *testing.T) {
	cards := card.Predefined()
	require.Len(t, cards, 8)

	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Name()
	}
	assert.Equal(t, []string{
		"Fireball", "Health Potion", "Wooden Shield", "Iron Shield",
		"Sword", "Spear", "Rock", "Kebab",
	}, names)

	assert.Equal(t, card.KindHeal, cards[7].Kind())
	assert.Equal(t, 6, cards[4].Value())
}

func TestPredefinedReturnsFreshCards(t *testing.T) {
	a := card.Predefined()
	b := card.Predefined()
	assert.NotSame(t, a[0], b[0])
}

func TestDefaultDeck(t *testing.T) {
	deck := card.DefaultDeck()
	require.Len(t, deck, card.HandSize)
	assert.Equal(t, card.ToRecords(card.Predefined()[:4]), card.ToRecords(deck))
}
