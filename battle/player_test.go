package battle_test

import (
	"testing"

	"github.com/plus3/tavernbrawl/battle"
	"github.com/plus3/tavernbrawl/card"
	"github.com/stretchr/testify/assert"
)

var _ card.Target = (*battle.Player)(nil)

func TestPlayerShieldAbsorbsFirst(t *testing.T) {
	p := battle.NewPlayer(10)
	p.AbsorbDamage(3)

	assert.False(t, p.TakeDamage(2))
	assert.Equal(t, 10, p.Health)
	assert.Equal(t, 1, p.Shield)

	assert.False(t, p.TakeDamage(4))
	assert.Equal(t, 7, p.Health)
	assert.Equal(t, 0, p.Shield)
}

func TestPlayerHealClamps(t *testing.T) {
	p := battle.NewPlayer(10)
	p.TakeDamage(4)
	p.Heal(3)
	assert.Equal(t, 9, p.Health)
	p.Heal(3)
	assert.Equal(t, 10, p.Health)
}

func TestPlayerDeath(t *testing.T) {
	p := battle.NewPlayer(5)
	assert.True(t, p.TakeDamage(5))
	assert.True(t, p.Dead())
}
