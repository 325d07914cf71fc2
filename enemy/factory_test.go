package enemy_test

import (
	"testing"

	"github.com/plus3/tavernbrawl/enemy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryCreate(t *testing.T) {
	f := enemy.DefaultFactory()

	tests := []struct {
		code   int
		sprite string
		size   enemy.Size
	}{
		{enemy.CodeSpearGoblin, "goblin_koplje.png", enemy.Size{W: 200, H: 270}},
		{enemy.CodeGoblin, "goblin.png", enemy.Size{W: 200, H: 270}},
		{enemy.CodeLittleSkeleton, "mali_skeleton.png", enemy.Size{W: 200, H: 270}},
		{enemy.CodeSkeletonDragon, "skeleton_dragon.png", enemy.Size{W: 300, H: 300}},
	}

	for _, tt := range tests {
		t.Run(tt.sprite, func(t *testing.T) {
			e, err := f.Create(tt.code, 700, 300, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.sprite, e.Kind.Sprite)
			assert.Equal(t, tt.size, e.Kind.Size)
			assert.Equal(t, 700.0, e.X)
			assert.Equal(t, 300.0, e.Y)
			assert.Equal(t, e.MaxHealth, e.Health)
		})
	}
}

func TestFactoryRegularEnemiesStartAtTen(t *testing.T) {
	f := enemy.DefaultFactory()
	for _, code := range f.RegularCodes() {
		e, err := f.Create(code, 0, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 10, e.Health)
	}
}

func TestFactoryUnknownCode(t *testing.T) {
	_, err := enemy.DefaultFactory().Create(9, 0, 0, 0)
	assert.ErrorIs(t, err, enemy.ErrUnknownCode)

	_, ok := enemy.DefaultFactory().Lookup(0)
	assert.False(t, ok)
}

func TestFactoryCodes(t *testing.T) {
	f := enemy.DefaultFactory()
	assert.Equal(t, []int{1, 2, 3}, f.RegularCodes())
	assert.Equal(t, []int{4}, f.BossCodes())

	f.Register(enemy.Kind{Code: 7, Name: "Lich", Health: 50, Boss: true})
	f.Register(enemy.Kind{Code: 2, Name: "Goblin Chief", Health: 12})
	assert.Equal(t, []int{4, 7}, f.BossCodes())

	chief, err := f.Create(2, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Goblin Chief", chief.Name())
}

func TestEnemyTakeDamage(t *testing.T) {
	e, err := enemy.DefaultFactory().Create(enemy.CodeGoblin, 0, 0, 0)
	require.NoError(t, err)

	assert.False(t, e.TakeDamage(9))
	assert.Equal(t, 1, e.Health)
	assert.True(t, e.TakeDamage(1))
	assert.True(t, e.Slain())
}

func TestEnemyHealClampsAndIgnoresShield(t *testing.T) {
	e, err := enemy.DefaultFactory().Create(enemy.CodeGoblin, 0, 0, 0)
	require.NoError(t, err)

	e.TakeDamage(3)
	e.Heal(10)
	assert.Equal(t, 10, e.Health)

	e.AbsorbDamage(5)
	e.TakeDamage(4)
	assert.Equal(t, 6, e.Health)
}
