// Package enemy holds the enemy stat table and the factory that turns
// integer enemy codes into enemies.
package enemy

// Size is a sprite size in pixels.
type Size struct {
	W, H int
}

// Kind is one row of the enemy stat table.
type Kind struct {
	Code   int
	Name   string
	Sprite string
	Size   Size
	Health int
	Attack int
	Boss   bool
}

// Enemy is a single opponent on the battlefield.
type Enemy struct {
	Kind      Kind
	X, Y      float64
	Speed     float64
	Health    int
	MaxHealth int
	Attack    int
}

// Name returns the display name.
func (e *Enemy) Name() string {
	return e.Kind.Name
}

// TakeDamage reduces health and reports whether the enemy is slain.
func (e *Enemy) TakeDamage(amount int) bool {
	e.Health -= amount
	return e.Slain()
}

// Slain reports whether health has dropped to zero or below.
func (e *Enemy) Slain() bool {
	return e.Health <= 0
}

// Heal restores health up to MaxHealth.
func (e *Enemy) Heal(amount int) {
	e.Health = min(e.Health+amount, e.MaxHealth)
}

// AbsorbDamage does nothing: enemies carry no shield.
func (e *Enemy) AbsorbDamage(int) {}
