package battle

// Player is the hero. Damage is taken from Shield before Health.
type Player struct {
	Health    int
	MaxHealth int
	Shield    int
}

// NewPlayer returns a player at full health.
func NewPlayer(health int) *Player {
	return &Player{Health: health, MaxHealth: health}
}

// TakeDamage applies damage, consuming shield first, and reports whether
// the player died.
func (p *Player) TakeDamage(amount int) bool {
	p.absorb(amount)
	return p.Dead()
}

// absorb applies damage and returns how much the shield stopped.
func (p *Player) absorb(amount int) int {
	blocked := min(p.Shield, amount)
	p.Shield -= blocked
	p.Health -= amount - blocked
	return blocked
}

// Heal restores health up to MaxHealth.
func (p *Player) Heal(amount int) {
	p.Health = min(p.Health+amount, p.MaxHealth)
}

// AbsorbDamage adds to the shield.
func (p *Player) AbsorbDamage(amount int) {
	p.Shield += amount
}

// Dead reports whether health has dropped to zero or below.
func (p *Player) Dead() bool {
	return p.Health <= 0
}
