package deck

import "github.com/plus3/tavernbrawl/card"

// Editor swaps cards between the player's hand and the tavern pool.
// The hand holds card.HandSize cards; indices wrap around at both ends.
type Editor struct {
	Hand []card.Card
	Pool []card.Card

	HandIndex int
	PoolIndex int
}

// NewEditor builds an editor over a hand and the tavern's pool. A hand
// that is not exactly card.HandSize long is padded from, or trimmed to,
// the default deck.
func NewEditor(hand, pool []card.Card) *Editor {
	fixed := make([]card.Card, card.HandSize)
	defaults := card.DefaultDeck()
	for i := range fixed {
		if i < len(hand) {
			fixed[i] = hand[i]
		} else {
			fixed[i] = defaults[i]
		}
	}
	return &Editor{Hand: fixed, Pool: pool}
}

// MoveHand moves the hand selection by delta, wrapping around.
func (e *Editor) MoveHand(delta int) {
	e.HandIndex = wrap(e.HandIndex+delta, len(e.Hand))
}

// MovePool moves the tavern selection by delta, wrapping around.
func (e *Editor) MovePool(delta int) {
	e.PoolIndex = wrap(e.PoolIndex+delta, len(e.Pool))
}

// Swap exchanges the selected hand card with the selected tavern card.
func (e *Editor) Swap() {
	if len(e.Hand) == 0 || len(e.Pool) == 0 {
		return
	}
	e.Hand[e.HandIndex], e.Pool[e.PoolIndex] = e.Pool[e.PoolIndex], e.Hand[e.HandIndex]
}

// SelectedHand returns the selected hand card.
func (e *Editor) SelectedHand() card.Card {
	if len(e.Hand) == 0 {
		return nil
	}
	return e.Hand[e.HandIndex]
}

// SelectedPool returns the selected tavern card.
func (e *Editor) SelectedPool() card.Card {
	if len(e.Pool) == 0 {
		return nil
	}
	return e.Pool[e.PoolIndex]
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
