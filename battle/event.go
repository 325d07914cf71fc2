package battle

import "fmt"

// Outcome is the state of a battle run.
type Outcome int

const (
	Ongoing Outcome = iota
	Victory
	Defeat
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// EventKind classifies what happened during a turn.
type EventKind int

const (
	EventDamage EventKind = iota
	EventBlocked
	EventHeal
	EventShield
	EventSlain
	EventStage
	EventVictory
	EventDefeat
)

// Side says which combatant an event happened to.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// Event is one entry of the battle log.
type Event struct {
	Kind    EventKind
	Side    Side
	Amount  int
	Message string
}

func (e Event) String() string {
	return e.Message
}
