package card

// HandSize is the number of cards a player carries.
const HandSize = 4

var predefined = []Record{
	{Type: KindAttack, Name: "Fireball", Value: 5},
	{Type: KindHeal, Name: "Health Potion", Value: 3},
	{Type: KindShield, Name: "Wooden Shield", Value: 2},
	{Type: KindShield, Name: "Iron Shield", Value: 4},
	{Type: KindAttack, Name: "Sword", Value: 6},
	{Type: KindAttack, Name: "Spear", Value: 4},
	{Type: KindAttack, Name: "Rock", Value: 1},
	{Type: KindHeal, Name: "Kebab", Value: 2},
}

// Predefined returns a fresh copy of every card sold in the tavern.
func Predefined() []Card {
	f := DefaultFactory()
	cards := make([]Card, 0, len(predefined))
	for _, r := range predefined {
		cards = append(cards, f.MustCreate(r.Type, r.Name, r.Value))
	}
	return cards
}

// DefaultDeck is the starting hand: the first HandSize predefined cards.
func DefaultDeck() []Card {
	return Predefined()[:HandSize]
}
