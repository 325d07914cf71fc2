package card

// Record is the saved form of a card.
type Record struct {
	Type  Kind   `json:"type"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ToRecord converts a card to its saved form.
func ToRecord(c Card) Record {
	return Record{Type: c.Kind(), Name: c.Name(), Value: c.Value()}
}

// FromRecord builds a card from its saved form.
func (f *Factory) FromRecord(r Record) (Card, error) {
	return f.Create(r.Type, r.Name, r.Value)
}

// ToRecords converts a slice of cards.
func ToRecords(cards []Card) []Record {
	records := make([]Record, len(cards))
	for i, c := range cards {
		records[i] = ToRecord(c)
	}
	return records
}
