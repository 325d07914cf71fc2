// Package deck persists the player's hand and edits it against the
// tavern's card pool.
package deck

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/plus3/tavernbrawl/card"
)

// DefaultPath is the save file name used when none is configured.
const DefaultPath = "saved_cards.json"

// ErrDeckSize is returned for a deck that does not hold card.HandSize cards.
var ErrDeckSize = errors.New("wrong number of cards in deck")

// Store reads and writes the saved deck.
type Store struct {
	Path    string
	Factory *card.Factory
	Logger  *log.Logger
}

// NewStore creates a store for path using the default card factory.
func NewStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{
		Path:    path,
		Factory: card.DefaultFactory(),
		Logger:  logger,
	}
}

// Load returns the saved deck. A missing file, a corrupt file, a card of
// an unknown kind or a deck of the wrong size all fall back to
// card.DefaultDeck(); the reason is logged.
func (s *Store) Load() []card.Card {
	cards, err := s.Read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.Logger.Printf("no saved deck at %s, using default deck", s.Path)
		} else {
			s.Logger.Printf("warning: %v, using default deck", err)
		}
		return card.DefaultDeck()
	}
	return cards
}

// Read parses the save file without any fallback.
func (s *Store) Read() ([]card.Card, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read saved deck: %w", err)
	}

	var records []card.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode saved deck %s: %w", s.Path, err)
	}

	cards := make([]card.Card, 0, len(records))
	for i, r := range records {
		c, err := s.Factory.FromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("saved deck %s card %d: %w", s.Path, i, err)
		}
		cards = append(cards, c)
	}
	if len(cards) != card.HandSize {
		return nil, fmt.Errorf("saved deck %s: %w: got %d, want %d", s.Path, ErrDeckSize, len(cards), card.HandSize)
	}
	return cards, nil
}

// Save overwrites the save file with cards, which must be a full hand.
func (s *Store) Save(cards []card.Card) error {
	if len(cards) != card.HandSize {
		return fmt.Errorf("save deck: %w: got %d, want %d", ErrDeckSize, len(cards), card.HandSize)
	}

	data, err := json.Marshal(card.ToRecords(cards))
	if err != nil {
		return fmt.Errorf("encode deck: %w", err)
	}

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".deck-*.json")
	if err != nil {
		return fmt.Errorf("save deck: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save deck: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save deck: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("save deck: %w", err)
	}
	return nil
}
