// Package content loads flashcard decks from YAML files. It is the
// content collaborator for the scheduler: decks supply the pool of card
// identifiers, and everything else (fronts, backs, topics) is opaque
// pass-through data that scheduling logic never interprets.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Card is one flashcard. Only the ID matters to scheduling.
type Card struct {
	ID         string `yaml:"id"`
	Front      string `yaml:"front"`
	Back       string `yaml:"back"`
	Topic      string `yaml:"topic,omitempty"`
	Course     string `yaml:"course,omitempty"`
	Difficulty string `yaml:"difficulty,omitempty"`
}

// DeckMetadata identifies a deck.
type DeckMetadata struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title,omitempty"`
}

// Deck is one YAML deck file: metadata plus its cards in file order.
type Deck struct {
	Metadata DeckMetadata `yaml:"deck"`
	Cards    []Card       `yaml:"cards"`
}

// CardIDs returns the deck's card identifiers in file order.
func (d Deck) CardIDs() []string {
	ids := make([]string, len(d.Cards))
	for i, card := range d.Cards {
		ids[i] = card.ID
	}
	return ids
}

// LoadDecks reads every .yml/.yaml file under directory as a deck,
// sorted by deck ID for a stable pool order.
func LoadDecks(directory string) ([]Deck, error) {
	var decks []Deck

	err := filepath.Walk(directory, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext != ".yml" && ext != ".yaml" {
			return nil
		}

		deck, err := readDeckFile(path)
		if err != nil {
			return fmt.Errorf("readDeckFile(%s) > %w", path, err)
		}
		decks = append(decks, deck)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("filepath.Walk(%s) > %w", directory, err)
	}

	sort.Slice(decks, func(i, j int) bool {
		return decks[i].Metadata.ID < decks[j].Metadata.ID
	})
	return decks, nil
}

func readDeckFile(path string) (Deck, error) {
	var deck Deck

	file, err := os.Open(path)
	if err != nil {
		return deck, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&deck); err != nil {
		return deck, fmt.Errorf("yaml.NewDecoder().Decode() > %w", err)
	}

	if deck.Metadata.ID == "" {
		return deck, fmt.Errorf("deck file %s has no deck id", path)
	}
	seen := make(map[string]struct{}, len(deck.Cards))
	for i, card := range deck.Cards {
		if card.ID == "" {
			return deck, fmt.Errorf("deck %s: card[%d] has no id", deck.Metadata.ID, i)
		}
		if _, dup := seen[card.ID]; dup {
			return deck, fmt.Errorf("deck %s: duplicate card id %q", deck.Metadata.ID, card.ID)
		}
		seen[card.ID] = struct{}{}
	}
	return deck, nil
}

// FindDeck returns the deck with the given ID.
func FindDeck(decks []Deck, deckID string) (Deck, bool) {
	for _, deck := range decks {
		if deck.Metadata.ID == deckID {
			return deck, true
		}
	}
	return Deck{}, false
}

// AllCardIDs returns every card ID across decks, deck by deck.
func AllCardIDs(decks []Deck) []string {
	var ids []string
	for _, deck := range decks {
		ids = append(ids, deck.CardIDs()...)
	}
	return ids
}

// CardIndex maps card IDs to cards across decks, for presentation lookups.
func CardIndex(decks []Deck) map[string]Card {
	index := make(map[string]Card)
	for _, deck := range decks {
		for _, card := range deck.Cards {
			index[card.ID] = card
		}
	}
	return index
}
