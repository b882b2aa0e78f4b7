package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DeckKind identifies one of the three card decks.
type DeckKind uint8

const (
	DeckStars DeckKind = iota
	DeckConcepts
	DeckSpecials
	DeckKindCount // sentinel
)

func (d DeckKind) String() string {
	switch d {
	case DeckStars:
		return "Star"
	case DeckConcepts:
		return "Concept"
	case DeckSpecials:
		return "Special"
	default:
		return "Unknown"
	}
}

// Card is a single collectible flashcard.
type Card struct {
	Key   string `yaml:"key"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// Deck is an ordered, read-only set of cards.
type Deck struct {
	Kind  DeckKind
	cards []Card
	index map[string]int
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int { return len(d.cards) }

// Card returns the card at position i.
func (d *Deck) Card(i int) Card { return d.cards[i] }

// Lookup returns the card with the given key.
func (d *Deck) Lookup(key string) (Card, bool) {
	i, ok := d.index[key]
	if !ok {
		return Card{}, false
	}
	return d.cards[i], true
}

// Cards holds the three decks used in a run.
type Cards struct {
	Stars    *Deck
	Concepts *Deck
	Specials *Deck
}

// Deck returns the deck of the given kind.
func (c *Cards) Deck(kind DeckKind) *Deck {
	switch kind {
	case DeckStars:
		return c.Stars
	case DeckConcepts:
		return c.Concepts
	default:
		return c.Specials
	}
}

// cardsFile is the YAML layout of the deck file.
type cardsFile struct {
	Stars    []Card `yaml:"stars"`
	Concepts []Card `yaml:"concepts"`
	Specials []Card `yaml:"specials"`
}

// LoadCards parses the three decks from YAML bytes.
func LoadCards(data []byte) (*Cards, error) {
	var f cardsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse card deck: %w", err)
	}

	stars, err := newDeck(DeckStars, f.Stars)
	if err != nil {
		return nil, err
	}
	concepts, err := newDeck(DeckConcepts, f.Concepts)
	if err != nil {
		return nil, err
	}
	specials, err := newDeck(DeckSpecials, f.Specials)
	if err != nil {
		return nil, err
	}

	// Every collectible star kind needs a card.
	for _, k := range StarKinds() {
		if _, ok := stars.Lookup(k.Key()); !ok {
			return nil, fmt.Errorf("star deck: missing card for %s (key %q)", k, k.Key())
		}
	}

	return &Cards{Stars: stars, Concepts: concepts, Specials: specials}, nil
}

func newDeck(kind DeckKind, cards []Card) (*Deck, error) {
	if len(cards) == 0 {
		return nil, fmt.Errorf("%s deck cannot be empty", kind)
	}
	index := make(map[string]int, len(cards))
	for i, c := range cards {
		if c.Key == "" {
			return nil, fmt.Errorf("%s deck: card %d has no key", kind, i)
		}
		if c.Title == "" {
			return nil, fmt.Errorf("%s deck: card %q has no title", kind, c.Key)
		}
		if _, dup := index[c.Key]; dup {
			return nil, fmt.Errorf("%s deck: duplicate key %q", kind, c.Key)
		}
		index[c.Key] = i
	}
	return &Deck{Kind: kind, cards: cards, index: index}, nil
}
