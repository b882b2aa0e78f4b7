package game

import "github.com/stellar-explorer/stellar_explorer/internal/catalog"

// Collection is an insertion-ordered set of card keys.
type Collection struct {
	keys []string
	seen map[string]bool
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{seen: make(map[string]bool)}
}

// Add records key. Returns false if it was already present.
func (c *Collection) Add(key string) bool {
	if c.seen[key] {
		return false
	}
	c.seen[key] = true
	c.keys = append(c.keys, key)
	return true
}

// Has reports whether key has been collected.
func (c *Collection) Has(key string) bool { return c.seen[key] }

// Len returns the number of distinct keys collected.
func (c *Collection) Len() int { return len(c.keys) }

// Keys returns the collected keys in the order they were added.
func (c *Collection) Keys() []string { return c.keys }

// Unlock is one entry in the journal of collected cards.
type Unlock struct {
	Deck catalog.DeckKind
	Card catalog.Card
}

// Progress tracks every card collected during a run.
type Progress struct {
	Collected [catalog.DeckKindCount]*Collection
	Journal   []Unlock // every unlock, oldest first
}

// NewProgress creates an empty progress record.
func NewProgress() *Progress {
	p := &Progress{}
	for i := range p.Collected {
		p.Collected[i] = NewCollection()
	}
	return p
}

// Unlock marks card as collected in its deck. Returns false for repeats.
func (p *Progress) Unlock(deck catalog.DeckKind, card catalog.Card) bool {
	if !p.Collected[deck].Add(card.Key) {
		return false
	}
	p.Journal = append(p.Journal, Unlock{Deck: deck, Card: card})
	return true
}

// Count returns how many cards of deck have been collected.
func (p *Progress) Count(deck catalog.DeckKind) int {
	return p.Collected[deck].Len()
}

// Recent returns the last n unlocks (or fewer), oldest first.
func (p *Progress) Recent(n int) []Unlock {
	if n > len(p.Journal) {
		n = len(p.Journal)
	}
	return p.Journal[len(p.Journal)-n:]
}

// uncollected lists cards of d not yet in the matching collection.
func (p *Progress) uncollected(d *catalog.Deck) []catalog.Card {
	var out []catalog.Card
	for i := 0; i < d.Len(); i++ {
		c := d.Card(i)
		if !p.Collected[d.Kind].Has(c.Key) {
			out = append(out, c)
		}
	}
	return out
}
