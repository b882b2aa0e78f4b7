package game

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"
	"github.com/stellar-explorer/stellar_explorer/internal/catalog"
)

// notify raises a popup and records it in the log.
// Only the last popup raised in a tick is left on screen.
func (s *Sim) notify(text string, priority MsgPriority) {
	s.Log.Add(text, priority)
	s.Popup = NewPopup(text, priority)
}

// collectStars removes every star touching the player and awards cards.
func (s *Sim) collectStars() {
	pr := s.PlayerBounds()

	var hits []ecs.Entity
	var kinds []catalog.StarKind

	query := s.stars.Query()
	for query.Next() {
		pos, body, star := query.Get()
		if pr.Overlaps(BoundsOf(*pos, *body)) {
			hits = append(hits, query.Entity())
			kinds = append(kinds, star.Kind)
		}
	}

	for _, e := range hits {
		s.ECS.RemoveEntity(e)
	}
	for _, k := range kinds {
		s.collect(k)
	}
}

// collect handles one collected star.
func (s *Sim) collect(kind catalog.StarKind) {
	card, ok := s.Cards.Stars.Lookup(kind.Key())
	if !ok {
		card = catalog.Card{Key: kind.Key(), Title: kind.String()}
	}

	if s.Progress.Unlock(catalog.DeckStars, card) {
		s.HR.Plot(kind)
		s.notify(fmt.Sprintf("You discovered a %s star!\nAdded to HR Diagram and Cards.", kind), MsgDiscovery)
	} else {
		s.notify(fmt.Sprintf("Another %s star.\nAlready in your cards.", kind), MsgInfo)
	}

	// Both gates are rolled for every star, in this order.
	if s.rng.Float64() < s.Rules.ConceptChance {
		if c, ok := s.drawCard(s.Cards.Concepts); ok {
			s.notify(fmt.Sprintf("Studying the %s star...\nConcept unlocked: %s\n%s", kind, c.Title, c.Text), MsgConcept)
		}
	}
	if s.rng.Float64() < s.Rules.SpecialChance {
		if c, ok := s.drawCard(s.Cards.Specials); ok {
			s.notify(fmt.Sprintf("The %s star led you somewhere rare!\nSpecial card: %s\n%s", kind, c.Title, c.Text), MsgSpecial)
		}
	}
}

// drawCard unlocks a uniformly random uncollected card from d.
// ok is false when the deck is exhausted.
func (s *Sim) drawCard(d *catalog.Deck) (catalog.Card, bool) {
	pool := s.Progress.uncollected(d)
	if len(pool) == 0 {
		return catalog.Card{}, false
	}
	c := pool[s.rng.IntN(len(pool))]
	s.Progress.Unlock(d.Kind, c)
	return c, true
}

// checkHazards teleports the player to the centre on any hazard contact.
func (s *Sim) checkHazards() {
	pr := s.PlayerBounds()

	hit := false
	var first catalog.HazardKind

	query := s.hazards.Query()
	for query.Next() {
		pos, body, hz := query.Get()
		if !hit && pr.Overlaps(BoundsOf(*pos, *body)) {
			hit = true
			first = hz.Kind
		}
	}

	if hit {
		s.ResetPlayer()
		s.notify(fmt.Sprintf("Danger! You hit a %s!\nTeleporting to safe zone.", first), MsgDanger)
	}
}
