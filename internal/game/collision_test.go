package game

import (
	"strings"
	"testing"

	"github.com/stellar-explorer/stellar_explorer/internal/catalog"
)

func TestRectOverlaps(t *testing.T) {
	a := Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"identical", a, true},
		{"inside", Rect{2, 2, 8, 8}, true},
		{"partial", Rect{5, 5, 15, 15}, true},
		{"touching edge", Rect{10, 0, 20, 10}, false},
		{"apart", Rect{20, 20, 30, 30}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollectStarUnlocksConceptCard(t *testing.T) {
	rules := quietRules()
	rules.ConceptChance = 1
	rules.SpecialChance = 0
	sim := NewSim(testCards(t), rules, NewRand(5))

	sim.PlacePlayer(500, 400)
	sim.SpawnStarAt(catalog.StarRedGiant, Position{X: 500, Y: 400}, Velocity{})

	starsBefore := sim.Progress.Count(catalog.DeckStars)
	conceptsBefore := sim.Progress.Count(catalog.DeckConcepts)

	sim.Tick(Input{})

	if n := len(sim.Stars()); n != 0 {
		t.Errorf("expected star removed, %d left", n)
	}
	if got := sim.Progress.Count(catalog.DeckStars) - starsBefore; got != 1 {
		t.Errorf("expected 1 new star card, got %d", got)
	}
	if got := sim.Progress.Count(catalog.DeckConcepts) - conceptsBefore; got != 1 {
		t.Errorf("expected 1 new concept card, got %d", got)
	}
	if sim.Progress.Count(catalog.DeckSpecials) != 0 {
		t.Errorf("no special card expected")
	}

	if !sim.Popup.Active() {
		t.Fatal("expected an active popup")
	}
	concept := sim.Progress.Collected[catalog.DeckConcepts].Keys()[0]
	card, _ := sim.Cards.Concepts.Lookup(concept)
	if !strings.Contains(sim.Popup.Text, "Red Giant") || !strings.Contains(sim.Popup.Text, card.Title) {
		t.Errorf("popup %q should mention the star and %q", sim.Popup.Text, card.Title)
	}
	if sim.Popup.Priority != MsgConcept {
		t.Errorf("popup priority = %d, want concept", sim.Popup.Priority)
	}
	if len(sim.HR.Points) != 1 || sim.HR.Points[0].Kind != catalog.StarRedGiant {
		t.Errorf("expected Red Giant plotted, got %+v", sim.HR.Points)
	}
}

func TestLastPopupInTickWins(t *testing.T) {
	rules := quietRules()
	rules.ConceptChance = 1
	rules.SpecialChance = 1
	sim := NewSim(testCards(t), rules, NewRand(5))
	sim.SpawnStarAt(catalog.StarSun, sim.PlayerPos(), Velocity{})

	sim.Tick(Input{})

	if sim.Popup.Priority != MsgSpecial {
		t.Errorf("expected special popup to survive, got priority %d", sim.Popup.Priority)
	}
	// The replaced popups still reach the log.
	var sawDiscovery, sawConcept bool
	for _, m := range sim.Log.Messages {
		switch m.Priority {
		case MsgDiscovery:
			sawDiscovery = true
		case MsgConcept:
			sawConcept = true
		}
	}
	if !sawDiscovery || !sawConcept {
		t.Errorf("log missing replaced popups: discovery=%v concept=%v", sawDiscovery, sawConcept)
	}
}

func TestStarCollectedOnce(t *testing.T) {
	rules := quietRules()
	rules.ConceptChance = 0
	rules.SpecialChance = 0
	sim := NewSim(testCards(t), rules, NewRand(3))

	p := sim.PlayerPos()
	sim.SpawnStarAt(catalog.StarWhiteDwarf, p, Velocity{})
	sim.SpawnStarAt(catalog.StarWhiteDwarf, Position{X: p.X + 5, Y: p.Y}, Velocity{})

	sim.Tick(Input{})
	sim.Tick(Input{})

	if got := sim.Progress.Count(catalog.DeckStars); got != 1 {
		t.Errorf("star collection has %d entries, want 1", got)
	}
	if got := len(sim.Progress.Journal); got != 1 {
		t.Errorf("journal has %d entries, want 1", got)
	}
	if len(sim.HR.Points) != 1 {
		t.Errorf("HR diagram has %d points, want 1", len(sim.HR.Points))
	}
	if !strings.HasPrefix(sim.Popup.Text, "Another White Dwarf") {
		t.Errorf("repeat popup = %q", sim.Popup.Text)
	}
}

func TestConceptDeckExhausts(t *testing.T) {
	rules := quietRules()
	rules.ConceptChance = 1
	rules.SpecialChance = 1
	cards := testCards(t)
	sim := NewSim(cards, rules, NewRand(11))

	for i := 0; i < cards.Concepts.Len()+5; i++ {
		sim.SpawnStarAt(catalog.StarProtostar, sim.PlayerPos(), Velocity{})
		sim.Tick(Input{})
	}

	if got := sim.Progress.Count(catalog.DeckConcepts); got != cards.Concepts.Len() {
		t.Errorf("collected %d concepts, deck has %d", got, cards.Concepts.Len())
	}
	if got := sim.Progress.Count(catalog.DeckSpecials); got != cards.Specials.Len() {
		t.Errorf("collected %d specials, deck has %d", got, cards.Specials.Len())
	}
	seen := make(map[string]bool)
	for _, u := range sim.Progress.Journal {
		id := u.Deck.String() + "/" + u.Card.Key
		if seen[id] {
			t.Fatalf("duplicate unlock %s", id)
		}
		seen[id] = true
	}
}

func TestHazardResetsPlayer(t *testing.T) {
	starts := []Position{
		{X: 100, Y: 100},
		{X: 900, Y: 650},
		{X: 520, Y: 360},
		{X: 25, Y: 675},
	}
	for _, start := range starts {
		sim := NewSim(testCards(t), quietRules(), NewRand(1))
		sim.PlacePlayer(start.X, start.Y)
		sim.SpawnHazardAt(catalog.HazardBlackHole, start, Velocity{})

		sim.Tick(Input{})

		pos := sim.PlayerPos()
		if pos.X != ScreenWidth/2 || pos.Y != ScreenHeight/2 {
			t.Errorf("from %+v: player at %+v, want centre", start, pos)
		}
		if len(sim.Hazards()) != 1 {
			t.Errorf("from %+v: hazard should survive contact", start)
		}
		if sim.Popup.Priority != MsgDanger || !strings.Contains(sim.Popup.Text, "Black Hole") {
			t.Errorf("from %+v: unexpected popup %+v", start, sim.Popup)
		}
	}
}

func TestCollectionSuppressesDuplicates(t *testing.T) {
	c := NewCollection()
	for _, k := range []string{"a", "b", "a", "c", "b"} {
		c.Add(k)
	}
	want := []string{"a", "b", "c"}
	got := c.Keys()
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestProgressRecent(t *testing.T) {
	p := NewProgress()
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		p.Unlock(catalog.DeckConcepts, catalog.Card{Key: k, Title: k})
	}
	recent := p.Recent(5)
	if len(recent) != 5 || recent[0].Card.Key != "c" || recent[4].Card.Key != "g" {
		t.Errorf("Recent(5) = %+v", recent)
	}
	if got := len(p.Recent(50)); got != 7 {
		t.Errorf("Recent(50) returned %d entries", got)
	}
}
