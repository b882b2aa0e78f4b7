package catalog

import (
	"strings"
	"testing"

	"github.com/stellar-explorer/stellar_explorer/assets"
)

func starCardsYAML() string {
	var b strings.Builder
	b.WriteString("stars:\n")
	for _, k := range StarKinds() {
		b.WriteString("  - key: " + k.Key() + "\n")
		b.WriteString("    title: " + k.String() + "\n")
	}
	return b.String()
}

func TestLoadCards(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
	}{
		{
			name: "valid decks",
			yamlContent: starCardsYAML() + `
concepts:
  - key: fusion
    title: Nuclear Fusion
specials:
  - key: betelgeuse
    title: Betelgeuse
`,
		},
		{
			name: "empty concepts",
			yamlContent: starCardsYAML() + `
concepts: []
specials:
  - key: betelgeuse
    title: Betelgeuse
`,
			wantErr:     true,
			errContains: "Concept deck cannot be empty",
		},
		{
			name: "duplicate key",
			yamlContent: starCardsYAML() + `
concepts:
  - key: fusion
    title: Nuclear Fusion
  - key: fusion
    title: Fusion Again
specials:
  - key: betelgeuse
    title: Betelgeuse
`,
			wantErr:     true,
			errContains: `duplicate key "fusion"`,
		},
		{
			name: "missing title",
			yamlContent: starCardsYAML() + `
concepts:
  - key: fusion
specials:
  - key: betelgeuse
    title: Betelgeuse
`,
			wantErr:     true,
			errContains: "has no title",
		},
		{
			name: "missing star card",
			yamlContent: `
stars:
  - key: main_sequence
    title: Main Sequence
concepts:
  - key: fusion
    title: Nuclear Fusion
specials:
  - key: betelgeuse
    title: Betelgeuse
`,
			wantErr:     true,
			errContains: "missing card for Red Giant",
		},
		{
			name:        "malformed yaml",
			yamlContent: "stars: [",
			wantErr:     true,
			errContains: "parse card deck",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := LoadCards([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cards.Stars.Len() != int(StarKindCount) {
				t.Errorf("expected %d star cards, got %d", StarKindCount, cards.Stars.Len())
			}
			if c, ok := cards.Concepts.Lookup("fusion"); !ok || c.Title != "Nuclear Fusion" {
				t.Errorf("lookup fusion = %+v, %v", c, ok)
			}
		})
	}
}

func TestEmbeddedDeck(t *testing.T) {
	data, err := assets.Cards.ReadFile("cards/deck.yaml")
	if err != nil {
		t.Fatalf("read embedded deck: %v", err)
	}
	cards, err := LoadCards(data)
	if err != nil {
		t.Fatalf("load embedded deck: %v", err)
	}
	for kind := DeckKind(0); kind < DeckKindCount; kind++ {
		if cards.Deck(kind).Len() == 0 {
			t.Errorf("%s deck is empty", kind)
		}
	}
}

func TestStarTable(t *testing.T) {
	for _, k := range StarKinds() {
		info, ok := k.Info()
		if !ok {
			t.Fatalf("%d missing from table", k)
		}
		if info.Weight <= 0 {
			t.Errorf("%s has non-positive weight %v", k, info.Weight)
		}
		if info.Temperature <= 0 || info.Luminosity <= 0 {
			t.Errorf("%s has non-positive HR data", k)
		}
	}
	if _, ok := StarKindCount.Info(); ok {
		t.Error("sentinel kind should not resolve")
	}
	if got := HazardKind(99).String(); got != "Unknown" {
		t.Errorf("out-of-range hazard = %q", got)
	}
}
