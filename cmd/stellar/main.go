package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/stellar-explorer/stellar_explorer/assets"
	"github.com/stellar-explorer/stellar_explorer/internal/catalog"
	"github.com/stellar-explorer/stellar_explorer/internal/game"
	"github.com/stellar-explorer/stellar_explorer/internal/render"
)

const (
	screenWidth  = game.ScreenWidth
	screenHeight = game.ScreenHeight
	title        = "Stellar Explorer"
	ticksPerSec  = 60

	cellWidth  = render.GlyphWidth
	cellHeight = 16
	gridCols   = screenWidth / cellWidth   // 142
	gridRows   = screenHeight / cellHeight // 43
)

const (
	// HR overlay, top right.
	hrX = screenWidth - 320
	hrY = 20

	// Fixed HUD positions (grid cells), below the HR overlay.
	panelCol    = hrX / cellWidth
	progressRow = 15
	cardsRow    = 20
	cardsMax    = 5
	logRow      = 27
	logMax      = 8

	// Popup, bottom left.
	popupX = 20
	popupY = screenHeight - 120
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in sim.
type Game struct {
	scene  *render.Scene
	buffer *render.CellBuffer
	sim    *game.Sim
}

func NewGame(seed int64) *Game {
	data, err := assets.Cards.ReadFile("cards/deck.yaml")
	if err != nil {
		log.Fatalf("load card deck: %v", err)
	}
	cards, err := catalog.LoadCards(data)
	if err != nil {
		log.Fatalf("parse card deck: %v", err)
	}
	log.Printf("[stellar] loaded %d star, %d concept and %d special cards (seed %d)",
		cards.Stars.Len(), cards.Concepts.Len(), cards.Specials.Len(), seed)

	atlas := render.NewFontAtlas()
	renderer := render.NewGridRenderer(atlas, cellWidth, cellHeight)

	g := &Game{
		scene:  render.NewScene(renderer, screenWidth, screenHeight),
		buffer: render.NewCellBuffer(gridCols, gridRows),
		sim:    game.NewSim(cards, game.DefaultRules(), game.NewRand(seed)),
	}

	g.drawHUD()
	return g
}

// drawHUD rebuilds the text layer: progress bars, recent cards and the log.
func (g *Game) drawHUD() {
	buf := g.buffer
	buf.Clear()

	// Progress bars
	p := g.sim.Progress
	c := g.sim.Cards
	buf.WriteString(panelCol, progressRow, "--- Progress ---", render.ColorLightCyan, render.ColorBlack)
	buf.DrawBar(panelCol, progressRow+1, "Stars", p.Count(catalog.DeckStars), c.Stars.Len(), render.DeckColor(catalog.DeckStars))
	buf.DrawBar(panelCol, progressRow+2, "Concepts", p.Count(catalog.DeckConcepts), c.Concepts.Len(), render.DeckColor(catalog.DeckConcepts))
	buf.DrawBar(panelCol, progressRow+3, "Specials", p.Count(catalog.DeckSpecials), c.Specials.Len(), render.DeckColor(catalog.DeckSpecials))

	// Recently collected cards
	for i, u := range p.Recent(cardsMax) {
		buf.WriteString(panelCol, cardsRow+i, cardLabel(u), render.DeckColor(u.Deck), render.ColorBlack)
	}

	// Message log
	buf.WriteString(panelCol, logRow, "--- Log ---", render.ColorLightCyan, render.ColorBlack)
	for i, msg := range g.sim.Log.Recent(logMax) {
		buf.WriteString(panelCol, logRow+1+i, msg.Text, render.PriorityColor(msg.Priority), render.ColorBlack)
	}

	// Instructions
	buf.WriteString(2, gridRows-1, "Arrows/WASD: Move   Close the window to quit", render.ColorDarkGray, render.ColorBlack)
	fps := fmt.Sprintf("FPS: %.0f  TPS: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS())
	buf.WriteString(gridCols-len(fps)-2, gridRows-1, fps, render.ColorDarkGray, render.ColorBlack)
}

func cardLabel(u game.Unlock) string {
	if u.Deck == catalog.DeckStars {
		return "Card: " + u.Card.Title
	}
	return fmt.Sprintf("%s: %s", u.Deck, u.Card.Title)
}

// pollInput reads the held direction keys.
func pollInput() game.Input {
	return game.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
	}
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		log.Printf("[stellar] window closed after %d ticks", g.sim.Ticks)
		return ebiten.Termination
	}

	g.sim.Tick(pollInput())
	g.drawHUD()
	return nil
}

// Draw renders the layers back to front.
func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.DrawBackground(screen)
	g.scene.DrawSprites(screen, g.sim.Stars(), g.sim.Hazards(), g.sim.PlayerBounds())
	g.scene.DrawHR(screen, g.sim.HR, hrX, hrY)
	g.scene.DrawHUD(screen, g.buffer)
	g.scene.DrawPopup(screen, g.sim.Popup, popupX, popupY)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(ticksPerSec)
	ebiten.SetWindowClosingHandled(true)

	game := NewGame(time.Now().UnixNano())
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
