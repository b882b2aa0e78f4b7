package render

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/stellar-explorer/stellar_explorer/internal/game"
)

const (
	starfieldCount = 120
	starfieldSeed  = 1054
	hrMarkerRadius = 4
	popupBorder    = 2
	popupAccent    = 4
)

type backgroundDot struct {
	x, y   float32
	bright uint8
}

// Scene draws the game layers that are not part of the HUD cell grid.
type Scene struct {
	renderer *GridRenderer
	dots     []backgroundDot

	hrOverlay *ebiten.Image
	hrDrawn   int // points of the HR diagram already on hrOverlay
}

// NewScene prepares the static background and an empty HR overlay.
func NewScene(renderer *GridRenderer, screenW, screenH int) *Scene {
	rng := rand.New(rand.NewPCG(starfieldSeed, starfieldSeed>>16|3))
	dots := make([]backgroundDot, starfieldCount)
	for i := range dots {
		dots[i] = backgroundDot{
			x:      float32(rng.IntN(screenW)),
			y:      float32(rng.IntN(screenH)),
			bright: uint8(40 + rng.IntN(80)),
		}
	}

	sc := &Scene{
		renderer:  renderer,
		dots:      dots,
		hrOverlay: ebiten.NewImage(game.HRWidth, game.HRHeight),
	}
	sc.resetOverlay()
	return sc
}

// resetOverlay draws the empty diagram frame and axis labels.
func (sc *Scene) resetOverlay() {
	img := sc.hrOverlay
	img.Fill(OverlayFill)

	const m = game.HRMargin
	w, h := float32(game.HRWidth), float32(game.HRHeight)
	axis := Palette[ColorDarkGray]
	vector.StrokeLine(img, m, h-m, w-m, h-m, 1, axis, false)
	vector.StrokeLine(img, m, m, m, h-m, 1, axis, false)

	ink := Palette[ColorBlack]
	sc.renderer.DrawString(img, "HR Diagram", m+4, 4, ink)
	sc.renderer.DrawString(img, "Hot", m, float64(h)-m+4, ink)
	sc.renderer.DrawString(img, "Cool", float64(w)-m-4*GlyphWidth, float64(h)-m+4, ink)
	sc.renderer.DrawString(img, "L", 6, m, ink)
	sc.hrDrawn = 0
}

// DrawBackground clears the screen to black with a faint static starfield.
func (sc *Scene) DrawBackground(screen *ebiten.Image) {
	screen.Fill(Palette[ColorBlack])
	for _, d := range sc.dots {
		c := color.RGBA{d.bright, d.bright, d.bright, 255}
		vector.DrawFilledRect(screen, d.x, d.y, 1, 1, c, false)
	}
}

// DrawSprites draws stars, hazards and the player.
func (sc *Scene) DrawSprites(screen *ebiten.Image, stars []game.StarView, hazards []game.HazardView, player game.Rect) {
	for _, s := range stars {
		r := game.BoundsOf(s.Pos, s.Body)
		vector.DrawFilledRect(screen, float32(r.Left), float32(r.Top),
			float32(s.Body.W), float32(s.Body.H), Palette[StarColor(s.Kind)], false)
	}
	for _, h := range hazards {
		clr := Palette[HazardColor(h.Kind)]
		radius := float32(h.Body.W / 2)
		vector.DrawFilledCircle(screen, float32(h.Pos.X), float32(h.Pos.Y), radius, clr, true)
		vector.StrokeCircle(screen, float32(h.Pos.X), float32(h.Pos.Y), radius+2, 1, Palette[ColorLightRed], true)
	}
	vector.DrawFilledRect(screen, float32(player.Left), float32(player.Top),
		float32(player.Right-player.Left), float32(player.Bottom-player.Top), Palette[ColorWhite], false)
}

// DrawHR plots any new diagram points onto the persistent overlay and
// blits the overlay at (x, y).
func (sc *Scene) DrawHR(screen *ebiten.Image, d *game.HRDiagram, x, y float64) {
	for _, p := range d.Points[sc.hrDrawn:] {
		vector.DrawFilledCircle(sc.hrOverlay, float32(p.X), float32(p.Y), hrMarkerRadius, Palette[StarColor(p.Kind)], true)
		vector.StrokeCircle(sc.hrOverlay, float32(p.X), float32(p.Y), hrMarkerRadius, 1, Palette[ColorBlack], true)
	}
	sc.hrDrawn = len(d.Points)

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	screen.DrawImage(sc.hrOverlay, &op)
}

// DrawHUD renders the HUD cell grid over the scene.
func (sc *Scene) DrawHUD(screen *ebiten.Image, buf *CellBuffer) {
	sc.renderer.Draw(screen, buf)
}

// DrawPopup draws p's box and wrapped text at (x, y). Inactive popups are skipped.
func (sc *Scene) DrawPopup(screen *ebiten.Image, p *game.Popup, x, y float64) {
	if !p.Active() {
		return
	}
	fx, fy := float32(x), float32(y)
	w, h := float32(game.PopupWidth), float32(game.PopupHeight)

	vector.DrawFilledRect(screen, fx, fy, w, h, PopupFill, false)
	vector.DrawFilledRect(screen, fx, fy, popupAccent, h, Palette[PriorityColor(p.Priority)], false)
	vector.StrokeRect(screen, fx, fy, w, h, popupBorder, Palette[ColorBlack], false)

	for i, line := range p.Visible() {
		sc.renderer.DrawString(screen, line,
			x+game.PopupPadding, y+game.PopupPadding+float64(i*game.PopupLineHeight), Palette[ColorBlack])
	}
}
