package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/stellar-explorer/stellar_explorer/internal/game"
)

// Glyph cells match basicfont.Face7x13 so atlas text lines up with game.TextWidth.
const (
	GlyphWidth  = 7
	GlyphHeight = 13
	glyphAscent = 11
	AtlasCols   = 16
	AtlasRows   = 16
)

// Bar glyph codes (CP437).
const (
	GlyphLightShade = 176 // ░
	GlyphDarkShade  = 178 // ▓
	GlyphFullBlock  = 219 // █
	GlyphSquare     = 254 // ■
)

// FontAtlas holds the glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas generates the glyph atlas at startup.
// ASCII characters (32-126) are rendered with game.TextFace.
// Shading and block characters used by the HUD bars are drawn manually.
func NewFontAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))

	for code := 0; code < 256; code++ {
		cx, cy := cellOrigin(code)
		if code >= 32 && code <= 126 {
			drawFontGlyph(img, game.TextFace, cx, cy, rune(code))
			continue
		}
		drawBlockGlyph(img, cx, cy, byte(code))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}

	for code := 0; code < 256; code++ {
		x, y := cellOrigin(code)
		rect := image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
		a.glyphs[code] = eimg.SubImage(rect).(*ebiten.Image)
	}

	return a
}

// Glyph returns the cached sub-image for a character code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

func cellOrigin(code int) (x, y int) {
	return (code % AtlasCols) * GlyphWidth, (code / AtlasCols) * GlyphHeight
}

// drawFontGlyph renders a single ASCII character into its atlas cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX, cellY+glyphAscent),
	}
	d.DrawString(string(r))
}

// drawBlockGlyph draws the shading and block characters.
func drawBlockGlyph(img *image.NRGBA, cellX, cellY int, code byte) {
	w := color.NRGBA{255, 255, 255, 255}

	switch code {
	case GlyphLightShade:
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if (x+y)%4 == 0 {
					img.SetNRGBA(cellX+x, cellY+y, w)
				}
			}
		}
	case GlyphDarkShade:
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if (x+y)%4 != 0 {
					img.SetNRGBA(cellX+x, cellY+y, w)
				}
			}
		}
	case GlyphFullBlock:
		// Leave a 1px gap on the right so adjacent blocks read as segments.
		for y := 1; y < GlyphHeight-1; y++ {
			for x := 0; x < GlyphWidth-1; x++ {
				img.SetNRGBA(cellX+x, cellY+y, w)
			}
		}
	case GlyphSquare:
		for y := 4; y < 10; y++ {
			for x := 1; x < 6; x++ {
				img.SetNRGBA(cellX+x, cellY+y, w)
			}
		}
	}
}
