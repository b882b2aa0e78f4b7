package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cell represents a single character cell of the HUD.
type Cell struct {
	Glyph byte  // character code (0-255)
	FG    uint8 // Foreground color index (0-15)
	BG    uint8 // Background color index (0-15)
}

// CellBuffer is a 2D grid of character cells.
// Cells left blank are transparent when drawn.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to blank.
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}
	}
}

// WriteString writes a string starting at (x, y). Each rune occupies one cell.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) {
	offset := 0
	for _, ch := range s {
		if ch > 255 {
			ch = '?'
		}
		b.Set(x+offset, y, byte(ch), fg, bg)
		offset++
	}
}

// BarWidth is the number of cells in a progress bar.
const BarWidth = 20

// DrawBar writes a labelled progress bar: label, BarWidth cells, then "val/max".
func (b *CellBuffer) DrawBar(x, y int, label string, val, max int, clr uint8) {
	if max <= 0 {
		max = 1
	}
	filled := BarWidth * val / max

	labelClr := uint8(ColorLightGray)
	if val >= max {
		labelClr = ColorLightGreen
	}
	b.WriteString(x, y, label, labelClr, ColorBlack)

	for i := 0; i < BarWidth; i++ {
		if i < filled {
			b.Set(x+9+i, y, GlyphFullBlock, clr, ColorBlack) // █
		} else {
			b.Set(x+9+i, y, GlyphLightShade, ColorDarkGray, ColorBlack) // ░
		}
	}
	b.WriteString(x+10+BarWidth, y, fmt.Sprintf("%d/%d", val, max), labelClr, ColorBlack)
}

// GridRenderer draws a CellBuffer and loose text to an Ebitengine screen.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image // 1x1 white pixel for drawing backgrounds
}

// NewGridRenderer creates a renderer with the given atlas and cell dimensions.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{
		Atlas:   atlas,
		CellW:   cellW,
		CellH:   cellH,
		bgPixel: bgPixel,
	}
}

// Draw renders the entire CellBuffer to the screen.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *CellBuffer) {
	var op ebiten.DrawImageOptions

	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(x * r.CellW)
			py := float64(y * r.CellH)

			if cell.BG != ColorBlack {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Palette[cell.BG])
				screen.DrawImage(r.bgPixel, &op)
			}

			if cell.Glyph != ' ' && cell.Glyph != 0 {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Palette[cell.FG])
				screen.DrawImage(r.Atlas.Glyph(cell.Glyph), &op)
			}
		}
	}
}

// DrawString renders text at pixel coordinates, one glyph advance per rune.
func (r *GridRenderer) DrawString(dst *ebiten.Image, s string, px, py float64, clr color.Color) {
	var op ebiten.DrawImageOptions
	for _, ch := range s {
		if ch > 255 {
			ch = '?'
		}
		if ch != ' ' {
			op = ebiten.DrawImageOptions{}
			op.GeoM.Translate(px, py)
			op.ColorScale.ScaleWithColor(clr)
			dst.DrawImage(r.Atlas.Glyph(byte(ch)), &op)
		}
		px += GlyphWidth
	}
}
