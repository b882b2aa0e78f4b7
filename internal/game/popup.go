package game

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Popup timing and layout.
const (
	PopupTicks      = 180 // 3 seconds at 60 TPS
	PopupWidth      = 300
	PopupHeight     = 100
	PopupPadding    = 10
	PopupTextWidth  = PopupWidth - 2*PopupPadding
	PopupLineHeight = 15
	PopupMaxLines   = (PopupHeight - PopupPadding) / PopupLineHeight
)

// TextFace is the face all HUD text is measured and drawn with.
var TextFace font.Face = basicfont.Face7x13

// TextWidth returns the rendered width of s in pixels.
func TextWidth(s string) int {
	return font.MeasureString(TextFace, s).Ceil()
}

// Popup is a transient on-screen notification.
type Popup struct {
	Text     string
	Lines    []string // Text wrapped to PopupTextWidth
	Priority MsgPriority
	Timer    int // ticks left on screen
}

// NewPopup creates an active popup for text.
func NewPopup(text string, priority MsgPriority) *Popup {
	return &Popup{
		Text:     text,
		Lines:    WrapText(text, PopupTextWidth),
		Priority: priority,
		Timer:    PopupTicks,
	}
}

// Visible returns the lines that fit inside the popup box.
func (p *Popup) Visible() []string {
	if len(p.Lines) > PopupMaxLines {
		return p.Lines[:PopupMaxLines]
	}
	return p.Lines
}

// Active reports whether the popup should still be shown.
func (p *Popup) Active() bool { return p != nil && p.Timer > 0 }

// Tick counts down one tick of display time.
func (p *Popup) Tick() {
	if p.Timer > 0 {
		p.Timer--
	}
}

// WrapText splits s into lines no wider than maxWidth pixels.
// Newlines force a break; words are added to a line greedily.
// A single word wider than maxWidth gets a line of its own.
func WrapText(s string, maxWidth int) []string {
	if !strings.Contains(s, "\n") && TextWidth(s) <= maxWidth {
		return []string{s}
	}
	var result []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			result = append(result, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if TextWidth(line+" "+w) > maxWidth {
				result = append(result, line)
				line = w
			} else {
				line += " " + w
			}
		}
		result = append(result, line)
	}
	return result
}
