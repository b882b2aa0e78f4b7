package game

import "github.com/stellar-explorer/stellar_explorer/internal/catalog"

// Position is an entity's centre in screen pixels.
type Position struct {
	X, Y float64
}

// Velocity is the per-tick displacement of a drifting entity.
type Velocity struct {
	VX, VY float64
}

// Body is the size of an entity's axis-aligned bounding box.
type Body struct {
	W, H float64
}

// PlayerControlled marks the entity moved by keyboard input.
type PlayerControlled struct{}

// StarBody marks a collectible star.
type StarBody struct {
	Kind catalog.StarKind
}

// HazardBody marks a hazard. Hazards survive contact with the player.
type HazardBody struct {
	Kind catalog.HazardKind
}

// Rect is an axis-aligned bounding box in screen pixels.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// BoundsOf returns the bounding box of a body centred at pos.
func BoundsOf(pos Position, body Body) Rect {
	hw, hh := body.W/2, body.H/2
	return Rect{
		Left:   pos.X - hw,
		Top:    pos.Y - hh,
		Right:  pos.X + hw,
		Bottom: pos.Y + hh,
	}
}

// Overlaps reports whether r and o share any interior area.
// Boxes that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right && r.Right > o.Left && r.Top < o.Bottom && r.Bottom > o.Top
}

// OffScreen reports whether r lies entirely outside a w x h screen.
func (r Rect) OffScreen(w, h float64) bool {
	return r.Right < 0 || r.Left > w || r.Bottom < 0 || r.Top > h
}
