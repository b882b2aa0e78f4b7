package game

import (
	"math"

	"github.com/stellar-explorer/stellar_explorer/internal/catalog"
)

// HR overlay geometry, in overlay-local pixels.
const (
	HRWidth  = 300
	HRHeight = 200
	HRMargin = 20
)

// HR axis bounds. Min and max must differ or the mapping divides by zero.
const (
	HRTempMin = 2000.0  // K, right edge
	HRTempMax = 40000.0 // K, left edge
	HRLumMin  = 1e-4    // solar luminosities, bottom edge
	HRLumMax  = 1e6     // solar luminosities, top edge
)

// HRPoint is a plotted star kind in overlay-local pixels.
type HRPoint struct {
	Kind catalog.StarKind
	X, Y float64
}

// MapHR converts a temperature/luminosity pair to overlay coordinates.
// Temperature is inverted (hotter is further left); both axes are log10.
// Values outside the bounds are clamped to the plot edge.
func MapHR(temp, lum float64) (x, y float64) {
	plotW := float64(HRWidth - 2*HRMargin)
	plotH := float64(HRHeight - 2*HRMargin)

	tx := (math.Log10(HRTempMax) - math.Log10(temp)) / (math.Log10(HRTempMax) - math.Log10(HRTempMin))
	ly := (math.Log10(lum) - math.Log10(HRLumMin)) / (math.Log10(HRLumMax) - math.Log10(HRLumMin))

	x = HRMargin + clamp01(tx)*plotW
	y = HRMargin + plotH - clamp01(ly)*plotH
	return x, y
}

// HRPointFor looks up the kind's temperature and luminosity and maps them.
// ok is false for kinds missing from the star table.
func HRPointFor(kind catalog.StarKind) (HRPoint, bool) {
	info, ok := kind.Info()
	if !ok {
		return HRPoint{}, false
	}
	x, y := MapHR(info.Temperature, info.Luminosity)
	return HRPoint{Kind: kind, X: x, Y: y}, true
}

// HRDiagram accumulates the points plotted during a session.
type HRDiagram struct {
	Points []HRPoint

	plotted map[catalog.StarKind]bool
}

// NewHRDiagram creates an empty diagram.
func NewHRDiagram() *HRDiagram {
	return &HRDiagram{plotted: make(map[catalog.StarKind]bool)}
}

// Plot adds kind to the diagram. Kinds already plotted or outside the
// star table are skipped; returns true only when a new point was added.
func (d *HRDiagram) Plot(kind catalog.StarKind) bool {
	if d.plotted[kind] {
		return false
	}
	p, ok := HRPointFor(kind)
	if !ok {
		return false
	}
	d.plotted[kind] = true
	d.Points = append(d.Points, p)
	return true
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
