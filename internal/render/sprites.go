package render

import "github.com/stellar-explorer/stellar_explorer/internal/catalog"

// StarColor returns the palette index a star kind is drawn with,
// roughly following its surface temperature.
func StarColor(k catalog.StarKind) uint8 {
	switch k {
	case catalog.StarBlueGiant, catalog.StarBlueSupergiant:
		return ColorLightBlue
	case catalog.StarRedGiant, catalog.StarRedSupergiant:
		return ColorLightRed
	case catalog.StarBrownDwarf:
		return ColorBrown
	case catalog.StarWhiteDwarf, catalog.StarMainSequence:
		return ColorWhite
	case catalog.StarNeutron:
		return ColorLightCyan
	case catalog.StarProtostar:
		return ColorRed
	case catalog.StarSun, catalog.StarSubgiant:
		return ColorYellow
	default:
		return ColorLightGray
	}
}

// HazardColor returns the palette index a hazard kind is drawn with.
func HazardColor(h catalog.HazardKind) uint8 {
	switch h {
	case catalog.HazardBlackHole:
		return ColorMagenta
	case catalog.HazardPulsar:
		return ColorCyan
	case catalog.HazardQuasar:
		return ColorLightMagenta
	default: // supernova
		return ColorYellow
	}
}
