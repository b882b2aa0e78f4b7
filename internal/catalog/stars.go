package catalog

// StarKind identifies a category of star the player can collect.
type StarKind uint8

const (
	StarMainSequence StarKind = iota
	StarRedGiant
	StarBlueGiant
	StarRedSupergiant
	StarBlueSupergiant
	StarWhiteDwarf
	StarBrownDwarf
	StarSubgiant
	StarNeutron
	StarProtostar
	StarSun
	StarKindCount // sentinel
)

// StarInfo is the fixed data for one star kind.
type StarInfo struct {
	Key    string  // card key in the star deck
	Name   string  // display name
	Weight float64 // relative spawn weight (need not sum to 1)

	// Representative surface temperature (K) and luminosity (solar units)
	// used to place the kind on the HR diagram.
	Temperature float64
	Luminosity  float64
}

// starTable is indexed by StarKind.
var starTable = [StarKindCount]StarInfo{
	StarMainSequence:   {"main_sequence", "Main Sequence", 0.40, 9000, 20},
	StarRedGiant:       {"red_giant", "Red Giant", 0.10, 4000, 200},
	StarBlueGiant:      {"blue_giant", "Blue Giant", 0.05, 25000, 10000},
	StarRedSupergiant:  {"red_supergiant", "Red Supergiant", 0.05, 3500, 100000},
	StarBlueSupergiant: {"blue_supergiant", "Blue Supergiant", 0.02, 30000, 300000},
	StarWhiteDwarf:     {"white_dwarf", "White Dwarf", 0.10, 10000, 0.001},
	StarBrownDwarf:     {"brown_dwarf", "Brown Dwarf", 0.05, 1500, 0.00005},
	StarSubgiant:       {"subgiant", "Subgiant", 0.05, 5500, 4},
	StarNeutron:        {"neutron_star", "Neutron Star", 0.01, 600000, 0.1},
	StarProtostar:      {"protostar", "Protostar", 0.12, 4000, 10},
	StarSun:            {"the_sun", "The Sun", 0.05, 5778, 1},
}

// StarKinds lists every star kind in table order.
func StarKinds() []StarKind {
	kinds := make([]StarKind, StarKindCount)
	for i := range kinds {
		kinds[i] = StarKind(i)
	}
	return kinds
}

// Info returns the table entry for k. ok is false for kinds outside the table.
func (k StarKind) Info() (StarInfo, bool) {
	if k >= StarKindCount {
		return StarInfo{}, false
	}
	return starTable[k], true
}

// String returns the display name, or "Unknown" for kinds outside the table.
func (k StarKind) String() string {
	if info, ok := k.Info(); ok {
		return info.Name
	}
	return "Unknown"
}

// Key returns the star deck card key for k.
func (k StarKind) Key() string {
	info, _ := k.Info()
	return info.Key
}

// StarWeights returns the spawn weight of every kind, indexed by StarKind.
func StarWeights() []float64 {
	w := make([]float64, StarKindCount)
	for i, info := range starTable {
		w[i] = info.Weight
	}
	return w
}

// HazardKind identifies a drifting hazard.
type HazardKind uint8

const (
	HazardBlackHole HazardKind = iota
	HazardPulsar
	HazardQuasar
	HazardSupernova
	HazardKindCount // sentinel
)

var hazardNames = [HazardKindCount]string{
	HazardBlackHole: "Black Hole",
	HazardPulsar:    "Pulsar",
	HazardQuasar:    "Quasar",
	HazardSupernova: "Supernova",
}

func (h HazardKind) String() string {
	if h >= HazardKindCount {
		return "Unknown"
	}
	return hazardNames[h]
}
