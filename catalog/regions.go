package catalog

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/PierreHermey/SW3DMap/core"
)

// regionEntry pairs a lowercase substring with its display color
// Order matters: more specific names come before their substrings
// ("deep core" before "core")
type regionEntry struct {
	match string
	hex   string
}

var regionTable = []regionEntry{
	{"deep core", "#ffd75f"},
	{"core", "#fff0a8"},
	{"colonies", "#9ae29b"},
	{"inner rim", "#7fc8f8"},
	{"expansion region", "#c78fff"},
	{"mid rim", "#57c784"},
	{"outer rim", "#e2604e"},
	{"unknown regions", "#8a63d2"},
	{"wild space", "#8c8c8c"},
	{"hutt space", "#c88a4b"},
}

// DefaultRegionHex is used when no table entry matches
const DefaultRegionHex = "#6e7b8b"

// RegionHex returns the hex color for a region name
// Matching is case-insensitive by substring against the fixed table
func RegionHex(region string) string {
	lower := strings.ToLower(region)
	for _, e := range regionTable {
		if strings.Contains(lower, e.match) {
			return e.hex
		}
	}
	return DefaultRegionHex
}

// ParseHexColor converts a #rrggbb string to RGB
// Bad input yields the default region color rather than an error; color
// problems are cosmetic and must never fail a catalog load
func ParseHexColor(hex string) core.RGB {
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(DefaultRegionHex)
	}
	r, g, b := c.RGB255()
	return core.RGB{R: r, G: g, B: b}
}

// BiomeHex maps a biome tag to its base tint
// Unknown tags (per-planet biome keys included) get a neutral tint; their
// visual identity comes from detail art, not the map marker
func BiomeHex(biome string) string {
	switch biome {
	case "desert":
		return "#e8c170"
	case "forest":
		return "#4f9d4f"
	case "frozen":
		return "#cfe8f0"
	case "gaseous":
		return "#d98fbd"
	case "oceanic":
		return "#3f7fd9"
	case "urban":
		return "#b8b8c8"
	case "volcanic":
		return "#e25822"
	default:
		return "#d0d0d0"
	}
}
