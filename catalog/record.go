package catalog

import (
	"github.com/PierreHermey/SW3DMap/core"
)

// GridCell identifies a 2D atlas map cell, 1-based
// Col comes from the letter axis (A=1), Row from the number axis
type GridCell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Generic biomes assigned when a planet has no detail art of its own
var GenericBiomes = []string{
	"desert",
	"forest",
	"frozen",
	"gaseous",
	"oceanic",
	"urban",
	"volcanic",
}

// Presentation is the optional special-presentation extension of a record
// Most planets have none; a few carry overrides for the detail panel
type Presentation struct {
	AlwaysVisible bool   `json:"alwaysVisible,omitempty"` // Detail art survives clear()
	ArtKey        string `json:"artKey,omitempty"`        // Overrides biome as the art lookup key
	Glyph         string `json:"glyph,omitempty"`         // Overrides the map marker rune
}

// PlanetRecord is one immutable catalog entry
type PlanetRecord struct {
	Name        string `json:"name"`
	Grid        string `json:"grid"` // Atlas code, e.g. "M-10"
	Sector      string `json:"sector"`
	Region      string `json:"region"`
	Biome       string `json:"biome"`
	BaseColor   string `json:"baseColor"`   // Hex, biome tint
	RegionColor string `json:"regionColor"` // Hex, region tint

	Presentation *Presentation `json:"presentation,omitempty"`

	// Parsed at load time, not serialized
	Cell      GridCell `json:"-"`
	BaseRGB   core.RGB `json:"-"`
	RegionRGB core.RGB `json:"-"`
}

// ArtKey returns the detail art lookup key for the record
// Planets with their own art use their name; the rest share biome art
func (r *PlanetRecord) ArtKey() string {
	if r.Presentation != nil && r.Presentation.ArtKey != "" {
		return r.Presentation.ArtKey
	}
	return r.Biome
}
