package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PierreHermey/SW3DMap/core"
)

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planets.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalog(t, `[
		{"name": "Tatooine", "grid": "R-16", "sector": "Arkanis", "region": "Outer Rim Territories", "biome": "desert"},
		{"name": "Coruscant", "grid": "L-9", "region": "Core Worlds", "biome": "coruscant",
		 "presentation": {"alwaysVisible": true, "glyph": "◉"}}
	]`)

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	tat := records[0]
	assert.Equal(t, GridCell{Col: 18, Row: 16}, tat.Cell)
	assert.Equal(t, BiomeHex("desert"), tat.BaseColor)
	assert.Equal(t, RegionHex("Outer Rim Territories"), tat.RegionColor)
	assert.NotEqual(t, core.RGB{}, tat.BaseRGB)

	cor := records[1]
	require.NotNil(t, cor.Presentation)
	assert.True(t, cor.Presentation.AlwaysVisible)
	assert.Equal(t, "coruscant", cor.ArtKey())
}

func TestLoadKeepsExplicitColors(t *testing.T) {
	path := writeCatalog(t, `[{"name": "X", "grid": "A-1", "baseColor": "#102030", "regionColor": "#405060"}]`)

	records, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, core.RGB{R: 0x10, G: 0x20, B: 0x30}, records[0].BaseRGB)
	assert.Equal(t, core.RGB{R: 0x40, G: 0x50, B: 0x60}, records[0].RegionRGB)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Empty array", `[]`},
		{"Bad JSON", `{not json`},
		{"Missing name", `[{"grid": "A-1"}]`},
		{"Bad grid", `[{"name": "X", "grid": "Z-1"}]`},
		{"Missing grid", `[{"name": "X"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCatalog(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
