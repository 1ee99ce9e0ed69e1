package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads the JSON catalog and resolves derived fields
//
// Per-record grid parsing is strict: a record with a missing or bad grid
// code fails the whole load, since positions cannot be derived for it.
// Callers treat any error as "empty catalog" and keep running
func Load(path string) ([]PlanetRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var records []PlanetRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog %s: no records", path)
	}

	for i := range records {
		r := &records[i]
		if r.Name == "" {
			return nil, fmt.Errorf("catalog record %d: missing name", i)
		}
		cell, err := ParseGridCode(r.Grid)
		if err != nil {
			return nil, fmt.Errorf("catalog record %q: %w", r.Name, err)
		}
		r.Cell = cell

		if r.RegionColor == "" {
			r.RegionColor = RegionHex(r.Region)
		}
		if r.BaseColor == "" {
			r.BaseColor = BiomeHex(r.Biome)
		}
		r.BaseRGB = ParseHexColor(r.BaseColor)
		r.RegionRGB = ParseHexColor(r.RegionColor)
	}

	return records, nil
}
