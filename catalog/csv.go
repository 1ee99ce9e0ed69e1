package catalog

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// RowError records one unusable CSV row; parsing continues past it
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// PrepOptions configures the CSV-to-catalog conversion
type PrepOptions struct {
	AssetsDir string     // Detail art directory, consulted for per-planet biomes
	Rand      *rand.Rand // Source for generic biome assignment
}

// ParseCSV converts semicolon-delimited rows (system;sector;region;grid)
// to catalog records. Rows with unparseable grid codes are collected as
// errors with their 1-based line number and skipped, never fatal
func ParseCSV(r io.Reader, opts PrepOptions) ([]PlanetRecord, []RowError) {
	var records []PlanetRecord
	var errs []RowError

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		fields := strings.Split(raw, ";")
		if line == 1 && strings.EqualFold(strings.TrimSpace(fields[0]), "system") {
			// Header row
			continue
		}
		if len(fields) < 4 {
			errs = append(errs, RowError{Line: line, Err: fmt.Errorf("expected 4 fields, got %d", len(fields))})
			continue
		}

		name := strings.TrimSpace(fields[0])
		sector := strings.TrimSpace(fields[1])
		region := strings.TrimSpace(fields[2])
		grid := strings.TrimSpace(fields[3])

		if name == "" {
			errs = append(errs, RowError{Line: line, Err: fmt.Errorf("empty system name")})
			continue
		}
		if _, err := ParseGridCode(grid); err != nil {
			errs = append(errs, RowError{Line: line, Err: err})
			continue
		}

		biome := assignBiome(name, opts)
		rec := PlanetRecord{
			Name:        name,
			Grid:        strings.ToUpper(grid),
			Sector:      sector,
			Region:      region,
			Biome:       biome,
			BaseColor:   BiomeHex(biome),
			RegionColor: RegionHex(region),
		}
		if biome == artSlug(name) {
			// Planets with their own art keep their card across clears
			rec.Presentation = &Presentation{AlwaysVisible: true}
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, RowError{Line: line, Err: fmt.Errorf("read: %w", err)})
	}

	return records, errs
}

// assignBiome picks the biome key for a planet
// A planet with its own detail art uses its name; otherwise a generic
// biome is drawn uniformly at random
func assignBiome(name string, opts PrepOptions) string {
	slug := artSlug(name)
	if opts.AssetsDir != "" {
		if _, err := os.Stat(filepath.Join(opts.AssetsDir, slug+".txt")); err == nil {
			return slug
		}
	}
	if opts.Rand != nil {
		return GenericBiomes[opts.Rand.Intn(len(GenericBiomes))]
	}
	return GenericBiomes[0]
}

// artSlug maps a planet name to its art file stem
func artSlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
