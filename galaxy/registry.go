package galaxy

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/PierreHermey/SW3DMap/catalog"
	"github.com/PierreHermey/SW3DMap/config"
	"github.com/PierreHermey/SW3DMap/core"
)

// PlanetState is the mutable per-planet state owned by the Registry
//
// OriginalPosition is write-once at load; Position drifts during
// repulsion/restore but reconverges to OriginalPosition after a restore
// completes. The Registry is the only writer of Position and Velocity
type PlanetState struct {
	Record catalog.PlanetRecord

	Position         core.Vec3
	OriginalPosition core.Vec3
	Velocity         core.Vec3

	Hovered bool
	Focused bool

	BiomeColor core.RGB
}

// Registry owns the authoritative planet list and derived positions
// Single source of truth for rendering and interaction
type Registry struct {
	cfg     config.GalaxyConfig
	damping float64
	rng     *rand.Rand

	planets []PlanetState
	byName  map[string]int
}

// NewRegistry creates an empty registry
func NewRegistry(galaxyCfg config.GalaxyConfig, repulsionCfg config.RepulsionConfig, rng *rand.Rand) *Registry {
	return &Registry{
		cfg:     galaxyCfg,
		damping: repulsionCfg.Damping,
		rng:     rng,
		byName:  make(map[string]int),
	}
}

// LoadAll seeds planet states from catalog records via the projector
//
// Planets sharing a grid cell get their depth factor nudged apart by
// (indexInCell/countInCell - 0.5) * spread before the single clamp to
// [0,1], so co-located entries separate visually. On any error the
// registry stays empty; dependents must handle zero planets
func (r *Registry) LoadAll(records []catalog.PlanetRecord) error {
	if len(records) == 0 {
		return fmt.Errorf("registry load: no records")
	}

	// Count cell occupancy first so nudges are symmetric
	cellCount := make(map[catalog.GridCell]int, len(records))
	for i := range records {
		if records[i].Cell == (catalog.GridCell{}) {
			return fmt.Errorf("registry load: record %q has no grid cell", records[i].Name)
		}
		cellCount[records[i].Cell]++
	}

	projector := NewProjector(r.cfg, r.rng)

	planets := make([]PlanetState, 0, len(records))
	byName := make(map[string]int, len(records))
	cellSeen := make(map[catalog.GridCell]int, len(cellCount))

	for i := range records {
		rec := records[i]

		depth := DepthFactor(rec.Region, r.rng)
		if n := cellCount[rec.Cell]; n > 1 {
			idx := cellSeen[rec.Cell]
			depth += (float64(idx)/float64(n) - 0.5) * r.cfg.DepthSpread
		}
		cellSeen[rec.Cell]++
		depth = core.Clamp01(depth)

		pos := projector.Project(rec.Cell, depth)

		planets = append(planets, PlanetState{
			Record:           rec,
			Position:         pos,
			OriginalPosition: pos,
			BiomeColor:       rec.BaseRGB.Blend(rec.RegionRGB, 0.35),
		})
		byName[strings.ToLower(rec.Name)] = i
	}

	r.planets = planets
	r.byName = byName
	return nil
}

// Len returns the number of loaded planets
func (r *Registry) Len() int {
	return len(r.planets)
}

// Get returns the state at index
// An invalid index is a caller bug and fails fast
func (r *Registry) Get(index int) *PlanetState {
	if index < 0 || index >= len(r.planets) {
		panic(fmt.Sprintf("registry: index %d out of range [0,%d)", index, len(r.planets)))
	}
	return &r.planets[index]
}

// FindByName looks up a planet by exact name, case-insensitive
func (r *Registry) FindByName(name string) (int, bool) {
	idx, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return idx, ok
}

// ApplyVelocity advances one planet and damps its velocity
func (r *Registry) ApplyVelocity(index int, dt float64) {
	p := r.Get(index)
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.Velocity = p.Velocity.Scale(r.damping)
}

// Planets exposes the backing slice for iteration
// Read-only for everyone but the registry and the scene controllers
func (r *Registry) Planets() []PlanetState {
	return r.planets
}
