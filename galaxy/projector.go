package galaxy

import (
	"math"
	"math/rand"

	"github.com/PierreHermey/SW3DMap/catalog"
	"github.com/PierreHermey/SW3DMap/config"
	"github.com/PierreHermey/SW3DMap/core"
)

// Projector maps 2D atlas grid cells into a bounded 3D volume
//
// The volume is a flattened disc inside a bounding sphere: planar position
// comes from the grid cell with jitter, depth comes from the caller's
// depthFactor shaped by a radial density falloff so the rim stays thin
// while the core bulges
type Projector struct {
	gridSize float64
	radius   float64
	flatten  float64
	jitter   float64
	rng      *rand.Rand
}

// NewProjector builds a projector from galaxy config
// The rand source is injected so placement is reproducible in tests
func NewProjector(cfg config.GalaxyConfig, rng *rand.Rand) *Projector {
	return &Projector{
		gridSize: float64(cfg.GridSize),
		radius:   cfg.Radius,
		flatten:  cfg.FlattenFactor,
		jitter:   cfg.Jitter,
		rng:      rng,
	}
}

// Project places one grid cell at a depth factor in [0,1]
//
// Callers bias depthFactor by region (see DepthFactor); values outside
// [0,1] are clamped. The result always lies on or inside the bounding
// sphere: overshoot is rescaled uniformly so the direction from the
// origin is preserved
func (p *Projector) Project(cell catalog.GridCell, depthFactor float64) core.Vec3 {
	pos := p.place(cell, depthFactor)
	if l := pos.Length(); l > p.radius {
		pos = pos.Scale(p.radius / l)
	}
	return pos
}

// place computes the raw point before the sphere clamp
func (p *Projector) place(cell catalog.GridCell, depthFactor float64) core.Vec3 {
	depthFactor = core.Clamp01(depthFactor)

	// Grid cells span the disc diameter
	cellSize := 2 * p.radius / p.gridSize
	mid := p.gridSize / 2

	x := (float64(cell.Col) - mid) * cellSize
	y := (float64(cell.Row) - mid) * cellSize

	// Break the lattice: per-axis jitter plus a per-call radial scale
	x += (p.rng.Float64()*2 - 1) * p.jitter
	y += (p.rng.Float64()*2 - 1) * p.jitter
	scale := 0.9 + p.rng.Float64()*0.2
	x *= scale
	y *= scale

	// Rim flattening: depth spread shrinks exponentially with planar radius
	r := math.Sqrt(x*x + y*y)
	density := math.Exp(-r / (p.radius / 2.5))

	zFactor := 0.9 + p.rng.Float64()*0.2
	z := (depthFactor - 0.5) * p.radius * 2 * p.flatten * density * zFactor

	return core.Vec3{X: x, Y: y, Z: z}
}
