package render

import (
	"math"
	"sort"

	"github.com/PierreHermey/SW3DMap/scene"
)

// Terminal cells are roughly twice as tall as wide; vertical angles are
// compressed to keep the galaxy disc round on screen
const cellAspect = 0.55

// ScreenPos is one planet's projected position for the current frame
type ScreenPos struct {
	Index   int
	X, Y    float64 // Fractional screen cell
	Depth   float64 // Camera-space distance along the view axis
	Size    float64 // Apparent size for glyph choice
	Visible bool
}

// Frame holds the per-frame projection of every planet to screen space
// Recomputed once per frame; shared by the planet renderer and by mouse
// picking so both agree on what is under the pointer
type Frame struct {
	Positions []ScreenPos // Indexed by registry index
	Order     []int       // Registry indices back-to-front
}

// Compute projects all registry positions through the scene camera
func (f *Frame) Compute(s *scene.Scene, width, height int) {
	planets := s.Registry.Planets()
	if cap(f.Positions) < len(planets) {
		f.Positions = make([]ScreenPos, len(planets))
		f.Order = make([]int, 0, len(planets))
	}
	f.Positions = f.Positions[:len(planets)]
	f.Order = f.Order[:0]

	focal := float64(height) * 1.1
	cx := float64(width) / 2
	cy := float64(height) / 2
	near := 1.0

	for i := range planets {
		view := s.Camera.WorldToView(planets[i].Position)
		sp := ScreenPos{Index: i}
		if view.Z > near {
			sp.X = cx + (view.X/view.Z)*focal
			sp.Y = cy - (view.Y/view.Z)*focal*cellAspect
			sp.Depth = view.Z
			sp.Size = focal * 8 / view.Z
			sp.Visible = sp.X >= -2 && sp.X < float64(width)+2 &&
				sp.Y >= -1 && sp.Y < float64(height)+1
		}
		f.Positions[i] = sp
		if sp.Visible {
			f.Order = append(f.Order, i)
		}
	}

	// Painter's order: far planets first so near ones overdraw them
	sort.Slice(f.Order, func(a, b int) bool {
		return f.Positions[f.Order[a]].Depth > f.Positions[f.Order[b]].Depth
	})
}

// Pick returns the nearest visible planet within radius screen cells of
// (x, y), or -1. Ties go to the planet closest to the camera
func (f *Frame) Pick(x, y int, radius float64) int {
	best := -1
	bestDist := radius
	bestDepth := math.Inf(1)

	for _, idx := range f.Order {
		sp := f.Positions[idx]
		dx := sp.X - float64(x)
		dy := (sp.Y - float64(y)) / cellAspect * 0.5 // Undo cell squash
		d := math.Sqrt(dx*dx + dy*dy)
		if d < bestDist || (d == bestDist && sp.Depth < bestDepth) {
			best = idx
			bestDist = d
			bestDepth = sp.Depth
		}
	}
	return best
}
