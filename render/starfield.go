package render

import (
	"github.com/aquilax/go-perlin"

	"github.com/PierreHermey/SW3DMap/core"
)

// StarfieldRenderer paints a static background star layer from a perlin
// density field. The field is sampled once per size; stars do not move
// with the camera, matching a far-background skybox
type StarfieldRenderer struct {
	noise *perlin.Perlin

	width  int
	height int
	stars  []starCell
}

type starCell struct {
	x, y      int
	r         rune
	intensity float64
}

// NewStarfieldRenderer seeds the background field
func NewStarfieldRenderer(seed int64) *StarfieldRenderer {
	return &StarfieldRenderer{
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
}

func (r *StarfieldRenderer) Name() string { return "starfield" }

func (r *StarfieldRenderer) Render(ctx *Context, buf *Buffer) {
	if buf.Width() != r.width || buf.Height() != r.height {
		r.resample(buf.Width(), buf.Height())
	}
	for _, s := range r.stars {
		fg := core.RGB{R: 130, G: 135, B: 160}.Scale(s.intensity)
		cell := buf.Get(s.x, s.y)
		buf.Set(s.x, s.y, Cell{Rune: s.r, Fg: fg, Bg: cell.Bg})
	}
}

// resample rebuilds the star list for a new terminal size
// Threshold keeps roughly a few percent of cells lit
func (r *StarfieldRenderer) resample(width, height int) {
	r.width = width
	r.height = height
	r.stars = r.stars[:0]

	const freq = 0.35
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := r.noise.Noise2D(float64(x)*freq, float64(y)*freq)
			switch {
			case n > 0.42:
				r.stars = append(r.stars, starCell{x: x, y: y, r: '✦', intensity: 0.9})
			case n > 0.36:
				r.stars = append(r.stars, starCell{x: x, y: y, r: '·', intensity: 0.7})
			case n > 0.32:
				r.stars = append(r.stars, starCell{x: x, y: y, r: '.', intensity: 0.4})
			}
		}
	}
}
