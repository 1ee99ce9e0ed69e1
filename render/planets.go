package render

import (
	"github.com/PierreHermey/SW3DMap/core"
)

// PlanetsRenderer draws every visible planet back-to-front with glyph
// and brightness derived from apparent size and camera depth
type PlanetsRenderer struct{}

func NewPlanetsRenderer() *PlanetsRenderer { return &PlanetsRenderer{} }

func (r *PlanetsRenderer) Name() string { return "planets" }

func (r *PlanetsRenderer) Render(ctx *Context, buf *Buffer) {
	planets := ctx.Scene.Registry.Planets()
	camDist := ctx.Scene.Camera.Distance

	for _, idx := range ctx.Frame.Order {
		sp := ctx.Frame.Positions[idx]
		p := &planets[idx]

		x := int(sp.X + 0.5)
		y := int(sp.Y + 0.5)

		// Brightness falls off with depth past the orbit distance
		dim := core.Clamp01(1.25 - sp.Depth/(camDist*1.6))
		if dim < 0.25 {
			dim = 0.25
		}

		fg := p.BiomeColor.Scale(dim)
		glyph := glyphForSize(sp.Size)
		if pres := p.Record.Presentation; pres != nil && pres.Glyph != "" {
			glyph = []rune(pres.Glyph)[0]
		}

		bg := buf.Get(x, y).Bg
		switch {
		case p.Focused:
			// Focused planet glows: region color ring plus a bright core
			ring := p.Record.RegionRGB
			buf.Set(x-1, y, Cell{Rune: '(', Fg: ring, Bg: bg})
			buf.Set(x+1, y, Cell{Rune: ')', Fg: ring, Bg: bg})
			buf.Set(x, y, Cell{Rune: '@', Fg: fg.Add(core.RGB{R: 60, G: 60, B: 60}), Bg: bg})
		case p.Hovered:
			buf.Set(x-1, y, Cell{Rune: '[', Fg: core.RGBWhite.Scale(0.8), Bg: bg})
			buf.Set(x+1, y, Cell{Rune: ']', Fg: core.RGBWhite.Scale(0.8), Bg: bg})
			buf.Set(x, y, Cell{Rune: glyph, Fg: fg.Blend(core.RGBWhite, 0.35), Bg: bg})
		default:
			buf.Set(x, y, Cell{Rune: glyph, Fg: fg, Bg: bg})
		}
	}
}

// glyphForSize maps apparent size to a marker rune
func glyphForSize(size float64) rune {
	switch {
	case size > 9:
		return '@'
	case size > 6:
		return 'O'
	case size > 3.5:
		return 'o'
	default:
		return '·'
	}
}
