package render

import (
	"fmt"

	"github.com/PierreHermey/SW3DMap/core"
)

// PanelWidth is shared with input hit-testing so clicks on the overlay
// panel do not fall through to the map
const PanelWidth = 30

// PanelRenderer draws the informational panel for the selected planet:
// name, grid, sector, region, biome from the registry, plus the detail
// art card when its load has resolved. Registry data alone is enough;
// a failed art load only shortens the panel
type PanelRenderer struct{}

func NewPanelRenderer() *PanelRenderer { return &PanelRenderer{} }

func (r *PanelRenderer) Name() string { return "panel" }

func (r *PanelRenderer) Render(ctx *Context, buf *Buffer) {
	sel := ctx.Scene.Selection.Selected()
	if sel < 0 {
		return
	}
	p := ctx.Scene.Registry.Get(sel)
	rec := &p.Record

	x0 := buf.Width() - PanelWidth - 1
	if x0 < 0 {
		x0 = 0
	}

	bg := core.RGB{R: 10, G: 12, B: 24}
	frame := rec.RegionRGB
	label := core.RGB{R: 130, G: 140, B: 160}
	value := core.RGB{R: 220, G: 225, B: 235}

	rows := []struct{ k, v string }{
		{"Grid", rec.Grid},
		{"Sector", rec.Sector},
		{"Region", rec.Region},
		{"Biome", rec.Biome},
	}

	art := ctx.Scene.Assets.Current()
	height := 3 + len(rows) + 1
	if art != nil {
		height += len(art.Lines) + 1
	}
	if height > buf.Height()-2 {
		height = buf.Height() - 2
	}

	drawBox(buf, x0, 1, PanelWidth, height, frame, bg)
	buf.Text(x0+2, 1, fmt.Sprintf(" %s ", rec.Name), core.RGBWhite, bg)

	y := 3
	for _, row := range rows {
		buf.Text(x0+2, y, fmt.Sprintf("%-7s", row.k), label, bg)
		buf.Text(x0+9, y, clip(row.v, PanelWidth-11), value, bg)
		y++
	}

	if art != nil {
		y++
		for _, line := range art.Lines {
			if y >= 1+height-1 {
				break
			}
			buf.Text(x0+2, y, clip(line, PanelWidth-4), p.BiomeColor, bg)
			y++
		}
	}
}

// drawBox paints a bordered, filled rectangle
func drawBox(buf *Buffer, x, y, w, h int, frame, bg core.RGB) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			r := ' '
			switch {
			case (dy == 0 || dy == h-1) && (dx == 0 || dx == w-1):
				r = '+'
			case dy == 0 || dy == h-1:
				r = '-'
			case dx == 0 || dx == w-1:
				r = '|'
			}
			buf.Set(x+dx, y+dy, Cell{Rune: r, Fg: frame, Bg: bg})
		}
	}
}

// clip truncates a string to max display cells
func clip(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
