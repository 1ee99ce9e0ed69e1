package render

import (
	"github.com/PierreHermey/SW3DMap/catalog"
	"github.com/PierreHermey/SW3DMap/core"
)

// LegendRenderer lists the region color table when toggled on
type LegendRenderer struct{}

func NewLegendRenderer() *LegendRenderer { return &LegendRenderer{} }

func (r *LegendRenderer) Name() string { return "legend" }

var legendRegions = []string{
	"Deep Core",
	"Core",
	"Colonies",
	"Inner Rim",
	"Expansion Region",
	"Mid Rim",
	"Outer Rim",
	"Unknown Regions",
	"Wild Space",
	"Hutt Space",
}

func (r *LegendRenderer) Render(ctx *Context, buf *Buffer) {
	if !ctx.ShowLegend {
		return
	}

	bg := core.RGB{R: 10, G: 12, B: 24}
	w := 22
	h := len(legendRegions) + 2

	drawBox(buf, 1, 1, w, h, core.RGB{R: 90, G: 95, B: 110}, bg)
	buf.Text(3, 1, " Regions ", core.RGBWhite, bg)

	for i, region := range legendRegions {
		c := catalog.ParseHexColor(catalog.RegionHex(region))
		buf.Set(2, 2+i, Cell{Rune: '●', Fg: c, Bg: bg})
		buf.Text(4, 2+i, region, core.RGB{R: 190, G: 195, B: 210}, bg)
	}
}
