package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/PierreHermey/SW3DMap/core"
)

// StatusBarRenderer draws the bottom line: planet count, hover name,
// search input, and transient messages
type StatusBarRenderer struct{}

func NewStatusBarRenderer() *StatusBarRenderer { return &StatusBarRenderer{} }

func (r *StatusBarRenderer) Name() string { return "statusbar" }

func (r *StatusBarRenderer) Render(ctx *Context, buf *Buffer) {
	y := buf.Height() - 1
	bg := core.RGB{R: 16, G: 18, B: 32}
	fg := core.RGB{R: 180, G: 185, B: 200}
	dim := core.RGB{R: 110, G: 115, B: 130}

	for x := 0; x < buf.Width(); x++ {
		buf.Set(x, y, Cell{Rune: ' ', Fg: fg, Bg: bg})
	}

	// Partial catalogs render partially: loaded/total
	count := fmt.Sprintf(" %d/%d planets", ctx.Scene.Registry.Len(), ctx.Scene.TotalRecords)
	buf.Text(0, y, count, fg, bg)
	x := runewidth.StringWidth(count) + 2

	if ctx.SearchActive {
		buf.Text(x, y, "/"+ctx.SearchText+"▌", core.RGBWhite, bg)
		return
	}

	if h := ctx.Scene.Selection.Hovered(); h >= 0 {
		name := ctx.Scene.Registry.Get(h).Record.Name
		buf.Text(x, y, name, core.RGBWhite, bg)
		x += runewidth.StringWidth(name) + 2
	}

	if ctx.StatusMessage != "" {
		buf.Text(x, y, ctx.StatusMessage, fg, bg)
		x += runewidth.StringWidth(ctx.StatusMessage) + 2
	}

	help := "[/] search  [l] legend  [esc] clear  [q] quit"
	if hx := buf.Width() - runewidth.StringWidth(help) - 1; hx > x {
		buf.Text(hx, y, help, dim, bg)
	}
}
