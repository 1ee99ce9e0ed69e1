package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/PierreHermey/SW3DMap/core"
)

// Cell is a single drawable terminal cell
type Cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
}

// Buffer is the off-screen cell grid renderers draw into
// Flushed to tcell once per frame after all renderers ran
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer creates an empty buffer
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height
func (b *Buffer) Height() int { return b.height }

// Resize reallocates the grid; contents are not preserved
func (b *Buffer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	b.width = width
	b.height = height
	b.cells = make([]Cell, width*height)
}

// Clear fills the buffer with blanks on the given background
func (b *Buffer) Clear(bg core.RGB) {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Bg: bg}
	}
}

// Set writes one cell; out-of-bounds writes are dropped
func (b *Buffer) Set(x, y int, c Cell) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = c
}

// Get reads one cell; out of bounds returns a blank
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{Rune: ' '}
	}
	return b.cells[y*b.width+x]
}

// Text draws a string left-to-right, advancing by display width
func (b *Buffer) Text(x, y int, s string, fg, bg core.RGB) {
	cx := x
	for _, r := range s {
		b.Set(cx, y, Cell{Rune: r, Fg: fg, Bg: bg})
		cx += runewidth.RuneWidth(r)
	}
}

// Flush pushes the buffer to the tcell screen and shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
				Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	screen.Show()
}
