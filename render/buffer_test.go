package render

import (
	"testing"

	"github.com/PierreHermey/SW3DMap/core"
)

func TestBufferSetGet(t *testing.T) {
	b := NewBuffer(10, 5)

	c := Cell{Rune: '@', Fg: core.RGBWhite}
	b.Set(3, 2, c)
	if got := b.Get(3, 2); got != c {
		t.Errorf("Get = %+v, want %+v", got, c)
	}

	// Out-of-bounds writes are dropped, reads return a blank
	b.Set(-1, 0, c)
	b.Set(10, 0, c)
	b.Set(0, 5, c)
	if got := b.Get(99, 99); got.Rune != ' ' {
		t.Errorf("Out-of-bounds Get = %+v", got)
	}
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer(4, 4)
	b.Set(1, 1, Cell{Rune: 'x'})

	bg := core.RGB{R: 4, G: 4, B: 12}
	b.Clear(bg)

	cell := b.Get(1, 1)
	if cell.Rune != ' ' || cell.Bg != bg {
		t.Errorf("Cleared cell = %+v", cell)
	}
}

func TestBufferText(t *testing.T) {
	b := NewBuffer(20, 3)
	b.Text(2, 1, "Hoth", core.RGBWhite, core.RGBBlack)

	for i, r := range "Hoth" {
		if got := b.Get(2+i, 1).Rune; got != r {
			t.Errorf("Cell %d = %q, want %q", i, got, r)
		}
	}
}

func TestBufferResize(t *testing.T) {
	b := NewBuffer(10, 5)
	b.Resize(3, 2)
	if b.Width() != 3 || b.Height() != 2 {
		t.Errorf("Size = %dx%d, want 3x2", b.Width(), b.Height())
	}

	// Degenerate sizes clamp to one cell
	b.Resize(0, -4)
	if b.Width() != 1 || b.Height() != 1 {
		t.Errorf("Degenerate size = %dx%d, want 1x1", b.Width(), b.Height())
	}
}
