package render

import (
	"log/slog"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/PierreHermey/SW3DMap/core"
)

// Orchestrator owns the buffer and runs renderers in priority order
type Orchestrator struct {
	screen tcell.Screen
	buf    *Buffer
	frame  Frame
	log    *slog.Logger

	entries []rendererEntry
	bg      core.RGB
}

type rendererEntry struct {
	renderer Renderer
	priority RenderPriority
}

// NewOrchestrator creates an orchestrator for the given screen size
func NewOrchestrator(screen tcell.Screen, width, height int, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		screen: screen,
		buf:    NewBuffer(width, height),
		log:    log,
		bg:     core.RGB{R: 4, G: 4, B: 12},
	}
}

// Register adds a renderer at a priority; low priorities draw first
func (o *Orchestrator) Register(r Renderer, priority RenderPriority) {
	o.entries = append(o.entries, rendererEntry{renderer: r, priority: priority})
	sort.SliceStable(o.entries, func(a, b int) bool {
		return o.entries[a].priority < o.entries[b].priority
	})
}

// Resize adjusts the buffer to a new terminal size
func (o *Orchestrator) Resize(width, height int) {
	o.buf.Resize(width, height)
}

// Frame exposes the latest projection for mouse picking
func (o *Orchestrator) Frame() *Frame {
	return &o.frame
}

// RenderFrame projects the scene, runs all renderers, and flushes
//
// A panicking renderer is logged and skipped for this frame; one bad
// frame must not take down the viewer
func (o *Orchestrator) RenderFrame(ctx *Context) {
	o.frame.Compute(ctx.Scene, o.buf.Width(), o.buf.Height())
	ctx.Frame = &o.frame
	ctx.Width = o.buf.Width()
	ctx.Height = o.buf.Height()

	o.buf.Clear(o.bg)
	for _, e := range o.entries {
		o.renderOne(e.renderer, ctx)
	}
	o.buf.Flush(o.screen)
}

func (o *Orchestrator) renderOne(r Renderer, ctx *Context) {
	defer func() {
		if rec := recover(); rec != nil {
			o.log.Error("renderer panicked", "renderer", r.Name(), "panic", rec)
		}
	}()
	r.Render(ctx, o.buf)
}
