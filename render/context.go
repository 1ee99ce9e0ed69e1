package render

import (
	"github.com/PierreHermey/SW3DMap/scene"
)

// RenderPriority orders renderer execution, low runs first
type RenderPriority int

const (
	PriorityBackground RenderPriority = 100
	PriorityEntities   RenderPriority = 200
	PriorityEffects    RenderPriority = 300
	PriorityUI         RenderPriority = 400
	PriorityOverlay    RenderPriority = 500
)

// Context carries per-frame state into renderers
type Context struct {
	Scene  *scene.Scene
	Frame  *Frame
	Width  int
	Height int

	// UI state owned by the input layer
	SearchActive  bool
	SearchText    string
	ShowLegend    bool
	StatusMessage string
}

// Renderer draws one visual layer into the buffer
type Renderer interface {
	Name() string
	Render(ctx *Context, buf *Buffer)
}
