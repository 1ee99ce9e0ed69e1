package scene

import (
	"log/slog"

	"github.com/PierreHermey/SW3DMap/config"
	"github.com/PierreHermey/SW3DMap/events"
	"github.com/PierreHermey/SW3DMap/galaxy"
)

// SelectionState names the controller's state machine states
type SelectionState int

const (
	// StateIdle: no planet focused
	StateIdle SelectionState = iota
	// StateTransitioning: previous selection restoring while the new one
	// is already active; entered only when switching between two
	// different non-null selections
	StateTransitioning
	// StateFocused: one planet selected, camera settled or in flight
	StateFocused
)

func (s SelectionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTransitioning:
		return "transitioning"
	case StateFocused:
		return "focused"
	default:
		return "unknown"
	}
}

// SelectionController coordinates focus changes across the registry,
// camera, repulsion simulator and asset store
//
// It is the only writer of Focused/Hovered flags and the selected index;
// it never mutates positions directly. At most one planet has
// Focused=true at any time
type SelectionController struct {
	registry  *galaxy.Registry
	camera    *Camera
	repulsion *RepulsionSimulator
	assets    *AssetStore
	cue       func(events.Cue)
	log       *slog.Logger

	restoreSecs float64
	cameraSecs  float64

	state    SelectionState
	selected int
	hovered  int
}

// NewSelectionController wires the controller to its collaborators
func NewSelectionController(
	registry *galaxy.Registry,
	camera *Camera,
	repulsion *RepulsionSimulator,
	assets *AssetStore,
	cue func(events.Cue),
	animCfg config.AnimationConfig,
	log *slog.Logger,
) *SelectionController {
	return &SelectionController{
		registry:    registry,
		camera:      camera,
		repulsion:   repulsion,
		assets:      assets,
		cue:         cue,
		log:         log,
		restoreSecs: animCfg.RestoreDuration.Seconds(),
		cameraSecs:  animCfg.CameraDuration.Seconds(),
		state:       StateIdle,
		selected:    -1,
		hovered:     -1,
	}
}

// State returns the current machine state
func (c *SelectionController) State() SelectionState {
	return c.state
}

// Selected returns the focused registry index, or -1 when idle
func (c *SelectionController) Selected() int {
	return c.selected
}

// Hovered returns the hovered registry index, or -1 when none
func (c *SelectionController) Hovered() int {
	return c.hovered
}

// Select focuses the planet at index
//
// Re-selecting the current planet is a no-op. Switching from another
// selection schedules a full position restore for all planets, clears
// the old focus, then activates the new one; the restore and the new
// camera fly-to run concurrently. An out-of-range index is a caller bug
// and fails fast in the registry accessor
func (c *SelectionController) Select(index int) {
	target := c.registry.Get(index) // Fails fast on bad index

	if c.selected == index {
		return
	}

	if c.selected >= 0 {
		// Focused(A) -> Transitioning -> Focused(B)
		c.registry.Get(c.selected).Focused = false
		c.repulsion.Restore(c.restoreSecs)
		c.state = StateTransitioning
	} else {
		c.state = StateFocused
	}

	c.selected = index
	target.Focused = true

	// Camera flies to the planet's current (possibly perturbed) position
	c.camera.FlyTo(target.Position, c.cameraSecs)
	c.repulsion.Activate(index)

	rec := &target.Record
	pinned := rec.Presentation != nil && rec.Presentation.AlwaysVisible
	c.assets.Request(rec.ArtKey(), pinned)

	c.cue(events.CueSelect)
	c.log.Info("planet selected", "name", rec.Name, "grid", rec.Grid, "state", c.state.String())
}

// Clear drops the selection and returns the scene to idle
// Velocities are zeroed immediately (no damping tail), then a full
// restore animation brings every planet home
func (c *SelectionController) Clear() {
	if c.selected < 0 {
		return
	}

	c.registry.Get(c.selected).Focused = false
	c.selected = -1
	c.state = StateIdle

	c.repulsion.Deactivate()
	c.repulsion.ZeroVelocities()
	c.repulsion.Restore(c.restoreSecs)
	c.camera.FlyHome(c.cameraSecs)
	c.assets.Drop()

	c.cue(events.CueClear)
	c.log.Info("selection cleared")
}

// SetHover moves the hover highlight; index -1 clears it
func (c *SelectionController) SetHover(index int) {
	if index == c.hovered {
		return
	}
	if c.hovered >= 0 && c.hovered < c.registry.Len() {
		c.registry.Get(c.hovered).Hovered = false
	}
	c.hovered = -1
	if index >= 0 && index < c.registry.Len() {
		c.registry.Get(index).Hovered = true
		c.hovered = index
	}
}

// Update promotes Transitioning to Focused once the restore settles
func (c *SelectionController) Update() {
	if c.state == StateTransitioning && !c.repulsion.Restoring() {
		c.state = StateFocused
	}
}
