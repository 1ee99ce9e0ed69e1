package scene

import (
	"log/slog"
	"math/rand"

	"github.com/PierreHermey/SW3DMap/catalog"
	"github.com/PierreHermey/SW3DMap/config"
	"github.com/PierreHermey/SW3DMap/events"
	"github.com/PierreHermey/SW3DMap/galaxy"
)

// Scene is the application context: one explicit object owning the
// registry, camera, simulators and selection state, constructed once and
// passed to collaborators instead of ambient globals
type Scene struct {
	Registry  *galaxy.Registry
	Camera    *Camera
	Repulsion *RepulsionSimulator
	Assets    *AssetStore
	Selection *SelectionController
	Queue     *events.EventQueue

	TotalRecords int // Catalog size before load errors, for the N/M count

	router   *events.Router[*Scene]
	log      *slog.Logger
	idleSpin float64
}

// New builds a scene from config and loaded catalog records
//
// A failed registry load leaves the scene valid and empty: every
// consumer handles zero planets, the status bar shows 0/N
func New(cfg *config.Config, records []catalog.PlanetRecord, rng *rand.Rand, log *slog.Logger) *Scene {
	queue := events.NewEventQueue()

	registry := galaxy.NewRegistry(cfg.Galaxy, cfg.Repulsion, rng)
	if len(records) > 0 {
		if err := registry.LoadAll(records); err != nil {
			log.Warn("catalog load failed, rendering empty galaxy", "error", err)
		}
	}

	camera := NewCamera(cfg.Galaxy.Radius)
	repulsion := NewRepulsionSimulator(registry, cfg.Repulsion)
	assets := NewAssetStore(cfg.Viewer.AssetsDir, queue, log)

	s := &Scene{
		Registry:     registry,
		Camera:       camera,
		Repulsion:    repulsion,
		Assets:       assets,
		Queue:        queue,
		TotalRecords: len(records),
		router:       events.NewRouter[*Scene](queue),
		log:          log,
		idleSpin:     cfg.Animation.IdleSpinRate,
	}
	s.Selection = NewSelectionController(registry, camera, repulsion, assets, s.PlayCue, cfg.Animation, log)
	s.router.Register(s)
	return s
}

// PlayCue enqueues an audio cue, skipped when nothing consumes cue events
func (s *Scene) PlayCue(cue events.Cue) {
	if !s.router.HasHandlers(events.EventCue) {
		return
	}
	s.Queue.Push(events.ViewerEvent{Type: events.EventCue, Payload: &events.CuePayload{Cue: cue}})
}

// RegisterHandler attaches an extra event consumer (e.g. audio cues)
func (s *Scene) RegisterHandler(h events.Handler[*Scene]) {
	s.router.Register(h)
}

// EventTypes declares the scene's own event subscriptions
func (s *Scene) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventPlanetSelected,
		events.EventSelectionCleared,
		events.EventHoverChanged,
		events.EventSearchSubmitted,
		events.EventAssetLoaded,
	}
}

// HandleEvent routes one event to the owning component
func (s *Scene) HandleEvent(_ *Scene, ev events.ViewerEvent) {
	switch ev.Type {
	case events.EventPlanetSelected:
		if p, ok := ev.Payload.(*events.SelectPayload); ok {
			if p.Index >= 0 && p.Index < s.Registry.Len() {
				s.Selection.Select(p.Index)
			}
		}
	case events.EventSelectionCleared:
		s.Selection.Clear()
	case events.EventHoverChanged:
		if p, ok := ev.Payload.(*events.HoverPayload); ok {
			s.Selection.SetHover(p.Index)
		}
	case events.EventSearchSubmitted:
		if p, ok := ev.Payload.(*events.SearchPayload); ok {
			s.search(p.Query)
		}
	case events.EventAssetLoaded:
		if p, ok := ev.Payload.(*events.AssetLoadedPayload); ok {
			s.Assets.HandleLoaded(p)
		}
	}
}

// search resolves an exact-name query to a selection
func (s *Scene) search(query string) {
	if query == "" {
		return
	}
	idx, ok := s.Registry.FindByName(query)
	if !ok {
		s.log.Debug("search miss", "query", query)
		s.PlayCue(events.CueError)
		return
	}
	s.Selection.Select(idx)
}

// Update advances one frame of scene logic
// Order: drain events, settle the selection machine, step physics,
// then move the camera (which may have picked up a new fly-to)
func (s *Scene) Update(dt float64) {
	s.router.DispatchAll(s)
	s.Selection.Update()
	s.Repulsion.Step(dt)

	spin := 0.0
	if s.Selection.State() == StateIdle && !s.Camera.Flying() {
		spin = s.idleSpin
	}
	s.Camera.Update(dt, spin)
}
