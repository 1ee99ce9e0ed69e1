package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/PierreHermey/SW3DMap/audio"
	"github.com/PierreHermey/SW3DMap/catalog"
	"github.com/PierreHermey/SW3DMap/config"
	"github.com/PierreHermey/SW3DMap/input"
	"github.com/PierreHermey/SW3DMap/logger"
	"github.com/PierreHermey/SW3DMap/render"
	"github.com/PierreHermey/SW3DMap/scene"
)

var (
	catalogFlag = flag.String("catalog", "", "Path to the planet catalog JSON (overrides SW3DMAP_CATALOG)")
	seedFlag    = flag.Int64("seed", 0, "Projection seed, 0 uses the current time")
)

func main() {
	flag.Parse()

	cfg := config.Load()
	if *catalogFlag != "" {
		cfg.Viewer.CatalogPath = *catalogFlag
	}

	log, closeLog := logger.Setup(cfg.Logging, false)
	defer closeLog()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	records, err := catalog.Load(cfg.Viewer.CatalogPath)
	if err != nil {
		log.Warn("catalog unavailable, starting with empty map", "path", cfg.Viewer.CatalogPath, "error", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace hits
	// stderr, otherwise it is unreadable in the alternate screen
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nsw3dmap crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.Clear()
	width, height := screen.Size()

	sc := scene.New(cfg, records, rng, log)

	player, err := audio.NewPlayer(cfg.Audio, log)
	if err != nil {
		log.Warn("audio unavailable, cues muted", "error", err)
	}
	defer player.Close()
	sc.RegisterHandler(player)

	orch := render.NewOrchestrator(screen, width, height, log)
	orch.Register(render.NewStarfieldRenderer(seed), render.PriorityBackground)
	orch.Register(render.NewPlanetsRenderer(), render.PriorityEntities)
	orch.Register(render.NewPanelRenderer(), render.PriorityUI)
	orch.Register(render.NewLegendRenderer(), render.PriorityUI)
	orch.Register(render.NewStatusBarRenderer(), render.PriorityOverlay)

	handler := input.NewHandler(sc.Queue, orch.Frame(), cfg.Viewer, width, height, func() bool {
		return sc.Selection.Selected() >= 0
	})

	log.Info("viewer started", "planets", sc.Registry.Len(), "catalog", cfg.Viewer.CatalogPath, "seed", seed)

	run(screen, sc, orch, handler, cfg.Viewer.FrameInterval, log)
	log.Info("viewer stopped")
}

// run drives the main loop: terminal events and the frame ticker are the
// only two inputs, everything else arrives through the scene's event queue
func run(screen tcell.Screen, sc *scene.Scene, orch *render.Orchestrator, handler *input.Handler, frameInterval time.Duration, log *slog.Logger) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	dt := frameInterval.Seconds()

	for {
		select {
		case ev := <-eventChan:
			if resize, ok := ev.(*tcell.EventResize); ok {
				w, h := resize.Size()
				orch.Resize(w, h)
				handler.Resize(w, h)
				screen.Sync()
				continue
			}
			if !handler.HandleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			frame(sc, orch, handler, dt, now, log)
		}
	}
}

// frame runs one tick of update and draw. A panic in scene logic or a
// renderer skips the rest of this frame instead of killing the loop; the
// deferred handler in main still catches anything that escapes run.
func frame(sc *scene.Scene, orch *render.Orchestrator, handler *input.Handler, dt float64, now time.Time, log *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("frame panicked", "panic", r, "stack", string(debug.Stack()))
		}
	}()

	handler.Tick(now)
	sc.Update(dt)

	ctx := &render.Context{
		Scene:        sc,
		SearchActive: handler.SearchActive(),
		SearchText:   handler.SearchText(),
		ShowLegend:   handler.ShowLegend(),
	}
	orch.RenderFrame(ctx)
}
