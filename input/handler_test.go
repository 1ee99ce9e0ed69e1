package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/PierreHermey/SW3DMap/config"
	"github.com/PierreHermey/SW3DMap/events"
	"github.com/PierreHermey/SW3DMap/render"
)

func newTestHandler(panelVisible bool) (*Handler, *events.EventQueue) {
	queue := events.NewEventQueue()
	cfg := config.Default().Viewer
	cfg.SearchDebounce = 50 * time.Millisecond
	h := NewHandler(queue, &render.Frame{}, cfg, 120, 40, func() bool { return panelVisible })
	return h, queue
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func drain(q *events.EventQueue) []events.ViewerEvent {
	var all []events.ViewerEvent
	for {
		batch := q.Consume()
		if batch == nil {
			return all
		}
		all = append(all, batch...)
	}
}

func TestQuitKeys(t *testing.T) {
	h, _ := newTestHandler(false)
	if h.HandleEvent(key(tcell.KeyCtrlC, 0)) {
		t.Error("Ctrl-C did not quit")
	}
	if h.HandleEvent(key(tcell.KeyRune, 'q')) {
		t.Error("q did not quit")
	}

	// In search mode q is text, not quit; Ctrl-C still quits
	h2, _ := newTestHandler(false)
	h2.HandleEvent(key(tcell.KeyRune, '/'))
	if !h2.HandleEvent(key(tcell.KeyRune, 'q')) {
		t.Error("q quit while typing a search")
	}
	if h2.HandleEvent(key(tcell.KeyCtrlC, 0)) {
		t.Error("Ctrl-C did not quit in search mode")
	}
}

func TestEscapeClearsSelection(t *testing.T) {
	h, q := newTestHandler(false)
	h.HandleEvent(key(tcell.KeyEscape, 0))

	evs := drain(q)
	if len(evs) != 1 || evs[0].Type != events.EventSelectionCleared {
		t.Errorf("Expected one clear event, got %v", evs)
	}
}

func TestLegendToggle(t *testing.T) {
	h, _ := newTestHandler(false)
	if h.ShowLegend() {
		t.Fatal("Legend starts visible")
	}
	h.HandleEvent(key(tcell.KeyRune, 'l'))
	if !h.ShowLegend() {
		t.Error("l did not show the legend")
	}
	h.HandleEvent(key(tcell.KeyRune, 'l'))
	if h.ShowLegend() {
		t.Error("l did not hide the legend")
	}
}

func TestSearchTyping(t *testing.T) {
	h, q := newTestHandler(false)

	h.HandleEvent(key(tcell.KeyRune, '/'))
	if !h.SearchActive() {
		t.Fatal("/ did not open search")
	}

	for _, r := range "hoth" {
		h.HandleEvent(key(tcell.KeyRune, r))
	}
	if h.SearchText() != "hoth" {
		t.Errorf("Search text = %q, want hoth", h.SearchText())
	}

	h.HandleEvent(key(tcell.KeyBackspace2, 0))
	if h.SearchText() != "hot" {
		t.Errorf("Search text after backspace = %q, want hot", h.SearchText())
	}

	// Enter submits immediately and closes the prompt
	h.HandleEvent(key(tcell.KeyEnter, 0))
	if h.SearchActive() {
		t.Error("Enter left search open")
	}

	evs := drain(q)
	found := false
	for _, ev := range evs {
		if ev.Type == events.EventSearchSubmitted {
			p := ev.Payload.(*events.SearchPayload)
			if p.Query != "hot" {
				t.Errorf("Submitted query %q, want hot", p.Query)
			}
			found = true
		}
	}
	if !found {
		t.Error("No search event submitted")
	}
}

func TestSearchEscapeCancels(t *testing.T) {
	h, q := newTestHandler(false)

	h.HandleEvent(key(tcell.KeyRune, '/'))
	h.HandleEvent(key(tcell.KeyRune, 'x'))
	h.HandleEvent(key(tcell.KeyEscape, 0))

	if h.SearchActive() || h.SearchText() != "" {
		t.Error("Escape did not cancel search")
	}

	// The pending debounce must not fire after cancel
	h.Tick(time.Now().Add(time.Second))
	for _, ev := range drain(q) {
		if ev.Type == events.EventSearchSubmitted {
			t.Error("Cancelled search still submitted")
		}
	}
}

func TestSearchDebounce(t *testing.T) {
	h, q := newTestHandler(false)

	h.HandleEvent(key(tcell.KeyRune, '/'))
	h.HandleEvent(key(tcell.KeyRune, 'h'))

	// Before the pause elapses nothing fires
	h.Tick(time.Now())
	for _, ev := range drain(q) {
		if ev.Type == events.EventSearchSubmitted {
			t.Fatal("Search fired before the debounce window")
		}
	}

	h.Tick(time.Now().Add(time.Second))
	evs := drain(q)
	fired := false
	for _, ev := range evs {
		if ev.Type == events.EventSearchSubmitted {
			fired = true
		}
	}
	if !fired {
		t.Error("Debounced search never fired")
	}

	// One pause, one submit
	h.Tick(time.Now().Add(2 * time.Second))
	for _, ev := range drain(q) {
		if ev.Type == events.EventSearchSubmitted {
			t.Error("Debounce fired twice for one keystroke")
		}
	}
}

func TestClickEmptySpaceClears(t *testing.T) {
	h, q := newTestHandler(false)

	// Empty frame: every pick misses
	press := tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone)
	release := tcell.NewEventMouse(10, 10, tcell.ButtonNone, tcell.ModNone)
	h.HandleEvent(press)
	h.HandleEvent(release)

	cleared := false
	for _, ev := range drain(q) {
		if ev.Type == events.EventSelectionCleared {
			cleared = true
		}
	}
	if !cleared {
		t.Error("Click on empty space did not clear")
	}
}

func TestClickOnStatusBarSwallowed(t *testing.T) {
	h, q := newTestHandler(false)

	h.HandleEvent(tcell.NewEventMouse(10, 39, tcell.Button1, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(10, 39, tcell.ButtonNone, tcell.ModNone))

	for _, ev := range drain(q) {
		if ev.Type == events.EventSelectionCleared || ev.Type == events.EventPlanetSelected {
			t.Errorf("Status bar click leaked event %v", ev.Type)
		}
	}
}

func TestClickOnPanelSwallowed(t *testing.T) {
	h, q := newTestHandler(true)

	// Right edge, inside the panel column while it is visible
	h.HandleEvent(tcell.NewEventMouse(115, 10, tcell.Button1, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(115, 10, tcell.ButtonNone, tcell.ModNone))

	for _, ev := range drain(q) {
		if ev.Type == events.EventSelectionCleared || ev.Type == events.EventPlanetSelected {
			t.Errorf("Panel click leaked event %v", ev.Type)
		}
	}

	// Same spot with the panel hidden reaches the map
	h2, q2 := newTestHandler(false)
	h2.HandleEvent(tcell.NewEventMouse(115, 10, tcell.Button1, tcell.ModNone))
	h2.HandleEvent(tcell.NewEventMouse(115, 10, tcell.ButtonNone, tcell.ModNone))
	reached := false
	for _, ev := range drain(q2) {
		if ev.Type == events.EventSelectionCleared {
			reached = true
		}
	}
	if !reached {
		t.Error("Hidden panel still swallowed the click")
	}
}

func TestHoverEventsDeduplicated(t *testing.T) {
	h, q := newTestHandler(false)

	h.HandleEvent(tcell.NewEventMouse(10, 10, tcell.ButtonNone, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(11, 10, tcell.ButtonNone, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(12, 10, tcell.ButtonNone, tcell.ModNone))

	// All misses: the initial -1 never changes, so no hover events at all
	for _, ev := range drain(q) {
		if ev.Type == events.EventHoverChanged {
			t.Error("Duplicate hover miss emitted an event")
		}
	}
}
