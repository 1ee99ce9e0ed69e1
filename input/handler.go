package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/PierreHermey/SW3DMap/config"
	"github.com/PierreHermey/SW3DMap/events"
	"github.com/PierreHermey/SW3DMap/render"
)

// Handler turns terminal events into viewer events
//
// It owns only UI-local state (search text, legend toggle, last hover);
// all scene mutation goes through the event queue so every state change
// happens on the frame loop
type Handler struct {
	queue *events.EventQueue
	frame *render.Frame

	pickRadius float64
	debounce   time.Duration

	width  int
	height int

	searchActive  bool
	searchText    string
	lastKeystroke time.Time
	searchPending bool

	showLegend  bool
	lastHover   int
	prevButtons tcell.ButtonMask

	// panelVisible reports whether the info panel overlay is on screen;
	// clicks there must not fall through to the map
	panelVisible func() bool
}

// NewHandler wires the handler to the shared projection frame
func NewHandler(queue *events.EventQueue, frame *render.Frame, cfg config.ViewerConfig, width, height int, panelVisible func() bool) *Handler {
	return &Handler{
		queue:        queue,
		frame:        frame,
		pickRadius:   cfg.PickRadius,
		debounce:     cfg.SearchDebounce,
		width:        width,
		height:       height,
		lastHover:    -1,
		panelVisible: panelVisible,
	}
}

// SearchActive reports whether the search prompt is open
func (h *Handler) SearchActive() bool { return h.searchActive }

// SearchText returns the current prompt contents
func (h *Handler) SearchText() string { return h.searchText }

// ShowLegend reports the legend toggle
func (h *Handler) ShowLegend() bool { return h.showLegend }

// Resize records the new terminal size for hit-testing
func (h *Handler) Resize(width, height int) {
	h.width = width
	h.height = height
}

// HandleEvent processes one terminal event; returns false to quit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	}
	return true
}

// Tick fires the debounced search when the typing pause elapses
// Called once per frame from the main loop
func (h *Handler) Tick(now time.Time) {
	if h.searchPending && now.Sub(h.lastKeystroke) >= h.debounce {
		h.searchPending = false
		h.submitSearch()
	}
}

func (h *Handler) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	if h.searchActive {
		switch ev.Key() {
		case tcell.KeyEscape:
			h.searchActive = false
			h.searchText = ""
			h.searchPending = false
		case tcell.KeyEnter:
			// Explicit submit bypasses the debounce
			h.searchActive = false
			h.searchPending = false
			h.submitSearch()
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(h.searchText) > 0 {
				runes := []rune(h.searchText)
				h.searchText = string(runes[:len(runes)-1])
				h.touchSearch()
			}
		case tcell.KeyRune:
			h.searchText += string(ev.Rune())
			h.touchSearch()
		}
		return true
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		h.queue.Push(events.ViewerEvent{Type: events.EventSelectionCleared})
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case '/':
			h.searchActive = true
			h.searchText = ""
		case 'l':
			h.showLegend = !h.showLegend
		case 'c':
			h.queue.Push(events.ViewerEvent{Type: events.EventSelectionCleared})
		}
	}
	return true
}

func (h *Handler) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	clicked := buttons&tcell.Button1 != 0 && h.prevButtons&tcell.Button1 == 0
	h.prevButtons = buttons

	if h.overlayHit(x, y) {
		// Pointer on UI chrome: drop hover, swallow clicks
		h.setHover(-1)
		return
	}

	idx := h.frame.Pick(x, y, h.pickRadius)
	h.setHover(idx)

	if !clicked {
		return
	}
	if idx >= 0 {
		h.queue.Push(events.ViewerEvent{
			Type:    events.EventPlanetSelected,
			Payload: &events.SelectPayload{Index: idx},
		})
	} else {
		// Click on empty space clears, mirroring Escape
		h.queue.Push(events.ViewerEvent{Type: events.EventSelectionCleared})
	}
}

// overlayHit reports whether (x, y) lands on UI chrome rather than map
func (h *Handler) overlayHit(x, y int) bool {
	if y == h.height-1 {
		return true // Status bar
	}
	if h.panelVisible != nil && h.panelVisible() && x >= h.width-render.PanelWidth-1 {
		return true // Info panel overlay
	}
	return false
}

func (h *Handler) setHover(idx int) {
	if idx == h.lastHover {
		return
	}
	h.lastHover = idx
	h.queue.Push(events.ViewerEvent{
		Type:    events.EventHoverChanged,
		Payload: &events.HoverPayload{Index: idx},
	})
}

func (h *Handler) touchSearch() {
	h.lastKeystroke = time.Now()
	h.searchPending = h.searchText != ""
}

func (h *Handler) submitSearch() {
	if h.searchText == "" {
		return
	}
	h.queue.Push(events.ViewerEvent{
		Type:    events.EventSearchSubmitted,
		Payload: &events.SearchPayload{Query: h.searchText},
	})
}
