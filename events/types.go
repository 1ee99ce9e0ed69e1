package events

// EventType identifies a viewer event
type EventType int

const (
	// EventPlanetSelected requests focus on a planet
	// Trigger: mouse click on a planet, search match
	// Consumer: SelectionController | Payload: *SelectPayload
	EventPlanetSelected EventType = iota

	// EventSelectionCleared requests return to the idle state
	// Trigger: Escape, clear key, click on empty space
	// Consumer: SelectionController | Payload: nil
	EventSelectionCleared

	// EventHoverChanged signals the planet under the pointer changed
	// Trigger: mouse motion picking
	// Consumer: SelectionController (hover flags) | Payload: *HoverPayload
	EventHoverChanged

	// EventSearchSubmitted carries a name query
	// Trigger: search debounce timer or Enter
	// Consumer: viewer search handler | Payload: *SearchPayload
	EventSearchSubmitted

	// EventAssetLoaded delivers a completed detail art load
	// Trigger: asset loader goroutine (the only cross-goroutine producer)
	// Consumer: AssetStore via frame loop; stale generations are discarded
	// Payload: *AssetLoadedPayload
	EventAssetLoaded

	// EventCue requests an audio feedback tone
	// Trigger: selection transitions, failed search
	// Consumer: audio player | Payload: *CuePayload
	EventCue
)

// ViewerEvent is one queued event
type ViewerEvent struct {
	Type    EventType
	Payload any
}

// SelectPayload targets a registry index
type SelectPayload struct {
	Index int
}

// HoverPayload carries the hovered registry index, -1 for none
type HoverPayload struct {
	Index int
}

// SearchPayload carries a search query
type SearchPayload struct {
	Query string
}

// AssetLoadedPayload carries a finished detail art load
// Generation is compared against the store's counter on arrival
type AssetLoadedPayload struct {
	Key        string
	Generation uint64
	Lines      []string
	Err        error
}

// Cue identifies an audio feedback tone
type Cue int

const (
	CueSelect Cue = iota
	CueClear
	CueError
)

// CuePayload carries an audio cue
type CuePayload struct {
	Cue Cue
}
