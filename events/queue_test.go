package events

import (
	"sync"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()

	for i := 0; i < 5; i++ {
		q.Push(ViewerEvent{Type: EventPlanetSelected, Payload: &SelectPayload{Index: i}})
	}

	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(got))
	}
	for i, ev := range got {
		p, ok := ev.Payload.(*SelectPayload)
		if !ok {
			t.Fatalf("Event %d has payload type %T", i, ev.Payload)
		}
		if p.Index != i {
			t.Errorf("Event %d: expected index %d, got %d", i, i, p.Index)
		}
	}

	if rest := q.Consume(); rest != nil {
		t.Errorf("Expected empty queue after consume, got %d events", len(rest))
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()

	const producers = 8
	const perProducer = 16

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(ViewerEvent{Type: EventHoverChanged, Payload: &HoverPayload{Index: i}})
			}
		}()
	}
	wg.Wait()

	total := 0
	for {
		batch := q.Consume()
		if batch == nil {
			break
		}
		total += len(batch)
	}
	if total != producers*perProducer {
		t.Errorf("Expected %d events, got %d", producers*perProducer, total)
	}
}

type recordingHandler struct {
	types []EventType
	seen  []ViewerEvent
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }
func (h *recordingHandler) HandleEvent(_ struct{}, ev ViewerEvent) {
	h.seen = append(h.seen, ev)
}

func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[struct{}](q)

	selects := &recordingHandler{types: []EventType{EventPlanetSelected}}
	cues := &recordingHandler{types: []EventType{EventCue}}
	r.Register(selects)
	r.Register(cues)

	q.Push(ViewerEvent{Type: EventPlanetSelected, Payload: &SelectPayload{Index: 3}})
	q.Push(ViewerEvent{Type: EventCue, Payload: &CuePayload{Cue: CueSelect}})
	q.Push(ViewerEvent{Type: EventSelectionCleared})

	r.DispatchAll(struct{}{})

	if len(selects.seen) != 1 {
		t.Errorf("Select handler saw %d events, want 1", len(selects.seen))
	}
	if len(cues.seen) != 1 {
		t.Errorf("Cue handler saw %d events, want 1", len(cues.seen))
	}
	if !r.HasHandlers(EventCue) {
		t.Error("Expected registered cue handlers")
	}
	if r.HasHandlers(EventSearchSubmitted) {
		t.Error("Expected no search handlers")
	}
}
