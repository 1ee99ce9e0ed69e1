package scene

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/PierreHermey/SW3DMap/events"
)

// DetailArt is one loaded detail card for the info panel
type DetailArt struct {
	Key    string
	Lines  []string
	Pinned bool // Survives clear()
}

// AssetStore manages async detail art loads with stale-load discard
//
// There is no hard cancellation of in-flight reads. Each Request bumps a
// generation counter captured by the loader goroutine; completions carry
// it back through the event queue and arrivals with a stale generation
// are dropped before touching visible state. Results for pinned keys are
// cached so re-selection is instant
type AssetStore struct {
	dir   string
	queue *events.EventQueue
	log   *slog.Logger

	generation atomic.Uint64

	current       *DetailArt
	pendingPinned bool                  // Pin flag of the newest request
	cache         map[string]*DetailArt // Pinned cards kept across clears
}

// NewAssetStore creates a store reading cards from dir
func NewAssetStore(dir string, queue *events.EventQueue, log *slog.Logger) *AssetStore {
	return &AssetStore{
		dir:   dir,
		queue: queue,
		log:   log,
		cache: make(map[string]*DetailArt),
	}
}

// Request starts loading the card for a key; pinned cards survive clear
// Cached pinned cards resolve synchronously without touching the disk
func (s *AssetStore) Request(key string, pinned bool) {
	gen := s.generation.Add(1)
	s.pendingPinned = pinned

	if art, ok := s.cache[key]; ok {
		s.current = art
		return
	}

	path := filepath.Join(s.dir, key+".txt")

	// Fire-and-forget relative to the frame loop; the completion is
	// applied between frames after the generation check
	go func() {
		lines, err := readArtFile(path)
		s.queue.Push(events.ViewerEvent{
			Type: events.EventAssetLoaded,
			Payload: &events.AssetLoadedPayload{
				Key:        key,
				Generation: gen,
				Lines:      lines,
				Err:        err,
			},
		})
	}()
}

// HandleLoaded applies a completed load if it is still the active request
func (s *AssetStore) HandleLoaded(p *events.AssetLoadedPayload) {
	if p.Generation != s.generation.Load() {
		// Superseded selection; discard on arrival
		s.log.Debug("stale asset load discarded", "key", p.Key, "generation", p.Generation)
		return
	}
	if p.Err != nil {
		// Non-fatal: panel falls back to registry data alone
		s.log.Warn("detail art load failed", "key", p.Key, "error", p.Err)
		s.current = nil
		return
	}

	art := &DetailArt{Key: p.Key, Lines: p.Lines, Pinned: s.pendingPinned}
	s.current = art
	if art.Pinned {
		s.cache[p.Key] = art
	}
}

// Current returns the active card, nil when none is loaded
func (s *AssetStore) Current() *DetailArt {
	return s.current
}

// Drop tears down the active card unless it is pinned always-visible
func (s *AssetStore) Drop() {
	s.generation.Add(1) // Invalidate anything still in flight
	if s.current != nil && s.current.Pinned {
		return
	}
	s.current = nil
}

func readArtFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open art: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read art: %w", err)
	}
	return lines, nil
}
