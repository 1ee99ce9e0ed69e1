package scene

import (
	"math/rand"
	"testing"

	"github.com/PierreHermey/SW3DMap/catalog"
	"github.com/PierreHermey/SW3DMap/config"
	"github.com/PierreHermey/SW3DMap/core"
	"github.com/PierreHermey/SW3DMap/galaxy"
)

func newTestSimulator(t *testing.T) (*RepulsionSimulator, *galaxy.Registry) {
	t.Helper()
	cfg := config.Default()
	registry := galaxy.NewRegistry(cfg.Galaxy, cfg.Repulsion, rand.New(rand.NewSource(2)))
	records := []catalog.PlanetRecord{
		{Name: "A", Cell: catalog.GridCell{Col: 5, Row: 5}},
		{Name: "B", Cell: catalog.GridCell{Col: 6, Row: 5}},
		{Name: "C", Cell: catalog.GridCell{Col: 15, Row: 15}},
	}
	if err := registry.LoadAll(records); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	return NewRepulsionSimulator(registry, cfg.Repulsion), registry
}

func TestRepulsionPushesNeighbors(t *testing.T) {
	sim, registry := newTestSimulator(t)

	registry.Get(0).Position = core.Vec3{}
	registry.Get(1).Position = core.Vec3{X: 10}
	registry.Get(2).Position = core.Vec3{X: 300}

	sim.Activate(0)
	sim.Step(0.1)

	if x := registry.Get(1).Position.X; x <= 10 {
		t.Errorf("Neighbor inside radius was not pushed away, X = %v", x)
	}
	if pos := registry.Get(0).Position; !pos.IsZero() {
		t.Errorf("Center planet moved to %+v", pos)
	}
	if x := registry.Get(2).Position.X; x != 300 {
		t.Errorf("Planet outside radius moved, X = %v", x)
	}
}

func TestRepulsionSkipsCoincidentPlanets(t *testing.T) {
	sim, registry := newTestSimulator(t)

	registry.Get(0).Position = core.Vec3{X: 5, Y: 5}
	registry.Get(1).Position = core.Vec3{X: 5, Y: 5}

	sim.Activate(0)
	sim.Step(0.1)

	// Coincident positions have no push direction; both stay put
	if pos := registry.Get(1).Position; pos != (core.Vec3{X: 5, Y: 5}) {
		t.Errorf("Coincident planet moved to %+v", pos)
	}
}

func TestRepulsionFalloffIsLinear(t *testing.T) {
	sim, registry := newTestSimulator(t)

	registry.Get(0).Position = core.Vec3{}
	registry.Get(1).Position = core.Vec3{X: 10}
	registry.Get(2).Position = core.Vec3{X: 50}

	sim.Activate(0)
	sim.Step(0.1)

	near := registry.Get(1).Velocity.Length()
	far := registry.Get(2).Velocity.Length()
	if near <= far {
		t.Errorf("Closer planet should be pushed harder: near %v, far %v", near, far)
	}
}

func TestRestoreConvergesExactly(t *testing.T) {
	sim, registry := newTestSimulator(t)

	for i := 0; i < registry.Len(); i++ {
		p := registry.Get(i)
		p.Position = p.Position.Add(core.Vec3{X: 20, Y: -15, Z: 5})
		p.Velocity = core.Vec3{X: 3, Y: 1, Z: -2}
	}

	sim.Restore(0.5)
	if !sim.Restoring() {
		t.Fatal("Restore did not start")
	}

	for i := 0; i < 10; i++ {
		sim.Step(0.1)
	}

	if sim.Restoring() {
		t.Fatal("Restore still active past its duration")
	}
	for i := 0; i < registry.Len(); i++ {
		p := registry.Get(i)
		if p.Position != p.OriginalPosition {
			t.Errorf("Planet %d settled at %+v, want %+v", i, p.Position, p.OriginalPosition)
		}
		if !p.Velocity.IsZero() {
			t.Errorf("Planet %d kept velocity %+v after restore", i, p.Velocity)
		}
	}
}

func TestRestoreZeroDurationSnapsImmediately(t *testing.T) {
	sim, registry := newTestSimulator(t)

	p := registry.Get(0)
	p.Position = p.OriginalPosition.Add(core.Vec3{X: 40})
	p.Velocity = core.Vec3{X: 7}

	sim.Restore(0)
	sim.Step(0.033)

	if p.Position != p.OriginalPosition {
		t.Errorf("Planet stuck at %+v after zero-duration restore, want %+v",
			p.Position, p.OriginalPosition)
	}
	if !p.Velocity.IsZero() {
		t.Errorf("Planet kept velocity %+v after zero-duration restore", p.Velocity)
	}
	if sim.Restoring() {
		t.Error("Restore still active after immediate completion")
	}
}

func TestRestoreResamplesOnRestart(t *testing.T) {
	sim, registry := newTestSimulator(t)

	p := registry.Get(0)
	p.Position = p.OriginalPosition.Add(core.Vec3{X: 40})

	sim.Restore(1.0)
	sim.Step(0.1)
	midway := p.Position

	// Restarting abandons the old interpolation and starts from here
	sim.Restore(1.0)
	sim.Step(0.05)

	toOriginal := p.Position.Dist(p.OriginalPosition)
	if toOriginal >= midway.Dist(p.OriginalPosition)+1e-9 {
		// Progress never regresses past the resampled start
		t.Errorf("Restart moved planet away from original: %v", toOriginal)
	}
}

func TestZeroVelocities(t *testing.T) {
	sim, registry := newTestSimulator(t)

	for i := 0; i < registry.Len(); i++ {
		registry.Get(i).Velocity = core.Vec3{X: 9, Y: 9, Z: 9}
	}
	sim.ZeroVelocities()
	for i := 0; i < registry.Len(); i++ {
		if !registry.Get(i).Velocity.IsZero() {
			t.Errorf("Planet %d velocity not zeroed", i)
		}
	}
}
