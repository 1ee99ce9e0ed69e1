package scene

import (
	"github.com/PierreHermey/SW3DMap/config"
	"github.com/PierreHermey/SW3DMap/core"
	"github.com/PierreHermey/SW3DMap/galaxy"
)

// RepulsionSimulator pushes non-selected planets away from the focused
// one and relaxes them back. Purely cosmetic: forces are a linear falloff
// inside a fixed radius, not a collision response
type RepulsionSimulator struct {
	registry *galaxy.Registry
	cfg      config.RepulsionConfig

	center int // Selected index receiving no force, -1 when inactive

	restore      Tween
	restoreStart []restoreSample
}

// restoreSample is a planet's state at restore start
type restoreSample struct {
	position core.Vec3
	velocity core.Vec3
}

// NewRepulsionSimulator creates an inactive simulator
func NewRepulsionSimulator(registry *galaxy.Registry, cfg config.RepulsionConfig) *RepulsionSimulator {
	return &RepulsionSimulator{
		registry: registry,
		cfg:      cfg,
		center:   -1,
	}
}

// Activate starts repelling around the given selected index
func (s *RepulsionSimulator) Activate(center int) {
	s.center = center
}

// Deactivate stops applying forces; velocities keep damping out
func (s *RepulsionSimulator) Deactivate() {
	s.center = -1
}

// Restoring reports whether a restore interpolation is in flight
func (s *RepulsionSimulator) Restoring() bool {
	return s.restore.Active()
}

// Restore starts an eased return of every planet to its original
// position over the given duration in seconds
//
// Idempotent to call repeatedly: each call re-samples current positions
// and velocities as the new start, abandoning any in-flight restore.
// Residual velocity decays to zero by the same progress fraction
func (s *RepulsionSimulator) Restore(duration float64) {
	planets := s.registry.Planets()
	if cap(s.restoreStart) < len(planets) {
		s.restoreStart = make([]restoreSample, len(planets))
	}
	s.restoreStart = s.restoreStart[:len(planets)]
	for i := range planets {
		s.restoreStart[i] = restoreSample{
			position: planets[i].Position,
			velocity: planets[i].Velocity,
		}
	}
	s.restore.Start(duration)
}

// ZeroVelocities hard-stops every planet, no damping tail
func (s *RepulsionSimulator) ZeroVelocities() {
	for i := 0; i < s.registry.Len(); i++ {
		s.registry.Get(i).Velocity = core.Vec3{}
	}
}

// Step advances one simulation tick
//
// While restoring, positions are driven by the interpolation and the
// velocity integrator is suspended; otherwise forces accumulate into
// velocities and the registry integrates and damps every planet
func (s *RepulsionSimulator) Step(dt float64) {
	if s.restore.Active() {
		s.stepRestore(dt)
		return
	}

	if s.center >= 0 && s.center < s.registry.Len() {
		s.applyForces(dt)
	}

	for i := 0; i < s.registry.Len(); i++ {
		s.registry.ApplyVelocity(i, dt)
	}
}

// applyForces pushes planets inside the radius away from the center
func (s *RepulsionSimulator) applyForces(dt float64) {
	centerPos := s.registry.Get(s.center).Position

	for i := 0; i < s.registry.Len(); i++ {
		if i == s.center {
			// Selected planet receives no force, only damping
			continue
		}
		p := s.registry.Get(i)
		delta := p.Position.Sub(centerPos)
		d := delta.Length()
		if d == 0 {
			// Coincident positions have no direction; explicit skip,
			// not a clamp
			continue
		}
		if d >= s.cfg.Radius {
			continue
		}
		falloff := (1 - d/s.cfg.Radius) * s.cfg.Strength
		p.Velocity = p.Velocity.Add(delta.Scale(falloff * dt / d))
	}
}

// stepRestore interpolates every planet back toward its original position
func (s *RepulsionSimulator) stepRestore(dt float64) {
	t, done := s.restore.Advance(dt)

	planets := s.registry.Planets()
	n := min(len(planets), len(s.restoreStart))
	for i := 0; i < n; i++ {
		p := s.registry.Get(i)
		if done {
			p.Position = p.OriginalPosition
			p.Velocity = core.Vec3{}
			continue
		}
		p.Position = s.restoreStart[i].position.Lerp(p.OriginalPosition, t)
		p.Velocity = s.restoreStart[i].velocity.Scale(1 - t)
	}
}
