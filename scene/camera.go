package scene

import (
	"math"

	"github.com/PierreHermey/SW3DMap/core"
)

// Camera orbits a look-at target and projects world points to view space
//
// The galactic plane is XY; Z is the flattening axis. Yaw rotates around
// Z, pitch elevates out of the plane. Fly-to animates the target point
// and orbit distance; a new fly-to re-samples current values as its start
// (last-writer-wins, no competing interpolations)
type Camera struct {
	Target   core.Vec3
	Yaw      float64
	Pitch    float64
	Distance float64

	homeDistance  float64
	focusDistance float64

	fly       Tween
	fromPoint core.Vec3
	toPoint   core.Vec3
	fromDist  float64
	toDist    float64
}

// NewCamera creates a camera parked at the home orbit
func NewCamera(galaxyRadius float64) *Camera {
	home := galaxyRadius * 2.6
	return &Camera{
		Pitch:         0.6,
		Distance:      home,
		homeDistance:  home,
		focusDistance: galaxyRadius * 0.35,
	}
}

// FlyTo starts an eased flight of the look-at point toward a world
// position, closing the orbit distance for detail viewing
func (c *Camera) FlyTo(target core.Vec3, duration float64) {
	c.fromPoint = c.Target
	c.toPoint = target
	c.fromDist = c.Distance
	c.toDist = c.focusDistance
	c.fly.Start(duration)
}

// FlyHome returns the camera to the full-galaxy orbit
func (c *Camera) FlyHome(duration float64) {
	c.fromPoint = c.Target
	c.toPoint = core.Vec3{}
	c.fromDist = c.Distance
	c.toDist = c.homeDistance
	c.fly.Start(duration)
}

// Flying reports whether a fly animation is in progress
func (c *Camera) Flying() bool {
	return c.fly.Active()
}

// Update advances the fly animation and applies idle drift
// spin is radians of yaw drift for this tick, zero while focused
func (c *Camera) Update(dt, spin float64) {
	c.Yaw += spin * dt
	if c.Yaw > math.Pi*2 {
		c.Yaw -= math.Pi * 2
	}

	if !c.fly.Active() {
		return
	}
	t, _ := c.fly.Advance(dt)
	c.Target = c.fromPoint.Lerp(c.toPoint, t)
	c.Distance = c.fromDist + (c.toDist-c.fromDist)*t
}

// Eye returns the camera position in world space
func (c *Camera) Eye() core.Vec3 {
	cp := math.Cos(c.Pitch)
	return c.Target.Add(core.Vec3{
		X: c.Distance * cp * math.Cos(c.Yaw),
		Y: c.Distance * cp * math.Sin(c.Yaw),
		Z: c.Distance * math.Sin(c.Pitch),
	})
}

// WorldToView transforms a world point into camera space
// X is right, Y is up, Z is depth along the view direction
func (c *Camera) WorldToView(p core.Vec3) core.Vec3 {
	eye := c.Eye()
	forward := c.Target.Sub(eye).Normalize()

	// World up is the galactic axis
	up := core.Vec3{Z: 1}
	right := cross(forward, up).Normalize()
	if right.IsZero() {
		// Looking straight along the axis; pick an arbitrary right
		right = core.Vec3{X: 1}
	}
	viewUp := cross(right, forward)

	d := p.Sub(eye)
	return core.Vec3{
		X: dot(d, right),
		Y: dot(d, viewUp),
		Z: dot(d, forward),
	}
}

func cross(a, b core.Vec3) core.Vec3 {
	return core.Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func dot(a, b core.Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}
