package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData is a velocity-driven rigid body. Velocities are pixels per
// second, y down.
type PhysicsData struct {
	VelX         float64
	VelY         float64
	GravityScale float64
	Mass         float64
	Simulated    bool // false freezes the body in place

	// Continuous force accumulated this step, consumed by UpdatePhysics.
	ForceX float64
	ForceY float64

	// Collision results of the last step
	BlockedX bool
	BlockedY bool
	OnGround bool
}

// ApplyImpulse changes velocity instantly by impulse / mass.
func (p *PhysicsData) ApplyImpulse(ix, iy float64) {
	m := p.mass()
	p.VelX += ix / m
	p.VelY += iy / m
}

// AddForce accumulates a force that is integrated over the next step.
func (p *PhysicsData) AddForce(fx, fy float64) {
	p.ForceX += fx
	p.ForceY += fy
}

func (p *PhysicsData) SetVelocity(vx, vy float64) {
	p.VelX = vx
	p.VelY = vy
}

// Stop zeroes velocity and pending forces.
func (p *PhysicsData) Stop() {
	p.VelX, p.VelY = 0, 0
	p.ForceX, p.ForceY = 0, 0
}

func (p *PhysicsData) mass() float64 {
	if p.Mass <= 0 {
		return 1
	}
	return p.Mass
}

var Physics = donburi.NewComponentType[PhysicsData]()
