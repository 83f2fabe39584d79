package flock

import (
	"math"
	"math/rand"

	"github.com/meghashyamc/flocking2d/geometry"
)

type Agent struct {
	position     geometry.Vector
	velocity     geometry.Vector
	acceleration geometry.Vector // per-step accumulator, zero between steps
	radius       float64
	maxSpeed     float64
	maxForce     float64
	params       Params
}

// NewAgent creates an agent at position with a random velocity in [-1, 1] on
// each axis drawn from rng. A nil rng uses the math/rand global source.
// Negative, infinite or NaN limits are clamped to zero.
func NewAgent(position geometry.Vector, maxSpeed, maxForce float64, rng *rand.Rand) *Agent {
	return newAgent(position, maxSpeed, maxForce, DefaultParams(), rng)
}

func newAgent(position geometry.Vector, maxSpeed, maxForce float64, params Params, rng *rand.Rand) *Agent {
	float := rand.Float64
	if rng != nil {
		float = rng.Float64
	}

	return &Agent{
		position: position,
		velocity: geometry.Vector{
			X: float()*2 - 1,
			Y: float()*2 - 1,
		},
		radius:   params.Radius,
		maxSpeed: nonNegative(maxSpeed),
		maxForce: nonNegative(maxForce),
		params:   params,
	}
}

func nonNegative(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}

// Step advances the agent by one tick: it steers against neighbors, moves,
// and wraps around the edges of a worldWidth x worldHeight world.
// Only the receiver is mutated.
func (a *Agent) Step(neighbors []*Agent, worldWidth, worldHeight float64) {
	a.Flock(neighbors)
	a.integrate()
	a.wrap(worldWidth, worldHeight)
}

// Flock adds the weighted separation, alignment and cohesion forces into the
// acceleration without moving the agent
func (a *Agent) Flock(neighbors []*Agent) {
	a.applyForce(a.steering(neighbors))
}

// Seek steers toward target at full speed
func (a *Agent) Seek(target geometry.Vector) {
	a.applyForce(a.steer(target, false))
}

// Arrive steers toward target, slowing down once inside the arrival radius
func (a *Agent) Arrive(target geometry.Vector) {
	a.applyForce(a.steer(target, true))
}

func (a *Agent) applyForce(force geometry.Vector) {
	a.acceleration = a.acceleration.Add(force)
}

func (a *Agent) integrate() {
	a.velocity = a.velocity.Add(a.acceleration).Limit(a.maxSpeed)
	a.position = a.position.Add(a.velocity)
	a.acceleration = geometry.Vector{}
}

// wrap teleports the agent to the opposite edge once it is fully off screen.
// Both axes are checked so corners wrap diagonally.
func (a *Agent) wrap(worldWidth, worldHeight float64) {
	a.position.X = geometry.WrapCoordinate(a.position.X, worldWidth, a.radius)
	a.position.Y = geometry.WrapCoordinate(a.position.Y, worldHeight, a.radius)
}

func (a *Agent) Position() geometry.Vector {
	return a.position
}

func (a *Agent) Velocity() geometry.Vector {
	return a.velocity
}

func (a *Agent) Acceleration() geometry.Vector {
	return a.acceleration
}

// Heading is the direction of travel in radians
func (a *Agent) Heading() float64 {
	return a.velocity.Heading()
}

func (a *Agent) Radius() float64 {
	return a.radius
}

func (a *Agent) MaxSpeed() float64 {
	return a.maxSpeed
}

func (a *Agent) MaxForce() float64 {
	return a.maxForce
}
