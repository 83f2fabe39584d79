package flock

import (
	"github.com/meghashyamc/flocking2d/geometry"
)

// steering is the weighted sum of separation, alignment and cohesion
func (a *Agent) steering(neighbors []*Agent) geometry.Vector {
	separation := a.separate(neighbors).Scale(a.params.SeparationWeight)
	alignment := a.align(neighbors).Scale(a.params.AlignmentWeight)
	cohesion := a.cohere(neighbors).Scale(a.params.CohesionWeight)

	return separation.Add(alignment).Add(cohesion)
}

// separate pushes away from neighbours closer than the desired separation,
// weighting each by inverse distance
func (a *Agent) separate(neighbors []*Agent) geometry.Vector {
	var sum geometry.Vector
	count := 0

	for _, other := range neighbors {
		d, ok := a.distanceTo(other)
		if !ok || d >= a.params.DesiredSeparation {
			continue
		}
		away := a.position.Sub(other.position).Normalize().Div(d)
		sum = sum.Add(away)
		count++
	}

	if count > 0 {
		sum = sum.Div(float64(count))
	}

	return a.steerAlong(sum)
}

// align steers toward the average velocity of nearby neighbours
func (a *Agent) align(neighbors []*Agent) geometry.Vector {
	var sum geometry.Vector
	count := 0

	for _, other := range neighbors {
		d, ok := a.distanceTo(other)
		if !ok || d >= a.params.NeighborDistance {
			continue
		}
		sum = sum.Add(other.velocity)
		count++
	}

	if count > 0 {
		sum = sum.Div(float64(count))
	}

	return a.steerAlong(sum)
}

// cohere seeks the centroid of nearby neighbours
func (a *Agent) cohere(neighbors []*Agent) geometry.Vector {
	var sum geometry.Vector
	count := 0

	for _, other := range neighbors {
		d, ok := a.distanceTo(other)
		if !ok || d >= a.params.NeighborDistance {
			continue
		}
		sum = sum.Add(other.position)
		count++
	}

	if count == 0 {
		return geometry.Vector{}
	}

	return a.steer(sum.Div(float64(count)), false)
}

// distanceTo reports the distance to other and whether other counts as a
// neighbour at all. The agent itself and agents sharing its exact position
// never do.
func (a *Agent) distanceTo(other *Agent) (float64, bool) {
	if other == nil || other == a {
		return 0, false
	}
	d := geometry.Distance(a.position, other.position)
	return d, d > 0
}

// steerAlong turns a desired direction into a steering force:
// desired at full speed minus current velocity, capped at maxForce.
// A zero direction gives no force.
func (a *Agent) steerAlong(direction geometry.Vector) geometry.Vector {
	if direction.Magnitude() == 0 {
		return geometry.Vector{}
	}

	desired := direction.Normalize().Scale(a.maxSpeed)
	return desired.Sub(a.velocity).Limit(a.maxForce)
}

// steer computes the force toward target. With slowdown the desired speed
// ramps down linearly inside the arrival radius.
func (a *Agent) steer(target geometry.Vector, slowdown bool) geometry.Vector {
	desired := target.Sub(a.position)
	d := desired.Magnitude()
	if d == 0 {
		return geometry.Vector{}
	}

	desired = desired.Normalize()
	if slowdown && d < a.params.ArrivalRadius {
		desired = desired.Scale(a.maxSpeed * (d / a.params.ArrivalRadius))
	} else {
		desired = desired.Scale(a.maxSpeed)
	}

	return desired.Sub(a.velocity).Limit(a.maxForce)
}
