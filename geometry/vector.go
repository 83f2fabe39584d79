package geometry

import (
	"math"
)

type Vector struct {
	X float64
	Y float64
}

// DotProduct calculates the dot product of two vectors
func (v Vector) DotProduct(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// AngleTo calculates the angle between this vector and another vector in radians
func (v Vector) AngleTo(other Vector) float64 {
	dot := v.DotProduct(other)
	magV := v.Magnitude()
	magOther := other.Magnitude()

	// Handle zero-length vectors
	if magV == 0 || magOther == 0 {
		return 0
	}

	// cos(θ) = (A · B) / (|A| * |B|)
	cosTheta := dot / (magV * magOther)

	// Clamp to [-1, 1] to handle floating point precision issues
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}

	return math.Acos(cosTheta)
}

// Normalize returns the unit vector pointing the same way as v.
// The zero vector normalizes to itself.
func (v Vector) Normalize() Vector {
	magnitude := v.Magnitude()
	if magnitude == 0 {
		return Vector{0, 0}
	}
	return Vector{v.X / magnitude, v.Y / magnitude}
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Scale(factor float64) Vector {
	return Vector{v.X * factor, v.Y * factor}
}

// Div divides both components by divisor. Callers must not pass zero.
func (v Vector) Div(divisor float64) Vector {
	return Vector{v.X / divisor, v.Y / divisor}
}

// Limit caps the magnitude of v at max, keeping its direction
func (v Vector) Limit(max float64) Vector {
	magnitude := v.Magnitude()
	if magnitude <= max {
		return v
	}
	return v.Scale(max / magnitude)
}

// Heading is the angle of v from the positive X axis, in radians
func (v Vector) Heading() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
