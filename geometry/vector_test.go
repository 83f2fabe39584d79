package geometry

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestVectorArithmetic(t *testing.T) {
	a := Vector{X: 3, Y: -2}
	b := Vector{X: 1, Y: 4}

	if got := a.Add(b); got != (Vector{X: 4, Y: 2}) {
		t.Errorf("Add = %v, want {4 2}", got)
	}
	if got := a.Sub(b); got != (Vector{X: 2, Y: -6}) {
		t.Errorf("Sub = %v, want {2 -6}", got)
	}
	if got := a.Scale(2); got != (Vector{X: 6, Y: -4}) {
		t.Errorf("Scale = %v, want {6 -4}", got)
	}
	if got := a.Div(2); got != (Vector{X: 1.5, Y: -1}) {
		t.Errorf("Div = %v, want {1.5 -1}", got)
	}
	if got := a.DotProduct(b); got != -5 {
		t.Errorf("DotProduct = %v, want -5", got)
	}
}

func TestMagnitudeAndDistance(t *testing.T) {
	if got := (Vector{X: 3, Y: 4}).Magnitude(); got != 5 {
		t.Errorf("Magnitude = %v, want 5", got)
	}
	if got := Distance(Vector{X: 1, Y: 1}, Vector{X: 4, Y: 5}); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := Distance(Vector{X: 7, Y: 7}, Vector{X: 7, Y: 7}); got != 0 {
		t.Errorf("Distance to self = %v, want 0", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vector
		want Vector
	}{
		{name: "zero vector stays zero", in: Vector{}, want: Vector{}},
		{name: "axis aligned", in: Vector{X: 0, Y: -7}, want: Vector{X: 0, Y: -1}},
		{name: "diagonal", in: Vector{X: 3, Y: 4}, want: Vector{X: 0.6, Y: 0.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if !almostEqual(got.X, tt.want.X) || !almostEqual(got.Y, tt.want.Y) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if math.IsNaN(got.X) || math.IsNaN(got.Y) {
				t.Errorf("Normalize(%v) produced NaN", tt.in)
			}
		})
	}
}

func TestLimit(t *testing.T) {
	tests := []struct {
		name    string
		in      Vector
		max     float64
		wantMag float64
	}{
		{name: "longer vector is rescaled", in: Vector{X: 30, Y: 40}, max: 5, wantMag: 5},
		{name: "shorter vector unchanged", in: Vector{X: 0.3, Y: 0.4}, max: 5, wantMag: 0.5},
		{name: "zero max collapses", in: Vector{X: 1, Y: 1}, max: 0, wantMag: 0},
		{name: "zero vector stays zero", in: Vector{}, max: 1, wantMag: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Limit(tt.max)
			if !almostEqual(got.Magnitude(), tt.wantMag) {
				t.Errorf("Limit(%v, %v) magnitude = %v, want %v", tt.in, tt.max, got.Magnitude(), tt.wantMag)
			}
			if tt.wantMag > 0 && got.AngleTo(tt.in) > 1e-6 {
				t.Errorf("Limit(%v, %v) changed direction to %v", tt.in, tt.max, got)
			}
		})
	}
}

func TestHeading(t *testing.T) {
	if got := (Vector{X: 0, Y: 1}).Heading(); !almostEqual(got, math.Pi/2) {
		t.Errorf("Heading = %v, want pi/2", got)
	}
	if got := (Vector{X: -1, Y: 0}).Heading(); !almostEqual(got, math.Pi) {
		t.Errorf("Heading = %v, want pi", got)
	}
}

func TestWrapCoordinate(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{name: "past low edge", value: -3.5, want: 502},
		{name: "past high edge", value: 502.5, want: -2},
		{name: "inside margin low", value: -2, want: -2},
		{name: "inside margin high", value: 502, want: 502},
		{name: "inside world", value: 250, want: 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapCoordinate(tt.value, 500, 2); got != tt.want {
				t.Errorf("WrapCoordinate(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
