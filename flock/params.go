package flock

import "math"

const (
	defaultDesiredSeparation = 25.0
	defaultNeighborDistance  = 50.0
	defaultSeparationWeight  = 1.5
	defaultAlignmentWeight   = 1.0
	defaultCohesionWeight    = 1.0
	defaultArrivalRadius     = 100.0 // arrive starts slowing down inside this distance
	defaultAgentRadius       = 2.0
)

// Params tunes how agents perceive and weigh their neighbours
type Params struct {
	DesiredSeparation float64
	NeighborDistance  float64
	SeparationWeight  float64
	AlignmentWeight   float64
	CohesionWeight    float64
	ArrivalRadius     float64
	Radius            float64
}

func DefaultParams() Params {
	return Params{
		DesiredSeparation: defaultDesiredSeparation,
		NeighborDistance:  defaultNeighborDistance,
		SeparationWeight:  defaultSeparationWeight,
		AlignmentWeight:   defaultAlignmentWeight,
		CohesionWeight:    defaultCohesionWeight,
		ArrivalRadius:     defaultArrivalRadius,
		Radius:            defaultAgentRadius,
	}
}

// Sanitize replaces unusable values with their defaults and returns the
// names of the fields it replaced. Distances and the radius must be positive,
// weights must be non-negative.
func (p Params) Sanitize() (Params, []string) {
	defaults := DefaultParams()
	var replaced []string

	positive := func(name string, value *float64, fallback float64) {
		if math.IsNaN(*value) || math.IsInf(*value, 0) || *value <= 0 {
			*value = fallback
			replaced = append(replaced, name)
		}
	}
	nonNegative := func(name string, value *float64, fallback float64) {
		if math.IsNaN(*value) || math.IsInf(*value, 0) || *value < 0 {
			*value = fallback
			replaced = append(replaced, name)
		}
	}

	positive("DesiredSeparation", &p.DesiredSeparation, defaults.DesiredSeparation)
	positive("NeighborDistance", &p.NeighborDistance, defaults.NeighborDistance)
	positive("ArrivalRadius", &p.ArrivalRadius, defaults.ArrivalRadius)
	positive("Radius", &p.Radius, defaults.Radius)
	nonNegative("SeparationWeight", &p.SeparationWeight, defaults.SeparationWeight)
	nonNegative("AlignmentWeight", &p.AlignmentWeight, defaults.AlignmentWeight)
	nonNegative("CohesionWeight", &p.CohesionWeight, defaults.CohesionWeight)

	return p, replaced
}

// UpdateMode selects how a population step orders reads and writes
type UpdateMode int

const (
	// Sequential updates agents one at a time in insertion order, so later
	// agents see the already-moved earlier ones.
	Sequential UpdateMode = iota
	// Batched computes every agent's steering against the same frozen
	// pre-step state before any agent moves.
	Batched
)

func (m UpdateMode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Batched:
		return "batched"
	default:
		return "unknown"
	}
}

// ParseUpdateMode accepts "sequential" or "batched". Anything else is Sequential.
func ParseUpdateMode(mode string) UpdateMode {
	if mode == Batched.String() {
		return Batched
	}
	return Sequential
}
