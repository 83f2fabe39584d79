package flock

import "github.com/meghashyamc/flocking2d/geometry"

// Stats summarises a population for logging
type Stats struct {
	Count     int
	MeanSpeed float64
	MaxSpeed  float64 // fastest observed agent, not the configured limit
	Centroid  geometry.Vector
}

func (p *Population) Stats() Stats {
	stats := Stats{Count: len(p.agents)}
	if stats.Count == 0 {
		return stats
	}

	var speedSum float64
	var positionSum geometry.Vector
	for _, agent := range p.agents {
		speed := agent.velocity.Magnitude()
		speedSum += speed
		stats.MaxSpeed = max(stats.MaxSpeed, speed)
		positionSum = positionSum.Add(agent.position)
	}

	stats.MeanSpeed = speedSum / float64(stats.Count)
	stats.Centroid = positionSum.Div(float64(stats.Count))
	return stats
}
