package sim

import (
	"time"

	"github.com/meghashyamc/flocking2d/config"
	"github.com/meghashyamc/flocking2d/flock"
)

// Settings is everything needed to build and drive a simulation
type Settings struct {
	WorldWidth    float64
	WorldHeight   float64
	InitialSize   int
	FlockMaxSpeed float64 // limits for the initial flock
	FlockMaxForce float64
	SpawnMaxSpeed float64 // limits for agents added at runtime
	SpawnMaxForce float64
	Seed          int64 // zero seeds from the clock
	Mode          flock.UpdateMode
	Params        flock.Params
	StatsInterval time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		WorldWidth:    500,
		WorldHeight:   500,
		InitialSize:   100,
		FlockMaxSpeed: 3.0,
		FlockMaxForce: 0.05,
		SpawnMaxSpeed: 2.0,
		SpawnMaxForce: 0.05,
		Mode:          flock.Sequential,
		Params:        flock.DefaultParams(),
		StatsInterval: 5 * time.Second,
	}
}

func SettingsFromConfig(cfg *config.Config) Settings {
	defaults := flock.DefaultParams()

	return Settings{
		WorldWidth:    float64(cfg.GetWindowWidth()),
		WorldHeight:   float64(cfg.GetWindowHeight()),
		InitialSize:   cfg.GetInitialFlockSize(),
		FlockMaxSpeed: cfg.GetFlockMaxSpeed(),
		FlockMaxForce: cfg.GetFlockMaxForce(),
		SpawnMaxSpeed: cfg.GetSpawnMaxSpeed(),
		SpawnMaxForce: cfg.GetSpawnMaxForce(),
		Seed:          cfg.GetSeed(),
		Mode:          flock.ParseUpdateMode(cfg.GetUpdateMode()),
		Params: flock.Params{
			DesiredSeparation: cfg.GetDesiredSeparation(defaults.DesiredSeparation),
			NeighborDistance:  cfg.GetNeighborDistance(defaults.NeighborDistance),
			SeparationWeight:  cfg.GetSeparationWeight(defaults.SeparationWeight),
			AlignmentWeight:   cfg.GetAlignmentWeight(defaults.AlignmentWeight),
			CohesionWeight:    cfg.GetCohesionWeight(defaults.CohesionWeight),
			ArrivalRadius:     cfg.GetArrivalRadius(defaults.ArrivalRadius),
			Radius:            cfg.GetAgentRadius(defaults.Radius),
		},
		StatsInterval: time.Duration(cfg.GetStatsIntervalSeconds()) * time.Second,
	}
}
