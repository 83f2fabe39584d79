package sim

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/meghashyamc/flocking2d/flock"
	"github.com/meghashyamc/flocking2d/geometry"
	"github.com/meghashyamc/flocking2d/logger"
)

var ErrInvalidWorld = errors.New("world dimensions must be positive")

// Simulation owns a population and drives it one tick at a time for a host loop
type Simulation struct {
	settings   Settings
	population *flock.Population
	statsTimer *Timer
	steps      int
	paused     bool
	logger     logger.Logger
}

func New(settings Settings, log logger.Logger) (*Simulation, error) {
	if settings.WorldWidth <= 0 || settings.WorldHeight <= 0 {
		return nil, fmt.Errorf("%w: got %vx%v", ErrInvalidWorld, settings.WorldWidth, settings.WorldHeight)
	}
	if log == nil {
		log = logger.Discard()
	}
	if settings.InitialSize < 0 {
		log.Warn("negative initial flock size, starting empty", "initial_size", settings.InitialSize)
		settings.InitialSize = 0
	}

	s := &Simulation{
		settings:   settings,
		statsTimer: NewTimer(settings.StatsInterval),
		logger:     log,
	}
	s.populate()

	s.logger.Info("simulation initialized",
		"agents", s.population.Len(),
		"mode", s.population.Mode().String(),
		"world_width", settings.WorldWidth,
		"world_height", settings.WorldHeight,
	)
	return s, nil
}

// populate replaces the population with the initial flock gathered at the centre of the world
func (s *Simulation) populate() {
	seed := s.settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s.population = flock.NewPopulation(s.settings.Params, s.settings.Mode, rand.New(rand.NewSource(seed)), s.logger)
	centre := geometry.Vector{X: s.settings.WorldWidth / 2, Y: s.settings.WorldHeight / 2}
	for i := 0; i < s.settings.InitialSize; i++ {
		s.population.Spawn(centre, s.settings.FlockMaxSpeed, s.settings.FlockMaxForce)
	}
	s.steps = 0
	s.statsTimer.Reset()
}

// Tick advances the flock by one step unless paused, logging stats when the timer fires
func (s *Simulation) Tick() {
	if s.paused {
		return
	}

	s.population.Step(s.settings.WorldWidth, s.settings.WorldHeight)
	s.steps++

	if s.statsTimer.Advance() {
		s.logStats()
	}
}

// SpawnAt adds an agent with the runtime spawn limits at position
func (s *Simulation) SpawnAt(position geometry.Vector) *flock.Agent {
	agent := s.population.Spawn(position, s.settings.SpawnMaxSpeed, s.settings.SpawnMaxForce)
	s.logger.Debug("agent spawned", "position", position, "agents", s.population.Len())
	return agent
}

func (s *Simulation) Reset() {
	s.logger.Debug("resetting simulation")
	s.populate()
	s.paused = false
	s.logger.Debug("simulation reset complete", "agents", s.population.Len())
}

func (s *Simulation) TogglePause() {
	s.paused = !s.paused
	s.logger.Debug("pause toggled", "paused", s.paused, "step", s.steps)
}

// RunHeadless ticks the simulation steps times without rendering and logs
// the final stats
func (s *Simulation) RunHeadless(steps int) flock.Stats {
	s.logger.Info("starting headless run", "steps", steps)
	for i := 0; i < steps; i++ {
		s.Tick()
	}
	s.logStats()
	return s.population.Stats()
}

func (s *Simulation) logStats() {
	stats := s.population.Stats()
	s.logger.Info("flock stats",
		"step", s.steps,
		"agents", stats.Count,
		"mean_speed", stats.MeanSpeed,
		"max_speed", stats.MaxSpeed,
		"centroid", stats.Centroid,
	)
}

func (s *Simulation) Population() *flock.Population {
	return s.population
}

func (s *Simulation) Settings() Settings {
	return s.settings
}

func (s *Simulation) Steps() int {
	return s.steps
}

func (s *Simulation) IsPaused() bool {
	return s.paused
}
