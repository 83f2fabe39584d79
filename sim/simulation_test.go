package sim

import (
	"errors"
	"testing"
	"time"

	"github.com/meghashyamc/flocking2d/config"
	"github.com/meghashyamc/flocking2d/flock"
	"github.com/meghashyamc/flocking2d/geometry"
	"github.com/meghashyamc/flocking2d/logger"
)

func testSettings() Settings {
	settings := DefaultSettings()
	settings.InitialSize = 20
	settings.Seed = 11
	return settings
}

func TestNewBuildsInitialFlockAtCentre(t *testing.T) {
	s, err := New(testSettings(), logger.Discard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	agents := s.Population().Agents()
	if len(agents) != 20 {
		t.Fatalf("agents = %d, want 20", len(agents))
	}
	for _, agent := range agents {
		if agent.Position() != (geometry.Vector{X: 250, Y: 250}) {
			t.Fatalf("agent at %v, want centre", agent.Position())
		}
		if agent.MaxSpeed() != 3 || agent.MaxForce() != 0.05 {
			t.Fatalf("limits = (%v, %v), want (3, 0.05)", agent.MaxSpeed(), agent.MaxForce())
		}
	}
}

func TestNewRejectsInvalidWorld(t *testing.T) {
	settings := testSettings()
	settings.WorldHeight = 0

	if _, err := New(settings, nil); !errors.Is(err, ErrInvalidWorld) {
		t.Fatalf("err = %v, want ErrInvalidWorld", err)
	}
}

func TestNewClampsNegativeInitialSize(t *testing.T) {
	settings := testSettings()
	settings.InitialSize = -5

	s, err := New(settings, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Population().Len() != 0 {
		t.Errorf("agents = %d, want 0", s.Population().Len())
	}
}

func TestTickPauseAndSpawn(t *testing.T) {
	s, err := New(testSettings(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s.Tick()
	if s.Steps() != 1 {
		t.Fatalf("Steps = %d, want 1", s.Steps())
	}

	s.TogglePause()
	before := s.Population().Agents()[0].Position()
	s.Tick()
	if s.Steps() != 1 || s.Population().Agents()[0].Position() != before {
		t.Errorf("paused simulation advanced")
	}
	s.TogglePause()

	spawned := s.SpawnAt(geometry.Vector{X: 10, Y: 10})
	if s.Population().Len() != 21 {
		t.Errorf("agents = %d, want 21", s.Population().Len())
	}
	if spawned.MaxSpeed() != 2 {
		t.Errorf("spawned max speed = %v, want 2", spawned.MaxSpeed())
	}
}

func TestResetRestoresInitialFlock(t *testing.T) {
	s, err := New(testSettings(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first := s.Population().Agents()[0].Velocity()

	s.SpawnAt(geometry.Vector{X: 1, Y: 1})
	s.Tick()
	s.TogglePause()
	s.Reset()

	if s.Population().Len() != 20 || s.Steps() != 0 || s.IsPaused() {
		t.Fatalf("after Reset: agents %d steps %d paused %v", s.Population().Len(), s.Steps(), s.IsPaused())
	}
	if got := s.Population().Agents()[0].Velocity(); got != first {
		t.Errorf("seeded reset velocity = %v, want %v", got, first)
	}
}

func TestRunHeadlessIsReproducible(t *testing.T) {
	run := func() flock.Stats {
		s, err := New(testSettings(), nil)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		return s.RunHeadless(120)
	}

	first, second := run(), run()
	if first != second {
		t.Errorf("headless runs diverged: %+v vs %+v", first, second)
	}
	if first.Count != 20 {
		t.Errorf("Count = %d, want 20", first.Count)
	}
	if first.MaxSpeed > 3+1e-9 {
		t.Errorf("MaxSpeed = %v exceeds the flock limit", first.MaxSpeed)
	}
}

func TestSettingsFromConfig(t *testing.T) {
	cfg, err := config.Load("test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	settings := SettingsFromConfig(cfg)
	if settings.WorldWidth != 640 || settings.WorldHeight != 500 {
		t.Errorf("world = %vx%v, want 640x500", settings.WorldWidth, settings.WorldHeight)
	}
	if settings.InitialSize != 12 || settings.Seed != 42 {
		t.Errorf("InitialSize = %d Seed = %d, want 12 and 42", settings.InitialSize, settings.Seed)
	}
	if settings.Mode != flock.Batched {
		t.Errorf("Mode = %v, want batched", settings.Mode)
	}

	want := flock.DefaultParams()
	want.CohesionWeight = 0
	if settings.Params != want {
		t.Errorf("Params = %+v, want %+v", settings.Params, want)
	}
	if settings.StatsInterval != 5*time.Second {
		t.Errorf("StatsInterval = %v, want 5s", settings.StatsInterval)
	}
}

func TestTimer(t *testing.T) {
	timer := NewTimer(time.Second)
	for tick := 1; tick < ticksPerSecond; tick++ {
		if timer.Advance() {
			t.Fatalf("fired early at tick %d", tick)
		}
	}
	if !timer.Advance() {
		t.Fatalf("did not fire after one second of ticks")
	}
	if timer.Advance() {
		t.Fatalf("did not restart after firing")
	}

	timer.Reset()
	for tick := 1; tick < ticksPerSecond; tick++ {
		timer.Advance()
	}
	if !timer.Advance() {
		t.Errorf("did not fire one second after Reset")
	}

	if NewTimer(0).Advance() {
		t.Errorf("zero interval timer fired")
	}
}
