package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	defaultWindowWidth      = 500
	defaultWindowHeight     = 500
	defaultWindowTitle      = "Flocking"
	defaultInitialSize      = 100
	defaultFlockMaxSpeed    = 3.0
	defaultFlockMaxForce    = 0.05
	defaultSpawnMaxSpeed    = 2.0
	defaultSpawnMaxForce    = 0.05
	defaultUpdateMode       = "sequential"
	defaultStatsIntervalSec = 5
	defaultLogLevel         = "info"
)

type Config struct {
	config *viper.Viper
}

// Load reads config/config.<env>.yaml from the project root. Environment
// variables override file values; a missing file is not an error.
func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func (c *Config) GetWindowWidth() int {
	return c.getInt("WINDOW_WIDTH", "window.width", defaultWindowWidth)
}

func (c *Config) GetWindowHeight() int {
	return c.getInt("WINDOW_HEIGHT", "window.height", defaultWindowHeight)
}

func (c *Config) GetWindowTitle() string {
	return c.getString("WINDOW_TITLE", "window.title", defaultWindowTitle)
}

func (c *Config) GetInitialFlockSize() int {
	return c.getInt("FLOCK_INITIAL_SIZE", "flock.initial_size", defaultInitialSize)
}

func (c *Config) GetFlockMaxSpeed() float64 {
	return c.getFloat("FLOCK_MAX_SPEED", "flock.max_speed", defaultFlockMaxSpeed)
}

func (c *Config) GetFlockMaxForce() float64 {
	return c.getFloat("FLOCK_MAX_FORCE", "flock.max_force", defaultFlockMaxForce)
}

// GetSeed returns the random seed for initial velocities. Zero means seed from the clock.
func (c *Config) GetSeed() int64 {
	return int64(c.getInt("FLOCK_SEED", "flock.seed", 0))
}

func (c *Config) GetUpdateMode() string {
	return c.getString("FLOCK_UPDATE_MODE", "flock.update_mode", defaultUpdateMode)
}

func (c *Config) GetSpawnMaxSpeed() float64 {
	return c.getFloat("SPAWN_MAX_SPEED", "spawn.max_speed", defaultSpawnMaxSpeed)
}

func (c *Config) GetSpawnMaxForce() float64 {
	return c.getFloat("SPAWN_MAX_FORCE", "spawn.max_force", defaultSpawnMaxForce)
}

// Steering values fall back to the caller's defaults when unset

func (c *Config) GetDesiredSeparation(fallback float64) float64 {
	return c.getFloat("STEERING_DESIRED_SEPARATION", "steering.desired_separation", fallback)
}

func (c *Config) GetNeighborDistance(fallback float64) float64 {
	return c.getFloat("STEERING_NEIGHBOR_DISTANCE", "steering.neighbor_distance", fallback)
}

func (c *Config) GetSeparationWeight(fallback float64) float64 {
	return c.getFloat("STEERING_SEPARATION_WEIGHT", "steering.separation_weight", fallback)
}

func (c *Config) GetAlignmentWeight(fallback float64) float64 {
	return c.getFloat("STEERING_ALIGNMENT_WEIGHT", "steering.alignment_weight", fallback)
}

func (c *Config) GetCohesionWeight(fallback float64) float64 {
	return c.getFloat("STEERING_COHESION_WEIGHT", "steering.cohesion_weight", fallback)
}

func (c *Config) GetArrivalRadius(fallback float64) float64 {
	return c.getFloat("STEERING_ARRIVAL_RADIUS", "steering.arrival_radius", fallback)
}

func (c *Config) GetAgentRadius(fallback float64) float64 {
	return c.getFloat("STEERING_AGENT_RADIUS", "steering.agent_radius", fallback)
}

func (c *Config) GetStatsIntervalSeconds() int {
	return c.getInt("STATS_INTERVAL_SECONDS", "stats.interval_seconds", defaultStatsIntervalSec)
}

// GetHeadlessSteps returns how many steps to run without a window. Zero opens the window.
func (c *Config) GetHeadlessSteps() int {
	return c.getInt("HEADLESS_STEPS", "run.headless_steps", 0)
}

func (c *Config) GetLogLevel() string {
	return c.getString("LOG_LEVEL", "log.level", defaultLogLevel)
}

// Environment keys win over file keys, the fallback is used when neither is set

func (c *Config) getInt(envKey, fileKey string, fallback int) int {
	switch {
	case c.config.IsSet(envKey):
		return c.config.GetInt(envKey)
	case c.config.IsSet(fileKey):
		return c.config.GetInt(fileKey)
	default:
		return fallback
	}
}

func (c *Config) getFloat(envKey, fileKey string, fallback float64) float64 {
	switch {
	case c.config.IsSet(envKey):
		return c.config.GetFloat64(envKey)
	case c.config.IsSet(fileKey):
		return c.config.GetFloat64(fileKey)
	default:
		return fallback
	}
}

func (c *Config) getString(envKey, fileKey string, fallback string) string {
	value := c.config.GetString(envKey)
	if len(value) == 0 {
		value = c.config.GetString(fileKey)
	}
	if len(value) == 0 {
		value = fallback
	}

	return value
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
