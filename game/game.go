package game

import (
	"fmt"
	"image/color"

	"github.com/meghashyamc/flocking2d/config"
	"github.com/meghashyamc/flocking2d/flock"
	"github.com/meghashyamc/flocking2d/logger"
	"github.com/meghashyamc/flocking2d/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/meghashyamc/flocking2d/assets"
)

type Game struct {
	cfg        *config.Config
	simulation *sim.Simulation
	logger     logger.Logger
}

func NewGame(cfg *config.Config) (*Game, error) {
	log := logger.NewWithLevel(logger.ParseLevel(cfg.GetLogLevel()))

	simulation, err := sim.New(sim.SettingsFromConfig(cfg), log)
	if err != nil {
		log.Error("failed to create simulation", "err", err)
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	g := &Game{
		cfg:        cfg,
		simulation: simulation,
		logger:     log,
	}

	g.logger.Info("game initialized", "agents", simulation.Population().Len())
	return g, nil
}

func (g *Game) Run() error {
	g.logger.Info("starting game")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(g)
}

// RunHeadless steps the flock without opening a window
func (g *Game) RunHeadless(steps int) flock.Stats {
	return g.simulation.RunHeadless(steps)
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		settings := g.simulation.Settings()
		position := getCurrentMousePosition()
		position.X = clampValue(position.X, 0, settings.WorldWidth)
		position.Y = clampValue(position.Y, 0, settings.WorldHeight)
		g.simulation.SpawnAt(*position)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.simulation.Reset()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.simulation.TogglePause()
	}

	g.simulation.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	for _, agent := range g.simulation.Population().Agents() {
		drawAgent(screen, agent)
	}

	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	status := fmt.Sprintf("Agents: %d", g.simulation.Population().Len())
	if g.simulation.IsPaused() {
		status += " (paused)"
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, status, assets.HUDFont, op)

	instructionText := "Click to add agents, P to pause, R to reset"
	op2 := &text.DrawOptions{}
	op2.GeoM.Translate(10, g.simulation.Settings().WorldHeight-24)
	op2.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, instructionText, assets.HUDFont, op2)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	settings := g.simulation.Settings()
	return int(settings.WorldWidth), int(settings.WorldHeight)
}
