// Package game wires the scene, telemetry and presentation layers into a
// runnable flyover, either in a raylib window or headless.
package game

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/vale/camera"
	"github.com/pthm-cable/vale/components"
	"github.com/pthm-cable/vale/config"
	"github.com/pthm-cable/vale/renderer"
	"github.com/pthm-cable/vale/systems"
	"github.com/pthm-cable/vale/telemetry"
	"github.com/pthm-cable/vale/ui"
)

// MaxStepsPerUpdate caps the speed multiplier.
const MaxStepsPerUpdate = 10

// Terrain mesh resolution for the window renderer.
const terrainResolution = 97

// Options configures a game instance.
type Options struct {
	Seed           int64
	LogStats       bool    // Log window stats and perf via slog
	StatsWindowSec float64 // 0 = use config
	OutputDir      string  // Empty disables CSV output
	Headless       bool    // Skip every raylib resource
	StepsPerUpdate int     // Scene steps per Update call

	// StatsCallback, if set, receives every flushed window.
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the scene and everything observing or drawing it.
type Game struct {
	cfg     *config.Config
	scene   *systems.Scene
	rngSeed int64

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	logStats         bool
	statsCallback    func(telemetry.WindowStats)

	// Presentation, nil when headless
	camera             *camera.Camera
	backgroundRenderer *renderer.BackgroundRenderer
	terrainRenderer    *renderer.TerrainRenderer
	waterRenderer      *renderer.WaterRenderer
	rippleRenderer     *renderer.RippleRenderer
	actorRenderer      *renderer.ActorRenderer
	fireRenderer       *renderer.FireRenderer
	uiHUD              *ui.HUD
	uiFlight           *ui.FlightPanel
	uiPerf             *ui.PerfPanel
	uiControls         *ui.ControlsBar
	rippleBuf          []components.RippleView

	// State
	paused         bool
	headless       bool
	showPerf       bool
	stepsPerUpdate int
	maxFlapRate    float64

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game from the global config.
func NewGameWithOptions(opts Options) *Game {
	return NewGameFromConfig(config.Cfg(), opts)
}

// NewGameFromConfig creates a game from an explicit config.
func NewGameFromConfig(cfg *config.Config, opts Options) *Game {
	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}
	window := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		window = opts.StatsWindowSec
	}

	g := &Game{
		cfg:              cfg,
		scene:            systems.NewScene(cfg, opts.Seed),
		rngSeed:          opts.Seed,
		collector:        telemetry.NewCollector(window, cfg.Sim.DT),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		bookmarkDetector: telemetry.NewBookmarkDetector(10),
		logStats:         opts.LogStats,
		statsCallback:    opts.StatsCallback,
		headless:         opts.Headless,
		stepsPerUpdate:   steps,
		maxFlapRate:      maxFlapRate(&cfg.Flight),
		screenWidth:      cfg.Derived.ScreenW32,
		screenHeight:     cfg.Derived.ScreenH32,
	}
	g.scene.SetObserver(&sceneObserver{g: g})

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	} else if om != nil {
		g.outputManager = om
		if err := om.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config", "error", err)
		}
		slog.Info("writing telemetry", "dir", om.Dir())
	}

	if !opts.Headless {
		g.initPresentation()
	}
	return g
}

// initPresentation builds the camera, renderers and UI panels.
func (g *Game) initPresentation() {
	terrain := g.scene.Terrain()
	lx, lz := terrain.LakeCenter()
	mx, mz := terrain.MountainCenter()
	// Frame the valley between the lake and the mountain
	center := r3.Vec{X: (lx + mx) / 2, Y: terrain.WaterLevel(), Z: (lz + mz) / 2}

	w, h := int32(g.screenWidth), int32(g.screenHeight)

	g.camera = camera.New(g.cfg.Camera, center)
	g.backgroundRenderer = renderer.NewBackgroundRenderer(w, h)
	g.terrainRenderer = renderer.NewTerrainRenderer(terrainResolution)
	g.terrainRenderer.Init(terrain)
	g.waterRenderer = renderer.NewWaterRenderer(terrain.WaterLevel(), terrain.Extent())
	g.rippleRenderer = renderer.NewRippleRenderer()
	g.actorRenderer = renderer.NewActorRenderer()
	g.fireRenderer = renderer.NewFireRenderer(g.scene.Fire())
	g.uiHUD = ui.NewHUD()
	g.uiFlight = ui.NewFlightPanel(10, 100, 250)
	g.uiPerf = ui.NewPerfPanel(w-260, 10)
	g.uiControls = ui.NewControlsBar(w-620, h-40)
	g.rippleBuf = make([]components.RippleView, 0, g.cfg.Ripples.Capacity)
}

// Reset restarts the session with the same seed.
func (g *Game) Reset() {
	g.flushTelemetry(true)
	g.scene.Reset()
	g.collector.Reset()
	if g.camera != nil {
		g.camera.Reset()
	}
	slog.Info("session reset", "seed", g.rngSeed)
}

// Unload releases resources and flushes output.
func (g *Game) Unload() {
	g.flushTelemetry(true)
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// Tick returns the number of scene steps since the last reset.
func (g *Game) Tick() int32 {
	return g.scene.Tick()
}

// Scene returns the running scene.
func (g *Game) Scene() *systems.Scene {
	return g.scene
}

// Paused reports whether stepping is suspended.
func (g *Game) Paused() bool {
	return g.paused
}

// SetPaused suspends or resumes stepping.
func (g *Game) SetPaused(p bool) {
	g.paused = p
}

func maxFlapRate(f *config.FlightConfig) float64 {
	m := 0.0
	for _, s := range []config.StateConfig{f.Cinematic, f.ApproachLake, f.DiveLake, f.Skim, f.ClimbMountain, f.DiveBomb, f.PullUp} {
		m = max(m, s.FlapRate)
	}
	return m
}
