// Package game runs the table: it owns the body entities, the physics
// world, the router and the overlay, and drives them at a fixed step.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/plinko/body"
	"github.com/pthm-cable/plinko/components"
	"github.com/pthm-cable/plinko/config"
	"github.com/pthm-cable/plinko/layout"
	"github.com/pthm-cable/plinko/overlay"
	"github.com/pthm-cable/plinko/physics"
	"github.com/pthm-cable/plinko/router"
	"github.com/pthm-cable/plinko/systems"
	"github.com/pthm-cable/plinko/telemetry"
)

// maxParticles caps the effect particles alive at once.
const maxParticles = 600

// Options configures a game instance.
type Options struct {
	Config         *config.Config // nil uses config.Cfg()
	Seed           int64
	Headless       bool
	StepsPerUpdate int
	OutputDir      string
	LogStats       bool
}

// Game holds the complete game state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	world      *ecs.World
	bodyMapper *ecs.Map3[components.Shape, components.Pose, components.Style]
	discMapper *ecs.Map4[components.Shape, components.Pose, components.Style, components.Dynamic]
	bodyFilter ecs.Filter3[components.Shape, components.Pose, components.Style]
	discFilter ecs.Filter2[components.Pose, components.Dynamic]
	shapeMap   *ecs.Map[components.Shape]
	poseMap    *ecs.Map[components.Pose]
	styleMap   *ecs.Map[components.Style]
	dynamicMap *ecs.Map[components.Dynamic]
	entities   []ecs.Entity // by registration ID
	disc       ecs.Entity

	layout    *layout.Layout
	phys      *physics.World
	router    *router.Router
	overlay   *overlay.Overlay
	particles *systems.ParticleSystem

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	events        []telemetry.EventRecord

	// State
	tick           int32
	paused         bool
	headless       bool
	stepsPerUpdate int
	launches       int
	restTicks      int

	// Graphics, nil in headless mode
	view *view
}

// NewGameWithOptions builds the table and registers every body. In
// graphical mode the raylib window must already be open.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	if err := checkColors(cfg.Colors); err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	g := &Game{
		cfg:            cfg,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		world:          world,
		bodyMapper:     ecs.NewMap3[components.Shape, components.Pose, components.Style](world),
		discMapper:     ecs.NewMap4[components.Shape, components.Pose, components.Style, components.Dynamic](world),
		bodyFilter:     *ecs.NewFilter3[components.Shape, components.Pose, components.Style](world),
		discFilter:     *ecs.NewFilter2[components.Pose, components.Dynamic](world),
		shapeMap:       ecs.NewMap[components.Shape](world),
		poseMap:        ecs.NewMap[components.Pose](world),
		styleMap:       ecs.NewMap[components.Style](world),
		dynamicMap:     ecs.NewMap[components.Dynamic](world),
		headless:       opts.Headless,
		stepsPerUpdate: steps,
		logStats:       opts.LogStats,
		phys: physics.New(physics.Config{
			Gravity:    cfg.Physics.Gravity,
			Iterations: cfg.Physics.Iterations,
			Substeps:   cfg.Physics.Substeps,
		}),
		collector:     telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Physics.DT, layout.SensorCount),
		perfCollector: telemetry.NewPerfCollector(cfg.Derived.TicksPerSec),
	}
	g.particles = systems.NewParticleSystem(maxParticles, g.rng)

	lay, err := layout.Build(float64(cfg.Screen.Width), float64(cfg.Screen.Height), layout.Options{
		Palette:         cfg.Colors,
		Cabinet:         cfg.Layout.Cabinet,
		DiscRestitution: cfg.Layout.DiscRestitution,
		DiscMass:        cfg.Layout.DiscMass,
	})
	if err != nil {
		return nil, fmt.Errorf("building layout: %w", err)
	}
	g.layout = lay

	if err := g.spawnBodies(); err != nil {
		return nil, err
	}

	sensors := len(lay.Filter(body.KindSensor))
	routerOpts := router.DefaultOptions(cfg.Colors)
	routerOpts.HighlightOnEnter = cfg.Gameplay.HighlightOnEnter
	g.router = router.New(sensors, routerOpts)

	g.overlay, err = overlay.New(cfg.Names, lay.Slots, sensors, g.rng)
	if err != nil {
		return nil, fmt.Errorf("building overlay: %w", err)
	}

	g.outputManager, err = telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := g.outputManager.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing config: %w", err)
	}

	if !opts.Headless {
		g.view = newView(g)
	}

	slog.Info("table ready",
		"width", cfg.Screen.Width,
		"height", cfg.Screen.Height,
		"scale", lay.Scale,
		"bodies", len(lay.Bodies),
		"pegs", len(lay.Filter(body.KindPeg)),
		"sensors", sensors,
		"names", g.overlay.Names(),
		"seed", opts.Seed,
	)
	return g, nil
}

// Update runs one frame in graphical mode: input, then stepsPerUpdate ticks.
func (g *Game) Update() {
	g.handleInput()
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// UpdateHeadless runs stepsPerUpdate ticks without input or rendering.
// A resting disc is relaunched automatically.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

// Launch fires the disc straight up at the configured speed.
func (g *Game) Launch() {
	g.phys.Launch(g.cfg.Gameplay.LaunchSpeed)
	g.collector.RecordLaunch(g.tick)
	g.launches++
	g.restTicks = 0
	slog.Info("launch", "tick", g.tick, "speed", g.cfg.Gameplay.LaunchSpeed)
}

// Respawn puts the disc back at its start.
func (g *Game) Respawn() {
	g.phys.Respawn()
	g.syncDisc()
	g.particles.Clear()
	g.collector.RecordRespawn()
	g.restTicks = 0
	slog.Info("respawn", "tick", g.tick, "score", g.router.Score())
}

// TogglePause pauses or resumes the simulation.
func (g *Game) TogglePause() {
	g.paused = !g.paused
}

// Unload flushes and closes telemetry output.
func (g *Game) Unload() {
	g.writeEvents()
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// Tick returns the number of ticks simulated.
func (g *Game) Tick() int32 {
	return g.tick
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.router.Score()
}

// Overlay returns the name overlay.
func (g *Game) Overlay() *overlay.Overlay {
	return g.overlay
}

// Launches returns the number of launches so far.
func (g *Game) Launches() int {
	return g.launches
}
