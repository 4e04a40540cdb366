package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vale/telemetry"
)

// Update handles input and advances the scene by the frame time.
func (g *Game) Update() {
	g.handleInput()

	dt := float64(rl.GetFrameTime())
	if !g.paused {
		for i := 0; i < g.stepsPerUpdate; i++ {
			g.simulationStep(dt)
		}
	}

	tr := g.scene.Transform()
	g.camera.Update(tr, dt)
	if !g.paused {
		g.actorRenderer.Advance(tr, dt)
	}
}

// UpdateHeadless advances the scene by fixed steps without touching raylib.
func (g *Game) UpdateHeadless() {
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep(g.cfg.Sim.DT)
	}
}

// simulationStep runs one scene step and samples it.
func (g *Game) simulationStep(dt float64) {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseFlight)
	g.scene.Step(dt)

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordTick(g.scene.Transform(), g.scene.Flight().Clearance())

	g.perfCollector.StartPhase(telemetry.PhaseOutput)
	g.flushTelemetry(false)

	g.perfCollector.EndTick()
}
