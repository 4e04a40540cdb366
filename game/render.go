package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/vale/telemetry"
	"github.com/pthm-cable/vale/ui"
)

const controlsLegend = "SPACE: Pause | R: Reset | C: Camera | < >: Speed | +/-: Zoom | P: Perf | H: Buttons"

// Draw renders the scene and the HUD.
func (g *Game) Draw() {
	g.perfCollector.RecordFrame()
	g.perfCollector.StartTick()
	g.perfCollector.StartPhase(telemetry.PhaseRender)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	g.backgroundRenderer.Draw()

	rl.BeginMode3D(g.raylibCamera())
	elapsed := g.scene.Elapsed()
	g.terrainRenderer.Draw()
	g.fireRenderer.Draw(elapsed)
	g.actorRenderer.Draw(g.scene.Transform())
	g.waterRenderer.Draw(elapsed)
	g.rippleBuf = g.scene.ActiveRipples(g.rippleBuf[:0])
	g.rippleRenderer.Draw(g.rippleBuf)
	rl.EndMode3D()

	g.drawUI()

	rl.EndDrawing()
	g.perfCollector.EndTick()
}

// raylibCamera copies the camera rig into a raylib camera.
func (g *Game) raylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   toVector3(g.camera.Position),
		Target:     toVector3(g.camera.Target),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       float32(g.camera.FOV),
		Projection: rl.CameraPerspective,
	}
}

// drawUI draws the 2D overlays.
func (g *Game) drawUI() {
	flight := g.scene.Flight()
	tr := g.scene.Transform()

	g.uiHUD.Draw(ui.HUDData{
		Title:      "Vale",
		Elapsed:    g.scene.Elapsed(),
		Tick:       g.scene.Tick(),
		Speed:      g.stepsPerUpdate,
		FPS:        rl.GetFPS(),
		Paused:     g.paused,
		CameraMode: g.camera.Mode.String(),
		Laps:       g.collector.LapsCompleted(),
		Seed:       g.rngSeed,
	})

	g.uiFlight.Draw(&ui.FlightPanelData{
		Transform:     tr,
		Altitude:      flight.Clearance(),
		Target:        r3.Norm(r3.Sub(flight.Target(g.scene.Elapsed()), tr.Position)),
		MaxBank:       g.cfg.Flight.MaxBank,
		MaxFlapRate:   g.maxFlapRate,
		ActiveRipples: len(g.rippleBuf),
		RippleCap:     g.scene.Ripples().Capacity(),
	})

	if g.showPerf {
		g.uiPerf.Draw(g.perfCollector.Stats())
	}

	g.handleAction(g.uiControls.Draw(g.paused, &g.stepsPerUpdate, MaxStepsPerUpdate))
	g.uiHUD.DrawControls(int32(g.screenHeight), controlsLegend)
}

func toVector3(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}
